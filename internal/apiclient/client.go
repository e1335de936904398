// Package apiclient is the typed client for the external marketplace REST API.
//
// Single resources arrive wrapped as {"data": ...}; lists arrive as
// {"data": [...], "meta": {...}}. Every failure is classified against the
// sentinels in internal/errors so callers and the cache retry policy can
// branch with errors.Is.
package apiclient

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/pagination"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client talks to the marketplace API. It is safe for concurrent use.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New creates a client rooted at opts.BaseURL.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "threadline-web/1.0").
		SetTimeout(opts.Timeout)

	return &Client{http: httpClient, log: opts.Logger}
}

// SetToken sets the bearer token used when the request context carries none.
// Long-lived single-user clients call it after Login.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

type tokenKey struct{}

// WithToken returns a context whose requests authenticate with token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token set by WithToken.
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// Scope returns a short stable identifier of the session in ctx, suitable as a
// cache key parameter so that users never read each other's entries.
func Scope(ctx context.Context) string {
	tok := TokenFromContext(ctx)
	if tok == "" {
		return "anon"
	}
	sum := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(sum[:8])
}

type envelope[T any] struct {
	Data T `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if tok := TokenFromContext(ctx); tok != "" {
		req.SetAuthToken(tok)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", app_errors.ErrNetwork, method, path, err)
	}
	if resp.IsError() {
		apiErr := decodeError(resp.StatusCode(), resp.Body())
		c.log.Debug("Marketplace API error", "method", method, "path", path, "status", apiErr.StatusCode, "message", apiErr.Message)
		return apiErr
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decoding %s %s: %v", app_errors.ErrInternal, method, path, err)
	}
	return nil
}

func getOne[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var env envelope[T]
	err := c.do(ctx, http.MethodGet, path, query, nil, &env)
	return env.Data, err
}

func sendOne[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var env envelope[T]
	err := c.do(ctx, method, path, nil, body, &env)
	return env.Data, err
}

func getPage[T any](ctx context.Context, c *Client, path string, query url.Values) (pagination.Page[T], error) {
	if query == nil {
		query = url.Values{}
	}
	requested, _ := strconv.Atoi(query.Get("page"))
	page := pagination.Clamp(requested)
	query.Set("page", strconv.Itoa(page))

	var p pagination.Page[T]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &p); err != nil {
		return pagination.Page[T]{}, err
	}
	return pagination.Normalize(p, page), nil
}

func pageQuery(page int) url.Values {
	return url.Values{"page": {strconv.Itoa(pagination.Clamp(page))}}
}

// APIError is a non-2xx answer from the marketplace API.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("marketplace api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("marketplace api: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code onto the error taxonomy.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return app_errors.ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return app_errors.ErrPermission
	case e.StatusCode == http.StatusNotFound:
		return app_errors.ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return app_errors.ErrConflict
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return app_errors.ErrValidation
	case e.StatusCode == http.StatusTooManyRequests, e.StatusCode >= 500:
		return app_errors.ErrNetwork
	default:
		return app_errors.ErrInternal
	}
}

// FieldErrors returns the per-field messages of err, if it is a validation
// error reported by the API.
func FieldErrors(err error) map[string]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Fields
	}
	return nil
}

type errorBody struct {
	Message string                     `json:"message"`
	Error   string                     `json:"error"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

func decodeError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}
	apiErr.Message = eb.Message
	if apiErr.Message == "" {
		apiErr.Message = eb.Error
	}
	if len(eb.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(eb.Errors))
		for field, raw := range eb.Errors {
			// Either "msg" or ["msg", ...]; the first message is enough.
			var list []string
			if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
				apiErr.Fields[field] = list[0]
				continue
			}
			var msg string
			if json.Unmarshal(raw, &msg) == nil {
				apiErr.Fields[field] = msg
			}
		}
	}
	return apiErr
}
