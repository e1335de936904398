package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/metrics"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
	"threadline/web/internal/repository"
)

// ContactService records submissions of the public contact form. The payload
// is validated by the HTTP layer before it gets here.
type ContactService struct {
	repo  repository.ContactRepository
	clock clock.Clock
	log   *slog.Logger
}

func NewContactService(repo repository.ContactRepository, clk clock.Clock, logger *slog.Logger) *ContactService {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{repo: repo, clock: clk, log: logger}
}

// Submit logs and stores a contact form submission.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) (*model.ContactSubmission, error) {
	sub := &model.ContactSubmission{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   req.Subject,
		Message:   strings.TrimSpace(req.Message),
		Company:   strings.TrimSpace(req.Company),
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: s.clock.Now().UTC().Truncate(time.Millisecond),
	}

	s.log.Info("Contact form submission",
		"id", sub.ID,
		"name", sub.Name,
		"email", sub.Email,
		"subject", sub.Subject,
		"company", sub.Company,
		"phone", sub.Phone,
		"message_length", len(sub.Message),
	)

	if err := s.repo.Create(ctx, sub); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("error").Inc()
		s.log.Error("Failed to store contact submission", "id", sub.ID, "error", err)
		return nil, fmt.Errorf("%w: could not store contact submission", app_errors.ErrInternal)
	}
	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	return sub, nil
}

// List returns stored submissions newest first.
func (s *ContactService) List(ctx context.Context, page, perPage int) (pagination.Page[model.ContactSubmission], error) {
	page = pagination.Clamp(page)
	if perPage <= 0 || perPage > 100 {
		perPage = 15
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return pagination.Page[model.ContactSubmission]{}, fmt.Errorf("could not count contact submissions: %w", err)
	}
	items, err := s.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return pagination.Page[model.ContactSubmission]{}, fmt.Errorf("could not list contact submissions: %w", err)
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	return pagination.Normalize(pagination.Page[model.ContactSubmission]{
		Data: items,
		Meta: pagination.Meta{CurrentPage: page, LastPage: lastPage, PerPage: perPage, Total: total},
	}, page), nil
}

// Get returns one submission.
func (s *ContactService) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	sub, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("contact submission %s: %w", id, app_errors.ErrNotFound)
		}
		return nil, fmt.Errorf("could not load contact submission %s: %w", id, err)
	}
	return sub, nil
}
