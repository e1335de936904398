package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

func (c *Client) ListDesigns(ctx context.Context, page int) (pagination.Page[model.Design], error) {
	return getPage[model.Design](ctx, c, "/designs", pageQuery(page))
}

func (c *Client) GetDesign(ctx context.Context, id int64) (*model.Design, error) {
	d, err := getOne[model.Design](ctx, c, fmt.Sprintf("/designs/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) CreateDesign(ctx context.Context, in model.DesignInput) (*model.Design, error) {
	d, err := sendOne[model.Design](ctx, c, http.MethodPost, "/designs", in)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) UpdateDesign(ctx context.Context, id int64, in model.DesignInput) (*model.Design, error) {
	d, err := sendOne[model.Design](ctx, c, http.MethodPut, fmt.Sprintf("/designs/%d", id), in)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) DeleteDesign(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/designs/%d", id), nil, nil, nil)
}

// GenerateVariations asks the AI pipeline for variations of a design. The
// returned designs start in the pending analysis state.
func (c *Client) GenerateVariations(ctx context.Context, id int64, req model.VariationRequest) ([]model.Design, error) {
	return sendOne[[]model.Design](ctx, c, http.MethodPost, fmt.Sprintf("/designs/%d/variations", id), req)
}
