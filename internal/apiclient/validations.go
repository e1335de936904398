package apiclient

import (
	"context"
	"fmt"
	"strconv"

	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

func (c *Client) GetValidation(ctx context.Context, id int64) (*model.Validation, error) {
	v, err := getOne[model.Validation](ctx, c, fmt.Sprintf("/validations/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListValidations lists validation runs, optionally for one design (designID > 0).
func (c *Client) ListValidations(ctx context.Context, designID int64, page int) (pagination.Page[model.Validation], error) {
	q := pageQuery(page)
	if designID > 0 {
		q.Set("design_id", strconv.FormatInt(designID, 10))
	}
	return getPage[model.Validation](ctx, c, "/validations", q)
}
