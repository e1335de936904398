package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

// ListUsers is the back-office user list, optionally filtered by role.
func (c *Client) ListUsers(ctx context.Context, page int, role model.Role) (pagination.Page[model.User], error) {
	q := pageQuery(page)
	if role != "" {
		q.Set("role", string(role))
	}
	return getPage[model.User](ctx, c, "/admin/users", q)
}

func (c *Client) UpdateUserStatus(ctx context.Context, id int64, status model.UserStatus) (*model.User, error) {
	u, err := sendOne[model.User](ctx, c, http.MethodPatch, fmt.Sprintf("/admin/users/%d/status", id), map[string]model.UserStatus{"status": status})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Stats(ctx context.Context) (model.AdminStats, error) {
	return getOne[model.AdminStats](ctx, c, "/admin/stats", nil)
}
