package service

import (
	"context"
	"fmt"
	"slices"

	"threadline/web/internal/cache"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

type AdminAPI interface {
	ListUsers(ctx context.Context, page int, role model.Role) (pagination.Page[model.User], error)
	UpdateUserStatus(ctx context.Context, id int64, status model.UserStatus) (*model.User, error)
	Stats(ctx context.Context) (model.AdminStats, error)
}

// AdminService is the back-office view of users and platform stats.
type AdminService struct {
	api  AdminAPI
	deps Deps
}

func NewAdminService(api AdminAPI, deps Deps) *AdminService {
	return &AdminService{api: api, deps: deps.withDefaults()}
}

func (s *AdminService) Users(ctx context.Context, page int, role model.Role) (pagination.Page[model.User], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, key(ctx, "admin/users", "page", page, "role", role),
		func(ctx context.Context) (pagination.Page[model.User], error) { return s.api.ListUsers(ctx, page, role) })
}

func (s *AdminService) Stats(ctx context.Context) (model.AdminStats, error) {
	return cache.Query(ctx, s.deps.Cache, key(ctx, "admin/stats"), s.api.Stats)
}

// UpdateUserStatus suspends or reactivates an account and patches the user in
// every cached user page.
func (s *AdminService) UpdateUserStatus(ctx context.Context, id int64, status model.UserStatus) (*model.User, error) {
	u, err := s.api.UpdateUserStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("could not update status of user %d: %w", id, err)
	}
	s.deps.Cache.Patch(inScope(ctx, "admin/users"), func(cur any) any {
		page, ok := cur.(pagination.Page[model.User])
		if !ok {
			return cur
		}
		data := slices.Clone(page.Data)
		for i := range data {
			if data[i].ID == u.ID {
				data[i] = *u
			}
		}
		page.Data = data
		return page
	})
	s.deps.Cache.InvalidateWhere(inScope(ctx, "admin/stats"))
	return u, nil
}
