package service

import (
	"context"

	"threadline/web/internal/cache"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
	"threadline/web/internal/poller"
)

type ValidationsAPI interface {
	GetValidation(ctx context.Context, id int64) (*model.Validation, error)
	ListValidations(ctx context.Context, designID int64, page int) (pagination.Page[model.Validation], error)
}

// ValidationService serves market validation runs and follows active ones.
type ValidationService struct {
	api  ValidationsAPI
	deps Deps
}

func NewValidationService(api ValidationsAPI, deps Deps) *ValidationService {
	return &ValidationService{api: api, deps: deps.withDefaults()}
}

func validationKey(ctx context.Context, id int64) cache.Key {
	return key(ctx, "validations/detail", "id", id)
}

func (s *ValidationService) Get(ctx context.Context, id int64) (*model.Validation, error) {
	return cache.Query(ctx, s.deps.Cache, validationKey(ctx, id), s.fetcher(id))
}

func (s *ValidationService) fetcher(id int64) func(context.Context) (*model.Validation, error) {
	return func(ctx context.Context) (*model.Validation, error) { return s.api.GetValidation(ctx, id) }
}

func (s *ValidationService) List(ctx context.Context, designID int64, page int) (pagination.Page[model.Validation], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, key(ctx, "validations/list", "design", designID, "page", page),
		func(ctx context.Context) (pagination.Page[model.Validation], error) {
			return s.api.ListValidations(ctx, designID, page)
		})
}

// Track polls a validation until it leaves pending and active. onSettled, if
// set, receives the final state.
func (s *ValidationService) Track(ctx context.Context, id int64, onSettled func(model.Validation)) error {
	k := validationKey(ctx, id)
	fetch := s.fetcher(id)
	return s.deps.Poller.Start(detach(ctx), poller.Job{
		Key:         string(k),
		Interval:    s.deps.Intervals.Validation,
		MaxLifetime: s.deps.Intervals.TrackLifetime,
		Fetch: func(ctx context.Context) (any, error) {
			return cache.Reload(ctx, s.deps.Cache, k, fetch)
		},
		Terminal: func(data any) bool {
			return data.(*model.Validation).Status.IsTerminal()
		},
		OnResult: func(data any, err error) {
			if err != nil {
				return
			}
			v := data.(*model.Validation)
			if !v.Status.IsTerminal() {
				return
			}
			s.deps.Cache.InvalidateWhere(inScope(ctx, "validations/list"))
			if onSettled != nil {
				onSettled(*v)
			}
		},
	})
}

func (s *ValidationService) TrackState(ctx context.Context, id int64) poller.State {
	return s.deps.Poller.State(string(validationKey(ctx, id)))
}

func (s *ValidationService) StopTracking(ctx context.Context, id int64) bool {
	return s.deps.Poller.Stop(string(validationKey(ctx, id)))
}
