package service

import (
	"context"
	"fmt"

	"threadline/web/internal/cache"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
	"threadline/web/internal/poller"
)

type DesignsAPI interface {
	ListDesigns(ctx context.Context, page int) (pagination.Page[model.Design], error)
	GetDesign(ctx context.Context, id int64) (*model.Design, error)
	CreateDesign(ctx context.Context, in model.DesignInput) (*model.Design, error)
	UpdateDesign(ctx context.Context, id int64, in model.DesignInput) (*model.Design, error)
	DeleteDesign(ctx context.Context, id int64) error
	GenerateVariations(ctx context.Context, id int64, req model.VariationRequest) ([]model.Design, error)
}

// DesignService serves designs and tracks their AI analysis.
type DesignService struct {
	api  DesignsAPI
	deps Deps
}

func NewDesignService(api DesignsAPI, deps Deps) *DesignService {
	return &DesignService{api: api, deps: deps.withDefaults()}
}

func designKey(ctx context.Context, id int64) cache.Key {
	return key(ctx, "designs/detail", "id", id)
}

func (s *DesignService) List(ctx context.Context, page int) (pagination.Page[model.Design], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, key(ctx, "designs/list", "page", page),
		func(ctx context.Context) (pagination.Page[model.Design], error) { return s.api.ListDesigns(ctx, page) })
}

func (s *DesignService) Get(ctx context.Context, id int64) (*model.Design, error) {
	return cache.Query(ctx, s.deps.Cache, designKey(ctx, id), s.fetcher(id))
}

func (s *DesignService) fetcher(id int64) func(ctx context.Context) (*model.Design, error) {
	return func(ctx context.Context) (*model.Design, error) { return s.api.GetDesign(ctx, id) }
}

func (s *DesignService) Create(ctx context.Context, in model.DesignInput) (*model.Design, error) {
	d, err := s.api.CreateDesign(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("could not create design: %w", err)
	}
	s.deps.Cache.SetData(designKey(ctx, d.ID), d)
	s.deps.Cache.InvalidateWhere(inScope(ctx, "designs/list"))
	return d, nil
}

func (s *DesignService) Update(ctx context.Context, id int64, in model.DesignInput) (*model.Design, error) {
	d, err := s.api.UpdateDesign(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("could not update design %d: %w", id, err)
	}
	s.deps.Cache.SetData(designKey(ctx, id), d)
	s.deps.Cache.InvalidateWhere(inScope(ctx, "designs/list"))
	return d, nil
}

func (s *DesignService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteDesign(ctx, id); err != nil {
		return fmt.Errorf("could not delete design %d: %w", id, err)
	}
	s.StopTracking(ctx, id)
	s.deps.Cache.Remove(designKey(ctx, id))
	s.deps.Cache.InvalidateWhere(inScope(ctx, "designs/list"))
	return nil
}

// GenerateVariations requests AI variations; the new designs appear in the
// list once it is refetched.
func (s *DesignService) GenerateVariations(ctx context.Context, id int64, req model.VariationRequest) ([]model.Design, error) {
	out, err := s.api.GenerateVariations(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("could not generate variations for design %d: %w", id, err)
	}
	s.deps.Cache.InvalidateWhere(inScope(ctx, "designs/list"))
	return out, nil
}

// TrackAnalysis polls the design until its analysis is completed or failed.
// onCompleted runs once when the analysis moves from pending or processing to
// completed. Tracking a design that is already tracked is a no-op.
func (s *DesignService) TrackAnalysis(ctx context.Context, id int64, onCompleted func(model.Design)) error {
	k := designKey(ctx, id)
	fetch := s.fetcher(id)

	completed := poller.OnTransition(
		[]string{string(model.AnalysisPending), string(model.AnalysisProcessing)},
		string(model.AnalysisCompleted),
		nil,
	)

	return s.deps.Poller.Start(detach(ctx), poller.Job{
		Key:         string(k),
		Interval:    s.deps.Intervals.Analysis,
		MaxLifetime: s.deps.Intervals.TrackLifetime,
		Fetch: func(ctx context.Context) (any, error) {
			return cache.Reload(ctx, s.deps.Cache, k, fetch)
		},
		Terminal: func(data any) bool {
			return data.(*model.Design).AIAnalysisStatus.IsTerminal()
		},
		OnResult: func(data any, err error) {
			if err != nil {
				return
			}
			d := data.(*model.Design)
			if completed.Observe(string(k), string(d.AIAnalysisStatus)) && onCompleted != nil {
				onCompleted(*d)
			}
		},
	})
}

// AnalysisState reports whether the design's analysis is still being tracked.
func (s *DesignService) AnalysisState(ctx context.Context, id int64) poller.State {
	return s.deps.Poller.State(string(designKey(ctx, id)))
}

func (s *DesignService) StopTracking(ctx context.Context, id int64) bool {
	return s.deps.Poller.Stop(string(designKey(ctx, id)))
}
