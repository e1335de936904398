package service

import (
	"context"
	"fmt"
	"slices"

	"threadline/web/internal/cache"
	"threadline/web/internal/model"
	"threadline/web/internal/optimistic"
	"threadline/web/internal/pagination"
)

type SuppliersAPI interface {
	SearchSuppliers(ctx context.Context, f model.SupplierFilter) (pagination.Page[model.Supplier], error)
	GetSupplier(ctx context.Context, id int64) (*model.Supplier, error)
	ToggleSaved(ctx context.Context, id int64) (model.SavedToggle, error)
	ListSaved(ctx context.Context, page int) (pagination.Page[model.Supplier], error)
	ListCatalog(ctx context.Context, supplierID int64, page int) (pagination.Page[model.CatalogItem], error)
	CreateCatalogItem(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error)
	DeleteCatalogItem(ctx context.Context, id int64) error
	ListCertifications(ctx context.Context, supplierID int64) ([]model.Certification, error)
	CreateCertification(ctx context.Context, cert model.Certification) (*model.Certification, error)
	UpdateCertification(ctx context.Context, cert model.Certification) (*model.Certification, error)
	DeleteCertification(ctx context.Context, id int64) error
}

// SupplierService serves the supplier directory and the supplier's own
// catalog and certifications.
type SupplierService struct {
	api  SuppliersAPI
	deps Deps
}

func NewSupplierService(api SuppliersAPI, deps Deps) *SupplierService {
	return &SupplierService{api: api, deps: deps.withDefaults()}
}

func supplierKey(ctx context.Context, id int64) cache.Key {
	return key(ctx, "suppliers/detail", "id", id)
}

func searchKey(ctx context.Context, f model.SupplierFilter) cache.Key {
	verified := ""
	if f.Verified != nil {
		verified = fmt.Sprint(*f.Verified)
	}
	return key(ctx, "suppliers/search",
		"q", f.Query, "location", f.Location, "specialty", f.Specialty,
		"verified", verified, "page", f.Page, "per_page", f.PerPage)
}

// Search queries the directory. Each distinct filter is cached on its own.
func (s *SupplierService) Search(ctx context.Context, f model.SupplierFilter) (pagination.Page[model.Supplier], error) {
	f.Page = pagination.Clamp(f.Page)
	return cache.Query(ctx, s.deps.Cache, searchKey(ctx, f),
		func(ctx context.Context) (pagination.Page[model.Supplier], error) { return s.api.SearchSuppliers(ctx, f) })
}

// LoadMore appends the next directory page for f to inf and reports whether
// more pages remain. Pages come from the same cache entries as Search.
func (s *SupplierService) LoadMore(ctx context.Context, f model.SupplierFilter, inf *pagination.Infinite[model.Supplier]) (bool, error) {
	next, ok := inf.NextPage()
	if !ok {
		return false, nil
	}
	f.Page = next
	p, err := s.Search(ctx, f)
	if err != nil {
		return false, err
	}
	if !inf.Append(p) {
		return false, nil
	}
	_, more := inf.NextPage()
	return more, nil
}

func (s *SupplierService) Get(ctx context.Context, id int64) (*model.Supplier, error) {
	return cache.Query(ctx, s.deps.Cache, supplierKey(ctx, id),
		func(ctx context.Context) (*model.Supplier, error) { return s.api.GetSupplier(ctx, id) })
}

func (s *SupplierService) Saved(ctx context.Context, page int) (pagination.Page[model.Supplier], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, key(ctx, "suppliers/saved", "page", page),
		func(ctx context.Context) (pagination.Page[model.Supplier], error) { return s.api.ListSaved(ctx, page) })
}

// ToggleSaved flips the saved flag of a supplier. A cached detail view shows
// the new state immediately and is rolled back if the request fails.
func (s *SupplierService) ToggleSaved(ctx context.Context, id int64) (model.SavedToggle, error) {
	k := supplierKey(ctx, id)
	var result model.SavedToggle
	request := func(ctx context.Context) error {
		var err error
		result, err = s.api.ToggleSaved(ctx, id)
		return err
	}

	var err error
	if cached, ok := cache.Peek[*model.Supplier](s.deps.Cache, k); ok && cached != nil {
		was := cached.IsSaved
		m := optimistic.New[*model.Supplier](s.deps.Cache, k).
			WithRevert(func(cur *model.Supplier) *model.Supplier { return withSaved(cur, was) })
		err = optimistic.Run(ctx, m, func(cur *model.Supplier) *model.Supplier { return withSaved(cur, !was) }, request)
	} else {
		err = request(ctx)
	}
	if err != nil {
		return model.SavedToggle{}, fmt.Errorf("could not toggle saved supplier %d: %w", id, err)
	}

	s.deps.Cache.Patch(inScope(ctx, "suppliers/search"), func(cur any) any {
		page, ok := cur.(pagination.Page[model.Supplier])
		if !ok {
			return cur
		}
		data := slices.Clone(page.Data)
		for i := range data {
			if data[i].ID == id {
				data[i].IsSaved = result.IsSaved
			}
		}
		page.Data = data
		return page
	})
	s.deps.Cache.InvalidateWhere(inScope(ctx, "suppliers/saved"))
	return result, nil
}

func withSaved(cur *model.Supplier, saved bool) *model.Supplier {
	if cur == nil {
		return nil
	}
	next := *cur
	next.IsSaved = saved
	return &next
}

func catalogKey(ctx context.Context, supplierID int64, page int) cache.Key {
	return key(ctx, "suppliers/catalog", "supplier", supplierID, "page", page)
}

func (s *SupplierService) Catalog(ctx context.Context, supplierID int64, page int) (pagination.Page[model.CatalogItem], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, catalogKey(ctx, supplierID, page),
		func(ctx context.Context) (pagination.Page[model.CatalogItem], error) {
			return s.api.ListCatalog(ctx, supplierID, page)
		})
}

func (s *SupplierService) invalidateCatalog(ctx context.Context, supplierID int64) {
	supplier := fmt.Sprint(supplierID)
	scoped := inScope(ctx, "suppliers/catalog")
	s.deps.Cache.InvalidateWhere(func(k cache.Key) bool {
		return scoped(k) && k.Param("supplier") == supplier
	})
}

func (s *SupplierService) CreateCatalogItem(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error) {
	out, err := s.api.CreateCatalogItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("could not create catalog item: %w", err)
	}
	s.invalidateCatalog(ctx, out.SupplierID)
	return out, nil
}

func (s *SupplierService) UpdateCatalogItem(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error) {
	out, err := s.api.UpdateCatalogItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("could not update catalog item %d: %w", item.ID, err)
	}
	s.invalidateCatalog(ctx, out.SupplierID)
	return out, nil
}

func (s *SupplierService) DeleteCatalogItem(ctx context.Context, supplierID, id int64) error {
	if err := s.api.DeleteCatalogItem(ctx, id); err != nil {
		return fmt.Errorf("could not delete catalog item %d: %w", id, err)
	}
	s.invalidateCatalog(ctx, supplierID)
	return nil
}

func certificationsKey(ctx context.Context, supplierID int64) cache.Key {
	return key(ctx, "suppliers/certifications", "supplier", supplierID)
}

func (s *SupplierService) Certifications(ctx context.Context, supplierID int64) ([]model.Certification, error) {
	return cache.Query(ctx, s.deps.Cache, certificationsKey(ctx, supplierID),
		func(ctx context.Context) ([]model.Certification, error) { return s.api.ListCertifications(ctx, supplierID) })
}

func (s *SupplierService) CreateCertification(ctx context.Context, cert model.Certification) (*model.Certification, error) {
	out, err := s.api.CreateCertification(ctx, cert)
	if err != nil {
		return nil, fmt.Errorf("could not create certification: %w", err)
	}
	s.deps.Cache.Invalidate(certificationsKey(ctx, out.SupplierID))
	return out, nil
}

func (s *SupplierService) UpdateCertification(ctx context.Context, cert model.Certification) (*model.Certification, error) {
	out, err := s.api.UpdateCertification(ctx, cert)
	if err != nil {
		return nil, fmt.Errorf("could not update certification %d: %w", cert.ID, err)
	}
	s.deps.Cache.Invalidate(certificationsKey(ctx, out.SupplierID))
	return out, nil
}

func (s *SupplierService) DeleteCertification(ctx context.Context, supplierID, id int64) error {
	if err := s.api.DeleteCertification(ctx, id); err != nil {
		return fmt.Errorf("could not delete certification %d: %w", id, err)
	}
	s.deps.Cache.Invalidate(certificationsKey(ctx, supplierID))
	return nil
}
