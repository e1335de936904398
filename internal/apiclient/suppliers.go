package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

// SearchSuppliers queries the supplier directory.
func (c *Client) SearchSuppliers(ctx context.Context, f model.SupplierFilter) (pagination.Page[model.Supplier], error) {
	q := pageQuery(f.Page)
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.Specialty != "" {
		q.Set("specialty", f.Specialty)
	}
	if f.Verified != nil {
		q.Set("verified", strconv.FormatBool(*f.Verified))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return getPage[model.Supplier](ctx, c, "/suppliers", q)
}

func (c *Client) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	s, err := getOne[model.Supplier](ctx, c, fmt.Sprintf("/suppliers/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ToggleSaved flips the saved state of a supplier for the current designer.
func (c *Client) ToggleSaved(ctx context.Context, id int64) (model.SavedToggle, error) {
	return sendOne[model.SavedToggle](ctx, c, http.MethodPost, fmt.Sprintf("/suppliers/%d/save", id), nil)
}

func (c *Client) ListSaved(ctx context.Context, page int) (pagination.Page[model.Supplier], error) {
	return getPage[model.Supplier](ctx, c, "/suppliers/saved", pageQuery(page))
}

func (c *Client) ListCatalog(ctx context.Context, supplierID int64, page int) (pagination.Page[model.CatalogItem], error) {
	return getPage[model.CatalogItem](ctx, c, fmt.Sprintf("/suppliers/%d/catalog", supplierID), pageQuery(page))
}

func (c *Client) CreateCatalogItem(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error) {
	out, err := sendOne[model.CatalogItem](ctx, c, http.MethodPost, "/supplier/catalog", item)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCatalogItem(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error) {
	out, err := sendOne[model.CatalogItem](ctx, c, http.MethodPut, fmt.Sprintf("/supplier/catalog/%d", item.ID), item)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCatalogItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/supplier/catalog/%d", id), nil, nil, nil)
}

func (c *Client) ListCertifications(ctx context.Context, supplierID int64) ([]model.Certification, error) {
	return getOne[[]model.Certification](ctx, c, fmt.Sprintf("/suppliers/%d/certifications", supplierID), nil)
}

func (c *Client) CreateCertification(ctx context.Context, cert model.Certification) (*model.Certification, error) {
	out, err := sendOne[model.Certification](ctx, c, http.MethodPost, "/supplier/certifications", cert)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCertification(ctx context.Context, cert model.Certification) (*model.Certification, error) {
	out, err := sendOne[model.Certification](ctx, c, http.MethodPut, fmt.Sprintf("/supplier/certifications/%d", cert.ID), cert)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCertification(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/supplier/certifications/%d", id), nil, nil, nil)
}
