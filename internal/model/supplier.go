package model

import "time"

// Supplier is a manufacturer listed in the directory.
type Supplier struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"user_id"`
	CompanyName  string   `json:"company_name"`
	Location     string   `json:"location"`
	Specialties  []string `json:"specialties"`
	MinimumOrder int      `json:"minimum_order"`
	Rating       float64  `json:"rating"`
	IsVerified   bool     `json:"is_verified"`
	IsSaved      bool     `json:"is_saved"`
}

// SupplierFilter narrows a directory search.
type SupplierFilter struct {
	Query     string
	Location  string
	Specialty string
	Verified  *bool
	Page      int
	PerPage   int
}

// CatalogItem is a product offered by a supplier.
type CatalogItem struct {
	ID          int64  `json:"id"`
	SupplierID  int64  `json:"supplier_id"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	Currency    string `json:"currency"`
	MinQuantity int    `json:"min_quantity" validate:"gte=0"`
}

// Certification is a compliance certificate held by a supplier.
type Certification struct {
	ID         int64      `json:"id"`
	SupplierID int64      `json:"supplier_id"`
	Name       string     `json:"name" validate:"required"`
	Issuer     string     `json:"issuer" validate:"required"`
	IssuedAt   *time.Time `json:"issued_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// SavedToggle is returned when a supplier is saved or unsaved.
type SavedToggle struct {
	SupplierID int64 `json:"supplier_id"`
	IsSaved    bool  `json:"is_saved"`
}
