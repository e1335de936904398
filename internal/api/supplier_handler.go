package api

import (
	"net/http"
	"strconv"

	"threadline/web/internal/interfaces"
	"threadline/web/internal/model"
)

type SupplierHandler struct {
	suppliers interfaces.SupplierService
}

func NewSupplierHandler(suppliers interfaces.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// HandleSearch godoc
// @Summary      Search the supplier directory
// @Tags         Suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        q          query     string  false  "Free text"
// @Param        location   query     string  false  "Location"
// @Param        specialty  query     string  false  "Specialty"
// @Param        verified   query     bool    false  "Only verified suppliers"
// @Param        page       query     int     false  "Page number"
// @Param        per_page   query     int     false  "Page size"
// @Success      200        {object}  pagination.Page[model.Supplier]
// @Router       /v1/suppliers [get]
func (h *SupplierHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := model.SupplierFilter{
		Query:     q.Get("q"),
		Location:  q.Get("location"),
		Specialty: q.Get("specialty"),
		Page:      queryInt(r, "page", 1),
		PerPage:   queryInt(r, "per_page", 0),
	}
	if v, err := strconv.ParseBool(q.Get("verified")); err == nil {
		f.Verified = &v
	}
	page, err := h.suppliers.Search(r.Context(), f)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// HandleGet godoc
// @Summary      Show a supplier
// @Tags         Suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        supplierID  path      int  true  "Supplier ID"
// @Success      200         {object}  model.Supplier
// @Failure      404         {object}  ErrorResponse
// @Router       /v1/suppliers/{supplierID} [get]
func (h *SupplierHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "supplierID")
	if !ok {
		return
	}
	supplier, err := h.suppliers.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, supplier)
}

// HandleToggleSaved godoc
// @Summary      Save or unsave a supplier
// @Tags         Suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        supplierID  path      int  true  "Supplier ID"
// @Success      200         {object}  model.SavedToggle
// @Router       /v1/suppliers/{supplierID}/save [post]
func (h *SupplierHandler) HandleToggleSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "supplierID")
	if !ok {
		return
	}
	result, err := h.suppliers.ToggleSaved(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
