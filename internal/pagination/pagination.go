// Package pagination models the paginated list envelope returned by the
// marketplace API and the page controls rendered from it.
package pagination

import "sync"

// Meta is the `meta` block of a paginated response.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// HasNext reports whether a page after the current one exists.
func (m Meta) HasNext() bool {
	return m.CurrentPage < m.LastPage
}

// HasPrev reports whether a page before the current one exists.
func (m Meta) HasPrev() bool {
	return m.CurrentPage > 1 && m.LastPage > 0
}

// Page is a paginated list envelope.
type Page[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}

// IsEmpty is true when the page should render its "no results" state.
func (p Page[T]) IsEmpty() bool {
	return len(p.Data) == 0
}

// Controls returns the page numbers a pagination control may link to. It is
// empty when there is nothing to paginate, including a request past the last
// page, so a control never points beyond LastPage.
func (p Page[T]) Controls() []int {
	if p.IsEmpty() || p.Meta.LastPage <= 1 {
		return nil
	}
	pages := make([]int, 0, p.Meta.LastPage)
	for i := 1; i <= p.Meta.LastPage; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Normalize makes an out-of-range response safe to render: Data is never nil
// and a page past LastPage carries no items.
func Normalize[T any](p Page[T], requested int) Page[T] {
	if p.Data == nil {
		p.Data = []T{}
	}
	requested = Clamp(requested)
	if p.Meta.CurrentPage == 0 {
		p.Meta.CurrentPage = requested
	}
	if p.Meta.LastPage > 0 && requested > p.Meta.LastPage {
		p.Data = []T{}
	}
	return p
}

// Clamp coerces a requested page number into the valid range's lower bound.
func Clamp(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Slice pages an in-memory list. A page past the end yields empty data.
func Slice[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = 15
	}
	page = Clamp(page)
	total := len(items)
	last := (total + perPage - 1) / perPage
	if last == 0 {
		last = 1
	}
	start := (page - 1) * perPage
	data := []T{}
	if start < total {
		end := min(start+perPage, total)
		data = append(data, items[start:end]...)
	}
	return Page[T]{
		Data: data,
		Meta: Meta{CurrentPage: page, LastPage: last, PerPage: perPage, Total: total},
	}
}

// Infinite accumulates pages for infinite scrolling.
type Infinite[T any] struct {
	mu    sync.Mutex
	items []T
	meta  Meta
	pages int
}

// Append merges the next page. Pages that are out of sequence or past the
// last page are ignored and reported as not appended.
func (inf *Infinite[T]) Append(p Page[T]) bool {
	inf.mu.Lock()
	defer inf.mu.Unlock()

	if p.Meta.CurrentPage != inf.pages+1 {
		return false
	}
	if inf.pages > 0 && inf.pages >= inf.meta.LastPage {
		return false
	}
	inf.items = append(inf.items, p.Data...)
	inf.meta = p.Meta
	inf.pages++
	return true
}

// NextPage returns the page to request next and false when the end was reached.
func (inf *Infinite[T]) NextPage() (int, bool) {
	inf.mu.Lock()
	defer inf.mu.Unlock()

	if inf.pages == 0 {
		return 1, true
	}
	if !inf.meta.HasNext() {
		return 0, false
	}
	return inf.pages + 1, true
}

// Items returns a copy of everything loaded so far.
func (inf *Infinite[T]) Items() []T {
	inf.mu.Lock()
	defer inf.mu.Unlock()
	out := make([]T, len(inf.items))
	copy(out, inf.items)
	return out
}

// Reset drops every loaded page, e.g. after the filter changed.
func (inf *Infinite[T]) Reset() {
	inf.mu.Lock()
	defer inf.mu.Unlock()
	inf.items = nil
	inf.meta = Meta{}
	inf.pages = 0
}
