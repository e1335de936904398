package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/pagination"
)

func TestNormalize_PastLastPage(t *testing.T) {
	p := pagination.Page[string]{
		Data: nil,
		Meta: pagination.Meta{CurrentPage: 7, LastPage: 3, PerPage: 10, Total: 25},
	}

	got := pagination.Normalize(p, 7)

	require.NotNil(t, got.Data)
	assert.Empty(t, got.Data)
	assert.True(t, got.IsEmpty())
	assert.Nil(t, got.Controls(), "no control may point past the last page")
	assert.False(t, got.Meta.HasNext())
}

func TestNormalize_WithinRange(t *testing.T) {
	p := pagination.Page[int]{
		Data: []int{1, 2},
		Meta: pagination.Meta{CurrentPage: 2, LastPage: 3, PerPage: 2, Total: 6},
	}

	got := pagination.Normalize(p, 2)

	assert.Equal(t, []int{1, 2}, got.Data)
	assert.Equal(t, []int{1, 2, 3}, got.Controls())
	assert.True(t, got.Meta.HasNext())
	assert.True(t, got.Meta.HasPrev())
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("First page", func(t *testing.T) {
		p := pagination.Slice(items, 1, 2)
		assert.Equal(t, []int{1, 2}, p.Data)
		assert.Equal(t, pagination.Meta{CurrentPage: 1, LastPage: 3, PerPage: 2, Total: 5}, p.Meta)
	})

	t.Run("Last partial page", func(t *testing.T) {
		p := pagination.Slice(items, 3, 2)
		assert.Equal(t, []int{5}, p.Data)
		assert.False(t, p.Meta.HasNext())
	})

	t.Run("Beyond last page", func(t *testing.T) {
		p := pagination.Slice(items, 9, 2)
		assert.NotNil(t, p.Data)
		assert.Empty(t, p.Data)
		assert.Nil(t, p.Controls())
	})

	t.Run("Empty list", func(t *testing.T) {
		p := pagination.Slice([]int{}, 1, 2)
		assert.True(t, p.IsEmpty())
		assert.Equal(t, 1, p.Meta.LastPage)
	})
}

func TestInfinite(t *testing.T) {
	var inf pagination.Infinite[string]

	next, ok := inf.NextPage()
	require.True(t, ok)
	assert.Equal(t, 1, next)

	assert.True(t, inf.Append(pagination.Page[string]{
		Data: []string{"a", "b"},
		Meta: pagination.Meta{CurrentPage: 1, LastPage: 2},
	}))
	assert.False(t, inf.Append(pagination.Page[string]{
		Data: []string{"z"},
		Meta: pagination.Meta{CurrentPage: 3, LastPage: 2},
	}), "out of sequence pages are ignored")

	next, ok = inf.NextPage()
	require.True(t, ok)
	assert.Equal(t, 2, next)

	assert.True(t, inf.Append(pagination.Page[string]{
		Data: []string{"c"},
		Meta: pagination.Meta{CurrentPage: 2, LastPage: 2},
	}))

	_, ok = inf.NextPage()
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, inf.Items())

	inf.Reset()
	assert.Empty(t, inf.Items())
}
