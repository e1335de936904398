package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"threadline/web/internal/cache"
)

func TestNewKey_Deterministic(t *testing.T) {
	a := cache.NewKey("suppliers/search", "page", 2, "q", "denim mills", "location", "Porto")
	b := cache.NewKey("suppliers/search", "location", "Porto", "q", "denim mills", "page", 2)

	assert.Equal(t, a, b)
	assert.Equal(t, "suppliers/search", a.Resource())
	assert.Equal(t, "denim mills", a.Param("q"))
	assert.Equal(t, "2", a.Param("page"))
	assert.Equal(t, "", a.Param("missing"))
}

func TestNewKey_NoParams(t *testing.T) {
	k := cache.NewKey("billing/plans")
	assert.Equal(t, cache.Key("billing/plans"), k)
	assert.Equal(t, "billing/plans", k.Resource())
	assert.True(t, k.HasPrefix("billing/"))
}

func TestNewKey_DistinctParams(t *testing.T) {
	assert.NotEqual(t,
		cache.NewKey("designs/detail", "id", 1),
		cache.NewKey("designs/detail", "id", 2),
	)
}
