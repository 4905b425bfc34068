package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithPlaceRef(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("appends to empty list", func(t *testing.T) {
		refs := withPlaceRef(nil, a)
		assert.Equal(t, []uuid.UUID{a}, refs)
	})

	t.Run("preserves order", func(t *testing.T) {
		refs := withPlaceRef([]uuid.UUID{a}, b)
		assert.Equal(t, []uuid.UUID{a, b}, refs)
	})

	t.Run("repeat append is a no-op", func(t *testing.T) {
		refs := withPlaceRef([]uuid.UUID{a, b}, a)
		assert.Equal(t, []uuid.UUID{a, b}, refs)
	})

	t.Run("does not alias the input slice", func(t *testing.T) {
		in := make([]uuid.UUID, 1, 2)
		in[0] = a
		out := withPlaceRef(in, b)
		assert.Equal(t, []uuid.UUID{a}, in)
		assert.Equal(t, []uuid.UUID{a, b}, out)
	})
}

func TestWithoutPlaceRef(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	t.Run("removes preserving order", func(t *testing.T) {
		refs := withoutPlaceRef([]uuid.UUID{a, b, c}, b)
		assert.Equal(t, []uuid.UUID{a, c}, refs)
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		refs := withoutPlaceRef([]uuid.UUID{a, c}, b)
		assert.Equal(t, []uuid.UUID{a, c}, refs)
	})

	t.Run("empty list stays empty", func(t *testing.T) {
		refs := withoutPlaceRef(nil, a)
		assert.Empty(t, refs)
	})
}
