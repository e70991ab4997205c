package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelFamilies(t *testing.T) {
	t.Parallel()

	// Entity-specific errors must unwrap to their generic family.
	assert.ErrorIs(t, ErrProfileNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrGarmentNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrOutfitNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrProfileNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrGarmentNotFound)))
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsNotFoundError(errors.New("boom")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrNotFound))
}
