package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", pgErr)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: foreignKeyViolationCode}))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: uniqueViolationCode}))
}

func TestNullable(t *testing.T) {
	t.Parallel()

	assert.False(t, nullable("").Valid)

	v := nullable("camisa")
	assert.True(t, v.Valid)
	assert.Equal(t, "camisa", v.String)
}

func TestParseUUIDArray(t *testing.T) {
	t.Parallel()

	a := uuid.New()
	b := uuid.New()

	t.Run("two elements", func(t *testing.T) {
		t.Parallel()

		ids, err := parseUUIDArray([]byte(fmt.Sprintf("{%s,%s}", a, b)))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, ids)
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()

		ids, err := parseUUIDArray([]byte("{}"))
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("quoted elements", func(t *testing.T) {
		t.Parallel()

		ids, err := parseUUIDArray([]byte(fmt.Sprintf(`{"%s"}`, a)))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a}, ids)
	})

	t.Run("malformed literal", func(t *testing.T) {
		t.Parallel()

		_, err := parseUUIDArray([]byte("not-an-array"))
		require.Error(t, err)
	})

	t.Run("malformed element", func(t *testing.T) {
		t.Parallel()

		_, err := parseUUIDArray([]byte("{zzz}"))
		require.Error(t, err)
	})
}
