package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitafernandez/armario-api/internal/domain"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)

	require.NotEmpty(t, traceID)
	assert.Len(t, traceID, TraceIDLength*2, "trace ID is hex encoded")

	// A fresh context has no trace ID.
	assert.Empty(t, GetTraceID(context.Background()))

	// Two contexts get distinct IDs.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

func TestPrincipalRoundtrip(t *testing.T) {
	t.Parallel()

	p := &domain.Principal{ProviderID: "u1", Email: "a@b.com", DisplayName: "alice"}

	ctx := WithPrincipal(context.Background(), p)
	got, ok := PrincipalFrom(ctx)

	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = PrincipalFrom(context.Background())
	assert.False(t, ok)
}
