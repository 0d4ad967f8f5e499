package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTraceID(t *testing.T) {
	t.Parallel()

	t.Run("keeps a plausible inbound id", func(t *testing.T) {
		t.Parallel()
		ctx := SetTraceID(context.Background(), "req-12345678")
		assert.Equal(t, "req-12345678", GetTraceID(ctx))
	})

	t.Run("generates when empty", func(t *testing.T) {
		t.Parallel()
		ctx := SetTraceID(context.Background(), "")
		assert.Len(t, GetTraceID(ctx), 36)
	})

	t.Run("replaces hostile input", func(t *testing.T) {
		t.Parallel()
		ctx := SetTraceID(context.Background(), "abc\n{\"injected\":true}")
		assert.NotContains(t, GetTraceID(ctx), "injected")
	})

	t.Run("unique ids", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, NewTraceID(), NewTraceID())
	})
}

func TestGetTraceIDMissing(t *testing.T) {
	t.Parallel()
	assert.Empty(t, GetTraceID(context.Background()))
}
