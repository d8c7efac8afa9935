package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/bough/pkg/domain"
	"github.com/aretw0/bough/pkg/ports"
)

// TraceStoreContract is a reusable suite that verifies a ports.TraceStore
// implementation. Backends plug in a fresh, empty store.
func TraceStoreContract(t *testing.T, store ports.TraceStore) {
	t.Helper()
	ctx := context.Background()

	record := &domain.TraceRecord{
		ID:        "trace-1",
		Input:     map[string]any{"season": "summer"},
		Value:     "beach",
		Effects:   []string{"checked season", "checked budget"},
		Path:      []string{"checked season", "checked budget", "beach pick"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	t.Run("SaveAndLoad", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, record))

		got, err := store.Load(ctx, "trace-1")
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, record.Value, got.Value)
		assert.Equal(t, record.Effects, got.Effects)
		assert.Equal(t, record.Path, got.Path)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		updated := *record
		updated.Value = "mountains"
		require.NoError(t, store.Save(ctx, &updated))

		got, err := store.Load(ctx, "trace-1")
		require.NoError(t, err)
		assert.Equal(t, "mountains", got.Value)
	})

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := store.Load(ctx, "no-such-trace")
		assert.ErrorIs(t, err, domain.ErrTraceNotFound)
	})

	t.Run("List", func(t *testing.T) {
		second := *record
		second.ID = "trace-0"
		require.NoError(t, store.Save(ctx, &second))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"trace-0", "trace-1"}, ids)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "trace-1"))

		_, err := store.Load(ctx, "trace-1")
		assert.ErrorIs(t, err, domain.ErrTraceNotFound)

		// Deleting an absent ID is tolerated.
		assert.NoError(t, store.Delete(ctx, "trace-1"))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"trace-0"}, ids)
	})
}
