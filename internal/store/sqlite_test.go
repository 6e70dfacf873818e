package store

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// newTestStore creates an in-memory store with all migrations applied.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:", slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

// setClock pins the store's clock to a fixed instant.
func setClock(s *SQLiteStore, instant time.Time) {
	s.now = func() time.Time { return instant.UTC() }
}

// advanceClock moves the pinned clock forward by d.
func advanceClock(s *SQLiteStore, d time.Duration) {
	instant := s.now().Add(d)
	setClock(s, instant)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	// A second run against an up-to-date schema must be a no-op.
	require.NoError(t, s.runMigrations())
}

func TestStoreReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "issues.db")

	s, err := NewSQLiteStore(dbPath, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "Broken fryer", Location: "Kitchen"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(dbPath, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetIssue(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Broken fryer", got.Title)
	require.Equal(t, "Kitchen", got.Location)
}
