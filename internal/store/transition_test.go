package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

func TestTransitionRecordsHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	setClock(s, time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC))

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "HVAC rattle"})
	require.NoError(t, err)

	advanceClock(s, 5*time.Minute)
	updated, err := s.TransitionStatus(ctx, created.ID, model.StatusInProgress,
		ptr(int64(3)), ptr("Marek"), ptr("technician dispatched"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)

	history, err := s.GetStatusHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	record := history[0]
	assert.Equal(t, created.ID, record.IssueID)
	require.NotNil(t, record.OldStatus)
	assert.Equal(t, model.StatusPending, *record.OldStatus)
	assert.Equal(t, model.StatusInProgress, record.NewStatus)
	require.NotNil(t, record.ChangedByID)
	assert.Equal(t, int64(3), *record.ChangedByID)
	require.NotNil(t, record.ChangedByName)
	assert.Equal(t, "Marek", *record.ChangedByName)
	require.NotNil(t, record.Notes)
	assert.Equal(t, "technician dispatched", *record.Notes)
}

func TestTransitionHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	setClock(s, time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC))

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "Leaking ceiling"})
	require.NoError(t, err)

	advanceClock(s, time.Minute)
	_, err = s.TransitionStatus(ctx, created.ID, model.StatusInProgress, nil, nil, nil)
	require.NoError(t, err)

	advanceClock(s, time.Minute)
	_, err = s.TransitionStatus(ctx, created.ID, model.StatusFixed, nil, nil, nil)
	require.NoError(t, err)

	history, err := s.GetStatusHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.StatusFixed, history[0].NewStatus)
	assert.Equal(t, model.StatusInProgress, history[1].NewStatus)
}

func TestTransitionToFixedDerivesFixFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	start := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	setClock(s, start)

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "Freezer warm"})
	require.NoError(t, err)

	advanceClock(s, 90*time.Minute)
	fixed, err := s.TransitionStatus(ctx, created.ID, model.StatusFixed,
		ptr(int64(9)), ptr("Ola"), nil)
	require.NoError(t, err)

	require.NotNil(t, fixed.FixedAt)
	assert.Equal(t, start.Add(90*time.Minute), fixed.FixedAt.UTC())
	require.NotNil(t, fixed.TimeToFix)
	assert.Equal(t, int64(90), *fixed.TimeToFix)
	require.NotNil(t, fixed.FixedByID)
	assert.Equal(t, int64(9), *fixed.FixedByID)
	require.NotNil(t, fixed.FixedByName)
	assert.Equal(t, "Ola", *fixed.FixedByName)
}

func TestTransitionNoOpWritesNoHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	setClock(s, time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC))

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "Sticky door"})
	require.NoError(t, err)

	advanceClock(s, time.Minute)
	updated, err := s.TransitionStatus(ctx, created.ID, model.StatusPending, nil, nil, nil)
	require.NoError(t, err)

	// The row is touched, the audit trail is not.
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	history, err := s.GetStatusHistory(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTransitionUnknownStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "Wobbly table"})
	require.NoError(t, err)

	_, err = s.TransitionStatus(ctx, created.ID, "done", nil, nil, nil)
	require.Error(t, err)

	history, err := s.GetStatusHistory(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTransitionNotFoundLeavesNoHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.TransitionStatus(ctx, 42, model.StatusFixed, nil, nil, nil)
	require.ErrorIs(t, err, ErrNotFound)

	history, err := s.GetStatusHistory(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMarkFixedDefaultNote(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "Burned-out bulb"})
	require.NoError(t, err)

	fixed, err := s.MarkFixed(ctx, created.ID, nil, ptr("Ania"), nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFixed, fixed.Status)

	history, err := s.GetStatusHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].Notes)
	assert.Equal(t, defaultFixNote, *history[0].Notes)
}

func TestRefixAfterReopenLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	start := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	setClock(s, start)

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "Ice machine jam"})
	require.NoError(t, err)

	advanceClock(s, 30*time.Minute)
	_, err = s.MarkFixed(ctx, created.ID, ptr(int64(1)), ptr("Marek"), nil)
	require.NoError(t, err)

	// Reopening keeps the stale fix fields in place.
	advanceClock(s, 10*time.Minute)
	reopened, err := s.TransitionStatus(ctx, created.ID, model.StatusInProgress, nil, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, reopened.FixedAt)
	assert.Equal(t, start.Add(30*time.Minute), reopened.FixedAt.UTC())
	require.NotNil(t, reopened.TimeToFix)
	assert.Equal(t, int64(30), *reopened.TimeToFix)

	// A second fix overwrites them wholesale.
	advanceClock(s, 20*time.Minute)
	refixed, err := s.MarkFixed(ctx, created.ID, ptr(int64(2)), ptr("Ola"), nil)
	require.NoError(t, err)
	require.NotNil(t, refixed.FixedAt)
	assert.Equal(t, start.Add(60*time.Minute), refixed.FixedAt.UTC())
	require.NotNil(t, refixed.TimeToFix)
	assert.Equal(t, int64(60), *refixed.TimeToFix)
	require.NotNil(t, refixed.FixedByID)
	assert.Equal(t, int64(2), *refixed.FixedByID)
	require.NotNil(t, refixed.FixedByName)
	assert.Equal(t, "Ola", *refixed.FixedByName)

	history, err := s.GetStatusHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, model.StatusFixed, history[0].NewStatus)
	assert.Equal(t, model.StatusInProgress, history[1].NewStatus)
	assert.Equal(t, model.StatusFixed, history[2].NewStatus)
}
