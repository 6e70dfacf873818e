package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

func TestStatisticsEmptyScope(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	stats, err := s.ComputeStatistics(ctx, "")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalIssues)
	assert.Zero(t, stats.OpenIssues)
	assert.Zero(t, stats.FixedIssues)
	assert.Nil(t, stats.AverageFixTime)
	assert.Nil(t, stats.MostReportedLocation)
	assert.Nil(t, stats.LastFixDate)
}

func TestStatisticsCountsAndAverage(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	setClock(s, time.Date(2026, 6, 1, 7, 0, 0, 0, time.UTC))

	a, err := s.CreateIssue(ctx, model.NewIssue{Title: "Fryer A", Location: "Kitchen"})
	require.NoError(t, err)
	b, err := s.CreateIssue(ctx, model.NewIssue{Title: "Fryer B", Location: "Kitchen"})
	require.NoError(t, err)
	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "Dim lights", Location: "Dining"})
	require.NoError(t, err)

	advanceClock(s, 30*time.Minute)
	_, err = s.MarkFixed(ctx, a.ID, nil, nil, nil)
	require.NoError(t, err)

	advanceClock(s, 60*time.Minute)
	_, err = s.MarkFixed(ctx, b.ID, nil, nil, nil)
	require.NoError(t, err)

	stats, err := s.ComputeStatistics(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalIssues)
	assert.Equal(t, 1, stats.OpenIssues)
	assert.Equal(t, 2, stats.FixedIssues)

	// Fix times of 30 and 90 minutes average to 60.
	require.NotNil(t, stats.AverageFixTime)
	assert.Equal(t, 60.0, *stats.AverageFixTime)

	require.NotNil(t, stats.MostReportedLocation)
	assert.Equal(t, "Kitchen", *stats.MostReportedLocation)

	require.NotNil(t, stats.LastFixDate)
	assert.Equal(t, time.Date(2026, 6, 1, 8, 30, 0, 0, time.UTC), stats.LastFixDate.UTC())
}

func TestStatisticsCompletedCountsAsResolved(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	issue, err := s.CreateIssue(ctx, model.NewIssue{Title: "Scheduled repaint"})
	require.NoError(t, err)
	_, err = s.TransitionStatus(ctx, issue.ID, model.StatusCompleted, nil, nil, nil)
	require.NoError(t, err)

	stats, err := s.ComputeStatistics(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FixedIssues)
	assert.Zero(t, stats.OpenIssues)
	// completed carries no derived fix time, so the average stays undefined.
	assert.Nil(t, stats.AverageFixTime)
}

func TestStatisticsScopedByType(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateIssue(ctx, model.NewIssue{Title: "Fryer A", IssueType: model.TypeFryer, Location: "Kitchen"})
	require.NoError(t, err)
	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "Fryer B", IssueType: model.TypeFryer, Location: "Kitchen"})
	require.NoError(t, err)
	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "AC broken", IssueType: model.TypeHVAC, Location: "Dining"})
	require.NoError(t, err)

	stats, err := s.ComputeStatistics(ctx, model.TypeFryer)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalIssues)
	require.NotNil(t, stats.MostReportedLocation)
	assert.Equal(t, "Kitchen", *stats.MostReportedLocation)
}

func TestStatisticsSkipUnreadableRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateIssue(ctx, model.NewIssue{Title: "Readable", Location: "Kitchen"})
	require.NoError(t, err)
	bad, err := s.CreateIssue(ctx, model.NewIssue{Title: "Corrupted", Location: "Dining"})
	require.NoError(t, err)

	// Corrupt one row's timestamp directly; statistics are advisory and
	// must fold over the rest instead of erroring.
	_, err = s.db.ExecContext(ctx,
		"UPDATE issues SET created_at = ? WHERE id = ?", "garbage", bad.ID)
	require.NoError(t, err)

	stats, err := s.ComputeStatistics(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalIssues)
	assert.Equal(t, 1, stats.OpenIssues)
	require.NotNil(t, stats.MostReportedLocation)
	assert.Equal(t, "Kitchen", *stats.MostReportedLocation)
}

func TestStatisticsLastFixDateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	setClock(s, time.Date(2026, 6, 1, 7, 0, 0, 0, time.UTC))

	issue, err := s.CreateIssue(ctx, model.NewIssue{Title: "Drink dispenser drip"})
	require.NoError(t, err)

	advanceClock(s, 45*time.Minute)
	_, err = s.MarkFixed(ctx, issue.ID, nil, nil, nil)
	require.NoError(t, err)

	advanceClock(s, 5*time.Minute)
	_, err = s.TransitionStatus(ctx, issue.ID, model.StatusInProgress, nil, nil, nil)
	require.NoError(t, err)

	stats, err := s.ComputeStatistics(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.OpenIssues)
	assert.Zero(t, stats.FixedIssues)
	// The stale fixed_at still marks the most recent completed repair.
	require.NotNil(t, stats.LastFixDate)
	assert.Equal(t, time.Date(2026, 6, 1, 7, 45, 0, 0, time.UTC), stats.LastFixDate.UTC())
	// But a reopened issue no longer feeds the fix-time average.
	assert.Nil(t, stats.AverageFixTime)
}
