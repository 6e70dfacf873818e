package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestCreateIssueRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	in := model.NewIssue{
		Title:          "Ice cream machine down",
		Description:    "Leaking and not cooling",
		Location:       "Front counter",
		Status:         model.StatusUrgent,
		Priority:       model.PriorityHigh,
		IssueType:      model.TypeIceCream,
		Latitude:       ptr(52.2297),
		Longitude:      ptr(21.0122),
		PinX:           ptr(120.5),
		PinY:           ptr(88.0),
		IsInteriorPin:  true,
		ReportedByID:   ptr(int64(7)),
		ReportedByName: "Artur",
		EstimatedCost:  250,
		FinalCost:      ptr(300.0),
		ImageURLs:      []string{"/img/a.jpg", "/img/b.jpg", "/img/a.jpg"},
	}

	created, err := s.CreateIssue(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := s.GetIssue(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Location, got.Location)
	assert.Equal(t, in.Status, got.Status)
	assert.Equal(t, in.Priority, got.Priority)
	assert.Equal(t, in.IssueType, got.IssueType)
	assert.Equal(t, in.Latitude, got.Latitude)
	assert.Equal(t, in.Longitude, got.Longitude)
	assert.Equal(t, in.PinX, got.PinX)
	assert.Equal(t, in.PinY, got.PinY)
	assert.True(t, got.IsInteriorPin)
	assert.Equal(t, in.ReportedByID, got.ReportedByID)
	assert.Equal(t, in.ReportedByName, got.ReportedByName)
	assert.Equal(t, in.EstimatedCost, got.EstimatedCost)
	assert.Equal(t, in.FinalCost, got.FinalCost)

	// Order and duplicates survive the JSON round trip.
	assert.Equal(t, []string{"/img/a.jpg", "/img/b.jpg", "/img/a.jpg"}, got.ImageURLs)

	// Server-assigned fields.
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	assert.Nil(t, got.FixedAt)
	assert.Nil(t, got.TimeToFix)
}

func TestCreateIssueDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.CreateIssue(ctx, model.NewIssue{Title: "Door squeaks"})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, model.PriorityMedium, got.Priority)
	assert.Equal(t, model.TypeOther, got.IssueType)
	assert.Zero(t, got.EstimatedCost)
	assert.Nil(t, got.Latitude)
	assert.Nil(t, got.ReportedByID)
	assert.NotNil(t, got.ImageURLs)
	assert.Empty(t, got.ImageURLs)
}

func TestCreateIssueValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateIssue(ctx, model.NewIssue{Title: "   "})
	assert.Error(t, err)

	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "ok", Status: "broken"})
	assert.Error(t, err)

	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "ok", Priority: "asap"})
	assert.Error(t, err)

	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "ok", IssueType: "submarine"})
	assert.Error(t, err)
}

func TestGetIssueNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.GetIssue(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetIssuesOrderedByUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	setClock(s, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	first, err := s.CreateIssue(ctx, model.NewIssue{Title: "first"})
	require.NoError(t, err)
	advanceClock(s, time.Minute)
	second, err := s.CreateIssue(ctx, model.NewIssue{Title: "second"})
	require.NoError(t, err)
	advanceClock(s, time.Minute)
	third, err := s.CreateIssue(ctx, model.NewIssue{Title: "third"})
	require.NoError(t, err)

	// Touching the oldest issue moves it to the front.
	advanceClock(s, time.Minute)
	_, err = s.UpdateIssue(ctx, first.ID, IssuePatch{Priority: Set(model.PriorityHigh)})
	require.NoError(t, err)

	issues, err := s.GetIssues(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 3)
	assert.Equal(t, first.ID, issues[0].ID)
	assert.Equal(t, third.ID, issues[1].ID)
	assert.Equal(t, second.ID, issues[2].ID)
}

func TestGetIssuesByStatusAndType(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateIssue(ctx, model.NewIssue{Title: "a", Status: model.StatusUrgent, IssueType: model.TypeFryer})
	require.NoError(t, err)
	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "b", Status: model.StatusPending, IssueType: model.TypeFryer})
	require.NoError(t, err)
	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "c", Status: model.StatusUrgent, IssueType: model.TypeHVAC})
	require.NoError(t, err)

	urgent, err := s.GetIssuesByStatus(ctx, model.StatusUrgent)
	require.NoError(t, err)
	require.Len(t, urgent, 2)
	for _, issue := range urgent {
		assert.Equal(t, model.StatusUrgent, issue.Status)
	}

	fryers, err := s.GetIssuesByType(ctx, model.TypeFryer)
	require.NoError(t, err)
	require.Len(t, fryers, 2)
	for _, issue := range fryers {
		assert.Equal(t, model.TypeFryer, issue.IssueType)
	}

	none, err := s.GetIssuesByStatus(ctx, model.StatusFixed)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteIssue(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "short-lived"})
	require.NoError(t, err)

	deleted, err := s.DeleteIssue(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// A second delete reports "not found" rather than success.
	deleted, err = s.DeleteIssue(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = s.GetIssue(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetNearbyIssues(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	origin, err := s.CreateIssue(ctx, model.NewIssue{
		Title: "at origin", Latitude: ptr(0.0), Longitude: ptr(0.0),
	})
	require.NoError(t, err)
	near, err := s.CreateIssue(ctx, model.NewIssue{
		Title: "about a kilometer away", Latitude: ptr(0.0), Longitude: ptr(0.01),
	})
	require.NoError(t, err)
	_, err = s.CreateIssue(ctx, model.NewIssue{
		Title: "far away", Latitude: ptr(10.0), Longitude: ptr(10.0),
	})
	require.NoError(t, err)
	_, err = s.CreateIssue(ctx, model.NewIssue{Title: "no coordinates"})
	require.NoError(t, err)

	nearby, err := s.GetNearbyIssues(ctx, 0, 0, 5)
	require.NoError(t, err)
	require.Len(t, nearby, 2)

	ids := []int64{nearby[0].ID, nearby[1].ID}
	assert.Contains(t, ids, origin.ID)
	assert.Contains(t, ids, near.ID)
}

func TestMalformedImageURLsFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreateIssue(ctx, model.NewIssue{Title: "bad payload"})
	require.NoError(t, err)

	_, err = s.db.ExecContext(ctx,
		"UPDATE issues SET image_urls = ? WHERE id = ?", "{not json", created.ID)
	require.NoError(t, err)

	got, err := s.GetIssue(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ImageURLs)
	assert.Empty(t, got.ImageURLs)
}
