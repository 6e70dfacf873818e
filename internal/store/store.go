package store

import (
	"context"
	"errors"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// ErrNotFound is returned when a requested record does not exist. Reads
// and mutations both report missing ids this way so callers can tell
// "absent" from a storage failure with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for issues and their satellite
// records (comments, images, status history) plus the minimal user table.
type Store interface {
	// === Issues ===

	CreateIssue(ctx context.Context, in model.NewIssue) (*model.Issue, error)
	GetIssue(ctx context.Context, id int64) (*model.Issue, error)
	GetIssues(ctx context.Context) ([]model.Issue, error)
	GetIssuesByStatus(ctx context.Context, status string) ([]model.Issue, error)
	GetIssuesByType(ctx context.Context, issueType string) ([]model.Issue, error)
	UpdateIssue(ctx context.Context, id int64, patch IssuePatch) (*model.Issue, error)
	DeleteIssue(ctx context.Context, id int64) (bool, error)
	GetNearbyIssues(ctx context.Context, lat, lng, radiusKm float64) ([]model.Issue, error)

	// === Status transitions ===
	//
	// These are the only write path for status_history records.

	TransitionStatus(ctx context.Context, id int64, newStatus string, changedByID *int64, changedByName, notes *string) (*model.Issue, error)
	MarkFixed(ctx context.Context, id int64, fixedByID *int64, fixedByName, notes *string) (*model.Issue, error)

	// === Comments (append-only) ===

	CreateComment(ctx context.Context, in model.NewComment) (*model.Comment, error)
	GetComments(ctx context.Context, issueID int64) ([]model.Comment, error)

	// === Images ===

	CreateImage(ctx context.Context, in model.NewImage) (*model.Image, error)
	GetImage(ctx context.Context, id int64) (*model.Image, error)
	GetImagesByIssue(ctx context.Context, issueID int64) ([]model.Image, error)

	// === Status history (read-only outside the transition engine) ===

	GetStatusHistory(ctx context.Context, issueID int64) ([]model.StatusHistory, error)

	// === Users ===

	CreateUser(ctx context.Context, in model.NewUser) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// === Statistics ===

	ComputeStatistics(ctx context.Context, issueType string) (Statistics, error)
}
