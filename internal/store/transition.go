package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// defaultFixNote is recorded when an issue is marked fixed without notes.
const defaultFixNote = "Issue marked as fixed"

// TransitionStatus moves an issue to newStatus and attaches the side
// effects of that move: the first transition into fixed stamps the
// resolution fields and derives time_to_fix in whole minutes, and any
// transition where the status actually changes appends a status_history
// record. Both writes happen inside a single transaction so the issue row
// and its audit trail cannot diverge. A transition to the current status
// refreshes updated_at but writes no history.
func (s *SQLiteStore) TransitionStatus(
	ctx context.Context,
	id int64,
	newStatus string,
	changedByID *int64,
	changedByName, notes *string,
) (*model.Issue, error) {
	if !model.ValidStatus(newStatus) {
		return nil, fmt.Errorf("unknown issue status %q", newStatus)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Snapshot the issue inside the transaction so oldStatus and
	// createdAt cannot drift from the rows the dual write lands on.
	row := tx.QueryRowxContext(ctx,
		"SELECT "+issueColumns+" FROM issues WHERE id = ?", id)
	issue, err := s.scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("issue %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting issue %d: %w", id, err)
	}
	oldStatus := issue.Status
	now := s.now()

	if newStatus == model.StatusFixed && oldStatus != model.StatusFixed {
		// Derive time_to_fix only when the creation instant is known.
		var timeToFix *int64
		if !issue.CreatedAt.IsZero() {
			minutes := int64(math.Round(now.Sub(issue.CreatedAt).Minutes()))
			timeToFix = &minutes
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE issues
			SET status = ?, fixed_by_id = ?, fixed_by_name = ?,
				fixed_at = ?, time_to_fix = ?, updated_at = ?
			WHERE id = ?`,
			newStatus, changedByID, changedByName,
			formatTime(now), timeToFix, formatTime(now), id,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			"UPDATE issues SET status = ?, updated_at = ? WHERE id = ?",
			newStatus, formatTime(now), id,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("updating status of issue %d: %w", id, err)
	}

	if oldStatus != newStatus {
		if err := insertStatusHistory(ctx, tx, model.StatusHistory{
			IssueID:       id,
			OldStatus:     &oldStatus,
			NewStatus:     newStatus,
			ChangedByID:   changedByID,
			ChangedByName: changedByName,
			Notes:         notes,
			CreatedAt:     now,
		}); err != nil {
			return nil, fmt.Errorf("recording status history for issue %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing status transition for issue %d: %w", id, err)
	}

	return s.GetIssue(ctx, id)
}

// MarkFixed is sugar for TransitionStatus into fixed, with a default note
// when none is supplied.
func (s *SQLiteStore) MarkFixed(
	ctx context.Context,
	id int64,
	fixedByID *int64,
	fixedByName, notes *string,
) (*model.Issue, error) {
	if notes == nil || *notes == "" {
		note := defaultFixNote
		notes = &note
	}
	return s.TransitionStatus(ctx, id, model.StatusFixed, fixedByID, fixedByName, notes)
}
