package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// GetStatusHistory returns the audit trail for an issue, newest first.
// An issue with no transitions (or no issue at all) yields an empty list.
func (s *SQLiteStore) GetStatusHistory(ctx context.Context, issueID int64) ([]model.StatusHistory, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, issue_id, old_status, new_status,
			changed_by_id, changed_by_name, notes, created_at
		FROM status_history
		WHERE issue_id = ?
		ORDER BY created_at DESC, id DESC`,
		issueID)
	if err != nil {
		return nil, fmt.Errorf("querying status history: %w", err)
	}
	defer rows.Close()

	var history []model.StatusHistory
	for rows.Next() {
		record, err := scanStatusHistory(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, record)
	}
	return history, rows.Err()
}

// insertStatusHistory appends one audit record. It is deliberately
// unexported and takes the caller's transaction: history rows exist only
// as a side effect of TransitionStatus, which guarantees old != new.
func insertStatusHistory(ctx context.Context, tx sqlx.ExecerContext, h model.StatusHistory) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO status_history (
			issue_id, old_status, new_status,
			changed_by_id, changed_by_name, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.IssueID, h.OldStatus, h.NewStatus,
		h.ChangedByID, h.ChangedByName, h.Notes, formatTime(h.CreatedAt),
	)
	return err
}

// scanStatusHistory scans a status_history row.
func scanStatusHistory(row rowScanner) (model.StatusHistory, error) {
	var (
		record    model.StatusHistory
		createdAt string
	)

	err := row.Scan(
		&record.ID, &record.IssueID, &record.OldStatus, &record.NewStatus,
		&record.ChangedByID, &record.ChangedByName, &record.Notes, &createdAt,
	)
	if err != nil {
		return model.StatusHistory{}, fmt.Errorf("scanning status history row: %w", err)
	}

	if record.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.StatusHistory{}, err
	}
	return record, nil
}
