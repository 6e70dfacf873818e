package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// CreateComment appends a comment to an issue with a server-assigned
// timestamp and returns the stored record. The issue must exist; the
// foreign key rejects orphan comments.
func (s *SQLiteStore) CreateComment(ctx context.Context, in model.NewComment) (*model.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("comment content must not be empty")
	}
	if strings.TrimSpace(in.Username) == "" {
		return nil, fmt.Errorf("comment username must not be empty")
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (issue_id, user_id, username, content, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.IssueID, in.UserID, in.Username, in.Content, formatTime(s.now()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating comment on issue %d: %w", in.IssueID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new comment id: %w", err)
	}
	return s.getComment(ctx, id)
}

// GetComments returns all comments for an issue, oldest first so a thread
// reads top to bottom.
func (s *SQLiteStore) GetComments(ctx context.Context, issueID int64) ([]model.Comment, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, issue_id, user_id, username, content, created_at
		FROM comments
		WHERE issue_id = ?
		ORDER BY created_at ASC, id ASC`,
		issueID)
	if err != nil {
		return nil, fmt.Errorf("querying comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (s *SQLiteStore) getComment(ctx context.Context, id int64) (*model.Comment, error) {
	row := s.db.QueryRowxContext(ctx, `
		SELECT id, issue_id, user_id, username, content, created_at
		FROM comments WHERE id = ?`, id)

	comment, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting comment %d: %w", id, err)
	}
	return &comment, nil
}

// scanComment scans a comment row.
func scanComment(row rowScanner) (model.Comment, error) {
	var (
		comment   model.Comment
		createdAt string
	)

	err := row.Scan(
		&comment.ID, &comment.IssueID, &comment.UserID,
		&comment.Username, &comment.Content, &createdAt,
	)
	if err != nil {
		return model.Comment{}, err
	}

	if comment.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}
