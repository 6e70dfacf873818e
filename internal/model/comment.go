package model

import "time"

// Comment is a discussion entry attached to an issue. Comments are
// append-only; the engine exposes no update or delete for them, and they
// are removed only by the parent issue's cascade delete.
type Comment struct {
	ID        int64     `json:"id"`
	IssueID   int64     `json:"issueId"`
	UserID    *int64    `json:"userId,omitempty"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewComment carries the caller-supplied fields for comment creation.
type NewComment struct {
	IssueID  int64  `json:"issueId"`
	UserID   *int64 `json:"userId,omitempty"`
	Username string `json:"username"`
	Content  string `json:"content"`
}
