package model

import "time"

// StatusHistory is one audit record of an issue's status transition.
// Records are strictly append-only and written only by the transition
// engine, never directly by callers. OldStatus is nil only for a record
// representing initial creation.
type StatusHistory struct {
	ID            int64     `json:"id"`
	IssueID       int64     `json:"issueId"`
	OldStatus     *string   `json:"oldStatus,omitempty"`
	NewStatus     string    `json:"newStatus"`
	ChangedByID   *int64    `json:"changedById,omitempty"`
	ChangedByName *string   `json:"changedByName,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
