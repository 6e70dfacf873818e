package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// Field is a patch value that distinguishes "absent" from "present".
// A zero Field leaves the column untouched; Set wraps a value to write,
// including explicit nils for nullable columns.
type Field[T any] struct {
	value T
	set   bool
}

// Set marks a patch field as present with the given value.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Get returns the wrapped value and whether the field is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// IssuePatch is a partial update for one issue. Only fields wrapped with
// Set are applied; everything else keeps its stored value. Nullable
// fields take a nil pointer to mean "set to NULL", which stays distinct
// from leaving the field out entirely.
type IssuePatch struct {
	Title          Field[string]
	Description    Field[string]
	Location       Field[string]
	Status         Field[string]
	Priority       Field[string]
	IssueType      Field[string]
	Latitude       Field[*float64]
	Longitude      Field[*float64]
	PinX           Field[*float64]
	PinY           Field[*float64]
	IsInteriorPin  Field[bool]
	ReportedByID   Field[*int64]
	ReportedByName Field[string]
	EstimatedCost  Field[float64]
	FinalCost      Field[*float64]
	FixedByID      Field[*int64]
	FixedByName    Field[*string]
	FixedAt        Field[*time.Time]
	TimeToFix      Field[*int64]
	ImageURLs      Field[[]string]
}

// sets translates the patch into SET clauses and their arguments. The
// mapping from domain field to column is explicit per field; there is no
// reflection or name lookup involved.
func (p IssuePatch) sets() ([]string, []interface{}, error) {
	var clauses []string
	var args []interface{}

	add := func(col string, v interface{}) {
		clauses = append(clauses, col+" = ?")
		args = append(args, v)
	}

	if v, ok := p.Title.Get(); ok {
		add("title", v)
	}
	if v, ok := p.Description.Get(); ok {
		add("description", v)
	}
	if v, ok := p.Location.Get(); ok {
		add("location", v)
	}
	if v, ok := p.Status.Get(); ok {
		add("status", v)
	}
	if v, ok := p.Priority.Get(); ok {
		add("priority", v)
	}
	if v, ok := p.IssueType.Get(); ok {
		add("issue_type", v)
	}
	if v, ok := p.Latitude.Get(); ok {
		add("latitude", v)
	}
	if v, ok := p.Longitude.Get(); ok {
		add("longitude", v)
	}
	if v, ok := p.PinX.Get(); ok {
		add("pin_x", v)
	}
	if v, ok := p.PinY.Get(); ok {
		add("pin_y", v)
	}
	if v, ok := p.IsInteriorPin.Get(); ok {
		add("is_interior_pin", boolToInt(v))
	}
	if v, ok := p.ReportedByID.Get(); ok {
		add("reported_by_id", v)
	}
	if v, ok := p.ReportedByName.Get(); ok {
		add("reported_by_name", v)
	}
	if v, ok := p.EstimatedCost.Get(); ok {
		add("estimated_cost", v)
	}
	if v, ok := p.FinalCost.Get(); ok {
		add("final_cost", v)
	}
	if v, ok := p.FixedByID.Get(); ok {
		add("fixed_by_id", v)
	}
	if v, ok := p.FixedByName.Get(); ok {
		add("fixed_by_name", v)
	}
	if v, ok := p.FixedAt.Get(); ok {
		add("fixed_at", formatTimePtr(v))
	}
	if v, ok := p.TimeToFix.Get(); ok {
		add("time_to_fix", v)
	}
	if v, ok := p.ImageURLs.Get(); ok {
		if v == nil {
			v = []string{}
		}
		urlsJSON, err := json.Marshal(v)
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling image urls: %w", err)
		}
		add("image_urls", string(urlsJSON))
	}

	return clauses, args, nil
}

// UpdateIssue applies a partial update to the issue with the given ID and
// returns the post-update record. updated_at is refreshed unconditionally,
// even when the patch carries no fields. A missing id yields ErrNotFound.
func (s *SQLiteStore) UpdateIssue(ctx context.Context, id int64, patch IssuePatch) (*model.Issue, error) {
	if v, ok := patch.Status.Get(); ok && !model.ValidStatus(v) {
		return nil, fmt.Errorf("unknown issue status %q", v)
	}
	if v, ok := patch.Priority.Get(); ok && !model.ValidPriority(v) {
		return nil, fmt.Errorf("unknown issue priority %q", v)
	}
	if v, ok := patch.IssueType.Get(); ok && !model.ValidIssueType(v) {
		return nil, fmt.Errorf("unknown issue type %q", v)
	}

	clauses, args, err := patch.sets()
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, "updated_at = ?")
	args = append(args, formatTime(s.now()), id)

	query := "UPDATE issues SET " + strings.Join(clauses, ", ") + " WHERE id = ?"

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating issue %d: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating issue %d: %w", id, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("issue %d: %w", id, ErrNotFound)
	}

	return s.GetIssue(ctx, id)
}
