package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// issueColumns is the canonical column order for issue reads; scanIssue
// must match it exactly.
const issueColumns = `id, title, description, location, status, priority, issue_type,
	latitude, longitude, pin_x, pin_y, is_interior_pin,
	reported_by_id, reported_by_name, estimated_cost, final_cost,
	fixed_by_id, fixed_by_name, fixed_at, time_to_fix,
	image_urls, created_at, updated_at`

// degreeKm converts coordinate-degree distance to approximate kilometers.
// Deliberately a flat-plane approximation, acceptable for city-scale radii.
const degreeKm = 111.0

// CreateIssue inserts a new issue with server-assigned timestamps and
// returns the freshly read-back record. Absent status, priority, and
// issue type are defaulted; unknown literals are rejected.
func (s *SQLiteStore) CreateIssue(ctx context.Context, in model.NewIssue) (*model.Issue, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("issue title must not be empty")
	}
	if in.Status == "" {
		in.Status = model.StatusPending
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if in.IssueType == "" {
		in.IssueType = model.TypeOther
	}
	if !model.ValidStatus(in.Status) {
		return nil, fmt.Errorf("unknown issue status %q", in.Status)
	}
	if !model.ValidPriority(in.Priority) {
		return nil, fmt.Errorf("unknown issue priority %q", in.Priority)
	}
	if !model.ValidIssueType(in.IssueType) {
		return nil, fmt.Errorf("unknown issue type %q", in.IssueType)
	}

	urls := in.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	urlsJSON, err := json.Marshal(urls)
	if err != nil {
		return nil, fmt.Errorf("marshaling image urls: %w", err)
	}

	now := formatTime(s.now())
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO issues (
			title, description, location, status, priority, issue_type,
			latitude, longitude, pin_x, pin_y, is_interior_pin,
			reported_by_id, reported_by_name, estimated_cost, final_cost,
			image_urls, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Description, in.Location, in.Status, in.Priority, in.IssueType,
		in.Latitude, in.Longitude, in.PinX, in.PinY, boolToInt(in.IsInteriorPin),
		in.ReportedByID, in.ReportedByName, in.EstimatedCost, in.FinalCost,
		string(urlsJSON), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new issue id: %w", err)
	}

	return s.GetIssue(ctx, id)
}

// GetIssue retrieves a single issue by ID. A missing id yields ErrNotFound.
func (s *SQLiteStore) GetIssue(ctx context.Context, id int64) (*model.Issue, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT "+issueColumns+" FROM issues WHERE id = ?", id)

	issue, err := s.scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("issue %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting issue %d: %w", id, err)
	}
	return &issue, nil
}

// GetIssues retrieves all issues, most recently touched first. The
// updated_at descending order is part of the contract; callers build
// "recent activity" views on it.
func (s *SQLiteStore) GetIssues(ctx context.Context) ([]model.Issue, error) {
	return s.queryIssues(ctx,
		"SELECT "+issueColumns+" FROM issues ORDER BY updated_at DESC")
}

// GetIssuesByStatus retrieves issues with the given status, most recently
// touched first.
func (s *SQLiteStore) GetIssuesByStatus(ctx context.Context, status string) ([]model.Issue, error) {
	return s.queryIssues(ctx,
		"SELECT "+issueColumns+" FROM issues WHERE status = ? ORDER BY updated_at DESC",
		status)
}

// GetIssuesByType retrieves issues with the given type, most recently
// touched first.
func (s *SQLiteStore) GetIssuesByType(ctx context.Context, issueType string) ([]model.Issue, error) {
	return s.queryIssues(ctx,
		"SELECT "+issueColumns+" FROM issues WHERE issue_type = ? ORDER BY updated_at DESC",
		issueType)
}

// DeleteIssue removes an issue by ID. Comments, images, and status
// history cascade with it. The bool reports whether a row was removed,
// distinguishing "deleted" from "not found".
func (s *SQLiteStore) DeleteIssue(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM issues WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting issue %d: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting issue %d: %w", id, err)
	}
	return rows > 0, nil
}

// GetNearbyIssues returns issues with coordinates within radiusKm of the
// given point, using planar Euclidean distance in degrees scaled by a
// fixed 111 km/degree factor. The approximation is intentional; callers
// are tuned to it.
func (s *SQLiteStore) GetNearbyIssues(ctx context.Context, lat, lng, radiusKm float64) ([]model.Issue, error) {
	candidates, err := s.queryIssues(ctx,
		"SELECT "+issueColumns+" FROM issues WHERE latitude IS NOT NULL AND longitude IS NOT NULL ORDER BY updated_at DESC")
	if err != nil {
		return nil, err
	}

	var nearby []model.Issue
	for _, issue := range candidates {
		dLat := *issue.Latitude - lat
		dLng := *issue.Longitude - lng
		distanceKm := math.Sqrt(dLat*dLat+dLng*dLng) * degreeKm
		if distanceKm <= radiusKm {
			nearby = append(nearby, issue)
		}
	}
	return nearby, nil
}

// queryIssues runs an issue SELECT and scans every row.
func (s *SQLiteStore) queryIssues(ctx context.Context, query string, args ...interface{}) ([]model.Issue, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying issues: %w", err)
	}
	defer rows.Close()

	var issues []model.Issue
	for rows.Next() {
		issue, err := s.scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

// scanIssue scans one issue row in issueColumns order, converting
// snake_case text columns into the typed domain record.
func (s *SQLiteStore) scanIssue(row rowScanner) (model.Issue, error) {
	var (
		issue       model.Issue
		interiorPin int64
		urlsJSON    string
		fixedAt     *string
		createdAt   string
		updatedAt   string
	)

	err := row.Scan(
		&issue.ID, &issue.Title, &issue.Description, &issue.Location,
		&issue.Status, &issue.Priority, &issue.IssueType,
		&issue.Latitude, &issue.Longitude, &issue.PinX, &issue.PinY, &interiorPin,
		&issue.ReportedByID, &issue.ReportedByName, &issue.EstimatedCost, &issue.FinalCost,
		&issue.FixedByID, &issue.FixedByName, &fixedAt, &issue.TimeToFix,
		&urlsJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Issue{}, err
	}

	issue.IsInteriorPin = interiorPin != 0

	// Malformed image_urls is an anomaly, not a read failure: fall back
	// to an empty list and log it.
	issue.ImageURLs = []string{}
	if urlsJSON != "" {
		var urls []string
		if err := json.Unmarshal([]byte(urlsJSON), &urls); err != nil {
			s.logger.Warn("malformed image_urls column, using empty list",
				"issue_id", issue.ID, "error", err)
		} else if urls != nil {
			issue.ImageURLs = urls
		}
	}

	if issue.FixedAt, err = parseTimePtr(fixedAt); err != nil {
		return model.Issue{}, fmt.Errorf("issue %d fixed_at: %w", issue.ID, err)
	}
	if issue.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Issue{}, fmt.Errorf("issue %d created_at: %w", issue.ID, err)
	}
	if issue.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Issue{}, fmt.Errorf("issue %d updated_at: %w", issue.ID, err)
	}

	return issue, nil
}
