package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

// Statistics is the summary computed over a set of issues. Pointer fields
// are nil when the metric is undefined for the scope (no fixed issues, an
// empty scope), never a false zero.
type Statistics struct {
	TotalIssues          int        `json:"totalIssues"`
	OpenIssues           int        `json:"openIssues"`
	FixedIssues          int        `json:"fixedIssues"`
	AverageFixTime       *float64   `json:"averageFixTime,omitempty"`
	MostReportedLocation *string    `json:"mostReportedLocation,omitempty"`
	LastFixDate          *time.Time `json:"lastFixDate,omitempty"`
}

// ComputeStatistics folds the issue set into summary metrics. An empty
// issueType scopes over all issues; otherwise only issues of that type
// count. The fold carries no persisted state and tolerates an empty scope.
// Statistics are advisory: rows that fail to scan (a corrupted timestamp
// column, say) are logged and skipped, never an error.
func (s *SQLiteStore) ComputeStatistics(ctx context.Context, issueType string) (Statistics, error) {
	issues, err := s.queryIssuesLenient(ctx, issueType)
	if err != nil {
		return Statistics{}, err
	}
	return foldStatistics(issues), nil
}

// queryIssuesLenient scans the scoped issue set, dropping unreadable rows
// instead of failing the whole query.
func (s *SQLiteStore) queryIssuesLenient(ctx context.Context, issueType string) ([]model.Issue, error) {
	query := "SELECT " + issueColumns + " FROM issues"
	var args []interface{}
	if issueType != "" {
		query += " WHERE issue_type = ?"
		args = append(args, issueType)
	}
	query += " ORDER BY updated_at DESC"

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying issues for statistics: %w", err)
	}
	defer rows.Close()

	var issues []model.Issue
	for rows.Next() {
		issue, err := s.scanIssue(rows)
		if err != nil {
			s.logger.Warn("skipping unreadable issue row in statistics", "error", err)
			continue
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

// foldStatistics computes the metrics over one pass of the issue slice.
// mostReportedLocation ties break toward the first-encountered location
// in iteration order.
func foldStatistics(issues []model.Issue) Statistics {
	stats := Statistics{TotalIssues: len(issues)}

	var (
		fixTimeSum   int64
		fixTimeCount int
		bestLocation string
		bestCount    int
		locations    = make(map[string]int)
	)

	for _, issue := range issues {
		if model.ResolvedStatus(issue.Status) {
			stats.FixedIssues++
		} else {
			stats.OpenIssues++
		}

		if issue.Status == model.StatusFixed && issue.TimeToFix != nil {
			fixTimeSum += *issue.TimeToFix
			fixTimeCount++
		}

		locations[issue.Location]++
		if locations[issue.Location] > bestCount {
			bestCount = locations[issue.Location]
			bestLocation = issue.Location
		}

		if issue.FixedAt != nil &&
			(stats.LastFixDate == nil || issue.FixedAt.After(*stats.LastFixDate)) {
			fixedAt := *issue.FixedAt
			stats.LastFixDate = &fixedAt
		}
	}

	if fixTimeCount > 0 {
		avg := float64(fixTimeSum) / float64(fixTimeCount)
		stats.AverageFixTime = &avg
	}
	if stats.TotalIssues > 0 {
		stats.MostReportedLocation = &bestLocation
	}

	return stats
}
