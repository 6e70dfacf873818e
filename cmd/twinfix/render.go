package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
	"github.com/ArturStory/Twin-Fix-sub002/internal/store"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	colorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	colorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	colorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	colorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	colorOrange = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	colorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	labelStyle  = lipgloss.NewStyle().Foreground(colorGray)
	idStyle     = lipgloss.NewStyle().Bold(true)
)

var statusStyles = map[string]lipgloss.Style{
	model.StatusPending:    lipgloss.NewStyle().Foreground(colorYellow),
	model.StatusInProgress: lipgloss.NewStyle().Foreground(colorBlue),
	model.StatusCompleted:  lipgloss.NewStyle().Foreground(colorGreen),
	model.StatusScheduled:  lipgloss.NewStyle().Foreground(colorOrange),
	model.StatusUrgent:     lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	model.StatusFixed:      lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
}

func renderStatus(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return status
}

func renderTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// renderIssueLine formats one issue for list output.
func renderIssueLine(issue model.Issue) string {
	return fmt.Sprintf("%s  %-12s %-8s %s %s",
		idStyle.Render(fmt.Sprintf("#%-4d", issue.ID)),
		renderStatus(issue.Status),
		issue.Priority,
		issue.Title,
		labelStyle.Render("("+issue.Location+", "+renderTimestamp(issue.UpdatedAt)+")"),
	)
}

// renderIssue formats the full detail view of one issue.
func renderIssue(issue model.Issue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render(fmt.Sprintf("Issue #%d", issue.ID)), issue.Title)
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("status:"), renderStatus(issue.Status),
		labelStyle.Render("priority:"), issue.Priority,
		labelStyle.Render("type:"), issue.IssueType,
	)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("location:"), issue.Location)
	if issue.Description != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("description:"), issue.Description)
	}
	if issue.Latitude != nil && issue.Longitude != nil {
		fmt.Fprintf(&b, "%s %.6f, %.6f\n", labelStyle.Render("coordinates:"), *issue.Latitude, *issue.Longitude)
	}
	if issue.PinX != nil && issue.PinY != nil {
		interior := ""
		if issue.IsInteriorPin {
			interior = " (interior)"
		}
		fmt.Fprintf(&b, "%s %.1f, %.1f%s\n", labelStyle.Render("pin:"), *issue.PinX, *issue.PinY, interior)
	}
	if issue.ReportedByName != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("reported by:"), issue.ReportedByName)
	}
	fmt.Fprintf(&b, "%s %.2f\n", labelStyle.Render("estimated cost:"), issue.EstimatedCost)
	if issue.FinalCost != nil {
		fmt.Fprintf(&b, "%s %.2f\n", labelStyle.Render("final cost:"), *issue.FinalCost)
	}
	if issue.FixedAt != nil {
		by := ""
		if issue.FixedByName != nil {
			by = " by " + *issue.FixedByName
		}
		fmt.Fprintf(&b, "%s %s%s\n", labelStyle.Render("fixed:"), renderTimestamp(*issue.FixedAt), by)
	}
	if issue.TimeToFix != nil {
		fmt.Fprintf(&b, "%s %d min\n", labelStyle.Render("time to fix:"), *issue.TimeToFix)
	}
	if len(issue.ImageURLs) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("images:"), strings.Join(issue.ImageURLs, ", "))
	}
	fmt.Fprintf(&b, "%s %s   %s %s",
		labelStyle.Render("created:"), renderTimestamp(issue.CreatedAt),
		labelStyle.Render("updated:"), renderTimestamp(issue.UpdatedAt),
	)

	return b.String()
}

// renderStatistics formats the statistics summary.
func renderStatistics(stats store.Statistics, issueType string) string {
	var b strings.Builder

	title := "Issue statistics"
	if issueType != "" {
		title += " (" + issueType + ")"
	}
	fmt.Fprintln(&b, headerStyle.Render(title))
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("total issues:"), stats.TotalIssues)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("open issues:"), stats.OpenIssues)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("resolved issues:"), stats.FixedIssues)
	if stats.AverageFixTime != nil {
		fmt.Fprintf(&b, "%s %.1f min\n", labelStyle.Render("average fix time:"), *stats.AverageFixTime)
	} else {
		fmt.Fprintf(&b, "%s n/a\n", labelStyle.Render("average fix time:"))
	}
	if stats.MostReportedLocation != nil {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("most reported location:"), *stats.MostReportedLocation)
	} else {
		fmt.Fprintf(&b, "%s n/a\n", labelStyle.Render("most reported location:"))
	}
	if stats.LastFixDate != nil {
		fmt.Fprintf(&b, "%s %s", labelStyle.Render("last fix:"), renderTimestamp(*stats.LastFixDate))
	} else {
		fmt.Fprintf(&b, "%s n/a", labelStyle.Render("last fix:"))
	}

	return b.String()
}
