package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
	"github.com/ArturStory/Twin-Fix-sub002/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a new maintenance issue",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		location, _ := cmd.Flags().GetString("location")
		priority, _ := cmd.Flags().GetString("priority")
		issueType, _ := cmd.Flags().GetString("type")
		lat, _ := cmd.Flags().GetFloat64("lat")
		lng, _ := cmd.Flags().GetFloat64("lng")
		pinX, _ := cmd.Flags().GetFloat64("pin-x")
		pinY, _ := cmd.Flags().GetFloat64("pin-y")
		interior, _ := cmd.Flags().GetBool("interior")
		reporterID, _ := cmd.Flags().GetInt64("reporter-id")
		reporterName, _ := cmd.Flags().GetString("reporter-name")
		cost, _ := cmd.Flags().GetFloat64("cost")
		images, _ := cmd.Flags().GetStringArray("image")

		issue, err := s.CreateIssue(cmd.Context(), model.NewIssue{
			Title:          title,
			Description:    description,
			Location:       location,
			Priority:       priority,
			IssueType:      issueType,
			Latitude:       float64PtrIfChanged(cmd, "lat", lat),
			Longitude:      float64PtrIfChanged(cmd, "lng", lng),
			PinX:           float64PtrIfChanged(cmd, "pin-x", pinX),
			PinY:           float64PtrIfChanged(cmd, "pin-y", pinY),
			IsInteriorPin:  interior,
			ReportedByID:   int64PtrIfChanged(cmd, "reporter-id", reporterID),
			ReportedByName: reporterName,
			EstimatedCost:  cost,
			ImageURLs:      images,
		})
		if err != nil {
			return err
		}

		fmt.Println(renderIssue(*issue))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List issues, most recently updated first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		status, _ := cmd.Flags().GetString("status")
		issueType, _ := cmd.Flags().GetString("type")
		if status != "" && issueType != "" {
			return fmt.Errorf("--status and --type are mutually exclusive")
		}

		var issues []model.Issue
		switch {
		case status != "":
			issues, err = s.GetIssuesByStatus(cmd.Context(), status)
		case issueType != "":
			issues, err = s.GetIssuesByType(cmd.Context(), issueType)
		default:
			issues, err = s.GetIssues(cmd.Context())
		}
		if err != nil {
			return err
		}

		if len(issues) == 0 {
			fmt.Println("no issues")
			return nil
		}
		for _, issue := range issues {
			fmt.Println(renderIssueLine(issue))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one issue in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		issue, err := s.GetIssue(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Println(renderIssue(*issue))
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an issue",
	Long: `Update applies only the flags given on the command line; every other
field keeps its stored value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		var patch store.IssuePatch
		if v, err := cmd.Flags().GetString("title"); err == nil && cmd.Flags().Changed("title") {
			patch.Title = store.Set(v)
		}
		if v, err := cmd.Flags().GetString("description"); err == nil && cmd.Flags().Changed("description") {
			patch.Description = store.Set(v)
		}
		if v, err := cmd.Flags().GetString("location"); err == nil && cmd.Flags().Changed("location") {
			patch.Location = store.Set(v)
		}
		if v, err := cmd.Flags().GetString("priority"); err == nil && cmd.Flags().Changed("priority") {
			patch.Priority = store.Set(v)
		}
		if v, err := cmd.Flags().GetString("type"); err == nil && cmd.Flags().Changed("type") {
			patch.IssueType = store.Set(v)
		}
		if v, err := cmd.Flags().GetFloat64("lat"); err == nil && cmd.Flags().Changed("lat") {
			patch.Latitude = store.Set(&v)
		}
		if v, err := cmd.Flags().GetFloat64("lng"); err == nil && cmd.Flags().Changed("lng") {
			patch.Longitude = store.Set(&v)
		}
		if v, err := cmd.Flags().GetFloat64("pin-x"); err == nil && cmd.Flags().Changed("pin-x") {
			patch.PinX = store.Set(&v)
		}
		if v, err := cmd.Flags().GetFloat64("pin-y"); err == nil && cmd.Flags().Changed("pin-y") {
			patch.PinY = store.Set(&v)
		}
		if v, err := cmd.Flags().GetBool("interior"); err == nil && cmd.Flags().Changed("interior") {
			patch.IsInteriorPin = store.Set(v)
		}
		if v, err := cmd.Flags().GetFloat64("cost"); err == nil && cmd.Flags().Changed("cost") {
			patch.EstimatedCost = store.Set(v)
		}
		if v, err := cmd.Flags().GetFloat64("final-cost"); err == nil && cmd.Flags().Changed("final-cost") {
			patch.FinalCost = store.Set(&v)
		}
		if v, err := cmd.Flags().GetStringArray("image"); err == nil && cmd.Flags().Changed("image") {
			patch.ImageURLs = store.Set(v)
		}

		issue, err := s.UpdateIssue(cmd.Context(), id, patch)
		if err != nil {
			return err
		}
		fmt.Println(renderIssue(*issue))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an issue and everything attached to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		deleted, err := s.DeleteIssue(cmd.Context(), id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("issue %d not found", id)
		}
		fmt.Printf("deleted issue %d\n", id)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("title", "", "issue title (required)")
	reportCmd.Flags().String("description", "", "issue description")
	reportCmd.Flags().String("location", "", "free-text location label")
	reportCmd.Flags().String("priority", "", "low, medium, or high")
	reportCmd.Flags().String("type", "", "equipment/facility category")
	reportCmd.Flags().Float64("lat", 0, "latitude")
	reportCmd.Flags().Float64("lng", 0, "longitude")
	reportCmd.Flags().Float64("pin-x", 0, "plan-relative pin X")
	reportCmd.Flags().Float64("pin-y", 0, "plan-relative pin Y")
	reportCmd.Flags().Bool("interior", false, "pin is on an interior plan")
	reportCmd.Flags().Int64("reporter-id", 0, "reporting user id")
	reportCmd.Flags().String("reporter-name", "", "reporting user name")
	reportCmd.Flags().Float64("cost", 0, "estimated cost")
	reportCmd.Flags().StringArray("image", nil, "image URL (repeatable)")
	reportCmd.MarkFlagRequired("title")

	listCmd.Flags().String("status", "", "filter by status")
	listCmd.Flags().String("type", "", "filter by issue type")

	updateCmd.Flags().String("title", "", "issue title")
	updateCmd.Flags().String("description", "", "issue description")
	updateCmd.Flags().String("location", "", "free-text location label")
	updateCmd.Flags().String("priority", "", "low, medium, or high")
	updateCmd.Flags().String("type", "", "equipment/facility category")
	updateCmd.Flags().Float64("lat", 0, "latitude")
	updateCmd.Flags().Float64("lng", 0, "longitude")
	updateCmd.Flags().Float64("pin-x", 0, "plan-relative pin X")
	updateCmd.Flags().Float64("pin-y", 0, "plan-relative pin Y")
	updateCmd.Flags().Bool("interior", false, "pin is on an interior plan")
	updateCmd.Flags().Float64("cost", 0, "estimated cost")
	updateCmd.Flags().Float64("final-cost", 0, "final cost")
	updateCmd.Flags().StringArray("image", nil, "replacement image URL list (repeatable)")

	rootCmd.AddCommand(reportCmd, listCmd, showCmd, updateCmd, deleteCmd)
}
