package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <new-status>",
	Short: "Transition an issue to a new status",
	Long: `Transition an issue to one of: pending, in_progress, completed,
scheduled, urgent, fixed. A real status change is recorded in the audit
history; transitioning to the current status is a no-op apart from the
updated timestamp.`,
	Args: cobra.ExactArgs(2),
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

		byID, _ := cmd.Flags().GetInt64("by-id")
		byName, _ := cmd.Flags().GetString("by-name")
		notes, _ := cmd.Flags().GetString("notes")

		issue, err := s.TransitionStatus(cmd.Context(), id, args[1],
			int64PtrIfChanged(cmd, "by-id", byID),
			stringPtrIfChanged(cmd, "by-name", byName),
			stringPtrIfChanged(cmd, "notes", notes),
		)
		if err != nil {
			return err
		}
		fmt.Println(renderIssue(*issue))
		return nil
	},
}

var fixCmd = &cobra.Command{
	Use:   "fix <id>",
	Short: "Mark an issue as fixed",
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

		byID, _ := cmd.Flags().GetInt64("by-id")
		byName, _ := cmd.Flags().GetString("by-name")
		notes, _ := cmd.Flags().GetString("notes")

		issue, err := s.MarkFixed(cmd.Context(), id,
			int64PtrIfChanged(cmd, "by-id", byID),
			stringPtrIfChanged(cmd, "by-name", byName),
			stringPtrIfChanged(cmd, "notes", notes),
		)
		if err != nil {
			return err
		}
		fmt.Println(renderIssue(*issue))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "Show the status audit trail of an issue, newest first",
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

		history, err := s.GetStatusHistory(cmd.Context(), id)
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Println("no status changes recorded")
			return nil
		}

		for _, record := range history {
			old := "-"
			if record.OldStatus != nil {
				old = renderStatus(*record.OldStatus)
			}
			line := fmt.Sprintf("%s  %s -> %s",
				renderTimestamp(record.CreatedAt), old, renderStatus(record.NewStatus))
			if record.ChangedByName != nil {
				line += " by " + *record.ChangedByName
			}
			if record.Notes != nil && *record.Notes != "" {
				line += labelStyle.Render(" (" + *record.Notes + ")")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{statusCmd, fixCmd} {
		c.Flags().Int64("by-id", 0, "acting user id")
		c.Flags().String("by-name", "", "acting user name")
		c.Flags().String("notes", "", "notes for the audit record")
	}

	rootCmd.AddCommand(statusCmd, fixCmd, historyCmd)
}
