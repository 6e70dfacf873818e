package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Work with issue comments",
}

var commentAddCmd = &cobra.Command{
	Use:   "add <issue-id>",
	Short: "Add a comment to an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		issueID, err := parseID(args[0])
		if err != nil {
			return err
		}

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		content, _ := cmd.Flags().GetString("content")
		username, _ := cmd.Flags().GetString("username")
		userID, _ := cmd.Flags().GetInt64("user-id")

		comment, err := s.CreateComment(cmd.Context(), model.NewComment{
			IssueID:  issueID,
			UserID:   int64PtrIfChanged(cmd, "user-id", userID),
			Username: username,
			Content:  content,
		})
		if err != nil {
			return err
		}

		fmt.Printf("comment %d added to issue %d\n", comment.ID, comment.IssueID)
		return nil
	},
}

var commentListCmd = &cobra.Command{
	Use:   "list <issue-id>",
	Short: "List an issue's comments, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		issueID, err := parseID(args[0])
		if err != nil {
			return err
		}

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		comments, err := s.GetComments(cmd.Context(), issueID)
		if err != nil {
			return err
		}
		if len(comments) == 0 {
			fmt.Println("no comments")
			return nil
		}

		for _, comment := range comments {
			fmt.Printf("%s %s %s\n  %s\n",
				labelStyle.Render(renderTimestamp(comment.CreatedAt)),
				headerStyle.Render(comment.Username),
				labelStyle.Render(fmt.Sprintf("(#%d)", comment.ID)),
				comment.Content,
			)
		}
		return nil
	},
}

func init() {
	commentAddCmd.Flags().String("content", "", "comment text (required)")
	commentAddCmd.Flags().String("username", "", "commenting user name (required)")
	commentAddCmd.Flags().Int64("user-id", 0, "commenting user id")
	commentAddCmd.MarkFlagRequired("content")
	commentAddCmd.MarkFlagRequired("username")

	commentCmd.AddCommand(commentAddCmd, commentListCmd)
	rootCmd.AddCommand(commentCmd)
}
