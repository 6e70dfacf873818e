package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Work with uploaded images",
}

var imageAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Store an image, optionally attached to an issue",
	Long: `Store an image file as a base64 payload. Without --issue the image is
staged unattached and can be linked to an issue later.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading image file: %w", err)
		}

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		mimeType, _ := cmd.Flags().GetString("mime")
		issueID, _ := cmd.Flags().GetInt64("issue")
		metadata, _ := cmd.Flags().GetString("metadata")

		image, err := s.CreateImage(cmd.Context(), model.NewImage{
			Filename: filepath.Base(args[0]),
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
			IssueID:  int64PtrIfChanged(cmd, "issue", issueID),
			Metadata: stringPtrIfChanged(cmd, "metadata", metadata),
		})
		if err != nil {
			return err
		}

		if image.IssueID != nil {
			fmt.Printf("image %d (%s) attached to issue %d\n", image.ID, image.Filename, *image.IssueID)
		} else {
			fmt.Printf("image %d (%s) staged unattached\n", image.ID, image.Filename)
		}
		return nil
	},
}

var imageShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Write a stored image's payload to a file",
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

		image, err := s.GetImage(cmd.Context(), id)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = image.Filename
		}

		data, err := base64.StdEncoding.DecodeString(image.Data)
		if err != nil {
			return fmt.Errorf("decoding image %d payload: %w", id, err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}

		fmt.Printf("wrote %s (%s, %d bytes)\n", out, image.MimeType, len(data))
		return nil
	},
}

var imageListCmd = &cobra.Command{
	Use:   "list <issue-id>",
	Short: "List the images attached to an issue",
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

		images, err := s.GetImagesByIssue(cmd.Context(), issueID)
		if err != nil {
			return err
		}
		if len(images) == 0 {
			fmt.Println("no images")
			return nil
		}

		for _, image := range images {
			fmt.Printf("%s #%-4d %s %s\n",
				labelStyle.Render(renderTimestamp(image.CreatedAt)),
				image.ID, image.Filename, labelStyle.Render(image.MimeType))
		}
		return nil
	},
}

func init() {
	imageAddCmd.Flags().String("mime", "", "MIME type (default image/jpeg)")
	imageAddCmd.Flags().Int64("issue", 0, "issue to attach the image to")
	imageAddCmd.Flags().String("metadata", "", "opaque metadata string")

	imageShowCmd.Flags().String("out", "", "output path (default: stored filename)")

	imageCmd.AddCommand(imageAddCmd, imageShowCmd, imageListCmd)
	rootCmd.AddCommand(imageCmd)
}
