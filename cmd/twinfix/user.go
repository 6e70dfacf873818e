package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArturStory/Twin-Fix-sub002/internal/model"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Work with user records",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		password, _ := cmd.Flags().GetString("password")
		displayName, _ := cmd.Flags().GetString("display-name")
		avatarURL, _ := cmd.Flags().GetString("avatar-url")

		user, err := s.CreateUser(cmd.Context(), model.NewUser{
			Username:    args[0],
			Password:    password,
			DisplayName: stringPtrIfChanged(cmd, "display-name", displayName),
			AvatarURL:   stringPtrIfChanged(cmd, "avatar-url", avatarURL),
		})
		if err != nil {
			return err
		}

		fmt.Printf("created user %d (%s)\n", user.ID, user.Username)
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Show a user by username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		user, err := s.GetUserByUsername(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", headerStyle.Render(fmt.Sprintf("User #%d", user.ID)), user.Username)
		if user.DisplayName != nil {
			fmt.Printf("%s %s\n", labelStyle.Render("display name:"), *user.DisplayName)
		}
		if user.AvatarURL != nil {
			fmt.Printf("%s %s\n", labelStyle.Render("avatar:"), *user.AvatarURL)
		}
		return nil
	},
}

func init() {
	userAddCmd.Flags().String("password", "", "opaque credential (hashed upstream)")
	userAddCmd.Flags().String("display-name", "", "display name")
	userAddCmd.Flags().String("avatar-url", "", "avatar URL")
	userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd, userShowCmd)
	rootCmd.AddCommand(userCmd)
}
