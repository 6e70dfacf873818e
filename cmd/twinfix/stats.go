package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show issue statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		issueType, _ := cmd.Flags().GetString("type")
		stats, err := s.ComputeStatistics(cmd.Context(), issueType)
		if err != nil {
			return err
		}

		fmt.Println(renderStatistics(stats, issueType))
		return nil
	},
}

var nearbyCmd = &cobra.Command{
	Use:   "nearby <lat> <lng> <radius-km>",
	Short: "List issues within a radius of a point",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude %q", args[0])
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude %q", args[1])
		}
		radius, err := strconv.ParseFloat(args[2], 64)
		if err != nil || radius < 0 {
			return fmt.Errorf("invalid radius %q", args[2])
		}

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		issues, err := s.GetNearbyIssues(cmd.Context(), lat, lng, radius)
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			fmt.Println("no issues nearby")
			return nil
		}
		for _, issue := range issues {
			fmt.Println(renderIssueLine(issue))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("type", "", "restrict statistics to one issue type")

	rootCmd.AddCommand(statsCmd, nearbyCmd)
}
