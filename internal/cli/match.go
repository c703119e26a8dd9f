package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/pickleplanner/internal/api/request"
	"github.com/mcoot/pickleplanner/internal/api/response"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchStartCmd())
	cmd.AddCommand(newMatchResultCmd())
	cmd.AddCommand(newMatchRecentCmd())
	cmd.AddCommand(newMatchActiveCmd())

	return cmd
}

func newMatchStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <session-id> <match-number>",
		Short: "Mark a match as being played",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseCount("match number", args[1])
			if err != nil {
				return err
			}

			var result response.Match
			path := fmt.Sprintf("%s/matches/%d/start", sessionPath(args[0]), number)
			if err := client.Post(cmd.Context(), path, nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchResultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "result <session-id> <match-number> <team1-points> <team2-points>",
		Short: "Record a match result and update ratings",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseCount("match number", args[1])
			if err != nil {
				return err
			}
			team1, err := parseCount("team1 points", args[2])
			if err != nil {
				return err
			}
			team2, err := parseCount("team2 points", args[3])
			if err != nil {
				return err
			}

			req := request.RecordResultRequest{Team1Points: &team1, Team2Points: &team2}

			var result response.MatchResult
			path := fmt.Sprintf("%s/matches/%d/result", sessionPath(args[0]), number)
			if err := client.Post(cmd.Context(), path, req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the latest results across sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/matches/recent"
			if limit > 0 {
				path += "?limit=" + strconv.Itoa(limit)
			}

			var result []response.MatchRecord
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of matches (default: server default)")

	return cmd
}

func newMatchActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List matches still waiting for a result",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.MatchRecord
			if err := client.Get(cmd.Context(), "/api/v1/matches/active", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func parseCount(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", what, s)
	}
	return n, nil
}
