package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/pickleplanner/internal/api/request"
	"github.com/mcoot/pickleplanner/internal/api/response"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerHistoryCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var name, gender, avatar string
	var score float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreatePlayerRequest{
				Name:      name,
				AvatarURL: avatar,
				Gender:    gender,
			}
			if cmd.Flags().Changed("score") {
				req.Score = &score
			}

			var result response.Player
			if err := client.Post(cmd.Context(), "/api/v1/players", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender: male, female (required)")
	cmd.Flags().Float64Var(&score, "score", 0, "Skill score 0-10 (default: server default)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("gender")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if sortBy != "" {
				path += "?sort=" + url.QueryEscape(sortBy)
			}

			var result []response.Player
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: name, score")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Player
			if err := client.Get(cmd.Context(), "/api/v1/players/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var name, gender, avatar string
	var score float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a player; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req request.UpdatePlayerRequest
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("gender") {
				req.Gender = &gender
			}
			if flags.Changed("avatar") {
				req.AvatarURL = &avatar
			}
			if flags.Changed("score") {
				req.Score = &score
			}

			var result response.Player
			if err := client.Patch(cmd.Context(), "/api/v1/players/"+url.PathEscape(args[0]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender: male, female")
	cmd.Flags().Float64Var(&score, "score", 0, "Skill score 0-10")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), "/api/v1/players/"+url.PathEscape(args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Player removed")
			return nil
		},
	}
}

func newPlayerHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "List a player's completed matches, latest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.MatchRecord
			if err := client.Get(cmd.Context(), "/api/v1/players/"+url.PathEscape(args[0])+"/matches", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
