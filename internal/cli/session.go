package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/pickleplanner/internal/api/request"
	"github.com/mcoot/pickleplanner/internal/api/response"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session planning commands",
	}

	cmd.AddCommand(newSessionPreviewCmd())
	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionStatusCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

// scheduleFlags are shared by preview and create
type scheduleFlags struct {
	players        []string
	sessionMinutes int
	matchMinutes   int
}

func (f *scheduleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.players, "players", "p", nil, "Player ids, comma separated (required)")
	cmd.Flags().IntVar(&f.sessionMinutes, "session-minutes", 60, "Session length in minutes")
	cmd.Flags().IntVar(&f.matchMinutes, "match-minutes", 15, "Match length in minutes")
	_ = cmd.MarkFlagRequired("players")
}

func newSessionPreviewCmd() *cobra.Command {
	var flags scheduleFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Generate a schedule without saving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.PreviewRequest{
				PlayerIDs:      flags.players,
				SessionMinutes: flags.sessionMinutes,
				MatchMinutes:   flags.matchMinutes,
			}

			var result response.Preview
			if err := client.Post(cmd.Context(), "/api/v1/sessions/preview", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var flags scheduleFlags
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate and save a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateSessionRequest{
				Name:           name,
				PlayerIDs:      flags.players,
				SessionMinutes: flags.sessionMinutes,
				MatchMinutes:   flags.matchMinutes,
			}

			var result response.Session
			if err := client.Post(cmd.Context(), "/api/v1/sessions", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Session name (default: creation time)")

	return cmd
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.SessionSummary
			if err := client.Get(cmd.Context(), "/api/v1/sessions", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a session and its matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Get(cmd.Context(), sessionPath(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "status <id> <in_progress|completed>",
		Short:     "Move a session to a new status",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"draft", "in_progress", "completed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.UpdateStatusRequest{Status: args[1]}

			var result response.Session
			if err := client.Patch(cmd.Context(), sessionPath(args[0])+"/status", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), sessionPath(args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Session deleted")
			return nil
		},
	}
}

func sessionPath(id string) string {
	return "/api/v1/sessions/" + url.PathEscape(id)
}
