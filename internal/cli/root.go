package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/redditmodqueue/internal/app"
)

// runFunc starts a moderation session.
type runFunc func(ctx context.Context, opts app.Options) error

// NewRootCmd builds the redditmodqueue command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(app.Run)
}

func newRootCmd(run runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "redditmodqueue",
		Short:         "Browse and act on a subreddit's moderation queue",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Open the mod queue for r/golang
  redditmodqueue queue --subreddit golang
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newQueueCmd(run))

	return cmd
}

func newQueueCmd(run runFunc) *cobra.Command {
	var subreddit string

	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Open the interactive mod queue browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Settings come from ./.env and the environment, the theme
			// from the default prefs path.
			return run(cmd.Context(), app.Options{Subreddit: subreddit})
		},
	}

	cmd.Flags().StringVar(&subreddit, "subreddit", "", "Subreddit to moderate, with or without the r/ prefix")
	_ = cmd.MarkFlagRequired("subreddit")

	return cmd
}
