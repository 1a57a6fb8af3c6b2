package cli

import (
	"github.com/spf13/cobra"

	"github.com/zevwings/workflow/internal/actions"
	"github.com/zevwings/workflow/internal/config"
	"github.com/zevwings/workflow/internal/git"
	"github.com/zevwings/workflow/internal/output"
)

// commandEnv is what every commit subcommand needs to run
type commandEnv struct {
	RepoRoot string
	Config   *config.RepoConfig
	Splog    *output.Splog
}

// newCommandEnv resolves the repository root and loads its configuration
func newCommandEnv(debug bool) (*commandEnv, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	return &commandEnv{
		RepoRoot: repoRoot,
		Config:   cfg,
		Splog:    output.NewSplog(debug),
	}, nil
}

func newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Rewrite commit history: squash ranges and reword messages",
	}

	cmd.AddCommand(newSquashCmd())
	cmd.AddCommand(newRewordCmd())

	return cmd
}

func newSquashCmd() *cobra.Command {
	var (
		message   string
		autoStash bool
		noStash   bool
		yes       bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "squash [commit...]",
		Short: "Combine contiguous commits into a single commit",
		Long: `Combine contiguous commits into a single commit.

With no arguments, squashes every commit on the current branch since it
diverged from the trunk branch. With arguments, squashes exactly the listed
commits, which must form a contiguous range ordered oldest to newest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(debug)
			if err != nil {
				return err
			}

			stash := env.Config.GetAutoStash()
			if cmd.Flags().Changed("auto-stash") {
				stash = autoStash
			}
			if noStash {
				stash = false
			}

			_, err = actions.SquashAction(cmd.Context(), actions.SquashOptions{
				Commits:     args,
				Message:     message,
				AutoStash:   stash,
				SkipConfirm: yes,
				Trunk:       env.Config.GetTrunk(),
				Splog:       env.Splog,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "The message for the squashed commit. Defaults to the original messages concatenated.")
	cmd.Flags().BoolVar(&autoStash, "auto-stash", false, "Stash uncommitted changes before squashing and restore them afterwards.")
	cmd.Flags().BoolVar(&noStash, "no-stash", false, "Refuse to run on a dirty working tree. Takes precedence over --auto-stash.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print debug output.")

	return cmd
}

func newRewordCmd() *cobra.Command {
	var (
		message   string
		autoStash bool
		noStash   bool
		yes       bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "reword <commit>",
		Short: "Replace the message of a commit, anywhere in branch history",
		Long: `Replace the message of a commit, anywhere in branch history.

The commit does not need to be the branch tip; descendants are replayed
unchanged on top of the rewritten commit. Commit identifiers change for the
target and everything above it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(debug)
			if err != nil {
				return err
			}

			stash := env.Config.GetAutoStash()
			if cmd.Flags().Changed("auto-stash") {
				stash = autoStash
			}
			if noStash {
				stash = false
			}

			_, err = actions.RewordAction(cmd.Context(), actions.RewordOptions{
				Commit:      args[0],
				Message:     message,
				AutoStash:   stash,
				SkipConfirm: yes,
				Trunk:       env.Config.GetTrunk(),
				Splog:       env.Splog,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "The replacement commit message (required).")
	cmd.Flags().BoolVar(&autoStash, "auto-stash", false, "Stash uncommitted changes before rewording and restore them afterwards.")
	cmd.Flags().BoolVar(&noStash, "no-stash", false, "Refuse to run on a dirty working tree. Takes precedence over --auto-stash.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print debug output.")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
