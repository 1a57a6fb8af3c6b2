package cli

import (
	"github.com/spf13/cobra"

	"github.com/zevwings/workflow/internal/config"
	workflowerrors "github.com/zevwings/workflow/internal/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and change repository configuration",
	}

	cmd.AddCommand(newTrunkCmd())
	cmd.AddCommand(newAutoStashCmd())

	return cmd
}

func newTrunkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trunk [branch]",
		Short: "Show or set the trunk branch used to find branch divergence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(false)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				env.Splog.Info("%s", env.Config.GetTrunk())
				return nil
			}

			trunk := args[0]
			env.Config.Trunk = &trunk
			if err := config.WriteRepoConfig(env.RepoRoot, env.Config); err != nil {
				return err
			}
			env.Splog.Info("Trunk branch set to %s.", trunk)
			return nil
		},
	}
}

func newAutoStashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto-stash [on|off]",
		Short: "Show or set whether dirty working trees are stashed automatically",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(false)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if env.Config.GetAutoStash() {
					env.Splog.Info("on")
				} else {
					env.Splog.Info("off")
				}
				return nil
			}

			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return workflowerrors.NewValidationError("expected on or off, got %q", args[0])
			}

			env.Config.AutoStash = &enabled
			if err := config.WriteRepoConfig(env.RepoRoot, env.Config); err != nil {
				return err
			}
			env.Splog.Info("Auto-stash turned %s.", args[0])
			return nil
		},
	}
}
