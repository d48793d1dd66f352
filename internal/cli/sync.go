package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/bootsync/internal/engine"
	"github.com/danieljhkim/bootsync/internal/planner"
)

var (
	syncDelete bool
	syncDryRun bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile firmware boot entries with the configuration",
	Long: `Create, update, deactivate, and reorder EFI boot entries until they
match bootsync.toml.

Entries are updated in place when they already exist. Entries the
configuration does not mention are deactivated unless --delete is given.
The run is not transactional: a failed efibootmgr invocation aborts
immediately and leaves earlier operations applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.SyncRequest{
			Config:     cfg,
			FullDelete: syncDelete,
			DryRun:     syncDryRun,
		}

		result, err := eng.Sync(context.Background(), req)
		if err != nil {
			if result != nil && len(result.Applied) > 0 {
				PrintWarning(fmt.Sprintf("%s already applied before the failure and not rolled back",
					PrintCount(len(result.Applied), "operation was", "operations were")))
			}
			return err
		}

		if syncDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would issue %s", PrintCount(result.Plan.Mutations(), "operation", "operations")))
			for _, op := range result.Plan.Operations {
				PrintInfo("  " + planner.Describe(op))
			}
			return nil
		}

		PrintSuccess(fmt.Sprintf("Converged after %s", PrintCount(len(result.Applied), "operation", "operations")))
		printEntries(result.State, cfg)
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&syncDelete, "delete", "D", false, "Delete entries which are not listed in the config")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Show what would be issued without mutating anything")
}
