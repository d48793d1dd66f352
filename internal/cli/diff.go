package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/bootsync/internal/engine"
	"github.com/danieljhkim/bootsync/internal/planner"
)

var diffDelete bool

var opColors = map[string]*color.Color{
	planner.OpCreate:     successColor,
	planner.OpUpdate:     headerColor,
	planner.OpDeactivate: warningColor,
	planner.OpDelete:     errorColor,
	planner.OpReorder:    dimColor,
}

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show the operations a sync would issue",
	Long: `Compare the configuration against the firmware's current boot entries
and list the operations a sync would issue, without mutating anything.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Sync(context.Background(), &engine.SyncRequest{
			Config:     cfg,
			FullDelete: diffDelete,
			DryRun:     true,
		})
		if err != nil {
			return err
		}

		if result.Plan.Mutations() == 0 {
			PrintSuccess("Nothing to do")
			return nil
		}
		for _, op := range result.Plan.Operations {
			clr, ok := opColors[op.Type]
			if !ok {
				clr = dimColor
			}
			PrintInfo("  " + clr.Sprint(planner.Describe(op)))
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVarP(&diffDelete, "delete", "D", false, "Preview with the destructive delete policy")
}
