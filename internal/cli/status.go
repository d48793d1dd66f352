package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/bootsync/internal/config"
	"github.com/danieljhkim/bootsync/internal/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the firmware's current boot entries",
	Long:  `Display the live boot-entry table in boot order, without mutating anything.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}

		observed, err := eng.Observe(context.Background())
		if err != nil {
			return err
		}

		if observed.Len() == 0 {
			PrintInfo("No boot entries reported.")
			return nil
		}
		printEntries(observed, cfg)
		return nil
	},
}

// printEntries lists observed entries in boot order, marking entries the
// configuration does not manage.
func printEntries(st *state.State, cfg *config.Config) {
	for _, label := range st.Labels() {
		id, _ := st.ID(label)
		line := fmt.Sprintf("  %s  %s", id, label)
		if _, managed := cfg.Entry(label); !managed {
			line += dimColor.Sprint("  (unmanaged)")
		}
		PrintInfo(line)
	}
}
