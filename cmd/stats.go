package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		d, err := directionFlag(cmd, st)
		if err != nil {
			return err
		}

		stats, err := st.ReviewStats(d, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Direction:        %s\n", d)
		fmt.Printf("Tracked words:    %d\n", stats.Total)
		fmt.Printf("Due for review:   %d\n", stats.Due)
		fmt.Printf("Average ease:     %.2f\n", stats.AvgEaseFactor)
		fmt.Printf("Average accuracy: %.0f%%\n", stats.AvgAccuracy*100)
		return nil
	},
}

func init() {
	statsCmd.Flags().String("direction", "", `Direction to inspect ("bg-de" or "de-bg", default: stored preference)`)
}
