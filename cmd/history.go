package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.History()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		// Newest first.
		for i := len(records) - 1; i >= 0; i-- {
			rec := records[i]
			fmt.Printf("%s  %s  %2d/%2d  %3.0f%%  %ds\n",
				rec.CompletedAt.Format("2006-01-02 15:04"),
				rec.Direction,
				rec.Correct, rec.Total,
				rec.Accuracy*100,
				rec.DurationSecs,
			)
		}
		return nil
	},
}
