package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"leksika/internal/picker"
	"leksika/internal/srs"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List words due for review, most urgent first",
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

		pool, err := loadPool(cmd)
		if err != nil {
			return err
		}

		now := time.Now()
		due, err := st.DueStates(d, now)
		if err != nil {
			return err
		}
		if len(due) == 0 {
			fmt.Println("Nothing due. Добре!")
			return nil
		}

		sort.SliceStable(due, func(i, j int) bool {
			si, sj := picker.Score(due[i], now), picker.Score(due[j], now)
			if si != sj {
				return si > sj
			}
			return due[i].ItemID < due[j].ItemID
		})

		byID := make(map[string]string, len(pool))
		for _, it := range pool {
			byID[it.ID] = it.Front(d) + " — " + it.Back(d)
		}

		fmt.Printf("%d due (%s):\n", len(due), d)
		for _, state := range due {
			label := byID[state.ItemID]
			if label == "" {
				label = state.ItemID
			}
			fmt.Printf("  %6.1f  %s (ease %.2f, %.0fd overdue)\n",
				picker.Score(state, now), label, state.EaseFactor, state.OverdueDays(now))
		}
		return nil
	},
}

// directionFlag resolves the --direction flag, falling back to the
// stored preference.
func directionFlag(cmd *cobra.Command, st interface{ Direction() srs.Direction }) (srs.Direction, error) {
	raw, _ := cmd.Flags().GetString("direction")
	if raw == "" {
		return st.Direction(), nil
	}
	return srs.ParseDirection(raw)
}

func init() {
	dueCmd.Flags().String("direction", "", `Direction to inspect ("bg-de" or "de-bg", default: stored preference)`)
}
