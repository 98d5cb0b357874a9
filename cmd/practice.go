package cmd

import (
	"github.com/spf13/cobra"

	sess "leksika/internal/practice"
	"leksika/internal/srs"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session (same as running leksika with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	addSessionFlags(practiceCmd)
	rootCmd.AddCommand(practiceCmd)
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("length", 0, "Number of cards in the session (default 10)")
	cmd.Flags().String("direction", "", `Direction to practice ("bg-de" or "de-bg", default: stored preference)`)
	cmd.Flags().StringSlice("select", nil, "Practice exactly these item IDs, in order (bypasses due-item selection)")
}

// sessionOptions reads the practice flags. The root command defines none
// of them, so every read degrades to the zero value there.
func sessionOptions(cmd *cobra.Command) (sess.Options, error) {
	var opts sess.Options
	opts.Length, _ = cmd.Flags().GetInt("length")
	opts.Selection, _ = cmd.Flags().GetStringSlice("select")

	if raw, _ := cmd.Flags().GetString("direction"); raw != "" {
		d, err := srs.ParseDirection(raw)
		if err != nil {
			return sess.Options{}, err
		}
		opts.Direction = d
	}
	return opts, nil
}
