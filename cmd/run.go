package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leksika/internal/app"
)

// runApp opens the store, loads the vocabulary, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	sessOpts, err := sessionOptions(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	pool, poolErr := loadPool(cmd)
	if poolErr != nil {
		fmt.Fprintln(os.Stderr, "Vocabulary not loaded:", poolErr)
	}

	return app.Run(app.Options{
		Store:   st,
		Pool:    pool,
		PoolErr: poolErr,
		Session: sessOpts,
	})
}
