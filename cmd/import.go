package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import review data from a JSON export (stdin if no file given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if len(args) == 0 {
			raw, err = io.ReadAll(os.Stdin)
		} else {
			raw, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result, err := st.ImportAll(raw)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d records", result.Imported)
		if result.Skipped > 0 {
			fmt.Printf(", skipped %d invalid", result.Skipped)
		}
		fmt.Println()
		return nil
	},
}
