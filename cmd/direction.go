package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"leksika/internal/srs"
)

var directionCmd = &cobra.Command{
	Use:   "direction [bg-de|de-bg]",
	Short: "Show or set the learning direction",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 0 {
			d := st.Direction()
			fmt.Printf("%s (%s)\n", d, d.Label())
			return nil
		}

		d, err := srs.ParseDirection(args[0])
		if err != nil {
			return err
		}
		if err := st.SetDirection(d); err != nil {
			return err
		}
		fmt.Printf("Direction set to %s (%s)\n", d, d.Label())
		return nil
	},
}
