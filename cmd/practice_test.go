package cmd

import (
	"testing"

	"github.com/spf13/cobra"

	"leksika/internal/srs"
)

func TestSessionOptionsFromFlags(t *testing.T) {
	c := &cobra.Command{Use: "practice"}
	addSessionFlags(c)
	if err := c.ParseFlags([]string{"--length", "5", "--direction", "de-bg", "--select", "voda,kniga"}); err != nil {
		t.Fatal(err)
	}

	opts, err := sessionOptions(c)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Length != 5 {
		t.Errorf("Length = %d, want 5", opts.Length)
	}
	if opts.Direction != srs.DeToBg {
		t.Errorf("Direction = %v, want de-bg", opts.Direction)
	}
	if len(opts.Selection) != 2 || opts.Selection[0] != "voda" || opts.Selection[1] != "kniga" {
		t.Errorf("Selection = %v, want [voda kniga]", opts.Selection)
	}
}

func TestSessionOptionsInvalidDirection(t *testing.T) {
	c := &cobra.Command{Use: "practice"}
	addSessionFlags(c)
	if err := c.ParseFlags([]string{"--direction", "en-fr"}); err != nil {
		t.Fatal(err)
	}

	if _, err := sessionOptions(c); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}

// The root command defines no session flags but runs the same TUI entry
// point; sessionOptions must degrade to the defaults there.
func TestSessionOptionsWithoutFlags(t *testing.T) {
	c := &cobra.Command{Use: "leksika"}

	opts, err := sessionOptions(c)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Length != 0 || opts.Direction != "" || len(opts.Selection) != 0 {
		t.Errorf("expected zero options, got %+v", opts)
	}
}
