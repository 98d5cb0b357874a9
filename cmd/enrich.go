package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leksika/internal/llm"
	"leksika/internal/srs"
	"leksika/internal/vocab"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Generate example sentences for words without notes",
	Long: `Enrich asks a language model for an example sentence and usage note
for each vocabulary item that has none yet, and writes the result back to
the vocabulary file. Requires --data (the embedded word list is read-only)
and a configured provider (ANTHROPIC_API_KEY, OPENAI_API_KEY or
LEKSIKA_LLM_PROVIDER).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, _ := cmd.Flags().GetString("data")
		if dataPath == "" {
			dataPath = os.Getenv("LEKSIKA_DATA")
		}
		if dataPath == "" {
			return fmt.Errorf("enrich writes the vocabulary file back: pass --data or set LEKSIKA_DATA")
		}

		items, err := vocab.Load(dataPath)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		d, err := directionFlag(cmd, st)
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(llm.ConfigFromEnv())
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		enriched := 0
		for i := range items {
			if limit > 0 && enriched >= limit {
				break
			}
			if items[i].Note(d) != "" {
				continue
			}

			result, err := provider.Enrich(cmd.Context(), llm.Request{Item: items[i], Direction: d})
			if err != nil {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", items[i].ID, err)
				continue
			}

			note := result.Example + " — " + result.ExampleTranslation
			if result.Note != "" {
				note += " (" + result.Note + ")"
			}
			switch d {
			case srs.DeToBg:
				items[i].Notes.DeToBg = note
			default:
				items[i].Notes.BgToDe = note
			}
			enriched++
			fmt.Printf("  %s: %s\n", items[i].ID, result.Example)
		}

		if enriched == 0 {
			fmt.Println("Nothing to enrich.")
			return nil
		}
		if err := vocab.WriteFile(dataPath, items); err != nil {
			return err
		}
		fmt.Printf("Enriched %d items (model %s), wrote %s\n", enriched, provider.ModelID(), dataPath)
		return nil
	},
}

func init() {
	enrichCmd.Flags().Int("limit", 10, "Maximum number of items to enrich in one run")
	enrichCmd.Flags().String("direction", "", `Direction to enrich for ("bg-de" or "de-bg", default: stored preference)`)
}
