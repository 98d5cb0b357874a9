package vocab

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed seed.json
var seedData []byte

// fileSchema validates the vocabulary data file before decoding. A file
// that fails here is reported as a load error, not silently truncated.
const fileSchema = `{
	"type": "object",
	"required": ["items"],
	"properties": {
		"schemaVersion": {"type": "integer"},
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "word", "translation"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"word": {"type": "string", "minLength": 1},
					"translation": {"type": "string", "minLength": 1},
					"level": {"type": "string"},
					"category": {"type": "string"},
					"frequency": {"type": "integer", "minimum": 0},
					"etymology": {"type": "string"},
					"notes": {
						"type": "object",
						"properties": {
							"bgToDe": {"type": "string"},
							"deToBg": {"type": "string"},
							"general": {"type": "string"}
						}
					}
				}
			}
		}
	}
}`

type dataFile struct {
	SchemaVersion int    `json:"schemaVersion"`
	Items         []Item `json:"items"`
}

// Load reads and validates a vocabulary file. Duplicate IDs are rejected;
// the session layer keys all scheduling state by item ID.
func Load(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	items, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("vocabulary file %s: %w", path, err)
	}
	return items, nil
}

// LoadDefault loads the vocabulary from path when given, otherwise from
// the LEKSIKA_DATA env var, otherwise from the embedded seed list.
func LoadDefault(path string) ([]Item, error) {
	if path == "" {
		path = os.Getenv("LEKSIKA_DATA")
	}
	if path != "" {
		return Load(path)
	}
	items, err := parse(seedData)
	if err != nil {
		return nil, fmt.Errorf("embedded vocabulary: %w", err)
	}
	return items, nil
}

func parse(raw []byte) ([]Item, error) {
	if err := validateFile(raw); err != nil {
		return nil, err
	}

	var f dataFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	seen := make(map[string]bool, len(f.Items))
	for _, it := range f.Items {
		if seen[it.ID] {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}
	return f.Items, nil
}

func validateFile(raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	compiled, err := compiledFileSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

func compiledFileSchema() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(fileSchema)))
	if err != nil {
		return nil, fmt.Errorf("parse vocabulary schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://vocabulary.json", def); err != nil {
		return nil, fmt.Errorf("add vocabulary schema: %w", err)
	}
	compiled, err := c.Compile("schema://vocabulary.json")
	if err != nil {
		return nil, fmt.Errorf("compile vocabulary schema: %w", err)
	}
	return compiled, nil
}

// WriteFile writes items back out as a vocabulary data file. Used by the
// enrich command to persist generated notes.
func WriteFile(path string, items []Item) error {
	f := dataFile{SchemaVersion: 1, Items: items}
	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write vocabulary file: %w", err)
	}
	return nil
}
