package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"leksika/internal/srs"
)

// ExportBlob is the schema-versioned bulk transfer format.
type ExportBlob struct {
	SchemaVersion int               `json:"schemaVersion"`
	ExportedAt    time.Time         `json:"exportedAt"`
	Records       []srs.ReviewState `json:"records"`
}

// ImportResult reports what ImportAll did with the blob.
type ImportResult struct {
	Imported int
	Skipped  int
}

// envelopeSchema validates the outer export structure. Individual records
// get field-level validation so one bad record skips, not fails, the batch.
const envelopeSchema = `{
	"type": "object",
	"required": ["schemaVersion", "records"],
	"properties": {
		"schemaVersion": {"type": "integer", "minimum": 1},
		"records": {"type": "array", "items": {"type": "object"}}
	}
}`

var (
	envelopeOnce     sync.Once
	envelopeCompiled *jsonschema.Schema
	envelopeErr      error
)

// ExportAll serializes every stored review record.
func (s *Store) ExportAll(now time.Time) (ExportBlob, error) {
	states, err := s.allStates("")
	if err != nil {
		return ExportBlob{}, err
	}
	return ExportBlob{
		SchemaVersion: srs.SchemaVersion,
		ExportedAt:    now.UTC(),
		Records:       states,
	}, nil
}

// ImportAll validates and stores the records in raw. Malformed records are
// counted as skipped rather than failing the whole batch; a malformed
// envelope fails outright.
func (s *Store) ImportAll(raw []byte) (ImportResult, error) {
	if err := validateEnvelope(raw); err != nil {
		return ImportResult{}, err
	}

	var blob ExportBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return ImportResult{}, fmt.Errorf("decode import blob: %w", err)
	}

	var res ImportResult
	for _, st := range blob.Records {
		if !validRecord(st) {
			res.Skipped++
			continue
		}
		if st.UpdatedAt.IsZero() {
			st.UpdatedAt = time.Now().UTC()
		}
		if err := s.SaveStateEvicting(st); err != nil {
			return res, err
		}
		res.Imported++
	}
	return res, nil
}

// validRecord checks the invariants a usable review record must satisfy.
func validRecord(st srs.ReviewState) bool {
	switch {
	case st.ItemID == "":
		return false
	case !st.Direction.Valid():
		return false
	case st.EaseFactor < srs.MinEaseFactor:
		return false
	case st.Interval < 1:
		return false
	case st.Repetitions < 0 || st.TotalReviews < 0:
		return false
	case st.CorrectAnswers > st.TotalReviews:
		return false
	case st.NextReviewAt.IsZero():
		return false
	}
	return true
}

func validateEnvelope(raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse import blob: %w", err)
	}

	envelopeOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(envelopeSchema)))
		if err != nil {
			envelopeErr = fmt.Errorf("parse envelope schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://export.json", def); err != nil {
			envelopeErr = fmt.Errorf("add envelope schema: %w", err)
			return
		}
		envelopeCompiled, envelopeErr = c.Compile("schema://export.json")
	})
	if envelopeErr != nil {
		return envelopeErr
	}

	if err := envelopeCompiled.Validate(doc); err != nil {
		return fmt.Errorf("import blob rejected: %w", err)
	}
	return nil
}
