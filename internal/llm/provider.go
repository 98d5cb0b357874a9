package llm

import (
	"context"
	"fmt"

	"leksika/internal/srs"
	"leksika/internal/vocab"
)

// Enrichment is the structured output requested from the model: an
// example sentence in the source language, its translation, and an
// optional usage note.
type Enrichment struct {
	Example            string `json:"example"`
	ExampleTranslation string `json:"exampleTranslation"`
	Note               string `json:"note,omitempty"`
}

// Request describes the vocabulary item to enrich.
type Request struct {
	Item      vocab.Item
	Direction srs.Direction
}

// Provider generates enrichments for vocabulary items.
type Provider interface {
	// Enrich returns a validated Enrichment for the request.
	Enrich(ctx context.Context, req Request) (*Enrichment, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// enrichmentSchema constrains the model output. Providers pass it to
// their native structured-output mechanism and the shared parser
// validates against it again before trusting the response.
var enrichmentSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"example", "exampleTranslation"},
	"properties": map[string]any{
		"example": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"exampleTranslation": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"note": map[string]any{
			"type": "string",
		},
	},
}

const systemPrompt = `You are a bilingual Bulgarian-German lexicographer writing
flashcard material for adult learners. Keep example sentences short, natural and
level-appropriate. Respond with JSON only.`

func userPrompt(req Request) string {
	src, dst := "Bulgarian", "German"
	word, translation := req.Item.Word, req.Item.Translation
	if req.Direction == srs.DeToBg {
		src, dst = dst, src
		word, translation = translation, word
	}
	p := fmt.Sprintf(
		"Write one %s example sentence using %q (%s: %q), plus its %s translation.",
		src, word, dst, translation, dst,
	)
	if req.Item.Level != "" {
		p += fmt.Sprintf(" Target CEFR level %s.", req.Item.Level)
	}
	p += " Add a short usage note only if the word has a pitfall worth flagging."
	return p
}
