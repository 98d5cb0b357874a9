package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"leksika/internal/srs"
)

func TestFrontBack(t *testing.T) {
	it := Item{ID: "voda", Word: "вода", Translation: "das Wasser"}

	if it.Front(srs.BgToDe) != "вода" {
		t.Errorf("bg-de front = %q", it.Front(srs.BgToDe))
	}
	if it.Back(srs.BgToDe) != "das Wasser" {
		t.Errorf("bg-de back = %q", it.Back(srs.BgToDe))
	}
	if it.Front(srs.DeToBg) != "das Wasser" {
		t.Errorf("de-bg front = %q", it.Front(srs.DeToBg))
	}
	if it.Back(srs.DeToBg) != "вода" {
		t.Errorf("de-bg back = %q", it.Back(srs.DeToBg))
	}
}

func TestNote_DirectionalWithFallback(t *testing.T) {
	it := Item{
		Notes: Notes{BgToDe: "production note", General: "general note"},
	}

	if got := it.Note(srs.BgToDe); got != "production note" {
		t.Errorf("bg-de note = %q", got)
	}
	// No de-bg note, fall back to general.
	if got := it.Note(srs.DeToBg); got != "general note" {
		t.Errorf("de-bg note = %q", got)
	}

	empty := Item{}
	if got := empty.Note(srs.BgToDe); got != "" {
		t.Errorf("note on empty item = %q", got)
	}
}

func TestLevelRank(t *testing.T) {
	if LevelRank("A1") >= LevelRank("B2") {
		t.Error("A1 should rank before B2")
	}
	if LevelRank("??") <= LevelRank("C2") {
		t.Error("unknown level should rank last")
	}
}

func TestLoadDefault_EmbeddedSeed(t *testing.T) {
	items, err := LoadDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("embedded seed should not be empty")
	}
	for _, it := range items {
		if it.ID == "" || it.Word == "" || it.Translation == "" {
			t.Fatalf("incomplete seed item: %+v", it)
		}
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	data := `{"schemaVersion":1,"items":[
		{"id":"grad","word":"град","translation":"die Stadt","level":"A1","category":"travel","frequency":800}
	]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "grad" {
		t.Errorf("items = %+v", items)
	}
}

func TestLoad_RejectsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	data := `{"schemaVersion":1,"items":[{"id":"grad","word":"град"}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected schema validation error for missing translation")
	}
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	data := `{"schemaVersion":1,"items":[
		{"id":"grad","word":"град","translation":"die Stadt"},
		{"id":"grad","word":"град","translation":"die Stadt"}
	]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for duplicate ids")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
