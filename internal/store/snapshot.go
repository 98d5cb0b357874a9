package store

import (
	"encoding/json"
	"fmt"
	"time"

	"leksika/internal/srs"
)

const (
	snapshotKey = "practice_snapshot"

	// SnapshotMaxAge is the freshness window for session recovery,
	// checked lazily on load.
	SnapshotMaxAge = time.Hour
)

// PracticeSnapshot captures an in-flight session for recovery after an
// interruption. It is not part of the durable review history.
type PracticeSnapshot struct {
	SessionID    string        `json:"sessionId"`
	Direction    srs.Direction `json:"direction"`
	ItemIDs      []string      `json:"itemIds"`
	CurrentIndex int           `json:"currentIndex"`
	Correct      int           `json:"correct"`
	Total        int           `json:"total"`
	Mistakes     []string      `json:"mistakes,omitempty"`
	StartedAt    time.Time     `json:"startedAt"`
	LastSavedAt  time.Time     `json:"lastSavedAt"`
}

// SaveSnapshot overwrites the recovery snapshot.
func (s *Store) SaveSnapshot(snap PracticeSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.put(snapshotKey, string(raw), snap.LastSavedAt)
}

// LoadSnapshot returns a resumable snapshot, or nil when none is usable.
// Expired, fully consumed and corrupt snapshots are discarded here rather
// than surfaced as errors.
func (s *Store) LoadSnapshot(now time.Time) (*PracticeSnapshot, error) {
	raw, found, err := s.get(snapshotKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var snap PracticeSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		_ = s.DiscardSnapshot()
		return nil, nil
	}

	stale := now.Sub(snap.LastSavedAt) > SnapshotMaxAge
	consumed := snap.CurrentIndex >= len(snap.ItemIDs)
	invalid := snap.SessionID == "" || len(snap.ItemIDs) == 0 || !snap.Direction.Valid()
	if stale || consumed || invalid {
		_ = s.DiscardSnapshot()
		return nil, nil
	}
	return &snap, nil
}

// DiscardSnapshot removes the recovery snapshot.
func (s *Store) DiscardSnapshot() error {
	return s.delete(snapshotKey)
}
