package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"leksika/internal/srs"
)

const (
	// unifiedPrefix keys one record per (item, direction) pair.
	unifiedPrefix = "review_"
	// legacyPrefix is the old single-direction schema, read-only.
	legacyPrefix = "review:"
)

// reviewKey builds the unified storage key for an (item, direction) pair.
func reviewKey(itemID string, d srs.Direction) string {
	return fmt.Sprintf("%s%s_%s", unifiedPrefix, itemID, d)
}

func legacyKey(itemID string) string {
	return legacyPrefix + itemID
}

// LoadState returns the review state for an (item, direction) pair.
//
// Lookup order: unified key, then legacy key (migrated and persisted under
// the unified key on first read), then a freshly initialized state. The
// sequence is idempotent: repeated calls with no intervening grade return
// the same state and never re-migrate. A corrupt stored record is treated
// as absent.
func (s *Store) LoadState(itemID string, d srs.Direction, now time.Time) (srs.ReviewState, error) {
	raw, found, err := s.get(reviewKey(itemID, d))
	if err != nil {
		return srs.ReviewState{}, err
	}
	if found {
		var st srs.ReviewState
		if jsonErr := json.Unmarshal([]byte(raw), &st); jsonErr == nil && st.ItemID != "" {
			return st, nil
		}
		// Malformed record: fall through to fresh init.
	}

	if st, ok, err := s.migrateLegacy(itemID, d, now); err != nil {
		return srs.ReviewState{}, err
	} else if ok {
		return st, nil
	}

	return srs.NewReviewState(itemID, d, now), nil
}

// SaveState writes a review state under its unified key. It fails with
// ErrStorageQuota when the record quota is reached and the key is new.
func (s *Store) SaveState(st srs.ReviewState) error {
	if !st.Direction.Valid() {
		return fmt.Errorf("save state for %q: invalid direction %q", st.ItemID, st.Direction)
	}

	key := reviewKey(st.ItemID, st.Direction)
	if s.MaxRecords > 0 {
		_, exists, err := s.get(key)
		if err != nil {
			return err
		}
		if !exists {
			n, err := s.countByPrefix(unifiedPrefix)
			if err != nil {
				return err
			}
			if n >= s.MaxRecords {
				return fmt.Errorf("%w: %d records", ErrStorageQuota, n)
			}
		}
	}

	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode review state: %w", err)
	}
	return s.put(key, string(raw), st.UpdatedAt)
}

// SaveStateEvicting saves a state, and on a quota failure evicts the
// oldest-reviewed fifth of the records and retries once.
func (s *Store) SaveStateEvicting(st srs.ReviewState) error {
	err := s.SaveState(st)
	if err == nil || !errors.Is(err, ErrStorageQuota) {
		return err
	}

	n, countErr := s.countByPrefix(unifiedPrefix)
	if countErr != nil {
		return countErr
	}
	evict := n / 5
	if evict < 1 {
		evict = 1
	}
	if err := s.deleteOldestByPrefix(unifiedPrefix, evict); err != nil {
		return err
	}
	return s.SaveState(st)
}

// DueStates returns every stored state with NextReviewAt at or before now,
// optionally filtered by direction (empty direction = both).
func (s *Store) DueStates(d srs.Direction, now time.Time) ([]srs.ReviewState, error) {
	all, err := s.allStates(d)
	if err != nil {
		return nil, err
	}
	due := all[:0]
	for _, st := range all {
		if st.IsDue(now) {
			due = append(due, st)
		}
	}
	return due, nil
}

// ReviewedIDs returns the set of item IDs with a stored state for the
// given direction. The picker uses it to tell new items from tracked ones.
func (s *Store) ReviewedIDs(d srs.Direction) (map[string]bool, error) {
	all, err := s.allStates(d)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(all))
	for _, st := range all {
		ids[st.ItemID] = true
	}
	return ids, nil
}

// Stats aggregates the stored review states for a direction (empty = both).
type Stats struct {
	Total          int     `json:"total"`
	Due            int     `json:"due"`
	AvgEaseFactor  float64 `json:"avgEaseFactor"`
	AvgAccuracy    float64 `json:"avgAccuracy"`
	TotalReviews   int     `json:"totalReviews"`
	CorrectAnswers int     `json:"correctAnswers"`
}

// ReviewStats scans all stored states and aggregates them.
func (s *Store) ReviewStats(d srs.Direction, now time.Time) (Stats, error) {
	all, err := s.allStates(d)
	if err != nil {
		return Stats{}, err
	}

	var out Stats
	var efSum, accSum float64
	for _, st := range all {
		out.Total++
		if st.IsDue(now) {
			out.Due++
		}
		efSum += st.EaseFactor
		accSum += st.Accuracy()
		out.TotalReviews += st.TotalReviews
		out.CorrectAnswers += st.CorrectAnswers
	}
	if out.Total > 0 {
		out.AvgEaseFactor = round2(efSum / float64(out.Total))
		out.AvgAccuracy = round2(accSum / float64(out.Total))
	}
	return out, nil
}

// Clear removes every review record, unified and legacy.
func (s *Store) Clear() error {
	for _, pattern := range []string{unifiedPrefix + "*", legacyPrefix + "*"} {
		if _, err := s.db.Exec("DELETE FROM kv WHERE key GLOB ?", pattern); err != nil {
			return fmt.Errorf("clear reviews: %w", err)
		}
	}
	return nil
}

// allStates scans unified records, skipping corrupt ones.
func (s *Store) allStates(d srs.Direction) ([]srs.ReviewState, error) {
	values, err := s.valuesByPrefix(unifiedPrefix)
	if err != nil {
		return nil, err
	}
	states := make([]srs.ReviewState, 0, len(values))
	for _, raw := range values {
		var st srs.ReviewState
		if err := json.Unmarshal([]byte(raw), &st); err != nil || st.ItemID == "" {
			continue // corrupt record, treated as absent
		}
		if d != "" && st.Direction != d {
			continue
		}
		states = append(states, st)
	}
	return states, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
