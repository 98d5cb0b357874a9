package store

import (
	"encoding/json"
	"fmt"
	"time"

	"leksika/internal/srs"
)

const (
	historyKey = "session_history"

	// HistoryCap bounds the rolling session log; oldest entries evicted.
	HistoryCap = 50
)

// SessionRecord is one completed-session summary in the history log.
type SessionRecord struct {
	SessionID    string        `json:"sessionId"`
	Direction    srs.Direction `json:"direction"`
	Total        int           `json:"total"`
	Correct      int           `json:"correct"`
	Accuracy     float64       `json:"accuracy"`
	DurationSecs int           `json:"durationSecs"`
	Mistakes     []string      `json:"mistakes,omitempty"` // item IDs
	CompletedAt  time.Time     `json:"completedAt"`
}

// AppendHistory appends a completed-session record, evicting the oldest
// entries beyond HistoryCap.
func (s *Store) AppendHistory(rec SessionRecord) error {
	records, err := s.History()
	if err != nil {
		return err
	}
	records = append(records, rec)
	if len(records) > HistoryCap {
		records = records[len(records)-HistoryCap:]
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode session history: %w", err)
	}
	return s.put(historyKey, string(raw), rec.CompletedAt)
}

// History returns the session log, newest last. A corrupt log is treated
// as empty.
func (s *Store) History() ([]SessionRecord, error) {
	raw, found, err := s.get(historyKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var records []SessionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, nil
	}
	return records, nil
}
