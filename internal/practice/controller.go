package practice

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leksika/internal/picker"
	"leksika/internal/srs"
	"leksika/internal/store"
	"leksika/internal/vocab"
)

// DefaultSessionLength is the card count when the caller doesn't ask for
// a specific one.
const DefaultSessionLength = 10

// Phase is the coarse session state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseNoItems
	PhaseInSession
	PhaseComplete
)

// ErrNotInSession is returned by Flip/Grade outside an active session.
var ErrNotInSession = errors.New("no active session")

// ErrNotFlipped is returned when grading an unrevealed card.
var ErrNotFlipped = errors.New("card not flipped")

// ErrNoMistakes is returned by ReviewMistakesOnly after a clean session.
var ErrNoMistakes = errors.New("no mistakes to review")

// Store is the persistence surface the controller needs. *store.Store
// satisfies it; tests substitute fakes.
type Store interface {
	LoadState(itemID string, d srs.Direction, now time.Time) (srs.ReviewState, error)
	SaveStateEvicting(st srs.ReviewState) error
	DueStates(d srs.Direction, now time.Time) ([]srs.ReviewState, error)
	ReviewedIDs(d srs.Direction) (map[string]bool, error)
	SaveSnapshot(snap store.PracticeSnapshot) error
	LoadSnapshot(now time.Time) (*store.PracticeSnapshot, error)
	DiscardSnapshot() error
	AppendHistory(rec store.SessionRecord) error
}

// Stats is the running tally for the current session.
type Stats struct {
	Correct  int
	Total    int
	Mistakes []string // item IDs graded below the pass threshold
}

// Deps are the controller's injected collaborators. No globals: tests
// pass fakes, the app passes the real store and scheduler.
type Deps struct {
	Store     Store
	Scheduler *srs.Scheduler
	Picker    *picker.Picker

	// Pool is the loaded vocabulary; PoolErr carries a load failure that
	// Start surfaces through the NoItems phase.
	Pool    []vocab.Item
	PoolErr error

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Options configures one session.
type Options struct {
	// Selection, when set, is the exact card list (due scan bypassed).
	Selection []string
	Length    int
	Direction srs.Direction
}

// Controller drives a practice session: card sequencing, flip/grade
// transitions, statistics, autosave and recovery.
type Controller struct {
	deps      Deps
	direction srs.Direction

	sessionID string
	cards     []vocab.Item
	index     int
	flipped   bool
	phase     Phase
	stats     Stats
	startedAt time.Time

	loadErr error
	warning string
}

// New creates a Controller in the Loading phase.
func New(deps Deps) *Controller {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &Controller{deps: deps, phase: PhaseLoading}
}

// Start assembles the card list and enters the session. An empty
// candidate list (or a vocabulary load failure) lands in NoItems.
func (c *Controller) Start(opts Options) error {
	c.direction = vocab.DirectionOrDefault(opts.Direction)
	c.resetStats()
	c.index = 0
	c.flipped = false

	if c.deps.PoolErr != nil {
		c.phase = PhaseNoItems
		c.loadErr = c.deps.PoolErr
		return nil
	}
	if len(c.deps.Pool) == 0 {
		c.phase = PhaseNoItems
		c.loadErr = errors.New("vocabulary is empty")
		return nil
	}

	now := c.deps.Clock()
	length := opts.Length
	if length <= 0 {
		length = DefaultSessionLength
	}

	due, err := c.deps.Store.DueStates(c.direction, now)
	if err != nil {
		return fmt.Errorf("scan due items: %w", err)
	}
	reviewed, err := c.deps.Store.ReviewedIDs(c.direction)
	if err != nil {
		return fmt.Errorf("scan reviewed items: %w", err)
	}

	c.cards = c.deps.Picker.Assemble(c.deps.Pool, picker.Request{
		Selection: opts.Selection,
		Length:    length,
		Due:       due,
		Reviewed:  reviewed,
		Now:       now,
	})
	if len(c.cards) == 0 {
		c.phase = PhaseNoItems
		c.loadErr = errors.New("no cards available")
		return nil
	}

	c.sessionID = uuid.New().String()
	c.startedAt = now
	c.phase = PhaseInSession
	c.autosave()
	return nil
}

// ResumeAvailable returns a usable recovery snapshot, or nil. Snapshots
// referencing items missing from the pool are discarded as invalid.
func (c *Controller) ResumeAvailable() *store.PracticeSnapshot {
	snap, err := c.deps.Store.LoadSnapshot(c.deps.Clock())
	if err != nil || snap == nil {
		return nil
	}
	byID := c.poolIndex()
	for _, id := range snap.ItemIDs {
		if _, ok := byID[id]; !ok {
			_ = c.deps.Store.DiscardSnapshot()
			return nil
		}
	}
	return snap
}

// Resume restores a session from snap, entering InSession at the saved
// card index.
func (c *Controller) Resume(snap *store.PracticeSnapshot) {
	byID := c.poolIndex()
	cards := make([]vocab.Item, 0, len(snap.ItemIDs))
	for _, id := range snap.ItemIDs {
		if it, ok := byID[id]; ok {
			cards = append(cards, it)
		}
	}

	c.sessionID = snap.SessionID
	c.direction = vocab.DirectionOrDefault(snap.Direction)
	c.cards = cards
	c.index = snap.CurrentIndex
	c.flipped = false
	c.stats = Stats{Correct: snap.Correct, Total: snap.Total, Mistakes: append([]string(nil), snap.Mistakes...)}
	c.startedAt = snap.StartedAt
	c.phase = PhaseInSession
}

// DeclineResume discards the pending snapshot.
func (c *Controller) DeclineResume() {
	_ = c.deps.Store.DiscardSnapshot()
}

// Flip reveals the current card's answer side.
func (c *Controller) Flip() {
	if c.phase == PhaseInSession {
		c.flipped = true
	}
}

// Grade scores the current card with an SM-2 grade, persists the new
// review state and advances to the next card. Grading an unflipped card
// or an out-of-range grade leaves the session untouched.
func (c *Controller) Grade(grade int) error {
	if c.phase != PhaseInSession {
		return ErrNotInSession
	}
	if !c.flipped {
		return ErrNotFlipped
	}

	now := c.deps.Clock()
	card := c.cards[c.index]

	state, err := c.deps.Store.LoadState(card.ID, c.direction, now)
	if err != nil {
		return fmt.Errorf("load review state: %w", err)
	}
	next, err := c.deps.Scheduler.ScheduleNext(state, grade, now)
	if err != nil {
		return err
	}

	// A storage failure downgrades to memory-only for this write; grades
	// already scored stay scored.
	if err := c.deps.Store.SaveStateEvicting(next); err != nil {
		c.warning = fmt.Sprintf("review state for %q not persisted: %v", card.ID, err)
	}

	c.stats.Total++
	if grade >= srs.PassThreshold {
		c.stats.Correct++
	} else {
		c.stats.Mistakes = append(c.stats.Mistakes, card.ID)
	}

	c.index++
	c.flipped = false
	if c.index >= len(c.cards) {
		c.complete(now)
		return nil
	}
	c.autosave()
	return nil
}

// End finishes the session early with whatever stats have accrued.
// Already persisted grades are not rolled back.
func (c *Controller) End() {
	if c.phase != PhaseInSession {
		return
	}
	c.complete(c.deps.Clock())
}

// Restart re-enters the session with the same card list and fresh stats.
func (c *Controller) Restart() error {
	if len(c.cards) == 0 {
		return ErrNotInSession
	}
	c.sessionID = uuid.New().String()
	c.resetStats()
	c.index = 0
	c.flipped = false
	c.startedAt = c.deps.Clock()
	c.phase = PhaseInSession
	c.autosave()
	return nil
}

// ReviewMistakesOnly restarts with only the cards graded below the pass
// threshold in the finished session.
func (c *Controller) ReviewMistakesOnly() error {
	if len(c.stats.Mistakes) == 0 {
		return ErrNoMistakes
	}

	byID := c.poolIndex()
	seen := make(map[string]bool, len(c.stats.Mistakes))
	var cards []vocab.Item
	for _, id := range c.stats.Mistakes {
		if seen[id] {
			continue
		}
		seen[id] = true
		if it, ok := byID[id]; ok {
			cards = append(cards, it)
		}
	}
	if len(cards) == 0 {
		return ErrNoMistakes
	}

	c.cards = cards
	return c.Restart()
}

// Phase reports the current session phase.
func (c *Controller) Phase() Phase { return c.phase }

// Direction reports the direction the session was started with.
func (c *Controller) Direction() srs.Direction { return c.direction }

// Current returns the card being shown, if any.
func (c *Controller) Current() (vocab.Item, bool) {
	if c.phase != PhaseInSession || c.index >= len(c.cards) {
		return vocab.Item{}, false
	}
	return c.cards[c.index], true
}

// Index is the zero-based position of the current card.
func (c *Controller) Index() int { return c.index }

// Len is the session's card count.
func (c *Controller) Len() int { return len(c.cards) }

// IsFlipped reports whether the current card's answer is revealed.
func (c *Controller) IsFlipped() bool { return c.flipped }

// Stats returns the running tally.
func (c *Controller) Stats() Stats { return c.stats }

// Err returns the reason the session landed in NoItems, if it did.
func (c *Controller) Err() error { return c.loadErr }

// Warning returns the latest non-fatal persistence warning, if any.
func (c *Controller) Warning() string { return c.warning }

// MistakeItems resolves the session's mistakes back to vocabulary items,
// deduplicated in first-miss order.
func (c *Controller) MistakeItems() []vocab.Item {
	byID := c.poolIndex()
	seen := make(map[string]bool, len(c.stats.Mistakes))
	var out []vocab.Item
	for _, id := range c.stats.Mistakes {
		if seen[id] {
			continue
		}
		seen[id] = true
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

func (c *Controller) complete(now time.Time) {
	c.phase = PhaseComplete
	rec := store.SessionRecord{
		SessionID:    c.sessionID,
		Direction:    c.direction,
		Total:        c.stats.Total,
		Correct:      c.stats.Correct,
		Accuracy:     c.accuracy(),
		DurationSecs: int(now.Sub(c.startedAt).Seconds()),
		Mistakes:     append([]string(nil), c.stats.Mistakes...),
		CompletedAt:  now,
	}
	if err := c.deps.Store.AppendHistory(rec); err != nil {
		c.warning = fmt.Sprintf("session history not persisted: %v", err)
	}
	_ = c.deps.Store.DiscardSnapshot()
}

// autosave writes the recovery snapshot. Fire-and-forget: a failed
// autosave never interrupts the session.
func (c *Controller) autosave() {
	now := c.deps.Clock()
	ids := make([]string, len(c.cards))
	for i, it := range c.cards {
		ids[i] = it.ID
	}
	_ = c.deps.Store.SaveSnapshot(store.PracticeSnapshot{
		SessionID:    c.sessionID,
		Direction:    c.direction,
		ItemIDs:      ids,
		CurrentIndex: c.index,
		Correct:      c.stats.Correct,
		Total:        c.stats.Total,
		Mistakes:     append([]string(nil), c.stats.Mistakes...),
		StartedAt:    c.startedAt,
		LastSavedAt:  now,
	})
}

func (c *Controller) resetStats() {
	c.stats = Stats{}
	c.loadErr = nil
	c.warning = ""
}

func (c *Controller) poolIndex() map[string]vocab.Item {
	byID := make(map[string]vocab.Item, len(c.deps.Pool))
	for _, it := range c.deps.Pool {
		byID[it.ID] = it
	}
	return byID
}

func (c *Controller) accuracy() float64 {
	if c.stats.Total == 0 {
		return 0
	}
	return float64(c.stats.Correct) / float64(c.stats.Total)
}
