package picker

import (
	"math/rand"
	"sort"
	"time"

	"leksika/internal/srs"
	"leksika/internal/vocab"
)

// Score computes the urgency of a due review state. Overdue, historically
// difficult items float up; items on a long correct streak sink even when
// nominally due. Never negative.
func Score(st srs.ReviewState, now time.Time) float64 {
	score := st.OverdueDays(now) * 10
	score += (3.0 - st.EaseFactor) * 5
	if st.CorrectStreak == 0 && st.TotalReviews > 0 {
		score += 15 // recently lapsed
	}
	suppression := float64(st.CorrectStreak) * 2
	if suppression > 20 {
		suppression = 20
	}
	score -= suppression
	if score < 0 {
		return 0
	}
	return score
}

// Request describes what a session needs from the picker.
type Request struct {
	// Selection bypasses scoring entirely: the session is exactly these
	// item IDs, in order (unknown IDs dropped).
	Selection []string

	// Length is the target card count. Ignored for explicit selections.
	Length int

	// Due holds the due review states for the session's direction.
	Due []srs.ReviewState

	// Reviewed is the set of item IDs with any stored state for the
	// direction, due or not.
	Reviewed map[string]bool

	Now time.Time
}

// Picker assembles session card lists.
type Picker struct {
	rng *rand.Rand
}

// New creates a Picker. The seed only affects the random fallback tier.
func New(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Assemble builds the ordered card list for a session from pool:
// explicit selection, then due items by descending score, then new items
// (easy and frequent first), then a random pad from the rest of the pool.
func (p *Picker) Assemble(pool []vocab.Item, req Request) []vocab.Item {
	byID := make(map[string]vocab.Item, len(pool))
	for _, it := range pool {
		byID[it.ID] = it
	}

	if len(req.Selection) > 0 {
		out := make([]vocab.Item, 0, len(req.Selection))
		for _, id := range req.Selection {
			if it, ok := byID[id]; ok {
				out = append(out, it)
			}
		}
		return out
	}

	length := req.Length
	if length <= 0 || length > len(pool) {
		length = len(pool)
	}

	out := make([]vocab.Item, 0, length)
	used := make(map[string]bool, length)

	// Tier 1: due items, most urgent first.
	due := make([]srs.ReviewState, len(req.Due))
	copy(due, req.Due)
	sort.SliceStable(due, func(i, j int) bool {
		si, sj := Score(due[i], req.Now), Score(due[j], req.Now)
		if si != sj {
			return si > sj
		}
		return due[i].ItemID < due[j].ItemID
	})
	for _, st := range due {
		if len(out) == length {
			return out
		}
		it, ok := byID[st.ItemID]
		if !ok || used[it.ID] {
			continue
		}
		out = append(out, it)
		used[it.ID] = true
	}

	// Tier 2: never-reviewed items, easy and common words first.
	var fresh []vocab.Item
	for _, it := range pool {
		if !used[it.ID] && !req.Reviewed[it.ID] {
			fresh = append(fresh, it)
		}
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		ri, rj := vocab.LevelRank(fresh[i].Level), vocab.LevelRank(fresh[j].Level)
		if ri != rj {
			return ri < rj
		}
		if fresh[i].Frequency != fresh[j].Frequency {
			return fresh[i].Frequency > fresh[j].Frequency
		}
		return fresh[i].ID < fresh[j].ID
	})
	for _, it := range fresh {
		if len(out) == length {
			return out
		}
		out = append(out, it)
		used[it.ID] = true
	}

	// Tier 3: random pad from whatever remains (tracked but not due).
	var rest []vocab.Item
	for _, it := range pool {
		if !used[it.ID] {
			rest = append(rest, it)
		}
	}
	p.rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	for _, it := range rest {
		if len(out) == length {
			break
		}
		out = append(out, it)
	}
	return out
}
