package store

import (
	"time"

	"leksika/internal/srs"
)

// directionKey holds the learning-direction preference.
const directionKey = "learning_direction"

// Direction returns the stored learning direction, defaulting to bg-de.
func (s *Store) Direction() srs.Direction {
	raw, found, err := s.get(directionKey)
	if err != nil || !found {
		return srs.BgToDe
	}
	d, err := srs.ParseDirection(raw)
	if err != nil {
		return srs.BgToDe
	}
	return d
}

// SetDirection persists the learning direction and synchronously notifies
// subscribers. This replaces the old broadcast-event mechanism: whoever
// owns the preference invokes the registered callbacks directly.
func (s *Store) SetDirection(d srs.Direction) error {
	if !d.Valid() {
		d = srs.BgToDe
	}
	if err := s.put(directionKey, string(d), time.Now()); err != nil {
		return err
	}
	for _, fn := range s.directionSubs {
		fn(string(d))
	}
	return nil
}

// SubscribeDirection registers a callback invoked on every direction
// change. Callbacks run synchronously, in registration order.
func (s *Store) SubscribeDirection(fn func(d srs.Direction)) {
	s.directionSubs = append(s.directionSubs, func(raw string) {
		d, err := srs.ParseDirection(raw)
		if err != nil {
			return
		}
		fn(d)
	})
}
