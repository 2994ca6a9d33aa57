package usecase

import "github.com/christianwondeson/sports-hub/internal/domain/match"

// Snapshot is the full by-league view of matches at one instant. League order
// is insertion order; match order within a league is source order. Snapshot
// itself is not goroutine safe, the store serializes access.
type Snapshot struct {
	order    []string
	byLeague map[string][]match.Match
}

func NewSnapshot() *Snapshot {
	return &Snapshot{byLeague: make(map[string][]match.Match)}
}

// Replace swaps one league's entry wholesale, leaving other leagues
// untouched. A league seen for the first time goes to the end of the order.
func (s *Snapshot) Replace(league string, matches []match.Match) {
	if _, ok := s.byLeague[league]; !ok {
		s.order = append(s.order, league)
	}
	s.byLeague[league] = matches
}

func (s *Snapshot) League(league string) []match.Match {
	return s.byLeague[league]
}

func (s *Snapshot) Leagues() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All flattens every league's matches in league order.
func (s *Snapshot) All() []match.Match {
	var out []match.Match
	for _, league := range s.order {
		out = append(out, s.byLeague[league]...)
	}
	return out
}

// HasLive reports whether any match anywhere in the snapshot is live.
func (s *Snapshot) HasLive() bool {
	for _, league := range s.order {
		for _, m := range s.byLeague[league] {
			if m.IsLive() {
				return true
			}
		}
	}
	return false
}

// Clone deep-copies the snapshot so a caller can hand out or mutate a copy
// without aliasing the store's state.
func (s *Snapshot) Clone() *Snapshot {
	clone := &Snapshot{
		order:    make([]string, len(s.order)),
		byLeague: make(map[string][]match.Match, len(s.byLeague)),
	}
	copy(clone.order, s.order)
	for league, matches := range s.byLeague {
		copied := make([]match.Match, len(matches))
		copy(copied, matches)
		clone.byLeague[league] = copied
	}
	return clone
}
