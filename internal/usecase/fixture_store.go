package usecase

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/christianwondeson/sports-hub/internal/domain/match"
	"github.com/christianwondeson/sports-hub/internal/platform/logging"
	"github.com/christianwondeson/sports-hub/internal/platform/scheduler"
)

const simulatedScoreChance = 0.1

// LeagueMatches is one league's slice of an ordered snapshot view.
type LeagueMatches struct {
	League  string
	Matches []match.Match
}

// FixtureStore owns the by-league fixtures snapshot, the active filter and
// the polling loop. It is seeded with mock data so consumers never see an
// empty dashboard before the first refresh lands. Upstream outages never put
// the store into an error state; the snapshot just goes stale.
type FixtureStore struct {
	provider FixtureProvider
	logger   *logging.Logger
	poller   *scheduler.Poller
	interval time.Duration

	mu       sync.RWMutex
	snapshot *Snapshot
	filter   string
	// runCtx is the process lifecycle context captured by Start. Every re-arm
	// of the poller derives from it, never from a request-scoped context, so a
	// finished HTTP request cannot take the polling cycle down with it.
	runCtx context.Context

	// refreshSeq tokens refreshes so a completion that was superseded while
	// in flight cannot overwrite newer state.
	refreshSeq atomic.Uint64

	// chance is the per-team score roll for the offline simulation,
	// replaceable in tests.
	chance func() float64
}

func NewFixtureStore(provider FixtureProvider, interval time.Duration, logger *logging.Logger) *FixtureStore {
	if logger == nil {
		logger = logging.Default()
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &FixtureStore{
		provider: provider,
		logger:   logger,
		poller:   scheduler.NewPoller(),
		interval: interval,
		snapshot: MockSnapshot(),
		filter:   match.FilterAll,
		runCtx:   context.Background(),
		chance:   rand.Float64,
	}
}

// Start issues the initial refresh and arms the periodic cycle. Each cycle
// runs either a refresh or, while the live filter is active, the local
// simulation pass; never both. The given context bounds the whole polling
// lifetime, including later re-arms.
func (s *FixtureStore) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	s.runCtx = ctx
	s.mu.Unlock()

	s.Refresh(ctx)
	s.arm()
}

// Stop releases the polling interval.
func (s *FixtureStore) Stop() {
	s.poller.Stop()
}

func (s *FixtureStore) arm() {
	s.mu.RLock()
	ctx := s.runCtx
	s.mu.RUnlock()

	s.poller.Arm(ctx, s.interval, func(tickCtx context.Context) {
		if s.ActiveFilter() == match.FilterLive {
			s.SimulateTick()
			return
		}
		s.Refresh(tickCtx)
	})
}

func (s *FixtureStore) ActiveFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetFilter switches the active view filter and re-arms the polling interval
// so the cycle kind matches the new filter immediately. Re-arming always uses
// the lifecycle context from Start, not the caller's.
func (s *FixtureStore) SetFilter(filter string) error {
	if !match.ValidFilter(filter) {
		return ErrInvalidInput
	}

	s.mu.Lock()
	changed := s.filter != filter
	s.filter = filter
	s.mu.Unlock()

	if changed {
		s.arm()
	}
	return nil
}

// View returns the snapshot with the given filter applied, in league
// insertion order. Leagues left empty by the filter are omitted. An empty
// filter string means the store's active filter.
func (s *FixtureStore) View(filter string) []LeagueMatches {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if filter == "" {
		filter = s.filter
	}

	var out []LeagueMatches
	for _, league := range s.snapshot.Leagues() {
		var kept []match.Match
		for _, m := range s.snapshot.League(league) {
			if m.MatchesFilter(filter) {
				kept = append(kept, m)
			}
		}
		if len(kept) > 0 {
			out = append(out, LeagueMatches{League: league, Matches: kept})
		}
	}
	return out
}

// Refresh fetches the primary league's upcoming fixtures and replaces that
// league's snapshot entry. When the feed has no live match, the league's
// bundled mock live matches are spliced in so the live filter is never empty.
// Every failure is swallowed after logging; the previous snapshot stays.
func (s *FixtureStore) Refresh(ctx context.Context) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureStore.Refresh")
	defer span.End()

	seq := s.refreshSeq.Add(1)

	fixtures, err := s.provider.UpcomingFixtures(ctx, PremierLeagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "fixtures refresh failed, keeping stale snapshot",
			"league_id", PremierLeagueID,
			"error", err,
		)
		return
	}

	matches := make([]match.Match, 0, len(fixtures))
	for _, fixture := range fixtures {
		matches = append(matches, ConvertFixture(fixture))
	}
	matches = spliceMockLive(PremierLeagueName, matches)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.refreshSeq.Load() {
		// A newer refresh finished while this one was in flight.
		s.logger.DebugContext(ctx, "discarding superseded refresh", "seq", seq)
		return
	}
	s.snapshot.Replace(PremierLeagueName, matches)
}

// spliceMockLive appends the league's bundled live matches when the fetched
// set has none, keeping the live view populated for demo continuity.
func spliceMockLive(league string, matches []match.Match) []match.Match {
	for _, m := range matches {
		if m.IsLive() {
			return matches
		}
	}
	return append(matches, MockLiveMatches(league)...)
}

// SimulateTick runs the offline liveliness pass: with no live match anywhere
// it injects the primary league's bundled live matches, otherwise it advances
// every live match's clock by one minute (clamped at 90) and rolls an
// independent 10% score increment per team. It mutates live matches only and
// is reached solely from live-filter cycles.
func (s *FixtureStore) SimulateTick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snapshot.HasLive() {
		s.snapshot.Replace(PremierLeagueName, MockLiveMatches(PremierLeagueName))
		return
	}

	for _, league := range s.snapshot.Leagues() {
		matches := s.snapshot.League(league)
		for i, m := range matches {
			if !m.IsLive() {
				continue
			}
			matches[i] = s.advanceLiveMatch(m)
		}
	}
}

func (s *FixtureStore) advanceLiveMatch(m match.Match) match.Match {
	minute := 0
	if m.Minute != nil {
		minute = *m.Minute
	}
	if minute < 90 {
		minute++
	}
	m.Minute = match.IntPtr(minute)

	if s.chance() < simulatedScoreChance {
		m.HomeScore = match.IntPtr(scoreValue(m.HomeScore) + 1)
	}
	if s.chance() < simulatedScoreChance {
		m.AwayScore = match.IntPtr(scoreValue(m.AwayScore) + 1)
	}
	return m
}

func scoreValue(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
