package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/christianwondeson/sports-hub/internal/domain/match"
	"github.com/christianwondeson/sports-hub/internal/domain/matchevent"
	"github.com/christianwondeson/sports-hub/internal/platform/logging"
)

// MatchDetail is one match plus its ordered event sequence and, when the
// lookup succeeded, the league metadata for the header.
type MatchDetail struct {
	Match  match.Match
	Events []matchevent.Event
	League *UpstreamLeague
}

// MatchDetailService resolves one match id through a layered fallback chain:
// bundled demo data for the pinned ids, then the feed's fixture record, then
// either the discrete timeline or the fixture's embedded goal/card strings.
type MatchDetailService struct {
	provider FixtureProvider
	leagues  *LeagueService
	logger   *logging.Logger
}

func NewMatchDetailService(provider FixtureProvider, leagues *LeagueService, logger *logging.Logger) *MatchDetailService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchDetailService{
		provider: provider,
		leagues:  leagues,
		logger:   logger,
	}
}

// Load resolves a match detail. An absent id and the demo id resolve to the
// bundled demo set without any network call. A fixture id the feed has no
// record for is a genuine not-found error, never masked by mock data. A
// failing timeline fetch degrades to the embedded-string parse instead.
func (s *MatchDetailService) Load(ctx context.Context, matchID string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDetailService.Load")
	defer span.End()

	switch matchID {
	case "", DemoMatchID:
		return MatchDetail{Match: DemoMatch(), Events: DemoEvents()}, nil
	case KnownBadFixtureID:
		return MatchDetail{Match: KnownBadFixtureMatch(), Events: KnownBadFixtureEvents()}, nil
	}

	fixture, found, err := s.provider.FixtureByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("%w: load match %s: %v", ErrDependencyUnavailable, matchID, err)
	}
	if !found {
		return MatchDetail{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	detail := MatchDetail{Match: ConvertFixture(fixture)}

	// The timeline and the league header lookup are independent; run both
	// while the caller waits once.
	var (
		timeline    []UpstreamTimelineEntry
		timelineErr error
		league      UpstreamLeague
		leagueErr   error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		timeline, timelineErr = s.provider.Timeline(ctx, matchID)
	})
	if s.leagues != nil && detail.Match.LeagueID != "" {
		wg.Go(func() {
			league, leagueErr = s.leagues.GetByID(ctx, detail.Match.LeagueID)
		})
	}
	wg.Wait()

	switch {
	case timelineErr != nil:
		s.logger.WarnContext(ctx, "timeline fetch failed, falling back to embedded details",
			"match_id", matchID,
			"error", timelineErr,
		)
		detail.Events = AssembleFixtureEvents(fixture)
	case len(timeline) > 0:
		detail.Events = NormalizeTimeline(timeline)
	default:
		detail.Events = AssembleFixtureEvents(fixture)
	}

	if leagueErr != nil {
		s.logger.DebugContext(ctx, "league lookup failed, detail stays unenriched",
			"league_id", detail.Match.LeagueID,
			"error", leagueErr,
		)
	} else if s.leagues != nil && detail.Match.LeagueID != "" {
		detail.League = &league
		if detail.Match.Season == "" {
			detail.Match.Season = league.CurrentSeason
		}
	}

	return detail, nil
}
