package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/christianwondeson/sports-hub/internal/platform/cache"
	"github.com/christianwondeson/sports-hub/internal/platform/logging"
)

// LeagueService serves league metadata lookups through the TTL cache so
// repeated dashboard visits do not hammer the feed.
type LeagueService struct {
	provider FixtureProvider
	store    *cache.Store
	logger   *logging.Logger
}

func NewLeagueService(provider FixtureProvider, store *cache.Store, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		provider: provider,
		store:    store,
		logger:   logger,
	}
}

func (s *LeagueService) GetByID(ctx context.Context, leagueID string) (UpstreamLeague, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetByID")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return UpstreamLeague{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		league, found, err := s.provider.LeagueByID(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("lookup league: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
		}
		return league, nil
	}

	if s.store == nil {
		value, err := load(ctx)
		if err != nil {
			return UpstreamLeague{}, err
		}
		return value.(UpstreamLeague), nil
	}

	value, err := s.store.GetOrLoad(ctx, "league:"+leagueID, load)
	if err != nil {
		return UpstreamLeague{}, err
	}

	league, ok := value.(UpstreamLeague)
	if !ok {
		return UpstreamLeague{}, fmt.Errorf("unexpected cache payload type %T", value)
	}
	return league, nil
}
