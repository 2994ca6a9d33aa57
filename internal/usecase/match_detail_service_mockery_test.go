package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/christianwondeson/sports-hub/internal/domain/matchevent"
	usecasemock "github.com/christianwondeson/sports-hub/internal/mocks/usecase"
	"github.com/christianwondeson/sports-hub/internal/platform/cache"
	"github.com/christianwondeson/sports-hub/internal/platform/logging"
	"github.com/christianwondeson/sports-hub/internal/usecase"
)

func TestMatchDetailService_DemoIDNeverHitsNetwork(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFixtureProvider(t)
	service := usecase.NewMatchDetailService(provider, nil, logging.NewNop())

	for _, id := range []string{"", usecase.DemoMatchID} {
		detail, err := service.Load(context.Background(), id)
		if err != nil {
			t.Fatalf("load %q: %v", id, err)
		}
		if detail.Match.ID != usecase.DemoMatchID {
			t.Fatalf("load %q returned match %q", id, detail.Match.ID)
		}
		if len(detail.Events) != 20 {
			t.Fatalf("demo timeline has %d events, want 20", len(detail.Events))
		}
	}
	// No expectations were set; any provider call would fail the test.
}

func TestMatchDetailService_KnownBadIDServedFromBundle(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFixtureProvider(t)
	service := usecase.NewMatchDetailService(provider, nil, logging.NewNop())

	detail, err := service.Load(context.Background(), usecase.KnownBadFixtureID)
	if err != nil {
		t.Fatalf("load known-bad id: %v", err)
	}
	if detail.Match.HomeTeam.Name != "Real Madrid" || detail.Match.AwayTeam.Name != "Valencia" {
		t.Fatalf("pinned match: %+v", detail.Match)
	}
	if len(detail.Events) != 4 {
		t.Fatalf("pinned timeline has %d events, want 4", len(detail.Events))
	}
}

func TestMatchDetailService_NotFound(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFixtureProvider(t)
	provider.
		On("FixtureByID", mock.Anything, "999999").
		Return(usecase.UpstreamFixture{}, false, nil).
		Once()

	service := usecase.NewMatchDetailService(provider, nil, logging.NewNop())

	_, err := service.Load(context.Background(), "999999")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchDetailService_ProviderFailure(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFixtureProvider(t)
	provider.
		On("FixtureByID", mock.Anything, "602135").
		Return(usecase.UpstreamFixture{}, false, errors.New("upstream down")).
		Once()

	service := usecase.NewMatchDetailService(provider, nil, logging.NewNop())

	_, err := service.Load(context.Background(), "602135")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestMatchDetailService_TimelineWinsOverEmbeddedDetails(t *testing.T) {
	t.Parallel()

	fixture := usecase.UpstreamFixture{
		ID:              "602135",
		LeagueID:        "4328",
		Status:          "Match Finished",
		HomeGoalDetails: "Saka;55",
	}

	provider := usecasemock.NewFixtureProvider(t)
	provider.On("FixtureByID", mock.Anything, "602135").Return(fixture, true, nil).Once()
	provider.On("Timeline", mock.Anything, "602135").Return([]usecase.UpstreamTimelineEntry{
		{ID: "t1", Tag: "Goal", Time: "55", HomeFlag: "Yes", Player: "Saka"},
		{ID: "t2", Tag: "Card", Detail: "Yellow Card", Time: "78", HomeFlag: "Yes", Player: "Saliba"},
	}, nil).Once()
	provider.On("LeagueByID", mock.Anything, "4328").Return(usecase.UpstreamLeague{
		ID:            "4328",
		Name:          "English Premier League",
		CurrentSeason: "2025-2026",
	}, true, nil).Once()

	leagues := usecase.NewLeagueService(provider, cache.NewStore(time.Minute), logging.NewNop())
	service := usecase.NewMatchDetailService(provider, leagues, logging.NewNop())

	detail, err := service.Load(context.Background(), "602135")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(detail.Events) != 2 {
		t.Fatalf("expected the discrete timeline, got %d events", len(detail.Events))
	}
	if detail.Events[0].ID != "t2" || detail.Events[0].Type != matchevent.TypeYellowCard {
		t.Fatalf("events not normalized from timeline: %+v", detail.Events)
	}

	if detail.League == nil || detail.League.Name != "English Premier League" {
		t.Fatalf("league enrichment missing: %+v", detail.League)
	}
	if detail.Match.Season != "2025-2026" {
		t.Fatalf("empty season must backfill from league, got %q", detail.Match.Season)
	}
}

func TestMatchDetailService_TimelineFailureFallsBackToEmbeddedDetails(t *testing.T) {
	t.Parallel()

	fixture := usecase.UpstreamFixture{
		ID:              "602135",
		Status:          "Match Finished",
		HomeGoalDetails: "Saka;55",
		AwayYellowCards: "Konate:34",
	}

	provider := usecasemock.NewFixtureProvider(t)
	provider.On("FixtureByID", mock.Anything, "602135").Return(fixture, true, nil).Once()
	provider.On("Timeline", mock.Anything, "602135").Return(nil, errors.New("timeline down")).Once()

	service := usecase.NewMatchDetailService(provider, nil, logging.NewNop())

	detail, err := service.Load(context.Background(), "602135")
	if err != nil {
		t.Fatalf("timeline failure must not fail the load: %v", err)
	}

	if len(detail.Events) != 2 {
		t.Fatalf("expected events parsed from embedded strings, got %d", len(detail.Events))
	}
	if detail.Events[0].Player != "Saka" || detail.Events[1].Player != "Konate" {
		t.Fatalf("fallback events: %+v", detail.Events)
	}
}

func TestMatchDetailService_EmptyTimelineFallsBackToEmbeddedDetails(t *testing.T) {
	t.Parallel()

	fixture := usecase.UpstreamFixture{
		ID:              "602135",
		Status:          "Match Finished",
		HomeGoalDetails: "Saka;55",
	}

	provider := usecasemock.NewFixtureProvider(t)
	provider.On("FixtureByID", mock.Anything, "602135").Return(fixture, true, nil).Once()
	provider.On("Timeline", mock.Anything, "602135").Return([]usecase.UpstreamTimelineEntry{}, nil).Once()

	service := usecase.NewMatchDetailService(provider, nil, logging.NewNop())

	detail, err := service.Load(context.Background(), "602135")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(detail.Events) != 1 || detail.Events[0].Player != "Saka" {
		t.Fatalf("embedded fallback events: %+v", detail.Events)
	}
}
