package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/christianwondeson/sports-hub/internal/domain/match"
	"github.com/christianwondeson/sports-hub/internal/platform/logging"
)

func TestRefreshAll_RefreshesEverySupportedLeague(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		upcomingFixtures: func(_ context.Context, leagueID string) ([]UpstreamFixture, error) {
			return []UpstreamFixture{
				{ID: "fx-" + leagueID, Status: "Not Started", LeagueID: leagueID},
			}, nil
		},
	}
	store := NewFixtureStore(provider, time.Minute, logging.NewNop())

	result, err := store.RefreshAll(context.Background())
	if err != nil {
		t.Fatalf("refresh all: %v", err)
	}

	leagues := SupportedLeagues()
	if result.LeagueCount != len(leagues) || result.SuccessCount != len(leagues) || result.FailedCount != 0 {
		t.Fatalf("counts: %+v", result)
	}
	if result.WorkerCount != refreshAllMaxWorkers {
		t.Fatalf("worker count = %d, want %d", result.WorkerCount, refreshAllMaxWorkers)
	}

	if !sort.SliceIsSorted(result.Leagues, func(i, j int) bool {
		return result.Leagues[i].LeagueID < result.Leagues[j].LeagueID
	}) {
		t.Fatalf("rows must be sorted by league id: %+v", result.Leagues)
	}

	view := store.View(match.FilterAll)
	if len(view) < len(leagues) {
		t.Fatalf("snapshot has %d leagues after refresh all, want at least %d", len(view), len(leagues))
	}
}

func TestRefreshAll_SupersededRowsLeaveSnapshotAlone(t *testing.T) {
	t.Parallel()

	var store *FixtureStore
	provider := &fakeProvider{
		upcomingFixtures: func(_ context.Context, leagueID string) ([]UpstreamFixture, error) {
			// A newer refresh starts while every row is still in flight.
			store.refreshSeq.Add(1)
			return []UpstreamFixture{
				{ID: "fresh-" + leagueID, Status: "Not Started", LeagueID: leagueID},
			}, nil
		},
	}
	store = NewFixtureStore(provider, time.Minute, logging.NewNop())

	result, err := store.RefreshAll(context.Background())
	if err != nil {
		t.Fatalf("refresh all: %v", err)
	}

	for _, row := range result.Leagues {
		if row.Status != refreshStatusSuccess {
			t.Fatalf("superseded row must still report its fetch: %+v", row)
		}
		if row.Message == "" {
			t.Fatalf("superseded row must say the snapshot was kept: %+v", row)
		}
	}

	findMatch(t, store, "mock-epl-1")
	for _, group := range store.View(match.FilterAll) {
		for _, m := range group.Matches {
			if strings.HasPrefix(m.ID, "fresh-") {
				t.Fatalf("superseded row wrote to the snapshot: %s", m.ID)
			}
		}
	}
}

func TestRefreshAll_FailedLeagueKeepsStaleEntry(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		upcomingFixtures: func(_ context.Context, leagueID string) ([]UpstreamFixture, error) {
			if leagueID == PremierLeagueID {
				return nil, errors.New("upstream down")
			}
			return []UpstreamFixture{
				{ID: "fx-" + leagueID, Status: "Not Started", LeagueID: leagueID},
			}, nil
		},
	}
	store := NewFixtureStore(provider, time.Minute, logging.NewNop())

	seededEPL := len(store.View(match.FilterAll)[0].Matches)

	result, err := store.RefreshAll(context.Background())
	if err != nil {
		t.Fatalf("refresh all: %v", err)
	}

	if result.FailedCount != 1 || result.SuccessCount != len(SupportedLeagues())-1 {
		t.Fatalf("counts: %+v", result)
	}

	var failedRow *RefreshLeagueRow
	for i := range result.Leagues {
		if result.Leagues[i].Status == refreshStatusFailed {
			failedRow = &result.Leagues[i]
		}
	}
	if failedRow == nil || failedRow.LeagueID != PremierLeagueID || failedRow.Message == "" {
		t.Fatalf("failed row: %+v", failedRow)
	}

	// The failed league keeps its seeded entry untouched.
	view := store.View(match.FilterAll)
	if len(view[0].Matches) != seededEPL {
		t.Fatalf("failed league entry changed: %d -> %d matches", seededEPL, len(view[0].Matches))
	}
}
