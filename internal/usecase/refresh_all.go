package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/christianwondeson/sports-hub/internal/domain/match"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"

	refreshAllMaxWorkers = 4
)

type RefreshAllResult struct {
	LeagueCount  int                `json:"league_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Leagues      []RefreshLeagueRow `json:"leagues"`
}

type RefreshLeagueRow struct {
	LeagueID   string `json:"league_id"`
	League     string `json:"league"`
	Status     string `json:"status"`
	Matches    int    `json:"matches"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// RefreshAll fetches every supported league through a bounded worker pool
// and replaces each league's snapshot entry independently. A league that
// fails keeps its previous entry; the row records why. The whole sweep
// carries one refresh token: rows superseded by a refresh that started later
// keep their hands off the snapshot.
func (s *FixtureStore) RefreshAll(ctx context.Context) (RefreshAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureStore.RefreshAll")
	defer span.End()

	seq := s.refreshSeq.Add(1)
	leagues := SupportedLeagues()
	workerCount := refreshAllMaxWorkers
	if len(leagues) < workerCount {
		workerCount = len(leagues)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshAllResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan RefreshLeagueRow, len(leagues))

	var workers sync.WaitGroup
	for _, league := range leagues {
		league := league
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			rows <- s.refreshLeague(ctx, league, seq)
		}); err != nil {
			workers.Done()
			return RefreshAllResult{}, fmt.Errorf("submit league refresh: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	result := RefreshAllResult{
		LeagueCount: len(leagues),
		WorkerCount: workerCount,
	}
	for row := range rows {
		result.Leagues = append(result.Leagues, row)
		if row.Status == refreshStatusSuccess {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
	}
	sort.SliceStable(result.Leagues, func(i, j int) bool {
		return result.Leagues[i].LeagueID < result.Leagues[j].LeagueID
	})

	return result, nil
}

func (s *FixtureStore) refreshLeague(ctx context.Context, league SupportedLeague, seq uint64) RefreshLeagueRow {
	started := time.Now()
	row := RefreshLeagueRow{LeagueID: league.ID, League: league.Name}

	fixtures, err := s.provider.UpcomingFixtures(ctx, league.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "league refresh failed, keeping stale entry",
			"league_id", league.ID,
			"error", err,
		)
		row.Status = refreshStatusFailed
		row.Message = err.Error()
		row.DurationMs = time.Since(started).Milliseconds()
		return row
	}

	matches := make([]match.Match, 0, len(fixtures))
	for _, fixture := range fixtures {
		matches = append(matches, ConvertFixture(fixture))
	}
	matches = spliceMockLive(league.Name, matches)

	s.mu.Lock()
	if seq == s.refreshSeq.Load() {
		s.snapshot.Replace(league.Name, matches)
	} else {
		// A newer refresh started while this row was in flight.
		row.Message = "superseded by a newer refresh, snapshot entry kept"
	}
	s.mu.Unlock()

	row.Status = refreshStatusSuccess
	row.Matches = len(matches)
	row.DurationMs = time.Since(started).Milliseconds()
	return row
}
