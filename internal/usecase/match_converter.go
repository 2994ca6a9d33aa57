package usecase

import (
	"strconv"

	"github.com/christianwondeson/sports-hub/internal/domain/match"
)

const (
	upstreamStatusFinished   = "Match Finished"
	upstreamStatusNotStarted = "Not Started"
)

// ConvertFixture maps one upstream fixture record onto the canonical Match.
// Status folds to a three-way rule: only the exact finished and not-started
// strings map to their states, everything else (halftime markers, progress
// minutes, null) counts as live so unrecognized fixtures never vanish from
// the live filter. Missing scores stay nil, never zero.
func ConvertFixture(fixture UpstreamFixture) match.Match {
	status := match.StatusLive
	switch fixture.Status {
	case upstreamStatusFinished:
		status = match.StatusFinished
	case upstreamStatusNotStarted:
		status = match.StatusScheduled
	}

	startTime := fixture.Timestamp
	if startTime == "" {
		startTime = fixture.Date + "T" + fixture.Time
	}

	return match.Match{
		ID: fixture.ID,
		HomeTeam: match.Team{
			ID:   fixture.HomeTeamID,
			Name: fixture.HomeTeam,
			Logo: match.ResolveBadge(fixture.HomeTeam, fixture.HomeBadge),
		},
		AwayTeam: match.Team{
			ID:   fixture.AwayTeamID,
			Name: fixture.AwayTeam,
			Logo: match.ResolveBadge(fixture.AwayTeam, fixture.AwayBadge),
		},
		HomeScore:     parseScore(fixture.HomeScore),
		AwayScore:     parseScore(fixture.AwayScore),
		HomeScoreHalf: parseScore(fixture.HomeScoreHalf),
		AwayScoreHalf: parseScore(fixture.AwayScoreHalf),
		Status:        status,
		StartTime:     startTime,
		League:        fixture.League,
		LeagueID:      fixture.LeagueID,
		Venue:         fixture.Venue,
		Round:         fixture.Round,
		Season:        fixture.Season,
	}
}

// parseScore keeps "score unknown" distinct from "score is 0": only a
// present, numeric string produces a value.
func parseScore(raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return match.IntPtr(value)
}
