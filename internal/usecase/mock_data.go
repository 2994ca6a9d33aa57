package usecase

import (
	"github.com/christianwondeson/sports-hub/internal/domain/match"
	"github.com/christianwondeson/sports-hub/internal/domain/matchevent"
)

// DemoMatchID always resolves to the bundled demo match without touching the
// network. KnownBadFixtureID is served from a second bundled set because the
// feed returns wrong data for that specific id; it is a pinned workaround for
// one id, not a pattern.
const (
	DemoMatchID       = "1"
	KnownBadFixtureID = "2"
)

const (
	PremierLeagueName = "English Premier League"
	PremierLeagueID   = "4328"
)

// SupportedLeague is one league the dashboard can show.
type SupportedLeague struct {
	ID      string
	Name    string
	Country string
}

func SupportedLeagues() []SupportedLeague {
	return []SupportedLeague{
		{ID: "4328", Name: "English Premier League", Country: "England"},
		{ID: "4480", Name: "UEFA Champions League", Country: "Europe"},
		{ID: "4335", Name: "La Liga", Country: "Spain"},
		{ID: "4331", Name: "Bundesliga", Country: "Germany"},
		{ID: "4332", Name: "Serie A", Country: "Italy"},
	}
}

// MockSnapshot seeds the store so the dashboard has content before the first
// refresh completes, and backs the live-continuity splice afterwards.
func MockSnapshot() *Snapshot {
	snapshot := NewSnapshot()
	snapshot.Replace(PremierLeagueName, []match.Match{
		{
			ID:        "mock-epl-1",
			HomeTeam:  match.Team{ID: "133604", Name: "Arsenal", Logo: "/assets/svgs/clubs/arsenal.svg"},
			AwayTeam:  match.Team{ID: "133602", Name: "Liverpool", Logo: "/assets/svgs/clubs/liverpool.svg"},
			HomeScore: match.IntPtr(2),
			AwayScore: match.IntPtr(1),
			Status:    match.StatusLive,
			Minute:    match.IntPtr(67),
			StartTime: "2025-12-10T20:00:00",
			League:    PremierLeagueName,
			LeagueID:  PremierLeagueID,
		},
		{
			ID:        "mock-epl-2",
			HomeTeam:  match.Team{ID: "133610", Name: "Manchester City", Logo: "/assets/svgs/clubs/man-city.svg"},
			AwayTeam:  match.Team{ID: "133619", Name: "Chelsea", Logo: "/assets/svgs/clubs/chelsea.svg"},
			HomeScore: match.IntPtr(0),
			AwayScore: match.IntPtr(0),
			Status:    match.StatusLive,
			Minute:    match.IntPtr(12),
			StartTime: "2025-12-10T21:00:00",
			League:    PremierLeagueName,
			LeagueID:  PremierLeagueID,
		},
		{
			ID:        "mock-epl-3",
			HomeTeam:  match.Team{ID: "133612", Name: "Newcastle United", Logo: "/assets/svgs/clubs/newcastle.svg"},
			AwayTeam:  match.Team{ID: "133615", Name: "Southampton", Logo: "/assets/svgs/clubs/southampton.svg"},
			Status:    match.StatusScheduled,
			StartTime: "2025-12-11T15:00:00",
			League:    PremierLeagueName,
			LeagueID:  PremierLeagueID,
		},
	})
	snapshot.Replace("UEFA Champions League", []match.Match{
		{
			ID:            DemoMatchID,
			HomeTeam:      match.Team{ID: "1", Name: "Arsenal", Logo: "/assets/svgs/clubs/arsenal.svg"},
			AwayTeam:      match.Team{ID: "2", Name: "Liverpool", Logo: "/assets/svgs/clubs/liverpool.svg"},
			HomeScore:     match.IntPtr(2),
			AwayScore:     match.IntPtr(1),
			HomeScoreHalf: match.IntPtr(1),
			AwayScoreHalf: match.IntPtr(0),
			Status:        match.StatusFinished,
			StartTime:     "2025-12-10T20:00:00",
			League:        "UEFA Champions League",
			LeagueID:      "4480",
		},
	})
	return snapshot
}

// MockLiveMatches returns the bundled live matches for one league, used by
// the refresh splice and the offline simulation injection.
func MockLiveMatches(league string) []match.Match {
	var live []match.Match
	for _, m := range MockSnapshot().League(league) {
		if m.Status == match.StatusLive {
			live = append(live, m)
		}
	}
	return live
}

// DemoMatch is the canonical bundled match for the demo id.
func DemoMatch() match.Match {
	return match.Match{
		ID:            DemoMatchID,
		HomeTeam:      match.Team{ID: "1", Name: "Arsenal", Logo: "/assets/svgs/clubs/arsenal.svg"},
		AwayTeam:      match.Team{ID: "2", Name: "Liverpool", Logo: "/assets/svgs/clubs/liverpool.svg"},
		HomeScore:     match.IntPtr(2),
		AwayScore:     match.IntPtr(1),
		HomeScoreHalf: match.IntPtr(1),
		AwayScoreHalf: match.IntPtr(0),
		Status:        match.StatusFinished,
		StartTime:     "2025-12-10T20:00:00",
		League:        "UEFA Champions League",
		LeagueID:      "4480",
	}
}

// DemoEvents is the bundled timeline for the demo match, already in
// most-recent-first order.
func DemoEvents() []matchevent.Event {
	return []matchevent.Event{
		{ID: "1", Type: matchevent.TypeSubstitution, Minute: 89, Team: matchevent.SideHome, Player: "Gyokores", AssistPlayer: "Odegard"},
		{ID: "2", Type: matchevent.TypeGoal, Minute: 88, Team: matchevent.SideAway, Player: "Ekitike", AssistPlayer: "Sallah"},
		{ID: "3", Type: matchevent.TypeYellowCard, Minute: 78, Team: matchevent.SideHome, Player: "Saliba"},
		{ID: "4", Type: matchevent.TypeCorner, Minute: 74, Team: matchevent.SideHome, Player: "3rd corner"},
		{ID: "5", Type: matchevent.TypeSubstitution, Minute: 67, Team: matchevent.SideHome, Player: "Rice", AssistPlayer: "Zubemendi"},
		{ID: "6", Type: matchevent.TypeSubstitution, Minute: 67, Team: matchevent.SideAway, Player: "Frimpong", AssistPlayer: "Robertson"},
		{ID: "7", Type: matchevent.TypeRedCard, Minute: 66, Team: matchevent.SideAway, Player: "Van Dijk", AssistPlayer: "Sent Off"},
		{ID: "8", Type: matchevent.TypeGoal, Minute: 55, Team: matchevent.SideHome, Player: "Saka"},
		{ID: "9", Type: matchevent.TypeCorner, Minute: 52, Team: matchevent.SideHome, Player: "5th corner"},
		{ID: "10", Type: matchevent.TypeCorner, Minute: 48, MinuteLabel: `48"`, Team: matchevent.SideAway, Player: "3rd Corner", ExtraMinute: matchevent.IntPtr(0)},
		{ID: "11", Type: matchevent.TypeCorner, Minute: 45, ExtraMinute: matchevent.IntPtr(2), Team: matchevent.SideHome, Player: "2nd corner"},
		{ID: "12", Type: matchevent.TypeSubstitution, Minute: 45, Team: matchevent.SideAway, Player: "Jones", AssistPlayer: "Mcalister"},
		{ID: "13", Type: matchevent.TypeYellowCard, Minute: 44, Team: matchevent.SideHome, Player: "Gabriel"},
		{ID: "14", Type: matchevent.TypeVAR, Minute: 44, Team: matchevent.SideAway, Player: "Jones", AssistPlayer: "Injured"},
		{ID: "15", Type: matchevent.TypeCorner, Minute: 36, Team: matchevent.SideHome, Player: "1st corner"},
		{ID: "16", Type: matchevent.TypeYellowCard, Minute: 34, Team: matchevent.SideAway, Player: "Konate"},
		{ID: "17", Type: matchevent.TypeVAR, Minute: 25, Team: matchevent.SideHome, Player: "Gyokores"},
		{ID: "18", Type: matchevent.TypeCorner, Minute: 16, Team: matchevent.SideAway, Player: "2nd Corner"},
		{ID: "19", Type: matchevent.TypeGoal, Minute: 12, Team: matchevent.SideHome, Player: "Gyokores", AssistPlayer: "Odegard"},
		{ID: "20", Type: matchevent.TypeCorner, Minute: 3, Team: matchevent.SideAway, Player: "1st Corner"},
	}
}

// KnownBadFixtureMatch is the pinned replacement for the id the feed returns
// wrong data for.
func KnownBadFixtureMatch() match.Match {
	return match.Match{
		ID:        KnownBadFixtureID,
		HomeTeam:  match.Team{ID: "3", Name: "Real Madrid", Logo: "/assets/svgs/clubs/realmadrid.svg"},
		AwayTeam:  match.Team{ID: "4", Name: "Valencia", Logo: "/assets/svgs/clubs/valenica.svg"},
		HomeScore: match.IntPtr(1),
		AwayScore: match.IntPtr(1),
		Status:    match.StatusLive,
		Minute:    match.IntPtr(71),
		StartTime: "2025-12-10T22:00:00",
		League:    "La Liga",
		LeagueID:  "4335",
	}
}

func KnownBadFixtureEvents() []matchevent.Event {
	return []matchevent.Event{
		{ID: "1", Type: matchevent.TypeGoal, Minute: 64, Team: matchevent.SideAway, Player: "Hugo Duro"},
		{ID: "2", Type: matchevent.TypeYellowCard, Minute: 51, Team: matchevent.SideHome, Player: "Tchouameni"},
		{ID: "3", Type: matchevent.TypeGoal, Minute: 45, ExtraMinute: matchevent.IntPtr(1), Team: matchevent.SideHome, Player: "Vinicius Junior", AssistPlayer: "Bellingham"},
		{ID: "4", Type: matchevent.TypeCorner, Minute: 23, Team: matchevent.SideHome, Player: "1st corner"},
	}
}
