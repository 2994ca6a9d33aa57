package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinished  = "finished"
	StatusPostponed = "postponed"
	StatusCancelled = "cancelled"
	StatusHalftime  = "halftime"
)

const (
	FilterAll       = "all"
	FilterLive      = "live"
	FilterFavorites = "favorites"
)

// Team is one side of a fixture, immutable for a given snapshot.
type Team struct {
	ID           string
	Name         string
	Logo         string
	Abbreviation string
	// Status is an aggregate label such as "AGG" or "PEN".
	Status     string
	HasRedCard bool
}

// Match is one fixture as the store holds it. Scores are pointers because
// "score unknown" and "score is 0" are different things for a scheduled match.
// HomeScore and AwayScore are either both set or both nil.
type Match struct {
	ID            string
	HomeTeam      Team
	AwayTeam      Team
	HomeScore     *int
	AwayScore     *int
	HomeScoreHalf *int
	AwayScoreHalf *int
	Status        string
	// Minute is only meaningful while Status is live.
	Minute     *int
	StartTime  string
	League     string
	LeagueID   string
	Venue      string
	Round      string
	Season     string
	IsFavorite bool
}

func (m Match) IsLive() bool {
	return m.Status == StatusLive
}

// MatchesFilter reports whether the match passes the given view filter.
// Unknown filter values behave like FilterAll.
func (m Match) MatchesFilter(filter string) bool {
	switch filter {
	case FilterLive:
		return m.Status == StatusLive
	case FilterFavorites:
		return m.IsFavorite
	default:
		return true
	}
}

func ValidFilter(value string) bool {
	switch value {
	case FilterAll, FilterLive, FilterFavorites:
		return true
	default:
		return false
	}
}

// StatusDisplay is the presentation triple derived from a match's status.
type StatusDisplay struct {
	Text     string
	Category string
	IsLive   bool
}

// StatusDisplayFor maps a match onto its display triple. Scheduled matches
// render the local kickoff time in 24-hour HH:MM; unknown statuses render
// the raw status string uppercased.
func StatusDisplayFor(m Match) StatusDisplay {
	switch m.Status {
	case StatusLive:
		text := "LIVE"
		if m.Minute != nil {
			text = fmt.Sprintf("%d'", *m.Minute)
		}
		return StatusDisplay{Text: text, Category: "live", IsLive: true}
	case StatusFinished:
		return StatusDisplay{Text: "FT", Category: "finished", IsLive: false}
	case StatusHalftime:
		return StatusDisplay{Text: "HT", Category: "halftime", IsLive: true}
	case StatusScheduled:
		return StatusDisplay{Text: kickoffClock(m.StartTime), Category: "scheduled", IsLive: false}
	default:
		return StatusDisplay{Text: strings.ToUpper(m.Status), Category: "default", IsLive: false}
	}
}

func kickoffClock(startTime string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, startTime); err == nil {
			return parsed.Local().Format("15:04")
		}
	}
	return startTime
}

// IntPtr is a small helper for building matches with literal scores.
func IntPtr(v int) *int {
	return &v
}
