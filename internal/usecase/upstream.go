package usecase

import "context"

// UpstreamFixture is one fixture record as the feed reports it, before
// conversion. Numeric fields stay strings because the feed sends strings and
// an empty score must remain distinguishable from zero.
type UpstreamFixture struct {
	ID       string
	LeagueID string
	League   string
	Season   string
	Round    string
	Venue    string

	HomeTeamID string
	HomeTeam   string
	HomeBadge  string
	AwayTeamID string
	AwayTeam   string
	AwayBadge  string

	HomeScore     string
	AwayScore     string
	HomeScoreHalf string
	AwayScoreHalf string

	// Status is the feed's free-form status string; empty when the feed sent
	// null.
	Status string

	// Timestamp is the combined kickoff timestamp; Date and Time are the
	// split fallback fields.
	Timestamp string
	Date      string
	Time      string

	HomeGoalDetails string
	AwayGoalDetails string
	HomeYellowCards string
	AwayYellowCards string
	HomeRedCards    string
	AwayRedCards    string
}

// UpstreamTimelineEntry is one record of the discrete timeline feed.
type UpstreamTimelineEntry struct {
	ID string
	// Tag is the feed's coarse type ("Goal", "Card", "subst", ...).
	Tag string
	// Detail refines the tag ("Yellow Card", "Red Card", free text).
	Detail string
	// HomeFlag is "Yes" for the home side, anything else means away.
	HomeFlag string
	Time     string
	Player   string
	Assist   string
}

// UpstreamLeague is the league metadata lookup result.
type UpstreamLeague struct {
	ID            string
	Name          string
	Country       string
	Badge         string
	CurrentSeason string
}

// FixtureProvider is the upstream feed as the use cases see it. A nil or
// absent array field upstream surfaces here as an empty slice or found=false,
// never as an error.
type FixtureProvider interface {
	UpcomingFixtures(ctx context.Context, leagueID string) ([]UpstreamFixture, error)
	FixtureByID(ctx context.Context, fixtureID string) (UpstreamFixture, bool, error)
	Timeline(ctx context.Context, fixtureID string) ([]UpstreamTimelineEntry, error)
	LeagueByID(ctx context.Context, leagueID string) (UpstreamLeague, bool, error)
}
