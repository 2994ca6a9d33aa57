package sportsdb

// Wire types for TheSportsDB v1 JSON API. The feed wraps every payload in an
// object with one named array field that may be null or absent; both mean "no
// data". Scalar fields arrive as strings, nullable ones as string pointers.

type eventsEnvelope struct {
	Events []eventRecord `json:"events"`
}

type timelineEnvelope struct {
	Timeline []timelineRecord `json:"timeline"`
}

type leaguesEnvelope struct {
	Leagues []leagueRecord `json:"leagues"`
}

type eventRecord struct {
	IDEvent          string  `json:"idEvent"`
	StrEvent         string  `json:"strEvent"`
	IDLeague         string  `json:"idLeague"`
	StrLeague        string  `json:"strLeague"`
	StrSeason        string  `json:"strSeason"`
	IntRound         string  `json:"intRound"`
	StrVenue         string  `json:"strVenue"`
	IDHomeTeam       string  `json:"idHomeTeam"`
	StrHomeTeam      string  `json:"strHomeTeam"`
	StrHomeTeamBadge *string `json:"strHomeTeamBadge"`
	IDAwayTeam       string  `json:"idAwayTeam"`
	StrAwayTeam      string  `json:"strAwayTeam"`
	StrAwayTeamBadge *string `json:"strAwayTeamBadge"`

	IntHomeScore     *string `json:"intHomeScore"`
	IntAwayScore     *string `json:"intAwayScore"`
	IntHomeScoreHalf *string `json:"intHomeScoreHalf"`
	IntAwayScoreHalf *string `json:"intAwayScoreHalf"`

	StrStatus    *string `json:"strStatus"`
	StrTimestamp string  `json:"strTimestamp"`
	DateEvent    string  `json:"dateEvent"`
	StrTime      string  `json:"strTime"`

	StrHomeGoalDetails *string `json:"strHomeGoalDetails"`
	StrAwayGoalDetails *string `json:"strAwayGoalDetails"`
	StrHomeYellowCards *string `json:"strHomeYellowCards"`
	StrAwayYellowCards *string `json:"strAwayYellowCards"`
	StrHomeRedCards    *string `json:"strHomeRedCards"`
	StrAwayRedCards    *string `json:"strAwayRedCards"`
}

type timelineRecord struct {
	IDTimeline        string `json:"idTimeline"`
	IDEvent           string `json:"idEvent"`
	StrTimeline       string `json:"strTimeline"`
	StrTimelineDetail string `json:"strTimelineDetail"`
	StrHome           string `json:"strHome"`
	IntTime           string `json:"intTime"`
	StrPlayer         string `json:"strPlayer"`
	StrAssist         string `json:"strAssist"`
}

type leagueRecord struct {
	IDLeague         string `json:"idLeague"`
	StrLeague        string `json:"strLeague"`
	StrCountry       string `json:"strCountry"`
	StrBadge         string `json:"strBadge"`
	StrCurrentSeason string `json:"strCurrentSeason"`
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
