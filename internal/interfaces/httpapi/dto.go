package httpapi

import (
	"github.com/christianwondeson/sports-hub/internal/domain/match"
	"github.com/christianwondeson/sports-hub/internal/domain/matchevent"
	"github.com/christianwondeson/sports-hub/internal/usecase"
)

type matchListDTO struct {
	Filter  string             `json:"filter"`
	Leagues []leagueMatchesDTO `json:"leagues"`
}

type leagueMatchesDTO struct {
	League  string     `json:"league"`
	Matches []matchDTO `json:"matches"`
}

type teamDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Status       string `json:"status,omitempty"`
	HasRedCard   bool   `json:"has_red_card"`
}

type statusDisplayDTO struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	IsLive   bool   `json:"is_live"`
}

type matchDTO struct {
	ID            string           `json:"id"`
	HomeTeam      teamDTO          `json:"home_team"`
	AwayTeam      teamDTO          `json:"away_team"`
	HomeScore     *int             `json:"home_score"`
	AwayScore     *int             `json:"away_score"`
	HomeScoreHalf *int             `json:"home_score_half,omitempty"`
	AwayScoreHalf *int             `json:"away_score_half,omitempty"`
	Status        string           `json:"status"`
	StatusDisplay statusDisplayDTO `json:"status_display"`
	Minute        *int             `json:"minute,omitempty"`
	StartTime     string           `json:"start_time"`
	League        string           `json:"league"`
	LeagueID      string           `json:"league_id"`
	Venue         string           `json:"venue,omitempty"`
	Round         string           `json:"round,omitempty"`
	Season        string           `json:"season,omitempty"`
	IsFavorite    bool             `json:"is_favorite"`
}

type eventDTO struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Minute       int    `json:"minute"`
	ExtraMinute  *int   `json:"extra_minute,omitempty"`
	MinuteLabel  string `json:"minute_label,omitempty"`
	Team         string `json:"team"`
	Player       string `json:"player"`
	AssistPlayer string `json:"assist_player,omitempty"`
	Description  string `json:"description,omitempty"`
}

type leagueDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Country       string `json:"country,omitempty"`
	Badge         string `json:"badge,omitempty"`
	CurrentSeason string `json:"current_season,omitempty"`
}

// matchDetailDTO carries the full descending sequence plus the two display
// groups the timeline renders under the fulltime and halftime separators.
type matchDetailDTO struct {
	Match          matchDTO   `json:"match"`
	Events         []eventDTO `json:"events"`
	FulltimeEvents []eventDTO `json:"fulltime_events"`
	HalftimeEvents []eventDTO `json:"halftime_events"`
	League         *leagueDTO `json:"league,omitempty"`
}

func leagueMatchesToDTOs(view []usecase.LeagueMatches) []leagueMatchesDTO {
	out := make([]leagueMatchesDTO, 0, len(view))
	for _, entry := range view {
		matches := make([]matchDTO, 0, len(entry.Matches))
		for _, m := range entry.Matches {
			matches = append(matches, matchToDTO(m))
		}
		out = append(out, leagueMatchesDTO{League: entry.League, Matches: matches})
	}
	return out
}

func matchToDTO(m match.Match) matchDTO {
	display := match.StatusDisplayFor(m)
	return matchDTO{
		ID:            m.ID,
		HomeTeam:      teamToDTO(m.HomeTeam),
		AwayTeam:      teamToDTO(m.AwayTeam),
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		HomeScoreHalf: m.HomeScoreHalf,
		AwayScoreHalf: m.AwayScoreHalf,
		Status:        m.Status,
		StatusDisplay: statusDisplayDTO{
			Text:     display.Text,
			Category: display.Category,
			IsLive:   display.IsLive,
		},
		Minute:     m.Minute,
		StartTime:  m.StartTime,
		League:     m.League,
		LeagueID:   m.LeagueID,
		Venue:      m.Venue,
		Round:      m.Round,
		Season:     m.Season,
		IsFavorite: m.IsFavorite,
	}
}

func teamToDTO(t match.Team) teamDTO {
	return teamDTO{
		ID:           t.ID,
		Name:         t.Name,
		Logo:         t.Logo,
		Abbreviation: t.Abbreviation,
		Status:       t.Status,
		HasRedCard:   t.HasRedCard,
	}
}

func eventsToDTOs(events []matchevent.Event) []eventDTO {
	out := make([]eventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, eventToDTO(e))
	}
	return out
}

func eventToDTO(e matchevent.Event) eventDTO {
	return eventDTO{
		ID:           e.ID,
		Type:         e.Type,
		Minute:       e.Minute,
		ExtraMinute:  e.ExtraMinute,
		MinuteLabel:  e.MinuteLabel,
		Team:         e.Team,
		Player:       e.Player,
		AssistPlayer: e.AssistPlayer,
		Description:  e.Description,
	}
}

func leagueToDTO(l usecase.UpstreamLeague) leagueDTO {
	return leagueDTO{
		ID:            l.ID,
		Name:          l.Name,
		Country:       l.Country,
		Badge:         l.Badge,
		CurrentSeason: l.CurrentSeason,
	}
}

func matchDetailToDTO(detail usecase.MatchDetail) matchDetailDTO {
	secondHalf, firstHalf := matchevent.SplitHalves(detail.Events)

	dto := matchDetailDTO{
		Match:          matchToDTO(detail.Match),
		Events:         eventsToDTOs(detail.Events),
		FulltimeEvents: eventsToDTOs(secondHalf),
		HalftimeEvents: eventsToDTOs(firstHalf),
	}
	if detail.League != nil {
		league := leagueToDTO(*detail.League)
		dto.League = &league
	}
	return dto
}
