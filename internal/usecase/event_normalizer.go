package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/christianwondeson/sports-hub/internal/domain/matchevent"
)

// minutePattern accepts a regulation minute with an optional stoppage suffix,
// e.g. "55" or "45+2". It matches anywhere in the token, so "12'" parses too.
var minutePattern = regexp.MustCompile(`(\d+)(?:\+(\d+))?`)

// leadingDigits mimics the feed's loose integer parsing: "40x" reads as 40,
// a token with no leading digits reads as nothing.
var leadingDigits = regexp.MustCompile(`^\s*(\d+)`)

// ParseGoalDetails normalizes a goal-detail string into goal events. The feed
// uses two encodings interchangeably: comma-separated chunks of
// "Player;Minute" streams, or one flat "Player;Min;Player;Min" stream. Tokens
// are walked two at a time; a pair whose minute does not match the minute
// pattern is dropped without error. Empty input yields no events.
func ParseGoalDetails(details, team string) []matchevent.Event {
	if details == "" {
		return nil
	}

	var parts []string
	if strings.Contains(details, ",") {
		for _, chunk := range strings.Split(details, ",") {
			parts = append(parts, strings.Split(chunk, ";")...)
		}
	} else {
		parts = strings.Split(details, ";")
	}
	parts = trimNonEmpty(parts)

	var events []matchevent.Event
	for i := 0; i+1 < len(parts); i += 2 {
		player := parts[i]
		minuteToken := parts[i+1]

		groups := minutePattern.FindStringSubmatch(minuteToken)
		if groups == nil {
			continue
		}
		minute, ok := parseMinuteDigits(groups[1])
		if !ok {
			continue
		}

		event := matchevent.Event{
			ID:     fmt.Sprintf("goal-%s-%d", team, i),
			Type:   matchevent.TypeGoal,
			Minute: minute,
			Team:   team,
			Player: player,
		}
		if groups[2] != "" {
			if extra, ok := parseMinuteDigits(groups[2]); ok {
				event.ExtraMinute = matchevent.IntPtr(extra)
			}
		}
		events = append(events, event)
	}
	return events
}

// ParseCardDetails normalizes a card-detail string into card events of the
// given kind. Two encodings exist: "Player:Minute" pairs separated by
// semicolons, and the same flat alternating stream the goal parser uses. The
// colon form keeps an event with minute 0 when the minute fails to parse; the
// flat form drops the pair instead. The asymmetry matches the live feed's
// observed behavior and is covered by tests, do not unify it.
func ParseCardDetails(details, team, kind string) []matchevent.Event {
	if details == "" {
		return nil
	}

	var events []matchevent.Event

	if strings.Contains(details, ":") {
		index := 0
		for _, part := range strings.Split(details, ";") {
			if part == "" {
				continue
			}
			player, minuteToken, _ := strings.Cut(part, ":")
			player = strings.TrimSpace(player)
			minuteToken = strings.TrimSpace(minuteToken)
			if player == "" || minuteToken == "" {
				index++
				continue
			}

			minute := 0
			if groups := leadingDigits.FindStringSubmatch(minuteToken); groups != nil {
				if v, ok := parseMinuteDigits(groups[1]); ok {
					minute = v
				}
			}
			events = append(events, matchevent.Event{
				ID:     fmt.Sprintf("%s-%s-%d", kind, team, index),
				Type:   kind,
				Minute: minute,
				Team:   team,
				Player: player,
			})
			index++
		}
		return events
	}

	parts := trimNonEmpty(strings.Split(details, ";"))
	for i := 0; i+1 < len(parts); i += 2 {
		player := parts[i]
		minuteToken := parts[i+1]

		groups := leadingDigits.FindStringSubmatch(minuteToken)
		if groups == nil {
			continue
		}
		minute, ok := parseMinuteDigits(groups[1])
		if !ok {
			continue
		}
		events = append(events, matchevent.Event{
			ID:     fmt.Sprintf("%s-%s-%d", kind, team, i),
			Type:   kind,
			Minute: minute,
			Team:   team,
			Player: player,
		})
	}
	return events
}

// NormalizeTimeline maps discrete timeline records onto the canonical event
// model. Feed categories outside the known set fold into the var bucket
// rather than being rejected. The result is ordered most-recent-first.
func NormalizeTimeline(entries []UpstreamTimelineEntry) []matchevent.Event {
	if len(entries) == 0 {
		return nil
	}

	events := make([]matchevent.Event, 0, len(entries))
	for index, entry := range entries {
		eventType := matchevent.TypeVAR
		switch entry.Tag {
		case "Goal":
			eventType = matchevent.TypeGoal
		case "Card":
			switch entry.Detail {
			case "Yellow Card":
				eventType = matchevent.TypeYellowCard
			case "Red Card":
				eventType = matchevent.TypeRedCard
			}
		case "subst":
			eventType = matchevent.TypeSubstitution
		}

		minute := 0
		if groups := leadingDigits.FindStringSubmatch(entry.Time); groups != nil {
			if v, ok := parseMinuteDigits(groups[1]); ok {
				minute = v
			}
		}

		team := matchevent.SideAway
		if entry.HomeFlag == "Yes" {
			team = matchevent.SideHome
		}

		id := entry.ID
		if id == "" {
			id = fmt.Sprintf("timeline-%d", index)
		}

		events = append(events, matchevent.Event{
			ID:           id,
			Type:         eventType,
			Minute:       minute,
			Team:         team,
			Player:       entry.Player,
			AssistPlayer: entry.Assist,
			Description:  entry.Detail,
		})
	}

	matchevent.SortDescending(events)
	return events
}

// AssembleFixtureEvents builds the event sequence from the goal and card
// strings embedded in a fixture record, for fixtures with no discrete
// timeline. Concatenation order is goals, yellows, reds, home before away
// within each kind; the sort then takes over.
func AssembleFixtureEvents(fixture UpstreamFixture) []matchevent.Event {
	var events []matchevent.Event
	events = append(events, ParseGoalDetails(fixture.HomeGoalDetails, matchevent.SideHome)...)
	events = append(events, ParseGoalDetails(fixture.AwayGoalDetails, matchevent.SideAway)...)
	events = append(events, ParseCardDetails(fixture.HomeYellowCards, matchevent.SideHome, matchevent.TypeYellowCard)...)
	events = append(events, ParseCardDetails(fixture.AwayYellowCards, matchevent.SideAway, matchevent.TypeYellowCard)...)
	events = append(events, ParseCardDetails(fixture.HomeRedCards, matchevent.SideHome, matchevent.TypeRedCard)...)
	events = append(events, ParseCardDetails(fixture.AwayRedCards, matchevent.SideAway, matchevent.TypeRedCard)...)

	matchevent.SortDescending(events)
	return events
}

func trimNonEmpty(tokens []string) []string {
	out := tokens[:0]
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

// parseMinuteDigits converts a digits-only regex capture. The capture rules
// out signs and spaces, so the only possible failure is a run too long for
// int; that reports false instead of a wrapped-around minute.
func parseMinuteDigits(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
