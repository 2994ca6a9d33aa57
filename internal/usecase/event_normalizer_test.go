package usecase

import (
	"testing"

	"github.com/christianwondeson/sports-hub/internal/domain/matchevent"
)

func TestParseGoalDetails_FlatStream(t *testing.T) {
	t.Parallel()

	events := ParseGoalDetails("Saka;55;Gyokores;12", matchevent.SideHome)
	if len(events) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(events))
	}

	if events[0].ID != "goal-home-0" || events[0].Player != "Saka" || events[0].Minute != 55 {
		t.Fatalf("first goal: got %+v", events[0])
	}
	if events[1].ID != "goal-home-2" || events[1].Player != "Gyokores" || events[1].Minute != 12 {
		t.Fatalf("second goal: got %+v", events[1])
	}
	if events[0].Type != matchevent.TypeGoal {
		t.Fatalf("goal type = %q", events[0].Type)
	}
}

func TestParseGoalDetails_CommaChunks(t *testing.T) {
	t.Parallel()

	events := ParseGoalDetails("Saka;55,Gyokores;12", matchevent.SideAway)
	if len(events) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(events))
	}
	if events[0].Player != "Saka" || events[1].Player != "Gyokores" {
		t.Fatalf("players: %q, %q", events[0].Player, events[1].Player)
	}
	if events[0].Team != matchevent.SideAway {
		t.Fatalf("team = %q", events[0].Team)
	}
}

func TestParseGoalDetails_StoppageMinute(t *testing.T) {
	t.Parallel()

	events := ParseGoalDetails("Saka;45+2", matchevent.SideHome)
	if len(events) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(events))
	}
	if events[0].Minute != 45 {
		t.Fatalf("minute = %d, want 45", events[0].Minute)
	}
	if events[0].ExtraMinute == nil || *events[0].ExtraMinute != 2 {
		t.Fatalf("extra minute = %v, want 2", events[0].ExtraMinute)
	}
}

func TestParseGoalDetails_DropsPairWithoutParseableMinute(t *testing.T) {
	t.Parallel()

	events := ParseGoalDetails("Bassey;TBD;Saka;55", matchevent.SideHome)
	if len(events) != 1 {
		t.Fatalf("expected only the parseable goal, got %d", len(events))
	}
	if events[0].Player != "Saka" {
		t.Fatalf("kept player = %q, want Saka", events[0].Player)
	}
	// The id index counts flat tokens, so the surviving pair keeps its slot.
	if events[0].ID != "goal-home-2" {
		t.Fatalf("kept id = %q, want goal-home-2", events[0].ID)
	}
}

func TestParseGoalDetails_EmptyAndDanglingInput(t *testing.T) {
	t.Parallel()

	if events := ParseGoalDetails("", matchevent.SideHome); events != nil {
		t.Fatalf("empty input must yield nil, got %v", events)
	}
	if events := ParseGoalDetails("Saka", matchevent.SideHome); len(events) != 0 {
		t.Fatalf("dangling player without minute must yield nothing, got %v", events)
	}
}

func TestParseGoalDetails_DropsOverflowingMinute(t *testing.T) {
	t.Parallel()

	// A digit run beyond int range must be dropped, never wrapped around.
	events := ParseGoalDetails("Saka;99999999999999999999999;Rice;55", matchevent.SideHome)
	if len(events) != 1 {
		t.Fatalf("expected only the sane goal, got %d", len(events))
	}
	if events[0].Player != "Rice" || events[0].Minute != 55 {
		t.Fatalf("kept event: %+v", events[0])
	}
}

func TestParseCardDetails_ColonForm(t *testing.T) {
	t.Parallel()

	events := ParseCardDetails("Maguire:40;Casemiro:78", matchevent.SideHome, matchevent.TypeYellowCard)
	if len(events) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(events))
	}
	if events[0].ID != "yellow-card-home-0" || events[0].Player != "Maguire" || events[0].Minute != 40 {
		t.Fatalf("first card: got %+v", events[0])
	}
	if events[1].ID != "yellow-card-home-1" || events[1].Minute != 78 {
		t.Fatalf("second card: got %+v", events[1])
	}
}

func TestParseCardDetails_ColonFormKeepsUnparseableMinuteAsZero(t *testing.T) {
	t.Parallel()

	// Unlike the goal parser, the colon form keeps the event with minute 0.
	events := ParseCardDetails("Maguire:early", matchevent.SideHome, matchevent.TypeYellowCard)
	if len(events) != 1 {
		t.Fatalf("expected the card to survive, got %d events", len(events))
	}
	if events[0].Minute != 0 {
		t.Fatalf("minute = %d, want 0", events[0].Minute)
	}

	// An overflowing digit run falls back the same way.
	events = ParseCardDetails("Maguire:99999999999999999999999", matchevent.SideHome, matchevent.TypeYellowCard)
	if len(events) != 1 || events[0].Minute != 0 {
		t.Fatalf("overflowing minute must fall back to 0, got %+v", events)
	}
}

func TestParseCardDetails_FlatFormDropsUnparseableMinute(t *testing.T) {
	t.Parallel()

	events := ParseCardDetails("Maguire;early", matchevent.SideHome, matchevent.TypeYellowCard)
	if len(events) != 0 {
		t.Fatalf("flat form must drop the pair, got %v", events)
	}
}

func TestParseCardDetails_FlatFormLooseMinuteParsing(t *testing.T) {
	t.Parallel()

	events := ParseCardDetails("Bassey;25;Onana;40x", matchevent.SideAway, matchevent.TypeRedCard)
	if len(events) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(events))
	}
	if events[0].Minute != 25 || events[0].Player != "Bassey" {
		t.Fatalf("first card: got %+v", events[0])
	}
	// "40x" reads as 40 the way the feed's own parsing does.
	if events[1].Minute != 40 {
		t.Fatalf("loose minute = %d, want 40", events[1].Minute)
	}
	if events[1].Type != matchevent.TypeRedCard {
		t.Fatalf("type = %q", events[1].Type)
	}
}

func TestNormalizeTimeline_MapsTagsAndSorts(t *testing.T) {
	t.Parallel()

	entries := []UpstreamTimelineEntry{
		{ID: "t1", Tag: "Goal", Time: "12", HomeFlag: "Yes", Player: "Gyokores", Assist: "Odegard", Detail: "Normal Goal"},
		{ID: "t2", Tag: "Card", Detail: "Yellow Card", Time: "34", HomeFlag: "No", Player: "Konate"},
		{ID: "t3", Tag: "Card", Detail: "Red Card", Time: "66", HomeFlag: "No", Player: "Van Dijk"},
		{ID: "t4", Tag: "subst", Time: "89", HomeFlag: "Yes", Player: "Gyokores", Assist: "Odegard"},
		{ID: "t5", Tag: "Var", Time: "44", HomeFlag: "No", Player: "Jones"},
	}

	events := NormalizeTimeline(entries)
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}

	wantOrder := []string{"t4", "t3", "t5", "t2", "t1"}
	for i, id := range wantOrder {
		if events[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, events[i].ID, id)
		}
	}

	byID := make(map[string]string, len(events))
	teams := make(map[string]string, len(events))
	for _, e := range events {
		byID[e.ID] = e.Type
		teams[e.ID] = e.Team
	}
	if byID["t1"] != matchevent.TypeGoal || byID["t2"] != matchevent.TypeYellowCard ||
		byID["t3"] != matchevent.TypeRedCard || byID["t4"] != matchevent.TypeSubstitution {
		t.Fatalf("type mapping wrong: %v", byID)
	}
	if byID["t5"] != matchevent.TypeVAR {
		t.Fatalf("unknown tag must fold into var, got %q", byID["t5"])
	}
	if teams["t1"] != matchevent.SideHome || teams["t2"] != matchevent.SideAway {
		t.Fatalf("home flag mapping wrong: %v", teams)
	}
}

func TestNormalizeTimeline_MissingIDAndMinute(t *testing.T) {
	t.Parallel()

	events := NormalizeTimeline([]UpstreamTimelineEntry{
		{Tag: "Goal", Time: "not-a-minute", HomeFlag: "Yes", Player: "Someone"},
	})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID != "timeline-0" {
		t.Fatalf("synthesized id = %q, want timeline-0", events[0].ID)
	}
	if events[0].Minute != 0 {
		t.Fatalf("unparseable minute = %d, want 0", events[0].Minute)
	}
}

func TestNormalizeTimeline_Empty(t *testing.T) {
	t.Parallel()

	if events := NormalizeTimeline(nil); events != nil {
		t.Fatalf("expected nil for empty timeline, got %v", events)
	}
}

func TestAssembleFixtureEvents_CombinesAndSorts(t *testing.T) {
	t.Parallel()

	fixture := UpstreamFixture{
		HomeGoalDetails: "Saka;55",
		AwayGoalDetails: "Ekitike;88",
		HomeYellowCards: "Saliba:78",
		AwayYellowCards: "Konate:34",
		AwayRedCards:    "Van Dijk;66",
	}

	events := AssembleFixtureEvents(fixture)
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}

	wantMinutes := []int{88, 78, 66, 55, 34}
	for i, minute := range wantMinutes {
		if events[i].Minute != minute {
			t.Fatalf("position %d: minute %d, want %d", i, events[i].Minute, minute)
		}
	}

	if events[2].Type != matchevent.TypeRedCard || events[2].Team != matchevent.SideAway {
		t.Fatalf("red card mapping: got %+v", events[2])
	}
}
