package match

import (
	"testing"
	"time"
)

func TestMatchesFilter(t *testing.T) {
	t.Parallel()

	live := Match{Status: StatusLive}
	favorite := Match{Status: StatusScheduled, IsFavorite: true}
	plain := Match{Status: StatusFinished}

	cases := []struct {
		name   string
		m      Match
		filter string
		want   bool
	}{
		{"live passes live", live, FilterLive, true},
		{"finished fails live", plain, FilterLive, false},
		{"favorite passes favorites", favorite, FilterFavorites, true},
		{"plain fails favorites", plain, FilterFavorites, false},
		{"all passes everything", plain, FilterAll, true},
		{"unknown filter behaves like all", plain, "whatever", true},
	}

	for _, tc := range cases {
		if got := tc.m.MatchesFilter(tc.filter); got != tc.want {
			t.Fatalf("%s: MatchesFilter(%q) = %v, want %v", tc.name, tc.filter, got, tc.want)
		}
	}
}

func TestValidFilter(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{FilterAll, FilterLive, FilterFavorites} {
		if !ValidFilter(valid) {
			t.Fatalf("ValidFilter(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "LIVE", "finished", "fav"} {
		if ValidFilter(invalid) {
			t.Fatalf("ValidFilter(%q) = true, want false", invalid)
		}
	}
}

func TestStatusDisplayFor_Live(t *testing.T) {
	t.Parallel()

	withMinute := StatusDisplayFor(Match{Status: StatusLive, Minute: IntPtr(67)})
	if withMinute.Text != "67'" || withMinute.Category != "live" || !withMinute.IsLive {
		t.Fatalf("live with minute: got %+v", withMinute)
	}

	withoutMinute := StatusDisplayFor(Match{Status: StatusLive})
	if withoutMinute.Text != "LIVE" || !withoutMinute.IsLive {
		t.Fatalf("live without minute: got %+v", withoutMinute)
	}
}

func TestStatusDisplayFor_FinishedAndHalftime(t *testing.T) {
	t.Parallel()

	finished := StatusDisplayFor(Match{Status: StatusFinished})
	if finished.Text != "FT" || finished.Category != "finished" || finished.IsLive {
		t.Fatalf("finished: got %+v", finished)
	}

	halftime := StatusDisplayFor(Match{Status: StatusHalftime})
	if halftime.Text != "HT" || halftime.Category != "halftime" || !halftime.IsLive {
		t.Fatalf("halftime must still count as live: got %+v", halftime)
	}
}

func TestStatusDisplayFor_ScheduledRendersKickoffClock(t *testing.T) {
	t.Parallel()

	const startTime = "2025-12-11T15:00:00"
	parsed, err := time.Parse("2006-01-02T15:04:05", startTime)
	if err != nil {
		t.Fatalf("parse fixture time: %v", err)
	}

	display := StatusDisplayFor(Match{Status: StatusScheduled, StartTime: startTime})
	if want := parsed.Local().Format("15:04"); display.Text != want {
		t.Fatalf("scheduled text = %q, want %q", display.Text, want)
	}
	if display.Category != "scheduled" || display.IsLive {
		t.Fatalf("scheduled: got %+v", display)
	}
}

func TestStatusDisplayFor_ScheduledKeepsUnparseableStartTime(t *testing.T) {
	t.Parallel()

	display := StatusDisplayFor(Match{Status: StatusScheduled, StartTime: "TBD"})
	if display.Text != "TBD" {
		t.Fatalf("unparseable start time must pass through, got %q", display.Text)
	}
}

func TestStatusDisplayFor_UnknownStatusUppercased(t *testing.T) {
	t.Parallel()

	display := StatusDisplayFor(Match{Status: StatusPostponed})
	if display.Text != "POSTPONED" || display.Category != "default" || display.IsLive {
		t.Fatalf("unknown status: got %+v", display)
	}
}

func TestIsLive(t *testing.T) {
	t.Parallel()

	if !(Match{Status: StatusLive}).IsLive() {
		t.Fatalf("live match must report live")
	}
	if (Match{Status: StatusHalftime}).IsLive() {
		t.Fatalf("halftime is a separate state from live")
	}
}
