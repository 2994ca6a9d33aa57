package matchevent

import "sort"

const (
	TypeGoal         = "goal"
	TypeSubstitution = "substitution"
	TypeCorner       = "corner"
	TypeYellowCard   = "yellow-card"
	TypeRedCard      = "red-card"
	TypePenalty      = "penalty"
	TypeOwnGoal      = "own-goal"
	TypeVAR          = "var"
)

const (
	SideHome = "home"
	SideAway = "away"
)

// halftimeBoundary is the last regulation minute of the first half. Stoppage
// time rides on ExtraMinute, so a 45+2 event still belongs to the first half.
// Extra periods are not modelled.
const halftimeBoundary = 45

// Event is one normalized timeline entry for a match. The full sequence is
// rebuilt on every fetch and never patched in place.
type Event struct {
	ID     string
	Type   string
	Minute int
	// ExtraMinute is stoppage time added on top of Minute.
	ExtraMinute *int
	// MinuteLabel overrides the rendered clock when upstream sends a minute
	// that is displayable but not parseable. Minute still drives ordering.
	MinuteLabel  string
	Team         string
	Player       string
	AssistPlayer string
	Description  string
}

// EffectiveTime folds stoppage time into a single comparable value: minute 45
// plus 2 becomes 45.02, which sorts after 45 and before 46. Keeping this a
// single float avoids a tuple sort key.
func (e Event) EffectiveTime() float64 {
	t := float64(e.Minute)
	if e.ExtraMinute != nil {
		t += float64(*e.ExtraMinute) * 0.01
	}
	return t
}

// FirstHalf reports whether the event belongs to the first-half display group.
// The boundary is inclusive on the 45' side.
func (e Event) FirstHalf() bool {
	return e.Minute <= halftimeBoundary
}

// SortDescending orders events most-recent-first by effective time, in place.
// Consumers that want chronological order reverse the slice.
func SortDescending(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EffectiveTime() > events[j].EffectiveTime()
	})
}

// SplitHalves partitions an already-ordered sequence into the second-half
// (fulltime) group and the first-half (halftime) group, preserving order.
func SplitHalves(events []Event) (secondHalf, firstHalf []Event) {
	for _, e := range events {
		if e.FirstHalf() {
			firstHalf = append(firstHalf, e)
		} else {
			secondHalf = append(secondHalf, e)
		}
	}
	return secondHalf, firstHalf
}

// IntPtr mirrors match.IntPtr for literal stoppage minutes.
func IntPtr(v int) *int {
	return &v
}
