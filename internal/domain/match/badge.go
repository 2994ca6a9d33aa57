package match

import (
	"sort"
	"strings"
)

const FallbackBadge = "/team-badge.png"

// clubBadges maps upstream team names to bundled club assets. Upstream spells
// several clubs two ways, so both forms are listed.
var clubBadges = map[string]string{
	"Arsenal":           "/assets/svgs/clubs/arsenal.svg",
	"Burnley":           "/assets/svgs/clubs/burnley.svg",
	"Chelsea":           "/assets/svgs/clubs/chelsea.svg",
	"Liverpool":         "/assets/svgs/clubs/liverpool.svg",
	"Manchester City":   "/assets/svgs/clubs/man-city.svg",
	"Man City":          "/assets/svgs/clubs/man-city.svg",
	"Manchester United": "/assets/svgs/clubs/man-utd.svg",
	"Man Utd":           "/assets/svgs/clubs/man-utd.svg",
	"Newcastle":         "/assets/svgs/clubs/newcastle.svg",
	"Newcastle United":  "/assets/svgs/clubs/newcastle.svg",
	"Real Madrid":       "/assets/svgs/clubs/realmadrid.svg",
	"Southampton":       "/assets/svgs/clubs/southampton.svg",
	"Valencia":          "/assets/svgs/clubs/valenica.svg",
	"Leicester":         "/assets/svgs/clubs/leicester.svg",
	"Leicester City":    "/assets/svgs/clubs/leicester.svg",
	"Swansea":           "/assets/svgs/clubs/swansea-city.svg",
	"Swansea City":      "/assets/svgs/clubs/swansea-city.svg",
}

// badgeNames keeps lookups deterministic; map iteration order is not.
var badgeNames = func() []string {
	names := make([]string, 0, len(clubBadges))
	for name := range clubBadges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// ResolveBadge returns a displayable badge path for a team. The upstream
// badge wins when present, unless it is the literal string "null", which the
// feed emits for missing artwork. Lookups then go exact match, case-insensitive
// match, substring match in either direction, and finally the generic badge.
// The result is never empty.
func ResolveBadge(teamName, upstreamBadge string) string {
	if upstreamBadge != "" && upstreamBadge != "null" {
		return upstreamBadge
	}

	if badge, ok := clubBadges[teamName]; ok {
		return badge
	}

	lowerName := strings.ToLower(teamName)
	for _, name := range badgeNames {
		if strings.ToLower(name) == lowerName {
			return clubBadges[name]
		}
	}

	if lowerName != "" {
		for _, name := range badgeNames {
			lowerKey := strings.ToLower(name)
			if strings.Contains(lowerKey, lowerName) || strings.Contains(lowerName, lowerKey) {
				return clubBadges[name]
			}
		}
	}

	return FallbackBadge
}
