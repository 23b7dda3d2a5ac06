package espn

import (
	"strings"

	"scorewatch/internal/domain/games"
)

// normalizeStatus maps the upstream state/detail vocabulary to the
// canonical status set. Detail text wins over the raw state for
// postponements and halftime because the feed reports those through
// detail strings while state stays "in" or "pre". Every input maps to
// a value; unknown states fall back to detail sniffing.
func normalizeStatus(state, detail, shortDetail string) games.Status {
	combined := strings.ToLower(detail)
	if combined == "" {
		combined = strings.ToLower(shortDetail)
	}

	if strings.Contains(combined, "postponed") || strings.Contains(combined, "canceled") {
		return games.StatusPostponed
	}
	if strings.Contains(combined, "halftime") {
		return games.StatusHalftime
	}

	switch state {
	case "pre":
		return games.StatusScheduled
	case "post", "final":
		return games.StatusFinal
	case "in":
		// "End of 3rd" style breaks read as halftime so the scoreboard
		// can show a break label instead of a dead clock.
		if strings.Contains(combined, "end") {
			return games.StatusHalftime
		}
		return games.StatusLive
	default:
		if strings.Contains(combined, "final") {
			return games.StatusFinal
		}
		if strings.Contains(combined, "live") {
			return games.StatusLive
		}
		return games.StatusScheduled
	}
}
