package games

import (
	"sort"
	"time"
)

// SortByStartTime orders games by kickoff time ascending, falling back
// to ID so ordering stays stable when timestamps are missing or equal.
func SortByStartTime(list []Game) {
	sort.SliceStable(list, func(i, j int) bool {
		ti, okI := parseStart(list[i].FullDateTime)
		tj, okJ := parseStart(list[j].FullDateTime)
		switch {
		case okI && okJ && !ti.Equal(tj):
			return ti.Before(tj)
		case okI != okJ:
			return okI
		default:
			return list[i].ID < list[j].ID
		}
	})
}

func parseStart(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
