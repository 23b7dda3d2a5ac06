package espn

import (
	"fmt"
	"strings"
	"time"

	"scorewatch/internal/domain/games"
)

// transformEvent normalizes one raw event into a canonical Game. It
// returns nil when the event cannot yield a valid record: no
// competition, no competitors, or an unresolvable team name on either
// side. Dropping is silent; malformed events never surface as errors.
func transformEvent(event *eventResponse, sport games.Sport, loc *time.Location, logoOverrides map[string]string) *games.Game {
	if event == nil || len(event.Competitions) == 0 {
		return nil
	}
	competition := &event.Competitions[0]
	if len(competition.Competitors) == 0 {
		return nil
	}

	home, away := assignSides(competition.Competitors)
	if home == nil || away == nil {
		return nil
	}

	homeName := teamName(home.Team)
	awayName := teamName(away.Team)
	if homeName == "" || awayName == "" {
		return nil
	}

	statusType := event.Status.Type
	status := normalizeStatus(statusType.State, statusType.Detail, statusType.ShortDetail)

	game := &games.Game{
		ID:               eventID(event, sport, awayName, homeName),
		Sport:            sport,
		SportName:        sportName(event, sport),
		AwayTeam:         awayName,
		HomeTeam:         homeName,
		AwayScore:        away.Score.String(),
		HomeScore:        home.Score.String(),
		AwayTeamRecord:   extractRecord(away.Records),
		HomeTeamRecord:   extractRecord(home.Records),
		Status:           status,
		Time:             timeDetail(statusType),
		FullDateTime:     event.Date,
		Period:           event.Status.Period,
		Clock:            event.Status.Clock,
		HomeLogo:         pickTeamLogo(home.Team, logoOverrides),
		AwayLogo:         pickTeamLogo(away.Team, logoOverrides),
		HomeShortName:    shortName(home.Team),
		AwayShortName:    shortName(away.Team),
		HomeAbbreviation: home.Team.Abbreviation,
		AwayAbbreviation: away.Team.Abbreviation,
		HomeTeamID:       home.Team.ID.String(),
		AwayTeamID:       away.Team.ID.String(),
		BroadcastChannel: resolveBroadcast(event, competition),
		Odds:             extractOdds(competition.Odds),
	}

	if status == games.StatusScheduled {
		game.DisplayTime = formatDisplayTime(event.Date, loc)
	}

	if sport.IsFootball() {
		game.PossessionTeam = resolvePossession(competition)
	}

	if sport.IsBaseball() {
		bb := extractBaseball(event.Status, competition.Situation)
		game.AtBatTeam = bb.AtBat
		game.InningNumber = bb.Inning
		game.TopBottom = bb.TopBottom
		game.Bases = bb.Bases
		game.Balls = bb.Balls
		game.Strikes = bb.Strikes
		game.Outs = bb.Outs
	}

	return game
}

// assignSides resolves home/away competitors, preferring explicit
// homeAway tags and falling back to the positional convention
// (index 0 away, index 1 home) used by older feeds.
func assignSides(competitors []competitorResponse) (home, away *competitorResponse) {
	for i := range competitors {
		switch competitors[i].HomeAway {
		case "home":
			if home == nil {
				home = &competitors[i]
			}
		case "away":
			if away == nil {
				away = &competitors[i]
			}
		}
	}
	if home == nil && len(competitors) > 1 {
		home = &competitors[1]
	}
	if away == nil {
		away = &competitors[0]
	}
	return home, away
}

func teamName(team teamResponse) string {
	if team.DisplayName != "" {
		return team.DisplayName
	}
	return team.Name
}

func shortName(team teamResponse) string {
	if team.ShortDisplayName != "" {
		return team.ShortDisplayName
	}
	return team.Abbreviation
}

func eventID(event *eventResponse, sport games.Sport, awayName, homeName string) string {
	if event.ID != "" {
		return event.ID
	}
	return fmt.Sprintf("%s-%s-%s", sport, awayName, homeName)
}

func sportName(event *eventResponse, sport games.Sport) string {
	if event.Name != "" {
		return event.Name
	}
	return strings.ToUpper(string(sport))
}

func timeDetail(statusType statusTypeResponse) string {
	switch {
	case statusType.ShortDetail != "":
		return statusType.ShortDetail
	case statusType.Detail != "":
		return statusType.Detail
	default:
		return statusType.Description
	}
}

// extractRecord prefers the overall ("total") record over splits.
func extractRecord(records []recordResponse) string {
	if len(records) == 0 {
		return ""
	}
	for _, record := range records {
		if record.Type == "total" {
			return record.Summary
		}
	}
	return records[0].Summary
}

// broadcastSource is one strategy for locating the broadcast channel.
type broadcastSource func(event *eventResponse, comp *competitionResponse) string

var broadcastSources = []broadcastSource{
	broadcastFromEventField,
	broadcastFromCompetition,
	broadcastFromGeo,
	broadcastFromEventList,
}

// resolveBroadcast tries each source in order and stops at the first
// non-empty result. "" means no channel; the field is then omitted
// from the encoded Game entirely.
func resolveBroadcast(event *eventResponse, comp *competitionResponse) string {
	for _, source := range broadcastSources {
		if channel := source(event, comp); channel != "" {
			return channel
		}
	}
	return ""
}

func broadcastFromEventField(event *eventResponse, _ *competitionResponse) string {
	return event.Broadcast.String()
}

func broadcastFromCompetition(_ *eventResponse, comp *competitionResponse) string {
	if len(comp.Broadcasts) == 0 {
		return ""
	}
	return broadcastName(comp.Broadcasts[0])
}

func broadcastFromGeo(event *eventResponse, _ *competitionResponse) string {
	if len(event.GeoBroadcasts) == 0 {
		return ""
	}
	if media := event.GeoBroadcasts[0].Media; media != nil {
		return media.ShortName
	}
	return ""
}

func broadcastFromEventList(event *eventResponse, _ *competitionResponse) string {
	if len(event.Broadcasts) == 0 {
		return ""
	}
	if names := event.Broadcasts[0].Names; len(names) > 0 {
		return names[0]
	}
	return ""
}

func broadcastName(b broadcastResponse) string {
	if len(b.Names) > 0 {
		return b.Names[0]
	}
	if b.Media != nil {
		return b.Media.ShortName
	}
	return ""
}

// extractOdds reads the first odds entry only. Spread is the away
// side's closing line, or the negated home line when away is absent.
// Returns nil unless at least one field resolved.
func extractOdds(entries []oddsResponse) *games.Odds {
	if len(entries) == 0 {
		return nil
	}
	entry := entries[0]

	odds := games.Odds{}

	if entry.PointSpread != nil {
		if line := closingLine(entry.PointSpread.Away); line != nil {
			odds.Spread = line
		} else if line := closingLine(entry.PointSpread.Home); line != nil {
			negated := -*line
			odds.Spread = &negated
		}
	}

	if entry.OverUnder != nil {
		odds.OverUnder = entry.OverUnder.Close.Line.Ptr()
	}

	if entry.Moneyline != nil {
		odds.AwayMoneyline = closingLine(entry.Moneyline.Away)
		odds.HomeMoneyline = closingLine(entry.Moneyline.Home)
	}

	if odds.Spread == nil && odds.OverUnder == nil && odds.AwayMoneyline == nil && odds.HomeMoneyline == nil {
		return nil
	}
	return &odds
}

func closingLine(c *closeLine) *float64 {
	if c == nil {
		return nil
	}
	return c.Close.Line.Ptr()
}

var startTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04Z"}

// formatDisplayTime renders the local start time for scheduled games.
// An unparseable timestamp yields "TBD" rather than an error.
func formatDisplayTime(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(loc).Format("3:04 PM")
		}
	}
	return "TBD"
}
