package espn

import "scorewatch/internal/domain/games"

// possessionSource is one strategy for locating the ball-carrying team
// id in a competition payload. The feed has been observed to move this
// field around between situation, lastPlay, and situation.lastPlay;
// the ordered list below preserves the observed precedence without
// assuming it is exhaustive. When no source matches there is no
// possession.
type possessionSource func(comp *competitionResponse) string

var possessionSources = []possessionSource{
	possessionFromSituation,
	possessionFromCompetitionLastPlay,
	possessionFromSituationLastPlay,
}

// resolvePossession returns the possessing team id, or "" when no
// source carries one. The id is already string-coerced by decoding.
func resolvePossession(comp *competitionResponse) string {
	if comp == nil {
		return ""
	}
	for _, source := range possessionSources {
		if id := source(comp); id != "" {
			return id
		}
	}
	return ""
}

func possessionFromSituation(comp *competitionResponse) string {
	if comp.Situation == nil || comp.Situation.Possession == nil {
		return ""
	}
	return comp.Situation.Possession.ID
}

func possessionFromCompetitionLastPlay(comp *competitionResponse) string {
	return possessionFromLastPlay(comp.LastPlay)
}

func possessionFromSituationLastPlay(comp *competitionResponse) string {
	if comp.Situation == nil {
		return ""
	}
	return possessionFromLastPlay(comp.Situation.LastPlay)
}

func possessionFromLastPlay(play *lastPlayResponse) string {
	if play == nil {
		return ""
	}
	if play.Team != nil && play.Team.ID != "" {
		return play.Team.ID.String()
	}
	if play.PossessionTeam != nil {
		return play.PossessionTeam.ID
	}
	return ""
}

// baseballSituation carries the normalized baseball in-play detail.
type baseballSituation struct {
	AtBat     games.Side
	Inning    *int
	TopBottom string
	Bases     string
	Balls     *int
	Strikes   *int
	Outs      *int
}

// extractBaseball derives inning, count, and base state. Each field is
// resolved independently; missing inputs leave the field unset except
// for Bases, which always carries a label.
func extractBaseball(status statusResponse, situation *situationResponse) baseballSituation {
	out := baseballSituation{
		TopBottom: resolveInningHalf(situation),
		Bases:     basesLabel(situation),
	}

	switch out.TopBottom {
	case "top":
		out.AtBat = games.SideAway
	case "bot":
		out.AtBat = games.SideHome
	}

	if situation != nil && situation.Inning != nil {
		out.Inning = situation.Inning
	} else if status.Period > 0 {
		period := status.Period
		out.Inning = &period
	}

	if situation != nil {
		out.Balls = situation.Balls
		out.Strikes = situation.Strikes
		out.Outs = situation.Outs
	}

	return out
}

// resolveInningHalf prefers the explicit topOfInning boolean, then the
// inningHalf field in either its numeric {1,2} or string
// {"top","bottom"} encoding. Returns "top", "bot", or "".
func resolveInningHalf(situation *situationResponse) string {
	if situation == nil {
		return ""
	}
	if situation.TopOfInning != nil {
		if *situation.TopOfInning {
			return "top"
		}
		return "bot"
	}
	switch situation.InningHalf.String() {
	case "1", "top":
		return "top"
	case "2", "bottom":
		return "bot"
	}
	return ""
}

// basesLabel maps the three occupancy flags to a display label. All
// eight combinations are handled.
func basesLabel(situation *situationResponse) string {
	var first, second, third bool
	if situation != nil {
		first, second, third = situation.OnFirst, situation.OnSecond, situation.OnThird
	}

	switch {
	case first && second && third:
		return "loaded"
	case first && second:
		return "1st & 2nd"
	case first && third:
		return "1st & 3rd"
	case second && third:
		return "2nd & 3rd"
	case first:
		return "1st"
	case second:
		return "2nd"
	case third:
		return "3rd"
	default:
		return "empty"
	}
}
