package espn

import (
	"bytes"
	"encoding/json"
)

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	ShortName    string                `json:"shortName"`
	Competitions []competitionResponse `json:"competitions"`
	Status       statusResponse        `json:"status"`

	// Broadcast sources at the event level; see resolveBroadcast for
	// the precedence between these and the competition-level ones.
	Broadcast     flexString             `json:"broadcast"`
	GeoBroadcasts []geoBroadcastResponse `json:"geoBroadcasts"`
	Broadcasts    []broadcastResponse    `json:"broadcasts"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Situation   *situationResponse   `json:"situation"`
	LastPlay    *lastPlayResponse    `json:"lastPlay"`
	Broadcasts  []broadcastResponse  `json:"broadcasts"`
	Odds        []oddsResponse       `json:"odds"`
}

type competitorResponse struct {
	HomeAway string           `json:"homeAway"`
	Score    flexString       `json:"score"`
	Team     teamResponse     `json:"team"`
	Records  []recordResponse `json:"records"`
}

type teamResponse struct {
	ID               flexString     `json:"id"`
	DisplayName      string         `json:"displayName"`
	Name             string         `json:"name"`
	ShortDisplayName string         `json:"shortDisplayName"`
	Abbreviation     string         `json:"abbreviation"`
	Logos            []logoResponse `json:"logos"`
	Logo             string         `json:"logo"`
}

type logoResponse struct {
	Href string `json:"href"`
}

type recordResponse struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type statusResponse struct {
	Clock        float64            `json:"clock"`
	DisplayClock string             `json:"displayClock"`
	Period       int                `json:"period"`
	Type         statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	State       string `json:"state"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
	Description string `json:"description"`
}

type situationResponse struct {
	Possession *possessionRef    `json:"possession"`
	LastPlay   *lastPlayResponse `json:"lastPlay"`

	// Baseball live-state fields.
	Balls       *int       `json:"balls"`
	Strikes     *int       `json:"strikes"`
	Outs        *int       `json:"outs"`
	OnFirst     bool       `json:"onFirst"`
	OnSecond    bool       `json:"onSecond"`
	OnThird     bool       `json:"onThird"`
	Inning      *int       `json:"inning"`
	InningHalf  flexString `json:"inningHalf"`
	TopOfInning *bool      `json:"topOfInning"`
}

type lastPlayResponse struct {
	Team           *lastPlayTeam  `json:"team"`
	PossessionTeam *possessionRef `json:"possessionTeam"`
}

type lastPlayTeam struct {
	ID flexString `json:"id"`
}

type broadcastResponse struct {
	Names []string       `json:"names"`
	Media *mediaResponse `json:"media"`
}

type geoBroadcastResponse struct {
	Media *mediaResponse `json:"media"`
}

type mediaResponse struct {
	ShortName string `json:"shortName"`
}

type oddsResponse struct {
	PointSpread *pointSpreadResponse `json:"pointSpread"`
	OverUnder   *closeLine           `json:"overUnder"`
	Moneyline   *moneylineResponse   `json:"moneyline"`
}

type pointSpreadResponse struct {
	Away *closeLine `json:"away"`
	Home *closeLine `json:"home"`
}

type moneylineResponse struct {
	Away *closeLine `json:"away"`
	Home *closeLine `json:"home"`
}

// closeLine holds a closing betting line nested under a close wrapper.
// Some feeds collapse the wrapper to a bare number; that shape carries
// no closing line and decodes to the zero value.
type closeLine struct {
	Close struct {
		Line flexFloat `json:"line"`
	} `json:"close"`
}

func (c *closeLine) UnmarshalJSON(data []byte) error {
	*c = closeLine{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var raw struct {
		Close struct {
			Line flexFloat `json:"line"`
		} `json:"close"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil
	}
	c.Close = raw.Close
	return nil
}
