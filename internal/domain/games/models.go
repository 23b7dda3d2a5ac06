package games

// Sport identifies one of the supported leagues.
type Sport string

const (
	SportNFL               Sport = "nfl"
	SportNBA               Sport = "nba"
	SportMLB               Sport = "mlb"
	SportNHL               Sport = "nhl"
	SportCollegeFootball   Sport = "college-football"
	SportCollegeBasketball Sport = "college-basketball"
)

// AllSports lists every supported sport in scoreboard order.
func AllSports() []Sport {
	return []Sport{
		SportNFL,
		SportNBA,
		SportMLB,
		SportNHL,
		SportCollegeFootball,
		SportCollegeBasketball,
	}
}

// ParseSport validates a sport key.
func ParseSport(raw string) (Sport, bool) {
	for _, s := range AllSports() {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// IsFootball reports whether the sport carries possession state.
func (s Sport) IsFootball() bool {
	return s == SportNFL || s == SportCollegeFootball
}

// IsBaseball reports whether the sport carries inning/count state.
func (s Sport) IsBaseball() bool {
	return s == SportMLB
}

// Status is the canonical game lifecycle state.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusHalftime  Status = "halftime"
	StatusFinal     Status = "final"
	StatusPostponed Status = "postponed"
)

// Side identifies one half of a matchup.
type Side string

const (
	SideAway Side = "away"
	SideHome Side = "home"
)

// Odds carries pre-game betting lines. The struct is attached to a Game
// only when at least one field is non-nil.
type Odds struct {
	Spread        *float64 `json:"spread"`
	OverUnder     *float64 `json:"overUnder"`
	AwayMoneyline *float64 `json:"awayMoneyline"`
	HomeMoneyline *float64 `json:"homeMoneyline"`
}

// Game is the canonical, sport-agnostic representation of one event.
// A Game is rebuilt from scratch on every fetch cycle; consumers treat
// the whole list as replaced atomically.
type Game struct {
	ID        string `json:"id"`
	Sport     Sport  `json:"sport"`
	SportName string `json:"sportName,omitempty"`

	AwayTeam string `json:"awayTeam"`
	HomeTeam string `json:"homeTeam"`

	// Scores keep the upstream's string form, empty before the game starts.
	AwayScore string `json:"awayScore"`
	HomeScore string `json:"homeScore"`

	AwayTeamRecord string `json:"awayTeamRecord,omitempty"`
	HomeTeamRecord string `json:"homeTeamRecord,omitempty"`

	Status Status `json:"status"`

	// Time holds in-progress clock text; DisplayTime holds the local
	// start time and is populated only while the game is scheduled.
	Time        string `json:"time,omitempty"`
	DisplayTime string `json:"displayTime,omitempty"`

	// FullDateTime is the upstream kickoff timestamp, used for ordering.
	FullDateTime string `json:"fullDateTime,omitempty"`

	Period int     `json:"period,omitempty"`
	Clock  float64 `json:"clock,omitempty"`

	HomeLogo string `json:"homeLogo,omitempty"`
	AwayLogo string `json:"awayLogo,omitempty"`

	HomeShortName    string `json:"homeShortName,omitempty"`
	AwayShortName    string `json:"awayShortName,omitempty"`
	HomeAbbreviation string `json:"homeAbbreviation,omitempty"`
	AwayAbbreviation string `json:"awayAbbreviation,omitempty"`

	// Team and possession ids are always string-coerced so equality
	// checks never trip over numeric-vs-string upstream encodings.
	AwayTeamID     string `json:"awayTeamId,omitempty"`
	HomeTeamID     string `json:"homeTeamId,omitempty"`
	PossessionTeam string `json:"possessionTeam,omitempty"`

	// Baseball situation, populated only for MLB games with live detail.
	AtBatTeam    Side   `json:"atBatTeam,omitempty"`
	InningNumber *int   `json:"inningNumber,omitempty"`
	TopBottom    string `json:"topBottom,omitempty"`
	Bases        string `json:"bases,omitempty"`
	Balls        *int   `json:"balls,omitempty"`
	Strikes      *int   `json:"strikes,omitempty"`
	Outs         *int   `json:"outs,omitempty"`

	BroadcastChannel string `json:"broadcastChannel,omitempty"`

	Odds *Odds `json:"odds,omitempty"`
}

// IsLive reports whether the game is in progress. Halftime and period
// breaks intentionally do not count, which lets the refresh cadence
// relax during the break.
func (g Game) IsLive() bool {
	return g.Status == StatusLive
}

// AnyLive reports whether any game in the list is in progress.
func AnyLive(list []Game) bool {
	for _, g := range list {
		if g.IsLive() {
			return true
		}
	}
	return false
}
