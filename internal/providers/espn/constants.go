package espn

import (
	"time"

	"scorewatch/internal/domain/games"
)

const providerName = "espn"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "scorewatch/1.0"
)

// sportPaths maps each supported sport to its upstream URL segment.
var sportPaths = map[games.Sport]string{
	games.SportNFL:               "football/nfl",
	games.SportNBA:               "basketball/nba",
	games.SportMLB:               "baseball/mlb",
	games.SportNHL:               "hockey/nhl",
	games.SportCollegeFootball:   "football/college-football",
	games.SportCollegeBasketball: "basketball/mens-college-basketball",
}
