package oddsapi

import "time"

// Wire structures for the-odds-api.com v4 responses. Only the fields the
// parser reads are declared.

type apiEvent struct {
	ID           string         `json:"id"`
	SportKey     string         `json:"sport_key"`
	SportTitle   string         `json:"sport_title"`
	CommenceTime time.Time      `json:"commence_time"`
	HomeTeam     string         `json:"home_team"`
	AwayTeam     string         `json:"away_team"`
	Bookmakers   []apiBookmaker `json:"bookmakers"`
}

type apiBookmaker struct {
	Key     string      `json:"key"`
	Markets []apiMarket `json:"markets"`
}

type apiMarket struct {
	Key      string       `json:"key"`
	Outcomes []apiOutcome `json:"outcomes"`
}

type apiOutcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type apiScoreEvent struct {
	ID        string     `json:"id"`
	SportKey  string     `json:"sport_key"`
	Completed bool       `json:"completed"`
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	Scores    []apiScore `json:"scores"`
}

type apiScore struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}
