package service

import (
	"time"

	"betmachine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// seedEvents returns a small demo event set used to bootstrap the cache
// when both the live feed and the durable fallback are empty, so a fresh
// deployment never serves a blank board.
func seedEvents() []domain.Event {
	odds := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	soon := func(h int) time.Time { return time.Now().UTC().Add(time.Duration(h) * time.Hour).Truncate(time.Minute) }

	return []domain.Event{
		{
			ID: "seed_1", Title: "Real Madrid vs Barcelona", League: "La Liga",
			Category: "football", TeamA: "Real Madrid", TeamB: "Barcelona",
			OddsA: odds("2.10"), OddsDraw: odds("3.40"), OddsB: odds("3.20"),
			CommenceTime: soon(6), Status: "upcoming",
		},
		{
			ID: "seed_2", Title: "Man City vs Liverpool", League: "EPL",
			Category: "football", TeamA: "Man City", TeamB: "Liverpool",
			OddsA: odds("1.85"), OddsDraw: odds("3.60"), OddsB: odds("4.00"),
			CommenceTime: soon(12), Status: "upcoming",
		},
		{
			ID: "seed_3", Title: "Lakers vs Warriors", League: "NBA",
			Category: "basketball", TeamA: "Lakers", TeamB: "Warriors",
			OddsA: odds("1.95"), OddsB: odds("1.90"),
			CommenceTime: soon(9), Status: "upcoming",
		},
		{
			ID: "seed_4", Title: "Djokovic vs Alcaraz", League: "ATP",
			Category: "tennis", TeamA: "Djokovic", TeamB: "Alcaraz",
			OddsA: odds("2.20"), OddsB: odds("1.70"),
			CommenceTime: soon(24), Status: "upcoming",
		},
		{
			ID: "seed_5", Title: "PSG vs Bayern", League: "Champions League",
			Category: "football", TeamA: "PSG", TeamB: "Bayern",
			OddsA: odds("2.50"), OddsDraw: odds("3.30"), OddsB: odds("2.80"),
			CommenceTime: soon(30), Status: "upcoming",
		},
	}
}
