package domain

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/shopspring/decimal"
)

// Instant mini-games settle on the spot: no bet row is persisted.
const (
	GameCoinflip = "coinflip"
	GameDice     = "dice"
	GameRoulette = "roulette"
)

var (
	ErrUnknownGame = errors.New("unknown game")
	ErrInvalidPick = errors.New("invalid pick")
)

// Payout multipliers. These are part of the public game contract and must
// not drift.
var (
	evenMoneyPayout    = decimal.NewFromFloat(1.95) // coinflip, dice high/low
	diceExactPayout    = decimal.NewFromFloat(5.5)
	rouletteClrPayout  = decimal.NewFromFloat(2.0) // red or black
	rouletteZeroPayout = decimal.NewFromFloat(35.0)
)

// European wheel layout: 18 red, 18 black, single green zero.
var rouletteRed = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// GameOutcome is the result of a single instant-game draw.
type GameOutcome struct {
	Game     string
	Pick     string
	Result   string
	Win      bool
	Winnings decimal.Decimal // gross payout credited on a win, zero otherwise
}

// PlayGame draws a uniform outcome from the game's sample space and resolves
// the pick against the payout table. The caller owns the rng so draws can be
// seeded deterministically in tests. Each draw is independent.
func PlayGame(game, pick string, amount decimal.Decimal, rng *rand.Rand) (*GameOutcome, error) {
	out := &GameOutcome{Game: game, Pick: pick, Winnings: decimal.Zero}

	switch game {
	case GameCoinflip:
		if pick != "heads" && pick != "tails" {
			return nil, ErrInvalidPick
		}
		if rng.Intn(2) == 0 {
			out.Result = "heads"
		} else {
			out.Result = "tails"
		}
		if pick == out.Result {
			out.Win = true
			out.Winnings = RoundMoney(amount.Mul(evenMoneyPayout))
		}

	case GameDice:
		value := rng.Intn(6) + 1
		out.Result = strconv.Itoa(value)
		switch pick {
		case "low":
			if value <= 3 {
				out.Win = true
				out.Winnings = RoundMoney(amount.Mul(evenMoneyPayout))
			}
		case "high":
			if value >= 4 {
				out.Win = true
				out.Winnings = RoundMoney(amount.Mul(evenMoneyPayout))
			}
		case "1", "2", "3", "4", "5", "6":
			if pick == out.Result {
				out.Win = true
				out.Winnings = RoundMoney(amount.Mul(diceExactPayout))
			}
		default:
			return nil, ErrInvalidPick
		}

	case GameRoulette:
		if pick != "red" && pick != "black" && pick != "green" {
			return nil, ErrInvalidPick
		}
		number := rng.Intn(37)
		out.Result = strconv.Itoa(number)
		switch {
		case pick == "green" && number == 0:
			out.Win = true
			out.Winnings = RoundMoney(amount.Mul(rouletteZeroPayout))
		case pick == "red" && rouletteRed[number]:
			out.Win = true
			out.Winnings = RoundMoney(amount.Mul(rouletteClrPayout))
		case pick == "black" && number != 0 && !rouletteRed[number]:
			out.Win = true
			out.Winnings = RoundMoney(amount.Mul(rouletteClrPayout))
		}

	default:
		return nil, ErrUnknownGame
	}

	return out, nil
}
