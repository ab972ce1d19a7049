package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"betmachine/config"
	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports"
	"betmachine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the-odds-api.com v4 and implements ports.OddsFeed.
type Client struct {
	baseURL    string
	apiKey     string
	region     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates an odds feed client.
func NewClient(cfg config.OddsConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		region:     cfg.Region,
		httpClient: httpClient,
		log:        log,
	}
}

// FetchOdds returns the upcoming events for one sport key. Events without
// complete primary pricing are dropped. The result is sorted by start time.
func (c *Client) FetchOdds(ctx context.Context, sportKey string) ([]domain.Event, error) {
	params := url.Values{
		"apiKey":     {c.apiKey},
		"regions":    {c.region},
		"markets":    {"h2h"},
		"oddsFormat": {"decimal"},
		"dateFormat": {"iso"},
	}

	var raw []apiEvent
	if err := c.getJSON(ctx, fmt.Sprintf("/sports/%s/odds", sportKey), params, &raw); err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(raw))
	for i := range raw {
		if ev, ok := parseEvent(&raw[i]); ok {
			events = append(events, ev)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CommenceTime.Before(events[j].CommenceTime)
	})
	return events, nil
}

// FetchScores returns completed matches for one sport key within the
// lookback window. Matches still in progress are excluded.
func (c *Client) FetchScores(ctx context.Context, sportKey string, lookbackDays int) ([]ports.EventResult, error) {
	params := url.Values{
		"apiKey":     {c.apiKey},
		"daysFrom":   {strconv.Itoa(lookbackDays)},
		"dateFormat": {"iso"},
	}

	var raw []apiScoreEvent
	if err := c.getJSON(ctx, fmt.Sprintf("/sports/%s/scores", sportKey), params, &raw); err != nil {
		return nil, err
	}

	results := make([]ports.EventResult, 0, len(raw))
	for i := range raw {
		g := &raw[i]
		if !g.Completed {
			continue
		}
		res := ports.EventResult{EventID: g.ID, Completed: true}
		res.Winner, res.Score = deriveWinner(g)
		results = append(results, res)
	}
	return results, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ErrFeedUnavailable(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("body", string(body)).
			Msg("odds feed returned non-200")
		return apperror.ErrFeedUnavailable(fmt.Errorf("feed status %d", resp.StatusCode))
	}

	if remaining := resp.Header.Get("X-Requests-Remaining"); remaining != "" {
		c.log.Debug().Str("requests_remaining", remaining).Msg("odds feed quota")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.ErrFeedUnavailable(fmt.Errorf("decoding feed response: %w", err))
	}
	return nil
}

// parseEvent converts one raw feed event into the internal shape. The first
// bookmaker carrying h2h pricing wins; within it the best price per outcome
// is taken. Events missing either primary price are dropped.
func parseEvent(g *apiEvent) (domain.Event, bool) {
	var oddsA, oddsDraw, oddsB float64

	for _, bm := range g.Bookmakers {
		for _, market := range bm.Markets {
			if market.Key != "h2h" {
				continue
			}
			for _, outcome := range market.Outcomes {
				switch outcome.Name {
				case g.HomeTeam:
					if outcome.Price > oddsA {
						oddsA = outcome.Price
					}
				case g.AwayTeam:
					if outcome.Price > oddsB {
						oddsB = outcome.Price
					}
				case "Draw":
					if outcome.Price > oddsDraw {
						oddsDraw = outcome.Price
					}
				}
			}
		}
		if oddsA > 0 {
			break
		}
	}

	if oddsA == 0 || oddsB == 0 {
		return domain.Event{}, false
	}

	category := categoryFor(g.SportKey)
	if !categoryHasDraw(category) {
		oddsDraw = 0
	}

	return domain.Event{
		ID:           g.ID,
		Title:        g.HomeTeam + " vs " + g.AwayTeam,
		League:       leagueName(g),
		Category:     category,
		TeamA:        g.HomeTeam,
		TeamB:        g.AwayTeam,
		OddsA:        toOdds(oddsA),
		OddsDraw:     toOdds(oddsDraw),
		OddsB:        toOdds(oddsB),
		CommenceTime: g.CommenceTime,
		Status:       "upcoming",
	}, true
}

// deriveWinner maps the two-entry scores array to a pick code and a
// rendered score line. Returns an empty winner when the scores are
// malformed.
func deriveWinner(g *apiScoreEvent) (winner, scoreText string) {
	if len(g.Scores) != 2 {
		return "", ""
	}
	s0, err0 := strconv.Atoi(g.Scores[0].Score)
	s1, err1 := strconv.Atoi(g.Scores[1].Score)
	if err0 != nil || err1 != nil {
		return "", ""
	}

	scoreText = fmt.Sprintf("%d:%d", s0, s1)
	switch {
	case s0 > s1:
		if g.Scores[0].Name == g.HomeTeam {
			return domain.PickTeamA, scoreText
		}
		return domain.PickTeamB, scoreText
	case s1 > s0:
		if g.Scores[1].Name == g.AwayTeam {
			return domain.PickTeamB, scoreText
		}
		return domain.PickTeamA, scoreText
	default:
		return domain.PickDraw, scoreText
	}
}

func categoryFor(sportKey string) string {
	switch {
	case strings.Contains(sportKey, "basketball"):
		return "basketball"
	case strings.Contains(sportKey, "tennis"):
		return "tennis"
	case strings.Contains(sportKey, "hockey") || strings.Contains(sportKey, "ice"):
		return "hockey"
	case strings.Contains(sportKey, "mma"):
		return "mma"
	default:
		return "football"
	}
}

func categoryHasDraw(category string) bool {
	switch category {
	case "basketball", "tennis", "mma":
		return false
	}
	return true
}

func leagueName(g *apiEvent) string {
	if g.SportTitle != "" {
		return g.SportTitle
	}
	return g.SportKey
}

func toOdds(price float64) decimal.Decimal {
	if price == 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(price).Round(2)
}
