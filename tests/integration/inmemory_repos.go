package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[int64]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[int64]*domain.User)}
}

func (r *inMemoryUserRepo) GetOrCreate(ctx context.Context, userID int64, username string, startBalance decimal.Decimal) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	u := &domain.User{
		ID:          userID,
		Username:    username,
		Balance:     startBalance,
		TotalProfit: decimal.Zero,
	}
	r.users[userID] = u
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) AdjustBalance(ctx context.Context, userID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return decimal.Zero, fmt.Errorf("user %d not found", userID)
	}
	u.Balance = domain.RoundMoney(u.Balance.Add(delta))
	return u.Balance, nil
}

func (r *inMemoryUserRepo) DebitStake(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return decimal.Zero, false, nil
	}
	if u.Balance.LessThan(amount) {
		return decimal.Zero, false, nil
	}
	u.Balance = domain.RoundMoney(u.Balance.Sub(amount))
	u.TotalBets++
	return u.Balance, true, nil
}

func (r *inMemoryUserRepo) Credit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return decimal.Zero, fmt.Errorf("user %d not found", userID)
	}
	u.Balance = domain.RoundMoney(u.Balance.Add(amount))
	return u.Balance, nil
}

func (r *inMemoryUserRepo) ApplySettlement(ctx context.Context, tx pgx.Tx, userID int64, credit, profitDelta decimal.Decimal, won bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %d not found", userID)
	}
	u.Balance = domain.RoundMoney(u.Balance.Add(credit))
	u.TotalProfit = domain.RoundMoney(u.TotalProfit.Add(profitDelta))
	if won {
		u.TotalWins++
	}
	return nil
}

func (r *inMemoryUserRepo) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Balance.GreaterThan(out[j].Balance)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Bet Repo ---

type inMemoryBetRepo struct {
	mu     sync.RWMutex
	bets   map[int64]*domain.Bet
	nextID int64
}

func newInMemoryBetRepo() *inMemoryBetRepo {
	return &inMemoryBetRepo{bets: make(map[int64]*domain.Bet)}
}

func (r *inMemoryBetRepo) Create(ctx context.Context, tx pgx.Tx, bet *domain.Bet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	bet.ID = r.nextID
	cp := *bet
	r.bets[bet.ID] = &cp
	return nil
}

func (r *inMemoryBetRepo) GetByID(ctx context.Context, betID int64) (*domain.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bets[betID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBetRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Bet
	for _, b := range r.bets {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryBetRepo) PendingEventIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, b := range r.bets {
		if b.Result == domain.BetResultPending && !seen[b.EventID] {
			seen[b.EventID] = true
			out = append(out, b.EventID)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *inMemoryBetRepo) ListPendingByEvent(ctx context.Context, tx pgx.Tx, eventID string) ([]domain.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Bet
	for _, b := range r.bets {
		if b.EventID == eventID && b.Result == domain.BetResultPending {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MarkResult applies the conditional pending transition under the repo lock,
// so of two racing writers exactly one observes applied=true.
func (r *inMemoryBetRepo) MarkResult(ctx context.Context, tx pgx.Tx, betID int64, result domain.BetResult) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bets[betID]
	if !ok {
		return false, nil
	}
	if b.Result != domain.BetResultPending {
		return false, nil
	}
	b.Result = result
	return true, nil
}

// --- Stub Odds Feed ---

type stubFeed struct {
	mu      sync.RWMutex
	events  map[string][]domain.Event
	results map[string][]ports.EventResult
	err     error
}

func newStubFeed() *stubFeed {
	return &stubFeed{
		events:  make(map[string][]domain.Event),
		results: make(map[string][]ports.EventResult),
	}
}

func (f *stubFeed) setEvents(sportKey string, events []domain.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[sportKey] = events
}

func (f *stubFeed) setResults(sportKey string, results []ports.EventResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[sportKey] = results
}

func (f *stubFeed) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *stubFeed) FetchOdds(ctx context.Context, sportKey string) ([]domain.Event, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.events[sportKey], nil
}

func (f *stubFeed) FetchScores(ctx context.Context, sportKey string, lookbackDays int) ([]ports.EventResult, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.results[sportKey], nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
