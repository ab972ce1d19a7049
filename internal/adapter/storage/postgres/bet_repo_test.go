package postgres

import (
	"context"
	"testing"
	"time"

	"betmachine/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBet(userID int64) *domain.Bet {
	return &domain.Bet{
		UserID:           userID,
		EventID:          "evt_1",
		EventTitle:       "Real Madrid vs Barcelona",
		Pick:             domain.PickTeamA,
		PickLabel:        "Real Madrid",
		Odds:             decimal.NewFromFloat(2.10),
		Amount:           decimal.NewFromInt(100),
		PotentialWin:     decimal.NewFromInt(210),
		Result:           domain.BetResultPending,
		CashoutAvailable: true,
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}
}

func betTestColumns() []string {
	return []string{"id", "user_id", "event_id", "event_title", "pick", "pick_label",
		"odds", "amount", "potential_win", "result", "cashout_available", "created_at"}
}

func betRow(id int64, b *domain.Bet) *pgxmock.Rows {
	return pgxmock.NewRows(betTestColumns()).AddRow(
		id, b.UserID, b.EventID, b.EventTitle, b.Pick, b.PickLabel,
		b.Odds, b.Amount, b.PotentialWin, b.Result, b.CashoutAvailable, b.CreatedAt,
	)
}

func TestBetRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetRepo(mock)
	b := newTestBet(42)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bets").
		WithArgs(b.UserID, b.EventID, b.EventTitle, b.Pick, b.PickLabel,
			b.Odds, b.Amount, b.PotentialWin, b.Result, b.CashoutAvailable, b.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, b)
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetRepo(mock)
	b := newTestBet(42)

	mock.ExpectQuery("SELECT .+ FROM bets WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(betRow(7, b))

	result, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, domain.BetResultPending, result.Result)
	assert.True(t, result.PotentialWin.Equal(decimal.NewFromInt(210)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM bets WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(betTestColumns()))

	result, err := repo.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetRepo(mock)
	b := newTestBet(42)

	rows := pgxmock.NewRows(betTestColumns()).
		AddRow(int64(9), b.UserID, b.EventID, b.EventTitle, b.Pick, b.PickLabel,
			b.Odds, b.Amount, b.PotentialWin, b.Result, b.CashoutAvailable, b.CreatedAt).
		AddRow(int64(8), b.UserID, b.EventID, b.EventTitle, b.Pick, b.PickLabel,
			b.Odds, b.Amount, b.PotentialWin, domain.BetResultWin, false, b.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM bets WHERE user_id .+ ORDER BY id DESC").
		WithArgs(int64(42), 20).
		WillReturnRows(rows)

	bets, err := repo.ListByUser(context.Background(), 42, 20)
	require.NoError(t, err)
	require.Len(t, bets, 2)
	assert.Equal(t, int64(9), bets[0].ID)
	assert.Equal(t, domain.BetResultWin, bets[1].Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetRepo_PendingEventIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetRepo(mock)

	mock.ExpectQuery("SELECT DISTINCT event_id FROM bets").
		WillReturnRows(pgxmock.NewRows([]string{"event_id"}).AddRow("evt_1").AddRow("evt_2"))

	ids, err := repo.PendingEventIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"evt_1", "evt_2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetRepo_MarkResult_WinsRace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bets SET result").
		WithArgs(int64(7), domain.BetResultWin).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	applied, err := repo.MarkResult(context.Background(), tx, 7, domain.BetResultWin)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetRepo_MarkResult_AlreadySettled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetRepo(mock)

	mock.ExpectBegin()
	// Conditional update misses: the bet left pending already.
	mock.ExpectExec("UPDATE bets SET result").
		WithArgs(int64(7), domain.BetResultCashout).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	applied, err := repo.MarkResult(context.Background(), tx, 7, domain.BetResultCashout)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetRepo_ListPendingByEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetRepo(mock)
	b := newTestBet(42)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM bets WHERE event_id .+ result = 'pending'").
		WithArgs("evt_1").
		WillReturnRows(betRow(7, b))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	bets, err := repo.ListPendingByEvent(context.Background(), tx, "evt_1")
	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, "evt_1", bets[0].EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
