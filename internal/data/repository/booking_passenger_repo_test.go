package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// brokenRows serves a number of rows and then stops with a pending error,
// the way a result stream behaves when the connection drops mid-iteration.
type brokenRows struct {
	remaining int
	err       error
}

func (r *brokenRows) Next() bool {
	if r.remaining > 0 {
		r.remaining--
		return true
	}
	return false
}

func (r *brokenRows) Err() error {
	if r.remaining == 0 {
		return r.err
	}
	return nil
}

func (r *brokenRows) Scan(dest ...any) error                       { return nil }
func (r *brokenRows) Close()                                       {}
func (r *brokenRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *brokenRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *brokenRows) Values() ([]any, error)                       { return nil, nil }
func (r *brokenRows) RawValues() [][]byte                          { return nil }
func (r *brokenRows) Conn() *pgx.Conn                              { return nil }

type brokenQueryer struct {
	rows pgx.Rows
}

func (q brokenQueryer) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.rows, nil
}

func (q brokenQueryer) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (q brokenQueryer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

// A connection failure partway through the result stream must surface as an
// error, not as a shorter passenger list: check-in matches last names and
// counts seats against this list.
func TestFindPassengersByBookingIDTx_IterationFailure(t *testing.T) {
	repo := &bookingPassengerRepository{log: zap.NewNop()}
	q := brokenQueryer{rows: &brokenRows{remaining: 1, err: errors.New("connection reset")}}

	passengers, err := repo.FindPassengersByBookingIDTx(context.Background(), q, uuid.New())

	assert.Nil(t, passengers)
	assert.ErrorContains(t, err, "iterate booking passenger rows")
}
