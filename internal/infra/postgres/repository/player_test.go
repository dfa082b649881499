package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

type fakeRow struct {
	created bool
	err     error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.created
	return nil
}

type fakeDB struct {
	row       fakeRow
	lastQuery string
	lastArgs  []any
	execs     int
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.lastQuery, db.lastArgs = sql, args
	db.execs++
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (db *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.lastQuery, db.lastArgs = sql, args
	return db.row
}

func TestPlayerRepositorySave(t *testing.T) {
	db := &fakeDB{row: fakeRow{created: true}}
	repo := NewPlayerRepository(db)

	p := entities.NewPlayer("tg:42", "Luca")
	created, err := repo.Save(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Contains(t, db.lastQuery, "ON CONFLICT (id)")
	assert.Equal(t, []any{"tg:42", "Luca", p.FirstSeenAt, p.LastSeenAt}, db.lastArgs)
}

func TestPlayerRepositorySaveError(t *testing.T) {
	boom := errors.New("connection refused")
	repo := NewPlayerRepository(&fakeDB{row: fakeRow{err: boom}})

	_, err := repo.Save(context.Background(), entities.NewPlayer("tg:42", "Luca"))
	require.ErrorIs(t, err, boom)
}

func TestCatalogRepositoryUpsert(t *testing.T) {
	db := &fakeDB{}
	repo := NewCatalogRepository(db)

	require.NoError(t, repo.UpsertBrand(context.Background(), 0, &entities.Brand{ID: "ferrari", Name: "Ferrari"}))
	assert.Contains(t, db.lastQuery, "INSERT INTO brands")
	assert.Equal(t, "ferrari", db.lastArgs[0])

	car := &entities.Car{ID: "ferrari-sf90", BrandID: "ferrari", Category: entities.CategoryHypercar}
	require.NoError(t, repo.UpsertCar(context.Background(), 3, car))
	assert.Contains(t, db.lastQuery, "INSERT INTO cars")
	assert.Equal(t, 3, db.lastArgs[1])
	assert.Equal(t, "hypercar", db.lastArgs[6])
	assert.Equal(t, 2, db.execs)
}
