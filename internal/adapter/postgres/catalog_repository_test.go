package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/aquave/internal/config"
	"github.com/YelzhanWeb/aquave/internal/domain"
)

type fakeTag int64

func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *[]string:
			*p = row[i].([]string)
		case *float64:
			*p = row[i].(float64)
		case *bool:
			*p = row[i].(bool)
		default:
			return errors.New("unexpected scan target")
		}
	}
	return nil
}

func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     {}

type fakeTx struct {
	db        *fakeDB
	committed bool
}

func (tx *fakeTx) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	if tx.db.failOn != "" && strings.Contains(sql, tx.db.failOn) {
		return nil, errors.New("exec failed")
	}
	tx.db.execs = append(tx.db.execs, strings.TrimSpace(sql))
	tx.db.args = append(tx.db.args, args)
	return fakeTag(1), nil
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct {
	rows   *fakeRows
	execs  []string
	args   [][]any
	tx     *fakeTx
	failOn string
}

func (db *fakeDB) Query(context.Context, string, ...any) (Rows, error) { return db.rows, nil }

func (db *fakeDB) Begin(context.Context) (Tx, error) {
	db.tx = &fakeTx{db: db}
	return db.tx, nil
}

func (db *fakeDB) Close() {}

func TestCatalogRepository_ListDrinks(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{data: [][]any{
		{"drink-2", "Midnight Velvet", "bourbon", "img", []string{"Aged Bourbon"}, "21.99", 18.0, true, "Classic"},
		{"drink-1", "Aquamarine Serenity", "gin", "img", []string{"Premium Gin"}, "18.99", 12.0, false, "Signature"},
	}}}
	repo := NewCatalogRepository(db)

	drinks, err := repo.ListDrinks(context.Background())
	require.NoError(t, err)
	require.Len(t, drinks, 2)
	assert.Equal(t, "drink-2", drinks[0].ID)
	assert.Equal(t, "21.99", drinks[0].Price.StringFixed(2))
	assert.Equal(t, domain.CategoryClassic, drinks[0].Category)
	assert.True(t, drinks[0].IsFavorite)
	assert.Equal(t, []string{"Premium Gin"}, drinks[1].Ingredients)
}

func TestCatalogRepository_ListDrinksBadPrice(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{data: [][]any{
		{"drink-1", "Broken", "", "", []string{}, "free", 0.0, false, "Classic"},
	}}}

	_, err := NewCatalogRepository(db).ListDrinks(context.Background())
	assert.Error(t, err)
}

func TestCatalogRepository_SaveDrinks(t *testing.T) {
	db := &fakeDB{}
	repo := NewCatalogRepository(db)

	require.NoError(t, repo.SaveDrinks(context.Background(), domain.DefaultDrinks()))
	require.True(t, db.tx.committed)

	require.Len(t, db.execs, 2+6)
	assert.Contains(t, db.execs[0], "CREATE TABLE IF NOT EXISTS drinks")
	assert.Equal(t, "DELETE FROM drinks", db.execs[1])

	first := db.args[2]
	assert.Equal(t, "drink-1", first[0])
	assert.Equal(t, 1, first[1])
	assert.Equal(t, "18.99", first[6])
	assert.Equal(t, "Signature", first[9])
	assert.Equal(t, 6, db.args[7][1])
}

func TestCatalogRepository_SaveDrinksRejectsInvalid(t *testing.T) {
	db := &fakeDB{}
	drinks := domain.DefaultDrinks()
	drinks[0].Category = "Mocktail"

	err := NewCatalogRepository(db).SaveDrinks(context.Background(), drinks)
	assert.ErrorIs(t, err, domain.ErrInvalidDrink)
	assert.Nil(t, db.tx)
}

func TestCatalogRepository_SaveDrinksInsertFails(t *testing.T) {
	db := &fakeDB{failOn: "INSERT"}

	err := NewCatalogRepository(db).SaveDrinks(context.Background(), domain.DefaultDrinks())
	assert.Error(t, err)
	assert.False(t, db.tx.committed)
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "aquave", Password: "p@ss", Database: "store"})
	assert.Equal(t, "postgres://aquave:p%40ss@db:5432/store?sslmode=disable", dsn)
}
