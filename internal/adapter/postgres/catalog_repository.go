package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/aquave/internal/domain"
)

const createDrinksTable = `
	CREATE TABLE IF NOT EXISTS drinks (
		id              TEXT PRIMARY KEY,
		position        INT NOT NULL,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		image           TEXT NOT NULL DEFAULT '',
		ingredients     TEXT[] NOT NULL DEFAULT '{}',
		price           NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
		alcohol_percent DOUBLE PRECISION NOT NULL CHECK (alcohol_percent >= 0),
		is_favorite     BOOLEAN NOT NULL DEFAULT FALSE,
		category        TEXT NOT NULL
	)
`

// CatalogRepository stores the drinks in catalog order (the position column)
type CatalogRepository struct {
	db DB
}

func NewCatalogRepository(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	query := `
		SELECT id, name, description, image, ingredients, price::text,
		       alcohol_percent, is_favorite, category
		FROM drinks
		ORDER BY position
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query drinks: %w", err)
	}
	defer rows.Close()

	var drinks []domain.Drink
	for rows.Next() {
		var (
			d        domain.Drink
			price    string
			category string
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.ImageRef, &d.Ingredients, &price,
			&d.AlcoholPercent, &d.IsFavorite, &category); err != nil {
			return nil, fmt.Errorf("failed to scan drink: %w", err)
		}
		if d.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("drink %s has invalid price %q: %w", d.ID, price, err)
		}
		d.Category = domain.Category(category)
		drinks = append(drinks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read drinks: %w", err)
	}
	return drinks, nil
}

// SaveDrinks replaces the table contents in one transaction
func (r *CatalogRepository) SaveDrinks(ctx context.Context, drinks []domain.Drink) error {
	if _, err := domain.NewCatalog(drinks); err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, createDrinksTable); err != nil {
		return fmt.Errorf("failed to create drinks table: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM drinks`); err != nil {
		return fmt.Errorf("failed to clear drinks: %w", err)
	}

	insert := `
		INSERT INTO drinks (id, position, name, description, image, ingredients,
		                    price, alcohol_percent, is_favorite, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10)
	`
	for i, d := range drinks {
		ingredients := d.Ingredients
		if ingredients == nil {
			ingredients = []string{}
		}
		_, err := tx.Exec(ctx, insert,
			d.ID, i+1, d.Name, d.Description, d.ImageRef, ingredients,
			d.Price.String(), d.AlcoholPercent, d.IsFavorite, string(d.Category),
		)
		if err != nil {
			return fmt.Errorf("failed to insert drink %s: %w", d.ID, err)
		}
	}

	return tx.Commit(ctx)
}
