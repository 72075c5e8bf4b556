package memory

import (
	"context"
	"sync"

	"github.com/YelzhanWeb/aquave/internal/domain"
)

// CatalogRepository serves the builtin drinks and keeps saved ones in memory
type CatalogRepository struct {
	mu     sync.RWMutex
	drinks []domain.Drink
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{drinks: domain.DefaultDrinks()}
}

func (r *CatalogRepository) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.drinks), nil
}

func (r *CatalogRepository) SaveDrinks(ctx context.Context, drinks []domain.Drink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := domain.NewCatalog(drinks); err != nil {
		return err
	}

	r.mu.Lock()
	r.drinks = cloneAll(drinks)
	r.mu.Unlock()
	return nil
}

func cloneAll(drinks []domain.Drink) []domain.Drink {
	out := make([]domain.Drink, len(drinks))
	for i, d := range drinks {
		out[i] = d.Clone()
	}
	return out
}
