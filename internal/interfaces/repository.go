package interfaces

import (
	"context"

	"github.com/YelzhanWeb/aquave/internal/domain"
)

// CatalogRepository loads the drink records in recommended order
type CatalogRepository interface {
	ListDrinks(ctx context.Context) ([]domain.Drink, error)
}

// CatalogWriter replaces the stored catalog
type CatalogWriter interface {
	SaveDrinks(ctx context.Context, drinks []domain.Drink) error
}
