package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/YelzhanWeb/aquave/internal/domain"
)

type catalogDocument struct {
	Drinks []drinkRecord `yaml:"drinks"`
}

// drinkRecord keeps the price as written so 18.99 is never a binary float
type drinkRecord struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description,omitempty"`
	Image          string   `yaml:"image,omitempty"`
	Ingredients    []string `yaml:"ingredients,omitempty"`
	Price          string   `yaml:"price"`
	AlcoholPercent float64  `yaml:"alcohol_percent"`
	IsFavorite     bool     `yaml:"is_favorite,omitempty"`
	Category       string   `yaml:"category"`
}

// CatalogRepository reads and writes the drinks as a YAML document
type CatalogRepository struct {
	path string
}

func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{path: path}
}

func (r *CatalogRepository) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Decode(data)
}

func (r *CatalogRepository) SaveDrinks(ctx context.Context, drinks []domain.Drink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := domain.NewCatalog(drinks); err != nil {
		return err
	}

	data, err := Encode(drinks)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".catalog-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return os.Rename(tmp.Name(), r.path)
}

func Decode(data []byte) ([]domain.Drink, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Drinks) == 0 {
		return nil, errors.New("catalog file has no drinks")
	}

	drinks := make([]domain.Drink, 0, len(doc.Drinks))
	for _, rec := range doc.Drinks {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: drink %s has invalid price %q", domain.ErrInvalidDrink, rec.ID, rec.Price)
		}
		drinks = append(drinks, domain.Drink{
			ID:             rec.ID,
			Name:           rec.Name,
			Description:    rec.Description,
			ImageRef:       rec.Image,
			Ingredients:    rec.Ingredients,
			Price:          price,
			AlcoholPercent: rec.AlcoholPercent,
			IsFavorite:     rec.IsFavorite,
			Category:       domain.Category(rec.Category),
		})
	}
	return drinks, nil
}

func Encode(drinks []domain.Drink) ([]byte, error) {
	doc := catalogDocument{Drinks: make([]drinkRecord, 0, len(drinks))}
	for _, d := range drinks {
		doc.Drinks = append(doc.Drinks, drinkRecord{
			ID:             d.ID,
			Name:           d.Name,
			Description:    d.Description,
			Image:          d.ImageRef,
			Ingredients:    d.Ingredients,
			Price:          d.Price.StringFixed(2),
			AlcoholPercent: d.AlcoholPercent,
			IsFavorite:     d.IsFavorite,
			Category:       string(d.Category),
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return data, nil
}
