package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Drink represents a cocktail record in the catalog
type Drink struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Description    string          `json:"description" yaml:"description"`
	ImageRef       string          `json:"image" yaml:"image"`
	Ingredients    []string        `json:"ingredients" yaml:"ingredients"`
	Price          decimal.Decimal `json:"price" yaml:"price"`
	AlcoholPercent float64         `json:"alcohol_percent" yaml:"alcohol_percent"`
	IsFavorite     bool            `json:"is_favorite" yaml:"is_favorite"`
	Category       Category        `json:"category" yaml:"category"`
}

// Validate applies catalog rules to a single record
func (d Drink) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: drink id is required", ErrInvalidDrink)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: drink %s has no name", ErrInvalidDrink, d.ID)
	}
	if d.Price.IsNegative() {
		return fmt.Errorf("%w: drink %s has a negative price", ErrInvalidDrink, d.ID)
	}
	if d.AlcoholPercent < 0 {
		return fmt.Errorf("%w: drink %s has a negative alcohol percentage", ErrInvalidDrink, d.ID)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: drink %s has unknown category %q", ErrInvalidDrink, d.ID, d.Category)
	}
	return nil
}

// Matches reports whether the lowercased term occurs in the name or description
func (d Drink) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(d.Name), term) ||
		strings.Contains(strings.ToLower(d.Description), term)
}

// Clone returns a copy that shares no slices with the receiver
func (d Drink) Clone() Drink {
	c := d
	if d.Ingredients != nil {
		c.Ingredients = append([]string(nil), d.Ingredients...)
	}
	return c
}
