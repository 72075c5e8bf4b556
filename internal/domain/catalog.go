package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Catalog is an ordered, read-only set of drinks. The order is the
// "recommended" order used by the pipeline.
type Catalog struct {
	drinks []Drink
	index  map[string]int
}

// NewCatalog validates the records and rejects duplicate ids
func NewCatalog(drinks []Drink) (*Catalog, error) {
	c := &Catalog{
		drinks: make([]Drink, 0, len(drinks)),
		index:  make(map[string]int, len(drinks)),
	}
	for _, d := range drinks {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.index[d.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDrink, d.ID)
		}
		c.index[d.ID] = len(c.drinks)
		c.drinks = append(c.drinks, d.Clone())
	}
	return c, nil
}

// MustCatalog panics on invalid input. Only for literal seed data.
func MustCatalog(drinks []Drink) *Catalog {
	c, err := NewCatalog(drinks)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.drinks)
}

// Drinks returns a copy of the records in catalog order
func (c *Catalog) Drinks() []Drink {
	out := make([]Drink, len(c.drinks))
	for i, d := range c.drinks {
		out[i] = d.Clone()
	}
	return out
}

// Find looks a drink up by id
func (c *Catalog) Find(id string) (Drink, bool) {
	i, ok := c.index[id]
	if !ok {
		return Drink{}, false
	}
	return c.drinks[i].Clone(), true
}

// DefaultDrinks is the storefront's seeded recommendation list
func DefaultDrinks() []Drink {
	return []Drink{
		{
			ID:             "drink-1",
			Name:           "Aquamarine Serenity",
			Description:    "A refreshing blend of premium gin, blue curaçao, and elderflower tonic that captures the essence of tranquility.",
			ImageRef:       "https://images.unsplash.com/photo-1536935338788-846bb9981813?w=400&q=80",
			Ingredients:    []string{"Premium Gin", "Blue Curaçao", "Elderflower Tonic", "Lime", "Mint"},
			Price:          decimal.RequireFromString("18.99"),
			AlcoholPercent: 12,
			Category:       CategorySignature,
		},
		{
			ID:             "drink-2",
			Name:           "Midnight Velvet",
			Description:    "A sophisticated cocktail with aged bourbon, blackberry liqueur, and a hint of vanilla, perfect for unwinding.",
			ImageRef:       "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=400&q=80",
			Ingredients:    []string{"Aged Bourbon", "Blackberry Liqueur", "Vanilla Syrup", "Angostura Bitters", "Orange Peel"},
			Price:          decimal.RequireFromString("21.99"),
			AlcoholPercent: 18,
			IsFavorite:     true,
			Category:       CategoryClassic,
		},
		{
			ID:             "drink-3",
			Name:           "Azure Dream",
			Description:    "A delicate blend of premium vodka, blue curaçao, and coconut cream, topped with edible silver flakes.",
			ImageRef:       "https://images.unsplash.com/photo-1551024709-8f23befc6f87?w=400&q=80",
			Ingredients:    []string{"Premium Vodka", "Blue Curaçao", "Coconut Cream", "Pineapple Juice", "Edible Silver"},
			Price:          decimal.RequireFromString("23.99"),
			AlcoholPercent: 14,
			Category:       CategorySignature,
		},
		{
			ID:             "drink-4",
			Name:           "Emerald Elixir",
			Description:    "A vibrant mix of white rum, matcha, lime, and mint that energizes while maintaining sophistication.",
			ImageRef:       "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=400&q=80",
			Ingredients:    []string{"White Rum", "Matcha Powder", "Fresh Lime Juice", "Mint Leaves", "Simple Syrup"},
			Price:          decimal.RequireFromString("19.99"),
			AlcoholPercent: 10,
			Category:       CategoryTrending,
		},
		{
			ID:             "drink-5",
			Name:           "Silver Moonlight",
			Description:    "A luxurious combination of silver tequila, elderflower liqueur, and grapefruit, with a silver-dusted rim.",
			ImageRef:       "https://images.unsplash.com/photo-1560508179-b2c9a3f8e92b?w=400&q=80",
			Ingredients:    []string{"Silver Tequila", "Elderflower Liqueur", "Grapefruit Juice", "Lime", "Silver Dust"},
			Price:          decimal.RequireFromString("22.99"),
			AlcoholPercent: 16,
			IsFavorite:     true,
			Category:       CategoryPremium,
		},
		{
			ID:             "drink-6",
			Name:           "Celestial Fizz",
			Description:    "A sparkling concoction of gin, prosecco, and butterfly pea flower tea that changes color as you drink.",
			ImageRef:       "https://images.unsplash.com/photo-1527761939622-933c62e8c4c3?w=400&q=80",
			Ingredients:    []string{"Gin", "Prosecco", "Butterfly Pea Flower Tea", "Lemon Juice", "Simple Syrup"},
			Price:          decimal.RequireFromString("20.99"),
			AlcoholPercent: 13,
			Category:       CategoryTrending,
		},
	}
}

// DefaultCatalog wraps DefaultDrinks
func DefaultCatalog() *Catalog {
	return MustCatalog(DefaultDrinks())
}
