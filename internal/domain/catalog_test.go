package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Run("default catalog", func(t *testing.T) {
		c := DefaultCatalog()
		assert.Equal(t, 6, c.Len())

		d, ok := c.Find("drink-5")
		require.True(t, ok)
		assert.Equal(t, "Silver Moonlight", d.Name)
		assert.True(t, d.IsFavorite)

		_, ok = c.Find("drink-99")
		assert.False(t, ok)
	})

	t.Run("duplicate id", func(t *testing.T) {
		drinks := DefaultDrinks()
		drinks[2].ID = drinks[0].ID
		_, err := NewCatalog(drinks)
		assert.ErrorIs(t, err, ErrDuplicateDrink)
	})

	t.Run("invalid records", func(t *testing.T) {
		cases := map[string]func(*Drink){
			"empty id":         func(d *Drink) { d.ID = " " },
			"empty name":       func(d *Drink) { d.Name = "" },
			"negative price":   func(d *Drink) { d.Price = decimal.NewFromInt(-1) },
			"negative alcohol": func(d *Drink) { d.AlcoholPercent = -0.5 },
			"unknown category": func(d *Drink) { d.Category = "Tiki" },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				drinks := DefaultDrinks()
				mutate(&drinks[1])
				_, err := NewCatalog(drinks)
				assert.ErrorIs(t, err, ErrInvalidDrink)
			})
		}
	})

	t.Run("callers cannot mutate the catalog", func(t *testing.T) {
		c := DefaultCatalog()
		drinks := c.Drinks()
		drinks[0].Name = "changed"
		drinks[0].Ingredients[0] = "changed"

		d, _ := c.Find("drink-1")
		assert.Equal(t, "Aquamarine Serenity", d.Name)
		assert.Equal(t, "Premium Gin", d.Ingredients[0])
	})
}

func TestFindMood(t *testing.T) {
	m, ok := FindMood(DefaultMoods(), "special")
	require.True(t, ok)
	assert.Equal(t, "Special Occasion", m.Name)

	_, ok = FindMood(DefaultMoods(), "sleepy")
	assert.False(t, ok)
}

func TestNewQuote(t *testing.T) {
	spirit, err := FindSpirit(DefaultSpiritID)
	require.NoError(t, err)
	assert.Equal(t, "Belvedere", spirit.Name)

	q := NewQuote(DefaultOrderDrink(), spirit, DeliveryExpress)
	require.Len(t, q.Lines, 3)
	assert.Equal(t, "Express Delivery", q.Lines[2].Label)
	assert.Equal(t, "$157.97", FormatPrice(q.Total))

	q = NewQuote(DefaultOrderDrink(), spirit, DeliveryStandard)
	assert.Equal(t, "$144.98", FormatPrice(q.Total))

	_, err = FindSpirit("9")
	assert.ErrorIs(t, err, ErrSpiritNotFound)
}

func TestNewConfirmation(t *testing.T) {
	c := NewConfirmation(func(int) int { return 42 })
	assert.Equal(t, "AQV-100042", c.Number)
	assert.Equal(t, "Within 24 hours", c.EstimatedDelivery)

	c = NewConfirmation(nil)
	assert.Regexp(t, `^AQV-[1-9]\d{5}$`, c.Number)
}

func TestAmbianceHelpers(t *testing.T) {
	assert.Equal(t, 0, ClampLevel(-3))
	assert.Equal(t, 100, ClampLevel(250))
	assert.Equal(t, 42, ClampLevel(42))

	assert.Equal(t, []string{"Dance", "Electronic", "Hip-Hop"}, GenresForMood("Party"))
	assert.Equal(t, []string{"Jazz", "Pop", "Rock"}, GenresForMood("Special Occasion"))
	assert.Equal(t, "slate", BackgroundForMood("Refreshing"))
	assert.Equal(t, "blue", BackgroundForMood("Relaxation"))
}
