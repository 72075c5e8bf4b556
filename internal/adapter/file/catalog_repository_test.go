package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/aquave/internal/domain"
)

const sample = `
drinks:
  - id: house-1
    name: Tide Pool
    description: Salted gin sour
    ingredients: [Gin, Lemon, Sea Salt]
    price: "14.50"
    alcohol_percent: 11
    category: Signature
  - id: house-2
    name: Harbor Old Fashioned
    price: 16
    alcohol_percent: 30
    is_favorite: true
    category: Classic
`

func TestDecode(t *testing.T) {
	drinks, err := Decode([]byte(sample))
	require.NoError(t, err)
	require.Len(t, drinks, 2)

	assert.Equal(t, "Tide Pool", drinks[0].Name)
	assert.Equal(t, "14.50", drinks[0].Price.StringFixed(2))
	assert.Equal(t, []string{"Gin", "Lemon", "Sea Salt"}, drinks[0].Ingredients)
	assert.Equal(t, domain.CategorySignature, drinks[0].Category)

	assert.Equal(t, "16.00", drinks[1].Price.StringFixed(2))
	assert.True(t, drinks[1].IsFavorite)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":    "drinks: [",
		"empty":     "drinks: []",
		"bad price": "drinks:\n  - id: x\n    name: X\n    price: cheap\n    category: Classic\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestCatalogRepository_RoundTripDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drinks.yaml")
	repo := NewCatalogRepository(path)

	require.NoError(t, repo.SaveDrinks(context.Background(), domain.DefaultDrinks()))

	drinks, err := repo.ListDrinks(context.Background())
	require.NoError(t, err)
	want := domain.DefaultDrinks()
	require.Len(t, drinks, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, drinks[i].ID)
		assert.True(t, want[i].Price.Equal(drinks[i].Price), want[i].ID)
		assert.Equal(t, want[i].Category, drinks[i].Category)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCatalogRepository_SaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drinks.yaml")
	drinks := domain.DefaultDrinks()
	drinks = append(drinks, drinks[0])

	err := NewCatalogRepository(path).SaveDrinks(context.Background(), drinks)
	assert.ErrorIs(t, err, domain.ErrDuplicateDrink)
	assert.NoFileExists(t, path)
}

func TestCatalogRepository_MissingFile(t *testing.T) {
	_, err := NewCatalogRepository(filepath.Join(t.TempDir(), "nope.yaml")).ListDrinks(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
