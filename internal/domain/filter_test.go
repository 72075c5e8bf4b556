package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(drinks []Drink) []string {
	out := make([]string, len(drinks))
	for i, d := range drinks {
		out[i] = d.ID
	}
	return out
}

func TestRecommend_SignatureTab(t *testing.T) {
	state := DefaultFilterState()
	state.Category = CategoryFilter(CategorySignature)

	view := Recommend(DefaultDrinks(), state)

	assert.Equal(t, []string{"drink-1", "drink-3"}, ids(view.Drinks))
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.False(t, view.HasNext())
	assert.False(t, view.Empty)
}

func TestRecommend_SearchMidnight(t *testing.T) {
	state := DefaultFilterState()
	state.Search = "midnight"

	view := Recommend(DefaultDrinks(), state)

	require.Len(t, view.Drinks, 1)
	assert.Equal(t, "Midnight Velvet", view.Drinks[0].Name)
	assert.Equal(t, 1, view.TotalMatches)
}

func TestFilter(t *testing.T) {
	t.Run("search matches description case-insensitively", func(t *testing.T) {
		got := Filter(DefaultDrinks(), FilterState{Search: "BLUE CURAÇAO", Category: CategoryAll})
		assert.Equal(t, []string{"drink-1", "drink-3"}, ids(got))
	})

	t.Run("search and category combine", func(t *testing.T) {
		got := Filter(DefaultDrinks(), FilterState{Search: "gin", Category: CategoryFilter(CategoryTrending)})
		assert.Equal(t, []string{"drink-6"}, ids(got))
	})

	t.Run("no matches", func(t *testing.T) {
		got := Filter(DefaultDrinks(), FilterState{Search: "whisky sour", Category: CategoryAll})
		assert.Empty(t, got)
	})

	t.Run("every result satisfies the predicate", func(t *testing.T) {
		state := FilterState{Search: "a", Category: CategoryFilter(CategoryTrending)}
		for _, d := range Filter(DefaultDrinks(), state) {
			assert.True(t, d.Matches("a"))
			assert.Equal(t, CategoryTrending, d.Category)
		}
	})
}

func TestSort(t *testing.T) {
	drinks := DefaultDrinks()

	t.Run("recommended keeps catalog order", func(t *testing.T) {
		assert.Equal(t, ids(drinks), ids(Sort(drinks, SortRecommended)))
	})

	t.Run("price ascending and descending are reverses", func(t *testing.T) {
		asc := ids(Sort(drinks, SortPriceAsc))
		desc := ids(Sort(drinks, SortPriceDesc))
		require.Len(t, asc, len(desc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
		assert.Equal(t, "drink-1", asc[0])
		assert.Equal(t, "drink-3", desc[0])
	})

	t.Run("alcohol", func(t *testing.T) {
		assert.Equal(t, []string{"drink-4", "drink-1", "drink-6", "drink-3", "drink-5", "drink-2"}, ids(Sort(drinks, SortAlcoholAsc)))
		assert.Equal(t, "drink-2", Sort(drinks, SortAlcoholDesc)[0].ID)
	})

	t.Run("stable on ties", func(t *testing.T) {
		tied := DefaultDrinks()
		for i := range tied {
			tied[i].Price = decimal.NewFromInt(10)
		}
		assert.Equal(t, ids(tied), ids(Sort(tied, SortPriceDesc)))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := ids(drinks)
		Sort(drinks, SortPriceDesc)
		assert.Equal(t, before, ids(drinks))
	})
}

func TestPaginate(t *testing.T) {
	drinks := DefaultDrinks()

	t.Run("pages reassemble to the full sequence", func(t *testing.T) {
		for _, key := range SortKeys {
			sorted := Sort(Filter(drinks, DefaultFilterState()), key)
			var joined []string
			for p := 1; p <= TotalPages(len(sorted)); p++ {
				page, _ := Paginate(sorted, p)
				joined = append(joined, ids(page)...)
			}
			assert.Equal(t, ids(sorted), joined, key)
		}
	})

	t.Run("out of range pages clamp", func(t *testing.T) {
		last, n := Paginate(drinks, 2)
		require.Equal(t, 2, n)

		for _, p := range []int{3, 99} {
			got, used := Paginate(drinks, p)
			assert.Equal(t, 2, used)
			assert.Equal(t, ids(last), ids(got))
		}

		first, _ := Paginate(drinks, 1)
		for _, p := range []int{0, -5} {
			got, used := Paginate(drinks, p)
			assert.Equal(t, 1, used)
			assert.Equal(t, ids(first), ids(got))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got, used := Paginate(nil, 4)
		assert.Empty(t, got)
		assert.Equal(t, 1, used)
	})
}

func TestTotalPages(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 3: 1, 4: 2, 6: 2, 7: 3}
	for n, want := range cases {
		assert.Equal(t, want, TotalPages(n), "n=%d", n)
	}
}

func TestRecommend_EmptyView(t *testing.T) {
	state := DefaultFilterState()
	state.Search = "nothing like this"
	state.Page = 4

	view := Recommend(DefaultDrinks(), state)

	assert.True(t, view.Empty)
	assert.Equal(t, 0, view.TotalPages)
	assert.Equal(t, 1, view.Page)
	assert.False(t, view.HasPrev())
	assert.False(t, view.HasNext())
}

func TestParseFilters(t *testing.T) {
	c, err := ParseCategoryFilter("premium")
	require.NoError(t, err)
	assert.Equal(t, CategoryFilter(CategoryPremium), c)

	c, err = ParseCategoryFilter("")
	require.NoError(t, err)
	assert.Equal(t, CategoryAll, c)

	_, err = ParseCategoryFilter("Tiki")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	k, err := ParseSortKey("price-high")
	require.NoError(t, err)
	assert.Equal(t, SortPriceDesc, k)

	_, err = ParseSortKey("rating")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}
