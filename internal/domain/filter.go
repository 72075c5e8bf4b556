package domain

import (
	"sort"
	"strings"
)

// PageSize is the number of drinks shown per recommendations page
const PageSize = 3

// FilterState is the recommendations panel's search, tab, sort and page
type FilterState struct {
	Search   string         `json:"search"`
	Category CategoryFilter `json:"category"`
	Sort     SortKey        `json:"sort"`
	Page     int            `json:"page"`
}

// DefaultFilterState is what a freshly revealed panel starts with
func DefaultFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		Sort:     SortRecommended,
		Page:     1,
	}
}

// PageView is one rendered page of recommendations
type PageView struct {
	Drinks       []Drink `json:"drinks"`
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalMatches int     `json:"total_matches"`
	Empty        bool    `json:"empty"`
}

// HasPrev and HasNext mirror the enabled state of the pager buttons
func (v PageView) HasPrev() bool { return v.Page > 1 }
func (v PageView) HasNext() bool { return v.Page < v.TotalPages }

// Filter keeps the drinks that match both the search text and the category tab
func Filter(drinks []Drink, state FilterState) []Drink {
	term := strings.ToLower(state.Search)
	out := make([]Drink, 0, len(drinks))
	for _, d := range drinks {
		if d.Matches(term) && state.Category.Allows(d.Category) {
			out = append(out, d)
		}
	}
	return out
}

// Sort returns a stably sorted copy. SortRecommended keeps the input order.
func Sort(drinks []Drink, key SortKey) []Drink {
	out := append([]Drink(nil), drinks...)

	var less func(a, b Drink) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b Drink) bool { return a.Price.LessThan(b.Price) }
	case SortPriceDesc:
		less = func(a, b Drink) bool { return a.Price.GreaterThan(b.Price) }
	case SortAlcoholAsc:
		less = func(a, b Drink) bool { return a.AlcoholPercent < b.AlcoholPercent }
	case SortAlcoholDesc:
		less = func(a, b Drink) bool { return a.AlcoholPercent > b.AlcoholPercent }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// TotalPages is ceil(n / PageSize)
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage pins a page request into [1, max(totalPages, 1)]
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the clamped page window and the page number actually used
func Paginate(drinks []Drink, page int) ([]Drink, int) {
	page = ClampPage(page, TotalPages(len(drinks)))
	start := (page - 1) * PageSize
	if start >= len(drinks) {
		return []Drink{}, page
	}
	end := start + PageSize
	if end > len(drinks) {
		end = len(drinks)
	}
	return append([]Drink(nil), drinks[start:end]...), page
}

// Recommend runs filter, sort and paginate over the catalog
func Recommend(drinks []Drink, state FilterState) PageView {
	sorted := Sort(Filter(drinks, state), state.Sort)
	page, n := Paginate(sorted, state.Page)
	return PageView{
		Drinks:       page,
		Page:         n,
		TotalPages:   TotalPages(len(sorted)),
		TotalMatches: len(sorted),
		Empty:        len(sorted) == 0,
	}
}
