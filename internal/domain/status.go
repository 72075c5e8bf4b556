package domain

import "strings"

type Category string

const (
	CategorySignature Category = "Signature"
	CategoryClassic   Category = "Classic"
	CategoryTrending  Category = "Trending"
	CategoryPremium   Category = "Premium"
)

// Categories lists the catalog categories in tab order
var Categories = []Category{CategorySignature, CategoryClassic, CategoryTrending, CategoryPremium}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryFilter is either CategoryAll or one of the catalog categories
type CategoryFilter string

const CategoryAll CategoryFilter = "all"

// ParseCategoryFilter accepts "all", an empty string or a category name in any case
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return CategoryFilter(c), nil
		}
	}
	return "", ErrInvalidCategory
}

func (f CategoryFilter) Allows(c Category) bool {
	return f == CategoryAll || f == "" || Category(f) == c
}

type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortAlcoholAsc  SortKey = "alcohol-asc"
	SortAlcoholDesc SortKey = "alcohol-desc"
)

// SortKeys lists the sort options in menu order
var SortKeys = []SortKey{SortRecommended, SortPriceAsc, SortPriceDesc, SortAlcoholAsc, SortAlcoholDesc}

var sortLabels = map[SortKey]string{
	SortRecommended: "Recommended",
	SortPriceAsc:    "Price: Low to High",
	SortPriceDesc:   "Price: High to Low",
	SortAlcoholAsc:  "Alcohol: Low to High",
	SortAlcoholDesc: "Alcohol: High to Low",
}

func (k SortKey) Label() string {
	if l, ok := sortLabels[k]; ok {
		return l
	}
	return string(k)
}

// ParseSortKey also accepts the storefront's legacy names (price-low, alcohol-high, ...)
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "recommended":
		return SortRecommended, nil
	case "price-asc", "price-low":
		return SortPriceAsc, nil
	case "price-desc", "price-high":
		return SortPriceDesc, nil
	case "alcohol-asc", "alcohol-low":
		return SortAlcoholAsc, nil
	case "alcohol-desc", "alcohol-high":
		return SortAlcoholDesc, nil
	}
	return "", ErrInvalidSortKey
}

// Panel identifies a section of the storefront that can be revealed
type Panel string

const (
	PanelRecommendations Panel = "recommendations"
	PanelAmbiance        Panel = "ambiance"
	PanelOrdering        Panel = "ordering"
)

type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
)

func ParseDeliveryOption(s string) (DeliveryOption, error) {
	switch DeliveryOption(strings.ToLower(strings.TrimSpace(s))) {
	case DeliveryStandard:
		return DeliveryStandard, nil
	case DeliveryExpress:
		return DeliveryExpress, nil
	}
	return "", ErrInvalidDelivery
}
