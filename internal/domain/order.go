package domain

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// OrderDrink is the slice of a drink record the ordering panel displays
type OrderDrink struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageRef    string          `json:"image"`
	Description string          `json:"description"`
}

// NewOrderDrink projects a catalog record onto the ordering panel
func NewOrderDrink(d Drink) OrderDrink {
	return OrderDrink{
		ID:          d.ID,
		Name:        d.Name,
		Price:       d.Price,
		ImageRef:    d.ImageRef,
		Description: d.Description,
	}
}

// DefaultOrderDrink is shown when the ordering panel is rendered on its own
func DefaultOrderDrink() OrderDrink {
	return OrderDrink{
		ID:          "1",
		Name:        "Aquamarine Bliss",
		Price:       decimal.RequireFromString("89.99"),
		ImageRef:    "https://images.unsplash.com/photo-1560963689-b5682b6440f8?w=800&q=80",
		Description: "A premium cocktail with hints of elderflower and citrus, perfectly balanced with top-shelf vodka.",
	}
}

// PremiumSpirit is an add-on bottle offered with the drink
type PremiumSpirit struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// DefaultSpiritID is Belvedere, the bottle pre-selected in the order summary
const DefaultSpiritID = "2"

func PremiumSpirits() []PremiumSpirit {
	return []PremiumSpirit{
		{ID: "1", Name: "Grey Goose", Label: "Grey Goose Premium Vodka", Price: decimal.RequireFromString("59.99")},
		{ID: "2", Name: "Belvedere", Label: "Belvedere Premium Vodka", Price: decimal.RequireFromString("54.99")},
		{ID: "3", Name: "Ciroc", Label: "Ciroc Premium Vodka", Price: decimal.RequireFromString("49.99")},
		{ID: "4", Name: "Ketel One", Label: "Ketel One Premium Vodka", Price: decimal.RequireFromString("39.99")},
	}
}

func FindSpirit(id string) (PremiumSpirit, error) {
	for _, s := range PremiumSpirits() {
		if s.ID == id {
			return s, nil
		}
	}
	return PremiumSpirit{}, fmt.Errorf("%w: %s", ErrSpiritNotFound, id)
}

func (o DeliveryOption) Label() string {
	if o == DeliveryExpress {
		return "Express Delivery"
	}
	return "Standard Delivery"
}

func (o DeliveryOption) Price() decimal.Decimal {
	if o == DeliveryExpress {
		return decimal.RequireFromString("12.99")
	}
	return decimal.Zero
}

// QuoteLine is one row of the order summary
type QuoteLine struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// Quote is the order summary shown on the review step
type Quote struct {
	Lines []QuoteLine     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// NewQuote prices the drink with its premium spirit and delivery option
func NewQuote(drink OrderDrink, spirit PremiumSpirit, delivery DeliveryOption) Quote {
	lines := []QuoteLine{
		{Label: drink.Name, Price: drink.Price},
		{Label: spirit.Label, Price: spirit.Price},
		{Label: delivery.Label(), Price: delivery.Price()},
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price)
	}
	return Quote{Lines: lines, Total: total}
}

// Confirmation is what the dialog shows once the order is placed
type Confirmation struct {
	Number            string `json:"order_number"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

// NewConfirmation draws a six digit AQV-NNNNNN order number from intn
func NewConfirmation(intn func(int) int) Confirmation {
	if intn == nil {
		intn = rand.IntN
	}
	return Confirmation{
		Number:            fmt.Sprintf("AQV-%d", 100000+intn(900000)),
		EstimatedDelivery: "Within 24 hours",
	}
}

// FormatPrice renders an amount the way the storefront prints it
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
