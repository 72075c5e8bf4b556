package recommendation

import (
	"github.com/YelzhanWeb/aquave/internal/app/preparation"
	"github.com/YelzhanWeb/aquave/internal/domain"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

type Options struct {
	// Catalog defaults to domain.DefaultCatalog
	Catalog       *domain.Catalog
	Listener      interfaces.Listener
	Visualization *preparation.Visualization
}

// Panel owns the recommendations view: search, category tab, sort, page and
// the drink visualization opened from a card.
type Panel struct {
	catalog  *domain.Catalog
	state    domain.FilterState
	listener interfaces.Listener
	viz      *preparation.Visualization
}

func New(opts Options) *Panel {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	viz := opts.Visualization
	if viz == nil {
		viz = preparation.New(nil, 0)
	}
	return &Panel{
		catalog:  catalog,
		state:    domain.DefaultFilterState(),
		listener: interfaces.OrNop(opts.Listener),
		viz:      viz,
	}
}

func (p *Panel) Filters() domain.FilterState {
	return p.state
}

func (p *Panel) View() domain.PageView {
	return domain.Recommend(p.catalog.Drinks(), p.state)
}

// SetSearch changes the search text and returns to the first page
func (p *Panel) SetSearch(text string) {
	p.state.Search = text
	p.state.Page = 1
}

// SetCategory switches the tab and returns to the first page
func (p *Panel) SetCategory(c domain.CategoryFilter) {
	p.state.Category = c
	p.state.Page = 1
}

func (p *Panel) SetSort(key domain.SortKey) {
	p.state.Sort = key
}

// GoToPage stores the clamped page number
func (p *Panel) GoToPage(page int) int {
	total := domain.TotalPages(len(domain.Filter(p.catalog.Drinks(), p.state)))
	p.state.Page = domain.ClampPage(page, total)
	return p.state.Page
}

func (p *Panel) NextPage() int {
	return p.GoToPage(p.state.Page + 1)
}

func (p *Panel) PrevPage() int {
	return p.GoToPage(p.state.Page - 1)
}

// ClearFilters resets search and category. The sort key is kept.
func (p *Panel) ClearFilters() {
	p.state.Search = ""
	p.state.Category = domain.CategoryAll
	p.state.Page = 1
}

// SelectDrink opens the visualization for a catalog drink. Unknown ids are ignored.
func (p *Panel) SelectDrink(id string) (domain.Drink, bool) {
	d, ok := p.catalog.Find(id)
	if !ok {
		return domain.Drink{}, false
	}
	p.viz.Show(d)
	p.listener.DrinkSelected(d)
	return d, true
}

func (p *Panel) AddToCart(id string) bool {
	if _, ok := p.catalog.Find(id); !ok {
		return false
	}
	p.listener.AddedToCart(id)
	return true
}

// ToggleFavorite reports the new favourite flag. The catalog is not written back.
func (p *Panel) ToggleFavorite(id string, favorite bool) bool {
	if _, ok := p.catalog.Find(id); !ok {
		return false
	}
	p.listener.FavoriteToggled(id, favorite)
	return true
}

func (p *Panel) Share(id string) bool {
	if _, ok := p.catalog.Find(id); !ok {
		return false
	}
	p.listener.Shared(id)
	return true
}

func (p *Panel) Visualization() *preparation.Visualization {
	return p.viz
}

func (p *Panel) Dispose() {
	p.viz.Dispose()
}
