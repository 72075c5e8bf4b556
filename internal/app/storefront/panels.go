package storefront

import (
	"github.com/YelzhanWeb/aquave/internal/app/ambiance"
	"github.com/YelzhanWeb/aquave/internal/app/checkout"
	"github.com/YelzhanWeb/aquave/internal/app/preparation"
	"github.com/YelzhanWeb/aquave/internal/app/recommendation"
	"github.com/YelzhanWeb/aquave/internal/domain"
)

// FilterUpdate carries the recommendation controls a caller wants to change
type FilterUpdate struct {
	Search   *string
	Category *domain.CategoryFilter
	Sort     *domain.SortKey
}

// Recommendations returns the current page and the filters that produced it
func (s *Session) Recommendations() (domain.PageView, domain.FilterState, error) {
	var (
		view    domain.PageView
		filters domain.FilterState
	)
	err := s.withRecommendations(func(p *recommendation.Panel) error {
		view, filters = p.View(), p.Filters()
		return nil
	})
	return view, filters, err
}

func (s *Session) UpdateFilters(u FilterUpdate) (domain.PageView, error) {
	var view domain.PageView
	err := s.withRecommendations(func(p *recommendation.Panel) error {
		if u.Search != nil {
			p.SetSearch(*u.Search)
		}
		if u.Category != nil {
			p.SetCategory(*u.Category)
		}
		if u.Sort != nil {
			p.SetSort(*u.Sort)
		}
		view = p.View()
		return nil
	})
	return view, err
}

// GoToPage jumps to page, clamped into range
func (s *Session) GoToPage(page int) (domain.PageView, error) {
	return s.paging(func(p *recommendation.Panel) { p.GoToPage(page) })
}

func (s *Session) NextPage() (domain.PageView, error) {
	return s.paging(func(p *recommendation.Panel) { p.NextPage() })
}

func (s *Session) PrevPage() (domain.PageView, error) {
	return s.paging(func(p *recommendation.Panel) { p.PrevPage() })
}

func (s *Session) ClearFilters() (domain.PageView, error) {
	return s.paging(func(p *recommendation.Panel) { p.ClearFilters() })
}

func (s *Session) paging(fn func(p *recommendation.Panel)) (domain.PageView, error) {
	var view domain.PageView
	err := s.withRecommendations(func(p *recommendation.Panel) error {
		fn(p)
		view = p.View()
		return nil
	})
	return view, err
}

func (s *Session) AddToCart(drinkID string) error {
	return s.cardAction(func(p *recommendation.Panel) bool { return p.AddToCart(drinkID) })
}

func (s *Session) Share(drinkID string) error {
	return s.cardAction(func(p *recommendation.Panel) bool { return p.Share(drinkID) })
}

func (s *Session) ToggleFavorite(drinkID string, favorite bool) error {
	return s.cardAction(func(p *recommendation.Panel) bool { return p.ToggleFavorite(drinkID, favorite) })
}

func (s *Session) cardAction(fn func(p *recommendation.Panel) bool) error {
	return s.withRecommendations(func(p *recommendation.Panel) error {
		if !fn(p) {
			return domain.ErrDrinkNotFound
		}
		return nil
	})
}

func (s *Session) Visualization() (preparation.State, error) {
	var st preparation.State
	err := s.withRecommendations(func(p *recommendation.Panel) error {
		st = p.Visualization().State()
		return nil
	})
	return st, err
}

func (s *Session) CloseVisualization() error {
	return s.withRecommendations(func(p *recommendation.Panel) error {
		viz := p.Visualization()
		if !viz.IsOpen() {
			return domain.ErrVisualizationOff
		}
		viz.Close()
		return nil
	})
}

// AmbianceUpdate carries the ambiance controls a caller wants to change
type AmbianceUpdate struct {
	LightingIntensity    *int
	MusicVolume          *int
	SmartLightingEnabled *bool
	MusicEnabled         *bool
	Genre                *string
}

func (s *Session) Ambiance() (ambiance.State, error) {
	var st ambiance.State
	err := s.withAmbiance(func(p *ambiance.Panel) error {
		st = p.State()
		return nil
	})
	return st, err
}

// UpdateAmbiance applies the update field by field and fires a callback per change.
// A genre the mood does not suggest is rejected after the other fields applied.
func (s *Session) UpdateAmbiance(u AmbianceUpdate) (ambiance.State, error) {
	var st ambiance.State
	err := s.withAmbiance(func(p *ambiance.Panel) error {
		if u.LightingIntensity != nil {
			p.SetLighting(*u.LightingIntensity)
		}
		if u.MusicVolume != nil {
			p.SetMusicVolume(*u.MusicVolume)
		}
		if u.SmartLightingEnabled != nil {
			p.SetSmartLighting(*u.SmartLightingEnabled)
		}
		if u.MusicEnabled != nil {
			p.SetMusic(*u.MusicEnabled)
		}
		st = p.State()
		if u.Genre != nil {
			if err := p.SetGenre(*u.Genre); err != nil {
				return err
			}
			st = p.State()
		}
		return nil
	})
	return st, err
}

// CheckoutUpdate carries the ordering options a caller wants to change
type CheckoutUpdate struct {
	SpiritID *string
	Delivery *domain.DeliveryOption
}

func (s *Session) Checkout() (checkout.State, error) {
	return s.checkoutOp(func(*checkout.Sequencer) error { return nil })
}

func (s *Session) UpdateCheckout(u CheckoutUpdate) (checkout.State, error) {
	return s.checkoutOp(func(o *checkout.Sequencer) error {
		if u.SpiritID != nil {
			if err := o.SetSpirit(*u.SpiritID); err != nil {
				return err
			}
		}
		if u.Delivery != nil {
			return o.SetDelivery(*u.Delivery)
		}
		return nil
	})
}

func (s *Session) AdvanceCheckout() (checkout.State, error) {
	return s.checkoutOp(func(o *checkout.Sequencer) error {
		o.Advance()
		return nil
	})
}

func (s *Session) RetreatCheckout() (checkout.State, error) {
	return s.checkoutOp(func(o *checkout.Sequencer) error {
		o.Retreat()
		return nil
	})
}

func (s *Session) OpenCheckout() (checkout.State, error) {
	return s.checkoutOp(func(o *checkout.Sequencer) error { return o.Open() })
}

func (s *Session) CloseCheckout() (checkout.State, error) {
	return s.checkoutOp(func(o *checkout.Sequencer) error {
		o.Close()
		return nil
	})
}

func (s *Session) checkoutOp(fn func(o *checkout.Sequencer) error) (checkout.State, error) {
	var st checkout.State
	err := s.withOrdering(func(o *checkout.Sequencer) error {
		err := fn(o)
		st = o.State()
		return err
	})
	return st, err
}
