package storefront

import (
	"sync"
	"time"

	"github.com/YelzhanWeb/aquave/internal/app/ambiance"
	"github.com/YelzhanWeb/aquave/internal/app/checkout"
	"github.com/YelzhanWeb/aquave/internal/app/preparation"
	"github.com/YelzhanWeb/aquave/internal/app/recommendation"
	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/domain"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

const DefaultUserName = "Guest User"

type Header struct {
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
}

type SessionOptions struct {
	ID       string
	Catalog  *domain.Catalog
	Moods    []domain.Mood
	Header   Header
	Listener interfaces.Listener
	// Scheduler is wrapped so callbacks run under the session lock
	Scheduler       scheduler.Scheduler
	AutoClose       time.Duration
	PreparationTick time.Duration
	Intn            func(int) int
	Now             func() time.Time
}

// Session is one visitor's storefront: the revealed panels and their state.
// All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id       string
	catalog  *domain.Catalog
	moods    []domain.Mood
	header   Header
	listener interfaces.Listener
	sched    scheduler.Scheduler

	autoClose       time.Duration
	preparationTick time.Duration
	intn            func(int) int
	now             func() time.Time

	revealed      domain.RevealedSet
	selectedMood  *domain.Mood
	selectedDrink *domain.Drink

	recommendations *recommendation.Panel
	ambiance        *ambiance.Panel
	ordering        *checkout.Sequencer

	lastSeen time.Time
	disposed bool
}

func NewSession(opts SessionOptions) *Session {
	s := &Session{
		id:              opts.ID,
		catalog:         opts.Catalog,
		moods:           opts.Moods,
		header:          opts.Header,
		listener:        interfaces.OrNop(opts.Listener),
		autoClose:       opts.AutoClose,
		preparationTick: opts.PreparationTick,
		intn:            opts.Intn,
		now:             opts.Now,
	}
	if s.catalog == nil {
		s.catalog = domain.DefaultCatalog()
	}
	if len(s.moods) == 0 {
		s.moods = domain.DefaultMoods()
	}
	if s.header.UserName == "" {
		s.header.UserName = DefaultUserName
	}
	if s.now == nil {
		s.now = time.Now
	}
	inner := opts.Scheduler
	if inner == nil {
		inner = scheduler.New()
	}
	s.sched = scheduler.NewLocked(inner, &s.mu)
	s.lastSeen = s.now()
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) touch() {
	s.lastSeen = s.now()
}

// IdleSince reports the time of the last call into the session
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SelectMood records the mood and reveals the recommendations and ambiance panels
func (s *Session) SelectMood(moodID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return domain.ErrSessionNotFound
	}
	s.touch()

	mood, ok := domain.FindMood(s.moods, moodID)
	if !ok {
		return domain.ErrMoodNotFound
	}
	s.selectedMood = &mood

	if s.recommendations == nil {
		s.recommendations = recommendation.New(recommendation.Options{
			Catalog:       s.catalog,
			Listener:      s.listener,
			Visualization: preparation.New(s.sched, s.preparationTick),
		})
	}
	if s.ambiance == nil {
		s.ambiance = ambiance.New(mood.Name, s.listener)
	} else {
		s.ambiance.SetMood(mood.Name)
	}
	s.revealed.Reveal(domain.PanelRecommendations, domain.PanelAmbiance)
	s.listener.MoodSelected(mood)
	return nil
}

// SelectDrink looks the id up in the catalog and reveals the ordering panel.
// An unknown id or a disposed session changes nothing and reports false.
func (s *Session) SelectDrink(drinkID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return false
	}
	s.touch()

	var (
		drink domain.Drink
		ok    bool
	)
	if s.recommendations != nil {
		drink, ok = s.recommendations.SelectDrink(drinkID)
	} else if drink, ok = s.catalog.Find(drinkID); ok {
		s.listener.DrinkSelected(drink)
	}
	if !ok {
		return false
	}

	s.selectedDrink = &drink
	s.scopeOrdering(domain.NewOrderDrink(drink))
	s.revealed.Reveal(domain.PanelOrdering)
	return true
}

func (s *Session) scopeOrdering(d domain.OrderDrink) {
	if s.ordering != nil {
		if err := s.ordering.SetDrink(d); err == nil {
			return
		}
		s.ordering.Finish()
	}
	s.ordering = checkout.New(checkout.Options{
		Drink:     &d,
		AutoClose: s.autoClose,
		Scheduler: s.sched,
		Listener:  s.listener,
		Intn:      s.intn,
	})
}

func (s *Session) withRecommendations(fn func(p *recommendation.Panel) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return domain.ErrSessionNotFound
	}
	s.touch()
	if s.recommendations == nil {
		return domain.ErrPanelHidden
	}
	return fn(s.recommendations)
}

func (s *Session) withAmbiance(fn func(p *ambiance.Panel) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return domain.ErrSessionNotFound
	}
	s.touch()
	if s.ambiance == nil {
		return domain.ErrPanelHidden
	}
	return fn(s.ambiance)
}

func (s *Session) withOrdering(fn func(o *checkout.Sequencer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return domain.ErrSessionNotFound
	}
	s.touch()
	if s.ordering == nil {
		return domain.ErrPanelHidden
	}
	return fn(s.ordering)
}

// Dispose cancels every pending timer. Later calls report ErrSessionNotFound.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.disposed = true
	if s.recommendations != nil {
		s.recommendations.Dispose()
	}
	if s.ordering != nil {
		s.ordering.Dispose()
	}
}

// View is the whole storefront as rendered for this session
type View struct {
	ID              string              `json:"session_id"`
	Header          Header              `json:"header"`
	Moods           []domain.Mood       `json:"moods"`
	SelectedMood    *domain.Mood        `json:"selected_mood,omitempty"`
	SelectedDrink   *domain.Drink       `json:"selected_drink,omitempty"`
	Revealed        []domain.Panel      `json:"revealed"`
	Filters         *domain.FilterState `json:"filters,omitempty"`
	Recommendations *domain.PageView    `json:"recommendations,omitempty"`
	Visualization   *preparation.State  `json:"visualization,omitempty"`
	Ambiance        *ambiance.State     `json:"ambiance,omitempty"`
	Checkout        *checkout.State     `json:"checkout,omitempty"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:       s.id,
		Header:   s.header,
		Moods:    append([]domain.Mood(nil), s.moods...),
		Revealed: s.revealed.Panels(),
	}
	if s.selectedMood != nil {
		m := *s.selectedMood
		v.SelectedMood = &m
	}
	if s.selectedDrink != nil {
		d := s.selectedDrink.Clone()
		v.SelectedDrink = &d
	}
	if s.recommendations != nil {
		f := s.recommendations.Filters()
		page := s.recommendations.View()
		viz := s.recommendations.Visualization().State()
		v.Filters, v.Recommendations, v.Visualization = &f, &page, &viz
	}
	if s.ambiance != nil {
		a := s.ambiance.State()
		v.Ambiance = &a
	}
	if s.ordering != nil {
		o := s.ordering.State()
		v.Checkout = &o
	}
	return v
}
