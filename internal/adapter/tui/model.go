package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/YelzhanWeb/aquave/internal/app/storefront"
	"github.com/YelzhanWeb/aquave/internal/domain"
)

// Timers is the delivery side of scheduler.Queued
type Timers interface {
	C() <-chan func()
	Done() <-chan struct{}
}

type mode int

const (
	modeMood mode = iota
	modeBrowse
	modeSearch
	modeCheckout
)

const levelStep = 10

// timerMsg carries a due session callback onto the update loop
type timerMsg func()

// Model is the terminal storefront for one session. Session callbacks that
// fire on timers are delivered through Timers and run inside Update.
type Model struct {
	session  *storefront.Session
	timers   Timers
	styles   Styles
	search   textinput.Model
	progress progress.Model

	mode      mode
	cursor    int
	favorites map[string]bool
	status    string
	err       error
	width     int
	quitting  bool
}

// New builds the model; timers may be nil when nothing is scheduled through a queue
func New(session *storefront.Session, timers Timers) Model {
	ti := textinput.New()
	ti.Placeholder = "Search drinks..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return Model{
		session:   session,
		timers:    timers,
		styles:    DefaultStyles(),
		search:    ti,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		mode:      modeMood,
		favorites: make(map[string]bool),
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForTimer()
}

func (m Model) waitForTimer() tea.Cmd {
	if m.timers == nil {
		return nil
	}
	timers := m.timers
	return func() tea.Msg {
		select {
		case fn := <-timers.C():
			return timerMsg(fn)
		case <-timers.Done():
			return nil
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerMsg:
		msg()
		m.syncCheckoutMode()
		return m, m.waitForTimer()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 8; w > 10 && w < 60 {
			m.progress.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		m.status, m.err = "", nil

		switch m.mode {
		case modeMood:
			return m.updateMood(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeCheckout:
			return m.updateCheckout(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateMood(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moods := m.session.View().Moods

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.cursor = wrap(m.cursor-1, len(moods))
	case "down", "j":
		m.cursor = wrap(m.cursor+1, len(moods))
	case "esc":
		if m.session.View().SelectedMood != nil {
			m.mode, m.cursor = modeBrowse, 0
		}
	case "enter":
		if len(moods) == 0 {
			return m, nil
		}
		mood := moods[m.cursor]
		if err := m.session.SelectMood(mood.ID); err != nil {
			m.err = err
			return m, nil
		}
		m.mode, m.cursor = modeBrowse, 0
		m.status = "Mood set to " + mood.Name
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view, filters, _ := m.session.Recommendations()
	drinks := view.Drinks

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "m":
		m.mode, m.cursor = modeMood, 0
	case "up", "k":
		m.cursor = wrap(m.cursor-1, len(drinks))
	case "down", "j":
		m.cursor = wrap(m.cursor+1, len(drinks))
	case "left", "h":
		_, m.err = m.session.PrevPage()
		m.cursor = 0
	case "right", "l":
		_, m.err = m.session.NextPage()
		m.cursor = 0
	case "/":
		m.mode = modeSearch
		return m, m.search.Focus()
	case "c":
		next := nextCategory(filters.Category)
		_, m.err = m.session.UpdateFilters(storefront.FilterUpdate{Category: &next})
		m.cursor = 0
	case "s":
		next := nextSort(filters.Sort)
		_, m.err = m.session.UpdateFilters(storefront.FilterUpdate{Sort: &next})
		m.cursor = 0
	case "r":
		_, m.err = m.session.ClearFilters()
		m.search.SetValue("")
		m.cursor = 0
	case "enter":
		if d, ok := pick(drinks, m.cursor); ok && m.session.SelectDrink(d.ID) {
			m.status = "Preparing " + d.Name
		}
	case "a":
		if d, ok := pick(drinks, m.cursor); ok {
			if m.err = m.session.AddToCart(d.ID); m.err == nil {
				m.status = "Added " + d.Name + " to cart"
			}
		}
	case "f":
		if d, ok := pick(drinks, m.cursor); ok {
			fav := !m.isFavorite(d)
			if m.err = m.session.ToggleFavorite(d.ID, fav); m.err == nil {
				m.favorites[d.ID] = fav
			}
		}
	case "x":
		if d, ok := pick(drinks, m.cursor); ok {
			if m.err = m.session.Share(d.ID); m.err == nil {
				m.status = "Shared " + d.Name
			}
		}
	case "v":
		m.err = m.session.CloseVisualization()
	case "+", "=":
		m.err = m.adjustAmbiance(func(s domain.AmbianceSettings) storefront.AmbianceUpdate {
			v := s.LightingIntensity + levelStep
			return storefront.AmbianceUpdate{LightingIntensity: &v}
		})
	case "-":
		m.err = m.adjustAmbiance(func(s domain.AmbianceSettings) storefront.AmbianceUpdate {
			v := s.LightingIntensity - levelStep
			return storefront.AmbianceUpdate{LightingIntensity: &v}
		})
	case "]":
		m.err = m.adjustAmbiance(func(s domain.AmbianceSettings) storefront.AmbianceUpdate {
			v := s.MusicVolume + levelStep
			return storefront.AmbianceUpdate{MusicVolume: &v}
		})
	case "[":
		m.err = m.adjustAmbiance(func(s domain.AmbianceSettings) storefront.AmbianceUpdate {
			v := s.MusicVolume - levelStep
			return storefront.AmbianceUpdate{MusicVolume: &v}
		})
	case "L":
		m.err = m.adjustAmbiance(func(s domain.AmbianceSettings) storefront.AmbianceUpdate {
			v := !s.SmartLightingEnabled
			return storefront.AmbianceUpdate{SmartLightingEnabled: &v}
		})
	case "M":
		m.err = m.adjustAmbiance(func(s domain.AmbianceSettings) storefront.AmbianceUpdate {
			v := !s.MusicEnabled
			return storefront.AmbianceUpdate{MusicEnabled: &v}
		})
	case "g":
		m.err = m.cycleGenre()
	case "o":
		st, err := m.session.OpenCheckout()
		if err != nil {
			m.err = err
			return m, nil
		}
		if st.DialogOpen {
			m.mode = modeCheckout
		}
	}

	if errors.Is(m.err, domain.ErrPanelHidden) {
		m.err = nil
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.search.Blur()
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		_, m.err = m.session.UpdateFilters(storefront.FilterUpdate{Search: &value})
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		st, err := m.session.AdvanceCheckout()
		m.err = err
		if err == nil && st.Placed {
			m.status = "Order " + st.Confirmation.Number + " placed"
		}
	case "backspace", "b":
		_, m.err = m.session.RetreatCheckout()
	case "p":
		st, err := m.session.Checkout()
		if err != nil {
			m.err = err
			break
		}
		next := nextSpirit(st.Spirits, st.SpiritID)
		_, m.err = m.session.UpdateCheckout(storefront.CheckoutUpdate{SpiritID: &next})
	case "d":
		st, err := m.session.Checkout()
		if err != nil {
			m.err = err
			break
		}
		next := domain.DeliveryExpress
		if st.Delivery == domain.DeliveryExpress {
			next = domain.DeliveryStandard
		}
		_, m.err = m.session.UpdateCheckout(storefront.CheckoutUpdate{Delivery: &next})
	case "esc":
		_, m.err = m.session.CloseCheckout()
	}
	m.syncCheckoutMode()
	return m, nil
}

// syncCheckoutMode leaves the checkout dialog once it closed, including by auto-close
func (m *Model) syncCheckoutMode() {
	if m.mode != modeCheckout {
		return
	}
	st, err := m.session.Checkout()
	if err != nil || !st.DialogOpen {
		m.mode = modeBrowse
	}
}

func (m Model) adjustAmbiance(change func(domain.AmbianceSettings) storefront.AmbianceUpdate) error {
	st, err := m.session.Ambiance()
	if err != nil {
		return err
	}
	_, err = m.session.UpdateAmbiance(change(st.Settings))
	return err
}

func (m Model) cycleGenre() error {
	st, err := m.session.Ambiance()
	if err != nil {
		return err
	}
	if len(st.Genres) == 0 {
		return nil
	}
	next := st.Genres[0]
	for i, g := range st.Genres {
		if g == st.Settings.Genre {
			next = st.Genres[(i+1)%len(st.Genres)]
			break
		}
	}
	_, err = m.session.UpdateAmbiance(storefront.AmbianceUpdate{Genre: &next})
	return err
}

func (m Model) isFavorite(d domain.Drink) bool {
	if fav, ok := m.favorites[d.ID]; ok {
		return fav
	}
	return d.IsFavorite
}

func pick(drinks []domain.Drink, i int) (domain.Drink, bool) {
	if i < 0 || i >= len(drinks) {
		return domain.Drink{}, false
	}
	return drinks[i], true
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}

func nextCategory(current domain.CategoryFilter) domain.CategoryFilter {
	options := []domain.CategoryFilter{domain.CategoryAll}
	for _, c := range domain.Categories {
		options = append(options, domain.CategoryFilter(c))
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return domain.CategoryAll
}

func nextSort(current domain.SortKey) domain.SortKey {
	for i, k := range domain.SortKeys {
		if k == current {
			return domain.SortKeys[(i+1)%len(domain.SortKeys)]
		}
	}
	return domain.SortRecommended
}

func nextSpirit(spirits []domain.PremiumSpirit, current string) string {
	for i, s := range spirits {
		if s.ID == current {
			return spirits[(i+1)%len(spirits)].ID
		}
	}
	if len(spirits) > 0 {
		return spirits[0].ID
	}
	return current
}
