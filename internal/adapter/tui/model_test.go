package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/app/storefront"
	"github.com/YelzhanWeb/aquave/internal/domain"
)

func newModel(t *testing.T) (Model, *storefront.Session, *scheduler.Manual) {
	t.Helper()
	clock := scheduler.NewManual()
	session := storefront.NewSession(storefront.SessionOptions{
		ID:        "tui",
		Scheduler: clock,
		Intn:      func(int) int { return 42 },
	})
	t.Cleanup(session.Dispose)
	return New(session, nil), session, clock
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_PickMood(t *testing.T) {
	m, session, _ := newModel(t)
	assert.Contains(t, m.View(), "How are you feeling tonight?")
	assert.Contains(t, m.View(), "Guest User")

	m = press(t, m, "down", "enter")
	assert.Equal(t, modeBrowse, m.mode)

	v := session.View()
	require.NotNil(t, v.SelectedMood)
	assert.Equal(t, "party", v.SelectedMood.ID)
	assert.Contains(t, m.View(), "Recommended for you")
	assert.Contains(t, m.View(), "Ambiance for Party")
}

func TestModel_MoodCursorWraps(t *testing.T) {
	m, session, _ := newModel(t)
	m = press(t, m, "up", "enter")
	assert.Equal(t, "special", session.View().SelectedMood.ID)
}

func TestModel_FiltersAndPaging(t *testing.T) {
	m, session, _ := newModel(t)
	m = press(t, m, "enter")

	m = press(t, m, "right")
	view, _, err := session.Recommendations()
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)

	m = press(t, m, "c")
	view, filters, err := session.Recommendations()
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFilter(domain.CategorySignature), filters.Category)
	assert.Equal(t, 1, view.Page)

	m = press(t, m, "s", "s")
	_, filters, _ = session.Recommendations()
	assert.Equal(t, domain.SortPriceDesc, filters.Sort)

	m = press(t, m, "r")
	_, filters, _ = session.Recommendations()
	assert.Equal(t, domain.DefaultFilterState(), filters)
	assert.Equal(t, modeBrowse, m.mode)
}

func TestModel_Search(t *testing.T) {
	m, session, _ := newModel(t)
	m = press(t, m, "enter", "/")
	require.Equal(t, modeSearch, m.mode)

	m = press(t, m, "m", "i", "d")
	_, filters, _ := session.Recommendations()
	assert.Equal(t, "mid", filters.Search)
	assert.Equal(t, modeSearch, m.mode, "letters go to the search box, not the key bindings")

	m = press(t, m, "backspace")
	_, filters, _ = session.Recommendations()
	assert.Equal(t, "mi", filters.Search)

	m = press(t, m, "esc")
	assert.Equal(t, modeBrowse, m.mode)
}

func TestModel_SelectDrinkRunsVisualization(t *testing.T) {
	m, session, clock := newModel(t)
	m = press(t, m, "enter", "down", "enter")

	v := session.View()
	require.NotNil(t, v.SelectedDrink)
	assert.Equal(t, "drink-2", v.SelectedDrink.ID)
	assert.Contains(t, m.View(), "Preparing Midnight Velvet")

	clock.Advance(5 * time.Second)
	assert.Contains(t, m.View(), "Midnight Velvet is ready")

	m = press(t, m, "v")
	assert.NoError(t, m.err)
	assert.NotContains(t, m.View(), "is ready")
}

func TestModel_CardActions(t *testing.T) {
	m, _, _ := newModel(t)
	m = press(t, m, "enter")

	m = press(t, m, "a")
	assert.Equal(t, "Added Aquamarine Serenity to cart", m.status)

	m = press(t, m, "f")
	assert.True(t, m.favorites["drink-1"])
	m = press(t, m, "f")
	assert.False(t, m.favorites["drink-1"])

	m = press(t, m, "x")
	assert.Equal(t, "Shared Aquamarine Serenity", m.status)
}

func TestModel_AmbianceKeys(t *testing.T) {
	m, session, _ := newModel(t)
	m = press(t, m, "enter", "+", "+", "[", "L", "M", "g")

	st, err := session.Ambiance()
	require.NoError(t, err)
	assert.Equal(t, 90, st.Settings.LightingIntensity)
	assert.Equal(t, 40, st.Settings.MusicVolume)
	assert.False(t, st.Settings.SmartLightingEnabled)
	assert.False(t, st.Settings.MusicEnabled)
	assert.Equal(t, st.Genres[0], st.Settings.Genre)

	m = press(t, m, "g")
	st, _ = session.Ambiance()
	assert.Equal(t, st.Genres[1], st.Settings.Genre)
	assert.NoError(t, m.err)
}

func TestModel_CheckoutFlow(t *testing.T) {
	m, session, clock := newModel(t)
	m = press(t, m, "enter", "enter", "o")
	require.Equal(t, modeCheckout, m.mode)
	assert.Contains(t, m.View(), "Shipping Information")

	m = press(t, m, "d", "p")
	st, err := session.Checkout()
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryStandard, st.Delivery)
	assert.Equal(t, "3", st.SpiritID)

	m = press(t, m, "enter", "b")
	st, _ = session.Checkout()
	assert.Equal(t, domain.StepShipping, st.Step)

	m = press(t, m, "enter", "enter", "enter")
	assert.Equal(t, "Order AQV-100042 placed", m.status)
	assert.Contains(t, m.View(), "Thank you!")

	clock.Advance(storefront.DefaultSettings().AutoClose)
	next, _ := m.Update(timerMsg(func() {}))
	m = next.(Model)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Contains(t, m.View(), "Order complete")

	m = press(t, m, "o")
	assert.ErrorIs(t, m.err, domain.ErrOrderPlaced)
}

func TestModel_EscClosesCheckout(t *testing.T) {
	m, session, _ := newModel(t)
	m = press(t, m, "enter", "enter", "o", "esc")
	assert.Equal(t, modeBrowse, m.mode)

	st, err := session.Checkout()
	require.NoError(t, err)
	assert.False(t, st.DialogOpen)
	assert.Contains(t, m.View(), "press o to order")
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Cheers!\n", next.View())
}

func TestModel_TimerMessagesComeFromQueue(t *testing.T) {
	q := scheduler.NewQueued(scheduler.NewManual())
	defer q.Close()

	m := New(nil, q)
	cmd := m.Init()
	require.NotNil(t, cmd)

	q.Close()
	assert.Nil(t, cmd())
}

func TestNextHelpers(t *testing.T) {
	assert.Equal(t, domain.CategoryFilter(domain.CategorySignature), nextCategory(domain.CategoryAll))
	assert.Equal(t, domain.CategoryAll, nextCategory(domain.CategoryFilter(domain.CategoryPremium)))
	assert.Equal(t, domain.SortRecommended, nextSort(domain.SortAlcoholDesc))
	assert.Equal(t, "1", nextSpirit(domain.PremiumSpirits(), "4"))
	assert.Equal(t, 0, wrap(5, 0))
	assert.Equal(t, 2, wrap(-1, 3))
	assert.Equal(t, tokenColor("slate"), tokenColor("chartreuse"))
}
