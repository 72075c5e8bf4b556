package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/YelzhanWeb/aquave/internal/app/checkout"
	"github.com/YelzhanWeb/aquave/internal/app/storefront"
	"github.com/YelzhanWeb/aquave/internal/domain"
)

func (m Model) View() string {
	if m.quitting {
		return "Cheers!\n"
	}

	v := m.session.View()
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("AQUAVÉ  ·  " + v.Header.UserName))
	sb.WriteString("\n\n")

	if m.mode == modeMood || v.SelectedMood == nil {
		sb.WriteString(m.renderMoods(v))
	} else {
		sb.WriteString(m.renderBrowse(v))
	}

	if m.err != nil {
		sb.WriteString("\n" + m.styles.Error.Render(m.err.Error()) + "\n")
	} else if m.status != "" {
		sb.WriteString("\n" + m.styles.Status.Render(m.status) + "\n")
	}

	sb.WriteString("\n" + m.styles.Help.Render(m.help()) + "\n")
	return sb.String()
}

func (m Model) renderMoods(v storefront.View) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("How are you feeling tonight?"))
	sb.WriteString("\n")
	for i, mood := range v.Moods {
		swatch := lipgloss.NewStyle().Foreground(tokenColor(mood.ColorToken)).Render("●")
		line := fmt.Sprintf("%s %s  %s", swatch, mood.Name, m.styles.Muted.Render(mood.Description))
		if i == m.cursor {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m Model) renderBrowse(v storefront.View) string {
	var sections []string

	if v.Recommendations != nil && v.Filters != nil {
		sections = append(sections, m.renderRecommendations(*v.Filters, *v.Recommendations))
	}
	if v.Visualization != nil && v.Visualization.Open && v.Visualization.Drink != nil {
		viz := v.Visualization
		label := "Preparing " + viz.Drink.Name
		if viz.Done {
			label = viz.Drink.Name + " is ready"
		}
		sections = append(sections, m.styles.Panel.Render(
			label+"\n"+m.progress.ViewAs(float64(viz.Progress)/100)))
	}
	if v.Ambiance != nil {
		sections = append(sections, m.renderAmbiance(v))
	}
	if v.Checkout != nil {
		sections = append(sections, m.renderCheckout(*v.Checkout))
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderRecommendations(f domain.FilterState, page domain.PageView) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Recommended for you"))
	sb.WriteString("\n")
	sb.WriteString(m.search.View() + "\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("category: %s  ·  sort: %s", f.Category, f.Sort.Label())))
	sb.WriteString("\n\n")

	if page.Empty {
		sb.WriteString(m.styles.Muted.Render("No drinks match your filters. Press r to clear them."))
		return m.styles.Panel.Render(sb.String())
	}

	for i, d := range page.Drinks {
		heart := "♡"
		if m.isFavorite(d) {
			heart = "♥"
		}
		line := fmt.Sprintf("%s %-24s %-7s %4.1f%%  %s", heart, d.Name, domain.FormatPrice(d.Price), d.AlcoholPercent, d.Category)
		if i == m.cursor && m.mode == modeBrowse {
			sb.WriteString(m.styles.Selected.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("\npage %d of %d  ·  %d matches", page.Page, page.TotalPages, page.TotalMatches)))
	return m.styles.Panel.Render(sb.String())
}

func (m Model) renderAmbiance(v storefront.View) string {
	a := v.Ambiance
	s := a.Settings
	genre := s.Genre
	if genre == "" {
		genre = "-"
	}
	body := fmt.Sprintf("Ambiance for %s\nlighting %3d%%  smart %s\nmusic    %3d%%  %s  genre %s (%s)",
		a.Mood, s.LightingIntensity, onOff(s.SmartLightingEnabled),
		s.MusicVolume, onOff(s.MusicEnabled), genre, strings.Join(a.Genres, "/"))
	return m.styles.Panel.BorderForeground(tokenColor(a.Background)).Render(body)
}

func (m Model) renderCheckout(st checkout.State) string {
	var sb strings.Builder

	if st.Completed && st.Confirmation != nil {
		sb.WriteString(m.styles.Title.Render("Order complete"))
		sb.WriteString(fmt.Sprintf("\n%s  ·  %s", st.Confirmation.Number, st.Confirmation.EstimatedDelivery))
		return m.styles.Panel.Render(sb.String())
	}
	if !st.DialogOpen {
		return m.styles.Panel.Render(fmt.Sprintf("%s  %s  ·  press o to order", st.Drink.Name, domain.FormatPrice(st.Drink.Price)))
	}

	if st.Placed && st.Confirmation != nil {
		sb.WriteString(m.styles.Title.Render("Thank you!"))
		sb.WriteString(fmt.Sprintf("\nOrder %s  ·  delivery %s", st.Confirmation.Number, st.Confirmation.EstimatedDelivery))
		return m.styles.Panel.Render(sb.String())
	}

	sb.WriteString(m.styles.Title.Render(st.StepTitle))
	sb.WriteString("  " + m.styles.Muted.Render(st.StepDescription) + "\n\n")
	for _, line := range st.Quote.Lines {
		sb.WriteString(fmt.Sprintf("%-32s %s\n", line.Label, domain.FormatPrice(line.Price)))
	}
	sb.WriteString(fmt.Sprintf("%-32s %s\n\n", "Total", domain.FormatPrice(st.Quote.Total)))
	sb.WriteString(m.styles.Selected.Render("[enter] " + st.ActionLabel))
	return m.styles.Panel.Render(sb.String())
}

func (m Model) help() string {
	switch m.mode {
	case modeMood:
		return "↑/↓ choose  enter select  q quit"
	case modeSearch:
		return "type to search  enter/esc done"
	case modeCheckout:
		return "enter next  b back  p spirit  d delivery  esc close"
	default:
		return "↑/↓ move  ←/→ page  / search  c category  s sort  r reset  enter select  a cart  f fav  x share  " +
			"v close  +/- light  [/] volume  g genre  L smart  M music  o order  m mood  q quit"
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
