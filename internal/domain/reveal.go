package domain

// RevealedSet is the set of panels that have been shown. It only grows.
type RevealedSet struct {
	panels map[Panel]bool
	order  []Panel
}

func (r *RevealedSet) Reveal(panels ...Panel) {
	if r.panels == nil {
		r.panels = make(map[Panel]bool)
	}
	for _, p := range panels {
		if r.panels[p] {
			continue
		}
		r.panels[p] = true
		r.order = append(r.order, p)
	}
}

func (r *RevealedSet) Has(p Panel) bool {
	return r.panels[p]
}

// Panels returns the revealed panels in the order they were first shown
func (r *RevealedSet) Panels() []Panel {
	return append([]Panel{}, r.order...)
}
