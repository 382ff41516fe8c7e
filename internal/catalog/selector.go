package catalog

import "careerpath/internal/locale"

// Selector is the per-view selection state over a Table: the active key and
// whether the full list or only a preview is shown.
type Selector[K Key] struct {
	table   *Table[K]
	active  K
	showAll bool
	limit   int
}

// NewSelector starts on initial. A limit of zero or less disables the preview
// truncation.
func NewSelector[K Key](t *Table[K], initial K, limit int) *Selector[K] {
	return &Selector[K]{table: t, active: initial, limit: limit}
}

// Select makes k the active key. Keys absent from the table select nothing.
func (s *Selector[K]) Select(k K) {
	s.active = k
}

func (s *Selector[K]) Active() K {
	return s.active
}

func (s *Selector[K]) SetShowAll(v bool) {
	s.showAll = v
}

func (s *Selector[K]) ShowAll() bool {
	return s.showAll
}

// Visible returns the entries of the active key in table order, truncated to
// the preview limit unless ShowAll is set.
func (s *Selector[K]) Visible() []Entry {
	entries := s.table.Entries(s.active)
	if !s.showAll && s.limit > 0 && len(entries) > s.limit {
		return entries[:s.limit]
	}
	return entries
}

// HasMore reports whether Visible is hiding entries.
func (s *Selector[K]) HasMore() bool {
	return !s.showAll && s.limit > 0 && len(s.table.Entries(s.active)) > s.limit
}

// Option is one entry of the key switcher (tab, region toggle).
type Option struct {
	Key    string
	Label  string
	Active bool
}

// EntryView is an Entry with every text resolved.
type EntryView struct {
	ID        string
	Title     string
	Summary   string
	Features  []string
	Price     string
	Period    string
	Count     int
	Highlight bool
}

// View is what a page needs to draw a filtered catalog.
type View struct {
	Active  string
	Options []Option
	Entries []EntryView
	ShowAll bool
	HasMore bool
}

// Empty reports whether nothing is selected.
func (v View) Empty() bool {
	return len(v.Entries) == 0
}

// Render resolves the selection in l. options lists the switcher keys; it is
// usually Regions() or Cycles().
func Render[K Key](s *Selector[K], options []K, l locale.Locale) View {
	v := View{
		Active:  s.active.String(),
		ShowAll: s.showAll,
		HasMore: s.HasMore(),
	}
	for _, k := range options {
		v.Options = append(v.Options, Option{
			Key:    k.String(),
			Label:  k.Label().Resolve(l),
			Active: k == s.active,
		})
	}
	for _, e := range s.Visible() {
		v.Entries = append(v.Entries, ViewOf(e, l))
	}
	return v
}

// ViewOf resolves a single entry.
func ViewOf(e Entry, l locale.Locale) EntryView {
	ev := EntryView{
		ID:        e.ID,
		Title:     e.Title.Resolve(l),
		Summary:   e.Summary.Resolve(l),
		Features:  locale.ResolveAll(e.Features, l),
		Count:     e.Count,
		Highlight: e.Highlight,
	}
	if e.Price != nil {
		ev.Price = e.Price.Format(l)
		ev.Period = e.Price.Period.Resolve(l)
	}
	return ev
}
