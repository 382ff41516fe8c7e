package catalog

import (
	"reflect"
	"testing"

	"careerpath/internal/locale"
)

func testTable() *Table[Region] {
	return NewTable[Region]().
		Add(Africa,
			Entry{
				ID:       "a1",
				Title:    locale.T("A1", "A1"),
				Features: []locale.Text{locale.T("Feature", "Atout")},
				Price:    &Price{Amount: 10, Currency: XOF},
			},
			Entry{ID: "a2", Title: locale.T("A2", "A2")},
			Entry{ID: "a3", Title: locale.T("A3", "A3")},
		).
		Add(Europe, Entry{ID: "e1", Title: locale.T("E1", "E1")})
}

func ids(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestSelectorVisible(t *testing.T) {
	tt := []struct {
		name string
		key  Region
		want []string
	}{
		{name: "africa keeps table order", key: Africa, want: []string{"a1", "a2", "a3"}},
		{name: "europe", key: Europe, want: []string{"e1"}},
		{name: "configured nowhere", key: America, want: []string{}},
		{name: "unknown key", key: RegionUnknown, want: []string{}},
		{name: "out of range key", key: Region(42), want: []string{}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSelector(testTable(), Africa, 0)
			s.Select(tc.key)
			if got := ids(s.Visible()); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Visible() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectorSelectIsIdempotent(t *testing.T) {
	s := NewSelector(testTable(), Europe, 0)
	for _, k := range Regions() {
		s.Select(k)
		first := s.Visible()
		s.Select(k)
		if second := s.Visible(); !reflect.DeepEqual(first, second) {
			t.Fatalf("Select(%v) twice: %v then %v", k, ids(first), ids(second))
		}
		if s.Active() != k {
			t.Fatalf("Active() = %v, want %v", s.Active(), k)
		}
	}
}

func TestSelectorPreview(t *testing.T) {
	s := NewSelector(testTable(), Africa, 2)
	if got := ids(s.Visible()); !reflect.DeepEqual(got, []string{"a1", "a2"}) {
		t.Fatalf("preview = %v", got)
	}
	if !s.HasMore() {
		t.Fatal("HasMore() = false with a truncated list")
	}

	s.SetShowAll(true)
	if got := ids(s.Visible()); !reflect.DeepEqual(got, []string{"a1", "a2", "a3"}) {
		t.Fatalf("show all = %v", got)
	}
	if s.HasMore() {
		t.Fatal("HasMore() = true while showing everything")
	}

	s.Select(Europe)
	s.SetShowAll(false)
	if s.HasMore() {
		t.Fatal("HasMore() = true for a list shorter than the limit")
	}
}

func TestVisibleReturnsCopy(t *testing.T) {
	table := testTable()
	s := NewSelector(table, Africa, 0)
	got := s.Visible()
	got[0].ID = "changed"
	got[0].Features[0].EN = "changed"
	got[0].Price.Amount = 1
	again := table.Entries(Africa)
	if again[0].ID != "a1" {
		t.Fatalf("table mutated through Visible(): %v", ids(again))
	}
	if again[0].Features[0].EN != "Feature" {
		t.Fatalf("feature mutated through Visible(): %q", again[0].Features[0].EN)
	}
	if again[0].Price.Amount != 10 {
		t.Fatalf("price mutated through Visible(): %d", again[0].Price.Amount)
	}
}

func TestProgramsTableIsReadOnly(t *testing.T) {
	before := Programs.Entries(Licence)[0].Features[0].EN
	s := NewSelector(Programs, Licence, ProgramPreview)
	s.Visible()[0].Features[0].EN = "changed"
	if after := Programs.Entries(Licence)[0].Features[0].EN; after != before {
		t.Fatalf("Programs feature = %q, want %q", after, before)
	}
}

func TestRender(t *testing.T) {
	table := NewTable[Region]().Add(Europe, Entry{
		ID:       "pro",
		Title:    locale.T("Pro", "Pro"),
		Features: []locale.Text{locale.T("Weekly call", "Appel hebdomadaire")},
		Price:    &Price{Amount: 99, Currency: EUR, Period: locale.T("/ month", "/ mois")},
	})
	s := NewSelector(table, Europe, 0)

	v := Render(s, Regions(), locale.FR)
	if v.Active != "europe" {
		t.Fatalf("Active = %q", v.Active)
	}
	if len(v.Options) != 3 || !v.Options[1].Active || v.Options[0].Active {
		t.Fatalf("Options = %+v", v.Options)
	}
	if v.Options[2].Label != "Amériques" {
		t.Fatalf("option label = %q", v.Options[2].Label)
	}
	if len(v.Entries) != 1 {
		t.Fatalf("Entries = %+v", v.Entries)
	}
	e := v.Entries[0]
	if e.Features[0] != "Appel hebdomadaire" || e.Period != "/ mois" || e.Price != "99 €" {
		t.Fatalf("entry = %+v", e)
	}

	s.Select(RegionUnknown)
	if v := Render(s, Regions(), locale.EN); !v.Empty() {
		t.Fatalf("unknown region rendered %d entries", len(v.Entries))
	}
}

func TestPriceFormat(t *testing.T) {
	tt := []struct {
		price Price
		l     locale.Locale
		want  string
	}{
		{Price{Amount: 49, Currency: EUR}, locale.EN, "€49"},
		{Price{Amount: 49, Currency: EUR}, locale.FR, "49 €"},
		{Price{Amount: 59, Currency: USD}, locale.EN, "$59"},
		{Price{Amount: 25000, Currency: XOF}, locale.EN, "25,000 FCFA"},
	}
	for _, tc := range tt {
		if got := tc.price.Format(tc.l); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.l, got, tc.want)
		}
	}
}

func TestNestedUnknownCategory(t *testing.T) {
	if keys := Pricing.Table(ServiceUnknown).Keys(); len(keys) != 0 {
		t.Fatalf("unknown service has keys %v", keys)
	}
	if got := Pricing.Categories(); !reflect.DeepEqual(got, Services()) {
		t.Fatalf("Categories() = %v, want %v", got, Services())
	}
}
