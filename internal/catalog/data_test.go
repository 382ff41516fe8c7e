package catalog

import (
	"testing"

	"careerpath/internal/locale"
)

func checkText(t *testing.T, where string, text locale.Text) {
	t.Helper()
	if text.EN == "" || text.FR == "" {
		t.Errorf("%s: missing translation %+v", where, text)
	}
}

func checkEntry(t *testing.T, where string, e Entry) {
	t.Helper()
	if e.ID == "" {
		t.Errorf("%s: entry without ID", where)
	}
	checkText(t, where+" "+e.ID+" title", e.Title)
	for _, f := range e.Features {
		checkText(t, where+" "+e.ID+" feature", f)
	}
}

func TestPricingIsComplete(t *testing.T) {
	for _, svc := range Services() {
		table := Pricing.Table(svc)
		for _, r := range Regions() {
			entries := table.Entries(r)
			if len(entries) == 0 {
				t.Errorf("%s/%s: no tiers", svc, r)
			}
			for _, e := range entries {
				checkEntry(t, svc.String()+"/"+r.String(), e)
				if e.Price == nil || e.Price.Amount <= 0 {
					t.Errorf("%s/%s/%s: missing price", svc, r, e.ID)
					continue
				}
				if e.Price.Currency != r.Currency() {
					t.Errorf("%s/%s/%s: currency %v", svc, r, e.ID, e.Price.Currency)
				}
				checkText(t, e.ID+" period", e.Price.Period)
			}
		}
	}
}

func TestProgramsAreComplete(t *testing.T) {
	if got := Programs.Keys(); len(got) != len(Cycles()) {
		t.Fatalf("Programs keys = %v", got)
	}
	for _, c := range Cycles() {
		for _, e := range Programs.Entries(c) {
			checkEntry(t, c.String(), e)
			if len(e.Features) == 0 {
				t.Errorf("%s/%s: no fields", c, e.ID)
			}
		}
	}
}

func TestContentIsTranslated(t *testing.T) {
	for _, e := range ServiceCards {
		checkEntry(t, "service", e)
		checkText(t, e.ID+" summary", e.Summary)
	}
	for _, s := range Stats {
		checkText(t, "stat "+s.Value, s.Label)
	}
	for _, tm := range Testimonials {
		checkText(t, tm.Name+" role", tm.Role)
		checkText(t, tm.Name+" quote", tm.Quote)
	}
}

func TestKeyParseRoundTrip(t *testing.T) {
	for _, r := range Regions() {
		if got := ParseRegion(r.String()); got != r {
			t.Errorf("ParseRegion(%q) = %v", r, got)
		}
		checkText(t, "region label", r.Label())
	}
	for _, c := range Cycles() {
		if got := ParseCycle(c.String()); got != c {
			t.Errorf("ParseCycle(%q) = %v", c, got)
		}
		checkText(t, "cycle label", c.Label())
	}
	for _, s := range Services() {
		if got := ParseService(s.String()); got != s {
			t.Errorf("ParseService(%q) = %v", s, got)
		}
		checkText(t, "service label", s.Label())
	}
	if ParseRegion("asia") != RegionUnknown || ParseCycle("doctorat") != CycleUnknown || ParseService("") != ServiceUnknown {
		t.Fatal("unknown codes must parse to the unknown key")
	}
}
