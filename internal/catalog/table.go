// Package catalog holds the static offer data of the site (pricing tiers,
// study programs, services, testimonials) and the selection logic used to
// display one slice of it at a time.
package catalog

import (
	"slices"

	"golang.org/x/text/message"

	"careerpath/internal/locale"
)

// Entry is one displayable unit: a pricing tier, a group of study fields or a
// service card.
type Entry struct {
	ID       string
	Title    locale.Text
	Summary  locale.Text
	Features []locale.Text
	Price    *Price
	// Count is a free numeric attribute, e.g. the number of partner schools.
	Count     int
	Highlight bool
}

// Table maps each key of K to an ordered list of entries. Tables are built at
// package initialization and never mutated afterwards.
type Table[K Key] struct {
	keys []K
	rows map[K][]Entry
}

func NewTable[K Key]() *Table[K] {
	return &Table[K]{rows: make(map[K][]Entry)}
}

// Add appends entries under k. Keys keep their first insertion order.
func (t *Table[K]) Add(k K, entries ...Entry) *Table[K] {
	if _, ok := t.rows[k]; !ok {
		t.keys = append(t.keys, k)
	}
	t.rows[k] = append(t.rows[k], entries...)
	return t
}

// Keys returns the configured keys in insertion order.
func (t *Table[K]) Keys() []K {
	if t == nil {
		return nil
	}
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Entries returns a copy of the entries configured for k, or nil.
func (t *Table[K]) Entries(k K) []Entry {
	if t == nil {
		return nil
	}
	rows, ok := t.rows[k]
	if !ok {
		return nil
	}
	out := make([]Entry, len(rows))
	for i, e := range rows {
		out[i] = e.clone()
	}
	return out
}

// clone copies e down to its features and price so callers cannot reach
// the package tables.
func (e Entry) clone() Entry {
	e.Features = slices.Clone(e.Features)
	if e.Price != nil {
		p := *e.Price
		e.Price = &p
	}
	return e
}

// Nested maps a category to a Table, e.g. service -> region -> tiers.
type Nested[C Key, K Key] struct {
	order  []C
	tables map[C]*Table[K]
}

func NewNested[C Key, K Key]() *Nested[C, K] {
	return &Nested[C, K]{tables: make(map[C]*Table[K])}
}

// Set registers the table of category c.
func (n *Nested[C, K]) Set(c C, t *Table[K]) *Nested[C, K] {
	if _, ok := n.tables[c]; !ok {
		n.order = append(n.order, c)
	}
	n.tables[c] = t
	return n
}

// Categories returns the configured categories in insertion order.
func (n *Nested[C, K]) Categories() []C {
	out := make([]C, len(n.order))
	copy(out, n.order)
	return out
}

// Table returns the table of c. Unknown categories get an empty table.
func (n *Nested[C, K]) Table(c C) *Table[K] {
	if t, ok := n.tables[c]; ok {
		return t
	}
	return NewTable[K]()
}

// Currency of a price.
type Currency int

const (
	XOF Currency = iota
	EUR
	USD
)

func (c Currency) Symbol() string {
	switch c {
	case EUR:
		return "€"
	case USD:
		return "$"
	}
	return "FCFA"
}

// Price of a tier in one region.
type Price struct {
	Amount   int64
	Currency Currency
	// Period is the suffix printed after the amount ("/month", "per session").
	Period locale.Text
}

// Format prints the amount with the digit grouping of l and the currency
// symbol where each language puts it.
func (p Price) Format(l locale.Locale) string {
	amount := message.NewPrinter(l.Tag()).Sprintf("%d", p.Amount)
	if p.Currency == XOF || l == locale.FR {
		return amount + " " + p.Currency.Symbol()
	}
	return p.Currency.Symbol() + amount
}
