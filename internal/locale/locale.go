// Package locale holds the two site languages and the paired literal strings
// rendered for them.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the two languages the site is written in.
type Locale int

const (
	FR Locale = iota
	EN
)

// Default is used when nothing in the request names a supported language.
const Default = FR

var (
	supported = []language.Tag{language.French, language.English}
	matcher   = language.NewMatcher(supported)
)

// All returns the supported locales in display order.
func All() []Locale {
	return []Locale{FR, EN}
}

// String returns the short code used in URLs and cookies.
func (l Locale) String() string {
	switch l {
	case EN:
		return "en"
	case FR:
		return "fr"
	}
	return Default.String()
}

// Tag returns the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	if l == EN {
		return language.English
	}
	return language.French
}

// Parse maps a short code ("fr", "en", "en-GB", ...) to a locale.
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, false
	}
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch s {
	case "fr":
		return FR, true
	case "en":
		return EN, true
	}
	return Default, false
}

// Negotiate picks the best locale for an Accept-Language header value.
func Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	if supported[idx] == language.English {
		return EN
	}
	return FR
}

// Text is a literal string written once per locale.
type Text struct {
	EN string `json:"en"`
	FR string `json:"fr"`
}

// T builds a Text from its English and French forms.
func T(en, fr string) Text {
	return Text{EN: en, FR: fr}
}

// Resolve returns the string stored for l.
func (t Text) Resolve(l Locale) string {
	if l == EN {
		return t.EN
	}
	return t.FR
}

// Resolve is the function form of Text.Resolve.
func Resolve(t Text, l Locale) string {
	return t.Resolve(l)
}

// ResolveAll resolves a list of texts, keeping the order.
func ResolveAll(ts []Text, l Locale) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Resolve(l)
	}
	return out
}
