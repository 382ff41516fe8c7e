package catalog

import (
	"strings"

	"careerpath/internal/locale"
)

// Key is a closed enumeration selecting one slice of a Table.
type Key interface {
	comparable
	String() string
	Label() locale.Text
}

// Region selects the regional price list.
type Region int

const (
	RegionUnknown Region = iota
	Africa
	Europe
	America
)

// Regions returns the selectable regions in display order.
func Regions() []Region {
	return []Region{Africa, Europe, America}
}

// ParseRegion returns RegionUnknown for anything but a known region code.
func ParseRegion(s string) Region {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "africa":
		return Africa
	case "europe":
		return Europe
	case "america":
		return America
	}
	return RegionUnknown
}

func (r Region) String() string {
	switch r {
	case Africa:
		return "africa"
	case Europe:
		return "europe"
	case America:
		return "america"
	}
	return ""
}

func (r Region) Label() locale.Text {
	switch r {
	case Africa:
		return locale.T("Africa", "Afrique")
	case Europe:
		return locale.T("Europe", "Europe")
	case America:
		return locale.T("Americas", "Amériques")
	}
	return locale.Text{}
}

// Cycle selects a study cycle in the program catalog.
type Cycle int

const (
	CycleUnknown Cycle = iota
	Licence
	Master
	Ingenieurie
)

// Cycles returns the selectable study cycles in display order.
func Cycles() []Cycle {
	return []Cycle{Licence, Master, Ingenieurie}
}

// ParseCycle returns CycleUnknown for anything but a known cycle code.
func ParseCycle(s string) Cycle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "licence":
		return Licence
	case "master":
		return Master
	case "ingenieurie":
		return Ingenieurie
	}
	return CycleUnknown
}

func (c Cycle) String() string {
	switch c {
	case Licence:
		return "licence"
	case Master:
		return "master"
	case Ingenieurie:
		return "ingenieurie"
	}
	return ""
}

func (c Cycle) Label() locale.Text {
	switch c {
	case Licence:
		return locale.T("Bachelor", "Licence")
	case Master:
		return locale.T("Master", "Master")
	case Ingenieurie:
		return locale.T("Engineering", "Ingénierie")
	}
	return locale.Text{}
}

// Service is one of the consultancy's offers. It is also the category key of
// the pricing table.
type Service int

const (
	ServiceUnknown Service = iota
	LinkedIn
	Coaching
	Training
	Enrollment
	Entrepreneurship
)

// Services returns the offers in display order.
func Services() []Service {
	return []Service{LinkedIn, Coaching, Training, Enrollment, Entrepreneurship}
}

// ParseService returns ServiceUnknown for anything but a known offer code.
func ParseService(s string) Service {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linkedin":
		return LinkedIn
	case "coaching":
		return Coaching
	case "training":
		return Training
	case "enrollment":
		return Enrollment
	case "entrepreneurship":
		return Entrepreneurship
	}
	return ServiceUnknown
}

func (s Service) String() string {
	switch s {
	case LinkedIn:
		return "linkedin"
	case Coaching:
		return "coaching"
	case Training:
		return "training"
	case Enrollment:
		return "enrollment"
	case Entrepreneurship:
		return "entrepreneurship"
	}
	return ""
}

func (s Service) Label() locale.Text {
	switch s {
	case LinkedIn:
		return locale.T("LinkedIn profile management", "Gestion de profil LinkedIn")
	case Coaching:
		return locale.T("Career coaching", "Coaching carrière")
	case Training:
		return locale.T("Certified training", "Formations certifiantes")
	case Enrollment:
		return locale.T("School enrollment", "Inscription en école")
	case Entrepreneurship:
		return locale.T("Entrepreneurship packages", "Packs entrepreneuriat")
	}
	return locale.Text{}
}
