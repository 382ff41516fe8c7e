package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"careerpath/internal/locale"
)

// SiteConfig holds the site configuration loaded from config/site.json
type SiteConfig struct {
	SiteName string        `json:"site_name"`
	SiteURL  string        `json:"site_url"`
	Contact  ContactConfig `json:"contact"`
	Offices  []Office      `json:"offices"`
	Legal    LegalConfig   `json:"legal"`
}

// ContactConfig is shown in the footer and on the contact page.
type ContactConfig struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
}

// Office is one physical location.
type Office struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	HoursFR string `json:"hours_fr"`
	HoursEN string `json:"hours_en"`
	MapURL  string `json:"map_url"`
}

func (o Office) Hours(l locale.Locale) string {
	return locale.T(o.HoursEN, o.HoursFR).Resolve(l)
}

// LegalConfig holds legal/mentions légales information
type LegalConfig struct {
	OwnerName       string          `json:"owner_name"`
	OwnerEmail      string          `json:"owner_email"`
	OwnerAddress    string          `json:"owner_address"`
	HostingProvider string          `json:"hosting_provider"`
	HostingAddress  string          `json:"hosting_address"`
	DataRetention   string          `json:"data_retention"`
	CustomSections  []CustomSection `json:"custom_sections"`
}

// CustomSection allows adding custom legal sections
type CustomSection struct {
	TitleFR   string `json:"title_fr"`
	TitleEN   string `json:"title_en"`
	ContentFR string `json:"content_fr"`
	ContentEN string `json:"content_en"`
}

func (c CustomSection) Title(l locale.Locale) string {
	return locale.T(c.TitleEN, c.TitleFR).Resolve(l)
}

func (c CustomSection) Content(l locale.Locale) string {
	return locale.T(c.ContentEN, c.ContentFR).Resolve(l)
}

// DefaultSiteConfig returns a default configuration
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		SiteName: "CareerPath",
		Contact: ContactConfig{
			Email: "contact@careerpath.example",
			Phone: "+221 33 800 00 00",
		},
		Offices: []Office{
			{
				City:    "Dakar",
				Country: "Sénégal",
				Address: "Route des Almadies",
				Phone:   "+221 33 800 00 00",
				HoursFR: "Lun - Ven, 9h - 18h",
				HoursEN: "Mon - Fri, 9am - 6pm",
			},
			{
				City:    "Paris",
				Country: "France",
				Address: "12 rue de la Paix, 75002",
				Phone:   "+33 1 00 00 00 00",
				HoursFR: "Lun - Ven, 9h30 - 18h",
				HoursEN: "Mon - Fri, 9:30am - 6pm",
			},
		},
		Legal: LegalConfig{
			CustomSections: []CustomSection{},
		},
	}
}

// LoadSiteConfig loads the site configuration from config/site.json.
// A missing file yields the defaults; a malformed one is an error.
func LoadSiteConfig(rootPath string) (*SiteConfig, error) {
	configPath := filepath.Join(rootPath, "config", "site.json")

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return DefaultSiteConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultSiteConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return cfg, nil
}
