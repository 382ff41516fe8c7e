package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"careerpath/internal/locale"
)

// EnvPrefix is prepended to every variable read by Load.
const EnvPrefix = "CAREERPATH_"

// Submitter kinds.
const (
	SubmitterStore     = "store"
	SubmitterWebhook   = "webhook"
	SubmitterSimulated = "simulated"
)

// Settings holds application configuration
type Settings struct {
	Environment   string `env:"ENV" envDefault:"development"`
	Host          string `env:"HOST" envDefault:"127.0.0.1"`
	Port          int    `env:"PORT" envDefault:"5000"`
	DataDirectory string `env:"DATA_DIR" envDefault:"."`
	// Database is a DSN: sqlite://file.db, postgres://..., kvdb://file.db.
	Database     string `env:"DATABASE" envDefault:"sqlite://database.db"`
	DefaultLang  string `env:"DEFAULT_LANG" envDefault:"fr"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"INFO"`
	OTLPEndpoint string `env:"OTLP_GRPC"`
	StaticDir    string `env:"STATIC_DIR"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	// AdminPassword is plain text or a pbkdf2 hash; empty disables /admin.
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Submitter      string          `env:"SUBMITTER" envDefault:"store"`
	SimulatedDelay time.Duration   `env:"SIMULATED_DELAY" envDefault:"1500ms"`
	Webhook        WebhookSettings `envPrefix:"WEBHOOK_"`

	TestimonialInterval time.Duration `env:"TESTIMONIAL_INTERVAL" envDefault:"8s"`
	FormTTL             time.Duration `env:"FORM_TTL" envDefault:"30m"`

	// Lang is DefaultLang once parsed.
	Lang locale.Locale
}

type WebhookSettings struct {
	URL          string        `env:"URL"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"8s"`
	TokenURL     string        `env:"TOKEN_URL"`
	ClientID     string        `env:"CLIENT_ID"`
	ClientSecret string        `env:"CLIENT_SECRET"`
}

func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *Settings) IsProduction() bool {
	return s.Environment == "production"
}

func resolveDirectory(root, candidate, def string) (string, error) {
	target := candidate
	if target == "" {
		target = def
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", err
	}
	return target, nil
}

func resolveFile(baseDir, candidate, defaultName string) (string, error) {
	var filePath string
	if candidate != "" && filepath.IsAbs(candidate) {
		filePath = candidate
	} else {
		if candidate == "" {
			candidate = defaultName
		}
		filePath = filepath.Join(baseDir, candidate)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return "", err
	}
	return filePath, nil
}

// SplitDSN returns the scheme of dsn and what follows "://".
// A bare path is treated as a sqlite file.
func SplitDSN(dsn string) (scheme, rest string) {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return "sqlite", dsn
	}
	return strings.ToLower(scheme), rest
}

// resolveDSN makes file based DSNs absolute under dataDir.
func resolveDSN(dataDir, dsn string) (string, error) {
	scheme, rest := SplitDSN(dsn)
	switch scheme {
	case "sqlite", "sqlite3":
		path, err := resolveFile(dataDir, rest, "database.db")
		if err != nil {
			return "", err
		}
		return "sqlite://" + path, nil
	case "kvdb", "bolt":
		path, err := resolveFile(dataDir, rest, "leads.db")
		if err != nil {
			return "", err
		}
		return "kvdb://" + path, nil
	case "postgres", "postgresql":
		return dsn, nil
	}
	return "", fmt.Errorf("unsupported database scheme %q", scheme)
}

// LoadDotEnv reads a .env file into the environment. Variables already set
// win over the file.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load loads settings from environment variables
func Load(rootPath string) (*Settings, error) {
	root, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	s.Environment = strings.ToLower(strings.TrimSpace(s.Environment))
	if s.Port <= 0 || s.Port > 65535 {
		return nil, fmt.Errorf("%sPORT out of range: %d", EnvPrefix, s.Port)
	}

	lang, ok := locale.Parse(s.DefaultLang)
	if !ok {
		return nil, fmt.Errorf("%sDEFAULT_LANG: unsupported language %q", EnvPrefix, s.DefaultLang)
	}
	s.Lang = lang

	s.Submitter = strings.ToLower(strings.TrimSpace(s.Submitter))
	switch s.Submitter {
	case SubmitterStore, SubmitterSimulated:
	case SubmitterWebhook:
		if s.Webhook.URL == "" {
			return nil, errors.New(EnvPrefix + "WEBHOOK_URL is required with the webhook submitter")
		}
	default:
		return nil, fmt.Errorf("%sSUBMITTER: unknown submitter %q", EnvPrefix, s.Submitter)
	}

	s.DataDirectory, err = resolveDirectory(root, s.DataDirectory, ".")
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	s.Database, err = resolveDSN(s.DataDirectory, s.Database)
	if err != nil {
		return nil, fmt.Errorf("resolve database: %w", err)
	}

	if s.StaticDir != "" && !filepath.IsAbs(s.StaticDir) {
		s.StaticDir = filepath.Join(root, s.StaticDir)
	}

	return &s, nil
}
