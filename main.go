package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	sloghttp "github.com/samber/slog-http"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"careerpath/internal/config"
	"careerpath/internal/contact"
	"careerpath/internal/db"
	"careerpath/internal/metrics"
)

// Version est définie à la compilation avec -ldflags
var Version = "dev"

const (
	appName        = "CareerPath"
	appDescription = "Site vitrine du cabinet d'orientation et d'accompagnement de carrière"
)

//go:embed all:static
var staticFS embed.FS

func printHelp() {
	fmt.Printf(`
%s v%s - %s

UTILISATION
    %s [options]

OPTIONS
    -h, --help               Affiche cette aide
    -v, --version            Affiche la version
    -c, --config             Chemin vers le fichier .env (défaut: .env)
    --hash-password <mdp>    Affiche le hash pbkdf2 d'un mot de passe admin

VARIABLES D'ENVIRONNEMENT
    CAREERPATH_HOST                  Adresse d'écoute (défaut: 127.0.0.1)
    CAREERPATH_PORT                  Port (défaut: 5000)
    CAREERPATH_DATABASE              sqlite://fichier.db, postgres://..., kvdb://fichier.db
                                     (défaut: sqlite://database.db)
    CAREERPATH_DEFAULT_LANG          Langue par défaut, fr ou en (défaut: fr)
    CAREERPATH_LOG_LEVEL             DEBUG, INFO, WARN, ERROR (défaut: INFO)
    CAREERPATH_OTLP_GRPC             Collecteur OTLP/gRPC, ex. localhost:4317 (désactivé par défaut)
    CAREERPATH_SUBMITTER             store, webhook ou simulated (défaut: store)
    CAREERPATH_WEBHOOK_URL           Point d'entrée du CRM (submitter webhook)
    CAREERPATH_ADMIN_USERNAME        Utilisateur de /admin (défaut: admin)
    CAREERPATH_ADMIN_PASSWORD        Mot de passe de /admin, en clair ou hashé

EXEMPLES
    # Lancer avec les paramètres par défaut
    %s

    # Lancer avec un fichier de config personnalisé
    %s -c /etc/careerpath/.env

    # Générer un mot de passe admin
    %s --hash-password 'S3cret!'

`, appName, Version, appDescription, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}

func printVersion() {
	fmt.Printf("%s v%s\n", appName, Version)
}

func main() {
	var (
		showHelp     bool
		showVersion  bool
		configPath   string
		passwordHash string
	)

	flag.BoolVar(&showHelp, "help", false, "Affiche l'aide")
	flag.BoolVar(&showHelp, "h", false, "Affiche l'aide")
	flag.BoolVar(&showVersion, "version", false, "Affiche la version")
	flag.BoolVar(&showVersion, "v", false, "Affiche la version")
	flag.StringVar(&configPath, "config", "", "Chemin vers le fichier .env")
	flag.StringVar(&configPath, "c", "", "Chemin vers le fichier .env")
	flag.StringVar(&passwordHash, "hash-password", "", "Affiche le hash d'un mot de passe")

	// Parser personnalisé pour ne pas afficher l'aide par défaut
	flag.Usage = printHelp
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}
	if showVersion {
		printVersion()
		os.Exit(0)
	}
	if passwordHash != "" {
		h, err := hashPassword(passwordHash)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		fmt.Println(h)
		os.Exit(0)
	}

	// Déterminer le répertoire racine
	root := "."
	if configPath == "" {
		if _, err := os.Stat(".env"); err == nil {
			configPath = ".env"
		}
	}
	if configPath != "" {
		root = filepath.Dir(configPath)
		if err := config.LoadDotEnv(configPath); err != nil {
			log.Fatalf("config error: %v", err)
		}
	}

	settings, err := config.Load(root)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	siteConfig, err := config.LoadSiteConfig(root)
	if err != nil {
		log.Fatalf("site config error: %v", err)
	}

	logger, err := newLogger(settings.LogLevel)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	slog.SetDefault(logger)

	if err := run(settings, siteConfig, logger); err != nil {
		logger.Error("failed to run server", "error", err)
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM. Everything it opens is closed on
// return.
func run(settings *config.Settings, siteConfig *config.SiteConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := setupOTLP(ctx, settings.OTLPEndpoint, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("shutdown tracing", "error", err)
		}
	}()

	leads, closeStore, err := openLeadStore(ctx, settings)
	if err != nil {
		return fmt.Errorf("open lead store: %w", err)
	}
	defer closeStore()

	submitter, err := newSubmitter(settings, leads)
	if err != nil {
		return fmt.Errorf("configure submitter %s: %w", settings.Submitter, err)
	}

	forms := contact.NewRegistry(submitter, settings.FormTTL)
	go forms.Run(ctx, logger.WithGroup("contact"))

	app := NewApp(settings, siteConfig, leads, forms, metrics.New(), logger.WithGroup("app"))

	staticDir, err := staticFiles(settings.StaticDir)
	if err != nil {
		return fmt.Errorf("static files: %w", err)
	}

	srv := &http.Server{
		Addr:              settings.Addr(),
		Handler:           newHandler(app, staticDir, logger.WithGroup("http")),
		ReadHeaderTimeout: 10 * time.Second,
		// les flux SSE se terminent avec le contexte du serveur
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "app", appName, "version", Version, "address", srv.Addr,
			"env", settings.Environment, "submitter", settings.Submitter)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) (*slog.Logger, error) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unable to parse log level %q: %w", level, err)
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})), nil
}

func newSubmitter(settings *config.Settings, leads db.LeadStore) (contact.Submitter, error) {
	switch settings.Submitter {
	case config.SubmitterSimulated:
		return contact.DelaySubmitter{Delay: settings.SimulatedDelay}, nil
	case config.SubmitterWebhook:
		return contact.NewWebhookSubmitter(contact.WebhookConfig{
			URL:          settings.Webhook.URL,
			Timeout:      settings.Webhook.Timeout,
			TokenURL:     settings.Webhook.TokenURL,
			ClientID:     settings.Webhook.ClientID,
			ClientSecret: settings.Webhook.ClientSecret,
		})
	}
	return contact.StoreSubmitter{Store: leads}, nil
}

func staticFiles(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(staticFS, "static")
}

// newHandler wraps the routes with static files, compression, panic
// recovery and access logs.
func newHandler(app *App, static fs.FS, logger *slog.Logger) http.Handler {
	mux := app.routes()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	// pas de gzip sur le flux SSE
	compressed := handlers.CompressHandler(mux)
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/testimonials/stream" {
			mux.ServeHTTP(w, r)
			return
		}
		compressed.ServeHTTP(w, r)
	})

	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(true),
	)(h)

	return sloghttp.NewWithConfig(logger, sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
	})(h)
}

// setupOTLP installs an OTLP/gRPC trace exporter when otlpAddr is set and
// returns the matching shutdown func.
func setupOTLP(ctx context.Context, otlpAddr string, logger *slog.Logger) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if otlpAddr == "" {
		return noop, nil
	}

	conn, err := grpc.NewClient(otlpAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("create gRPC connection to collector: %w", err)
	}

	// Set up a trace exporter
	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	logger.Info("tracing enabled", "otlp-grpc", otlpAddr)

	return func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		return errors.Join(err, conn.Close())
	}, nil
}
