package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/autolife-uz/autolife-go/admin"
	"github.com/autolife-uz/autolife-go/auth"
	"github.com/autolife-uz/autolife-go/backend"
	"github.com/autolife-uz/autolife-go/backend/metrics"
	"github.com/autolife-uz/autolife-go/cli"
	"github.com/autolife-uz/autolife-go/internal/config"
	"github.com/autolife-uz/autolife-go/storage"

	sessionstore "github.com/autolife-uz/autolife-go/session"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running client: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())
	logger := newLogger(c)

	kv, err := storage.NewFileStore(c.GetDataFolder())
	if err != nil {
		return fmt.Errorf("storage.NewFileStore: %w", err)
	}
	store, err := sessionstore.NewStore(kv)
	if err != nil {
		return fmt.Errorf("session.NewStore: %w", err)
	}

	// The token source closes over the manager, which needs the client
	// first; the indirection breaks the construction cycle.
	var manager *auth.Manager
	tokenSource := func() string {
		if manager == nil {
			return ""
		}
		return manager.Token()
	}

	apiMetrics := metrics.New()
	api, err := backend.NewClient(c.GetAPIBaseURL(),
		backend.WithTokenSource(tokenSource),
		backend.WithLogger(logger),
		backend.WithMetrics(apiMetrics),
		backend.WithHTTPClient(&http.Client{Timeout: time.Duration(c.GetHTTPTimeoutSeconds()) * time.Second}),
	)
	if err != nil {
		return fmt.Errorf("backend.NewClient: %w", err)
	}

	manager, err = auth.NewManager(api, store,
		auth.WithLogger(logger),
		auth.WithNotifier(cli.TerminalNotifier{Out: os.Stdout}),
	)
	if err != nil {
		return fmt.Errorf("auth.NewManager: %w", err)
	}

	adminCtx, err := admin.NewContext(manager, kv, admin.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("admin.NewContext: %w", err)
	}

	if addr := c.GetMetricsAddr(); addr != "" {
		go serveMetrics(addr, logger)
	}

	app, err := cli.New(manager, adminCtx, api, os.Stdin, os.Stdout, logger)
	if err != nil {
		return fmt.Errorf("cli.New: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

func newLogger(c config.Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if c.GetEnv() == "DEV" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func serveMetrics(addr string, logger zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info().Str("addr", addr).Msg("metrics listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn().Err(err).Msg("metrics listener stopped")
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
