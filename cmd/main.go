package main

//
//  @title           bistpulse API
//  @version         1.0
//  @description     Borsa Istanbul quote and price history gateway.
//  @termsOfService  https://github.com/guttosm/bistpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/bistpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            127.0.0.1:8000
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        quotes
//  @tag.description Latest quote snapshots
//
//  @tag.name        history
//  @tag.description Daily price history
//
//  @tag.name        health
//  @tag.description Health and liveness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/bistpulse/config"
	_ "github.com/guttosm/bistpulse/docs" // swagger docs
	"github.com/guttosm/bistpulse/internal/app"
	"github.com/guttosm/bistpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - addr (string): host:port the server listens on.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, addr string) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the bistpulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the HTTP gateway.
//   - fetch: Runs one quotes or history request and prints the JSON to stdout.
//
// Flags:
//   - --mode:    Execution mode ("api" or "fetch"). Default: "api".
//   - --host:    Bind address for API mode. Defaults to SERVER_HOST.
//   - --port:    Port for API mode. Defaults to SERVER_PORT.
//   - --kind:    "quotes" or "history" for fetch mode.
//   - --tickers: Comma or space separated tickers for fetch mode.
//   - --start, --end: Optional YYYY-MM-DD bounds for history fetches.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	mode := flag.String("mode", "api", "Mode: api or fetch")
	host := flag.String("host", cfg.Server.Host, "Bind address for API mode")
	port := flag.String("port", cfg.Server.Port, "Port for API mode")
	kind := flag.String("kind", "quotes", "Fetch mode: quotes or history")
	tickers := flag.String("tickers", "", "Fetch mode: tickers, e.g. ALARK,FORTE")
	start := flag.String("start", "", "Fetch mode: first day (YYYY-MM-DD)")
	end := flag.String("end", "", "Fetch mode: last day (YYYY-MM-DD)")
	flag.Parse()

	switch *mode {
	case "fetch":
		svc, cleanup, err := app.NewServices(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		defer cleanup()

		fetchCtx, cancel := context.WithTimeout(ctx, cfg.Server.RequestTimeout)
		defer cancel()

		req := fetchRequest{Kind: *kind, Tickers: *tickers, Start: *start, End: *end}
		if err := runFetch(fetchCtx, svc, req, os.Stdout); err != nil {
			logger.L().Error().Err(err).Str("kind", *kind).Msg("fetch failed")
			cancel()
			cleanup()
			os.Exit(1)
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		cfg.Server.Host, cfg.Server.Port = *host, *port
		server := startServer(router, cfg.Server.Addr())
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
