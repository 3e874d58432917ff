package app

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bistpulse/config"
	"github.com/guttosm/bistpulse/internal/api"
	"github.com/guttosm/bistpulse/internal/service"
	"github.com/guttosm/bistpulse/internal/upstream"
)

// Services bundles the use cases shared by the API and the CLI fetch mode.
type Services struct {
	Quotes  service.QuoteService
	History service.HistoryService
}

// NewServices builds the provider clients and services described by cfg.
// The returned cleanup releases idle provider connections.
func NewServices(cfg config.Config) (Services, func(), error) {
	for key, raw := range map[string]string{"QUOTES_URL": cfg.Upstream.QuotesURL, "CHART_URL": cfg.Upstream.ChartURL} {
		if _, err := url.ParseRequestURI(raw); err != nil {
			return Services{}, nil, fmt.Errorf("invalid %s: %w", key, err)
		}
	}

	quotesHTTP := upstream.NewHTTPClient(cfg.Upstream.QuotesTimeout)
	chartHTTP := upstream.NewHTTPClient(cfg.Upstream.ChartTimeout)

	tv := upstream.NewTradingViewClient(
		upstream.WithEndpoint(cfg.Upstream.QuotesURL),
		upstream.WithHTTPClient(quotesHTTP),
		upstream.WithUserAgent(cfg.Upstream.UserAgent),
	)
	yahoo := upstream.NewYahooClient(
		upstream.WithEndpoint(cfg.Upstream.ChartURL),
		upstream.WithHTTPClient(chartHTTP),
		upstream.WithUserAgent(cfg.Upstream.UserAgent),
	)

	svc := Services{
		Quotes:  service.NewQuoteService(tv),
		History: service.NewHistoryService(yahoo, cfg.Upstream.HistoryParallel),
	}
	cleanup := func() {
		quotesHTTP.CloseIdleConnections()
		chartHTTP.CloseIdleConnections()
	}
	return svc, cleanup, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the TradingView and Yahoo clients with their own timeouts.
//   - Initializes the quote and history services.
//   - Creates the HTTP handler layer and the router with all routes,
//     including the health endpoints.
//   - Provides a cleanup function that releases provider connections.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	svc, cleanup, err := NewServices(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	handler := api.NewHandler(svc.Quotes, svc.History)
	router := api.NewRouter(handler, api.NewHealthHandler(), api.RouterConfig{
		RequestTimeout:     cfg.Server.RequestTimeout,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		StaticDir:          cfg.Server.StaticDir,
	})

	return router, cleanup, nil
}
