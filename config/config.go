package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_HOST=127.0.0.1
//	SERVER_PORT=8000
//	REQUEST_TIMEOUT=60s
//	RATE_LIMIT_PER_MINUTE=120
//	QUOTES_URL=https://scanner.tradingview.com/turkey/scan
//	QUOTES_TIMEOUT=20s
//	CHART_URL=https://query1.finance.yahoo.com/v8/finance/chart
//	CHART_TIMEOUT=25s
//	HISTORY_PARALLEL=4
//	UPSTREAM_USER_AGENT=Mozilla/5.0
//	LOG_LEVEL=info
//	LOG_PRETTY=false
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Market data providers
	Log      LogConfig      // Logger settings
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Host: interface to bind; loopback by default so the gateway stays local.
//   - Port: TCP port.
//   - RequestTimeout: deadline applied to every request context.
//   - RateLimitPerMinute: inbound requests allowed per client IP, 0 disables.
//   - StaticDir: optional directory served for non-API paths.
type ServerConfig struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	RateLimitPerMinute int
	StaticDir          string
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// UpstreamConfig configures the two provider clients.
type UpstreamConfig struct {
	QuotesURL       string
	QuotesTimeout   time.Duration
	ChartURL        string
	ChartTimeout    time.Duration
	HistoryParallel int
	UserAgent       string
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If values are missing or invalid, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_HOST", "127.0.0.1")
	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("REQUEST_TIMEOUT", "60s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("STATIC_DIR", "")

	viper.SetDefault("QUOTES_URL", "https://scanner.tradingview.com/turkey/scan")
	viper.SetDefault("QUOTES_TIMEOUT", "20s")
	viper.SetDefault("CHART_URL", "https://query1.finance.yahoo.com/v8/finance/chart")
	viper.SetDefault("CHART_TIMEOUT", "25s")
	viper.SetDefault("HISTORY_PARALLEL", 4)
	viper.SetDefault("UPSTREAM_USER_AGENT", "Mozilla/5.0")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Host:               viper.GetString("SERVER_HOST"),
			Port:               viper.GetString("SERVER_PORT"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			StaticDir:          viper.GetString("STATIC_DIR"),
		},
		Upstream: UpstreamConfig{
			QuotesURL:       viper.GetString("QUOTES_URL"),
			QuotesTimeout:   viper.GetDuration("QUOTES_TIMEOUT"),
			ChartURL:        viper.GetString("CHART_URL"),
			ChartTimeout:    viper.GetDuration("CHART_TIMEOUT"),
			HistoryParallel: viper.GetInt("HISTORY_PARALLEL"),
			UserAgent:       viper.GetString("UPSTREAM_USER_AGENT"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}

	validateConfig()
}

// problems lists every missing or invalid setting of cfg.
func problems(cfg Config) []string {
	var out []string

	if p, err := strconv.Atoi(cfg.Server.Port); err != nil || p < 0 || p > 65535 {
		out = append(out, fmt.Sprintf("SERVER_PORT=%q", cfg.Server.Port))
	}
	if cfg.Server.RequestTimeout < 0 {
		out = append(out, "REQUEST_TIMEOUT")
	}
	if cfg.Server.RateLimitPerMinute < 0 {
		out = append(out, "RATE_LIMIT_PER_MINUTE")
	}
	if !absoluteURL(cfg.Upstream.QuotesURL) {
		out = append(out, fmt.Sprintf("QUOTES_URL=%q", cfg.Upstream.QuotesURL))
	}
	if !absoluteURL(cfg.Upstream.ChartURL) {
		out = append(out, fmt.Sprintf("CHART_URL=%q", cfg.Upstream.ChartURL))
	}
	if cfg.Upstream.QuotesTimeout <= 0 {
		out = append(out, "QUOTES_TIMEOUT")
	}
	if cfg.Upstream.ChartTimeout <= 0 {
		out = append(out, "CHART_TIMEOUT")
	}
	if cfg.Upstream.HistoryParallel < 1 {
		out = append(out, "HISTORY_PARALLEL")
	}
	return out
}

func absoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validateConfig terminates the application when AppConfig has missing or
// invalid values, listing all of them at once.
func validateConfig() {
	if bad := problems(AppConfig); len(bad) > 0 {
		log.Fatalf("invalid or missing configuration: %v\n", bad)
	}
}
