package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	SessionSecret     string
	SessionTTL        time.Duration
	CookieSecure      bool
	AdminPasswordHash string
	AdminPassword     string
	PriceSource       model.PriceSource
	OperatorEmail     string
	KafkaBrokers      []string
	NotifyTopic       string
	NotifyWebhookURL  string
	NotifyWorkers     int
	NotifyQueueSize   int
	NotifyTimeout     time.Duration
	DigestSchedule    string
	LoginInterval     time.Duration
	LoginBurst        int
	ShutdownTimeout   time.Duration
	LogLevel          string
}

const (
	defaultRunAddress        = ":8080"
	minSessionSecretLen      = 16
	placeholderSessionSecret = "change-me-in-production"
	defaultCookieSecure      = true
	defaultSessionTTL        = 12 * time.Hour
	defaultPriceSource       = model.PriceSourceCatalog
	defaultOperatorEmail     = "studio@example.com"
	defaultNotifyTopic       = "order-notifications"
	defaultNotifyWorkers     = 2
	defaultNotifyQueueSize   = 64
	defaultNotifyTimeout     = 5 * time.Second
	defaultDigestSchedule    = "0 8 * * *"
	defaultLoginInterval     = 10 * time.Second
	defaultLoginBurst        = 5
	defaultShutdownTimeout   = 10 * time.Second
	defaultLogLevel          = "info"
	defaultEnvFile           = ".env"

	// DigestDisabled turns the digest job off when used as the schedule.
	DigestDisabled = "off"
)

// Load reads an optional .env file, then parses environment variables and flags.
func Load() (*Config, error) {
	envFile := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		envFile = v
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		SessionSecret:     getString(lookup, "SESSION_SECRET", ""),
		SessionTTL:        getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		CookieSecure:      getBool(lookup, "COOKIE_SECURE", defaultCookieSecure),
		AdminPasswordHash: getString(lookup, "ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     getString(lookup, "ADMIN_PASSWORD", ""),
		PriceSource:       model.PriceSource(getString(lookup, "PRICE_SOURCE", string(defaultPriceSource))),
		OperatorEmail:     getString(lookup, "OPERATOR_EMAIL", defaultOperatorEmail),
		NotifyTopic:       getString(lookup, "NOTIFY_TOPIC", defaultNotifyTopic),
		NotifyWebhookURL:  getString(lookup, "NOTIFY_WEBHOOK_URL", ""),
		NotifyWorkers:     getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:   getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyTimeout:     getDuration(lookup, "NOTIFY_TIMEOUT", defaultNotifyTimeout),
		DigestSchedule:    getString(lookup, "DIGEST_SCHEDULE", defaultDigestSchedule),
		LoginInterval:     getDuration(lookup, "LOGIN_INTERVAL", defaultLoginInterval),
		LoginBurst:        getInt(lookup, "LOGIN_BURST", defaultLoginBurst),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		priceSource        = string(cfg.PriceSource)
		brokers            = getString(lookup, "KAFKA_BROKERS", "")
		sessionTTLStr      = cfg.SessionTTL.String()
		notifyTimeoutStr   = cfg.NotifyTimeout.String()
		loginIntervalStr   = cfg.LoginInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing admin session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Admin session lifetime")
	fs.BoolVar(&cfg.CookieSecure, "cookie-secure", cfg.CookieSecure, "Send the session cookie over HTTPS only")
	fs.StringVar(&cfg.AdminPasswordHash, "admin-password-hash", cfg.AdminPasswordHash, "Bcrypt hash of the admin password")
	fs.StringVar(&priceSource, "price-source", priceSource, "Order price source: catalog or manual")
	fs.StringVar(&cfg.OperatorEmail, "operator-email", cfg.OperatorEmail, "Recipient of order notifications")
	fs.StringVar(&brokers, "kafka-brokers", brokers, "Comma separated Kafka seed brokers")
	fs.StringVar(&cfg.NotifyTopic, "notify-topic", cfg.NotifyTopic, "Kafka topic for notifications")
	fs.StringVar(&cfg.NotifyWebhookURL, "notify-webhook", cfg.NotifyWebhookURL, "HTTP endpoint receiving notifications when Kafka is not configured")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of notification workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.StringVar(&notifyTimeoutStr, "notify-timeout", notifyTimeoutStr, "Timeout for a single notification")
	fs.StringVar(&cfg.DigestSchedule, "digest-schedule", cfg.DigestSchedule, "Cron schedule of the order digest, off to disable")
	fs.StringVar(&loginIntervalStr, "login-interval", loginIntervalStr, "Interval replenishing one login attempt")
	fs.IntVar(&cfg.LoginBurst, "login-burst", cfg.LoginBurst, "Login attempts allowed in a burst")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}
	if cfg.NotifyTimeout, err = time.ParseDuration(notifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid notify timeout: %w", err)
	}
	if cfg.LoginInterval, err = time.ParseDuration(loginIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid login interval: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	cfg.KafkaBrokers = splitList(brokers)
	cfg.PriceSource = model.PriceSource(strings.ToLower(strings.TrimSpace(priceSource)))
	cfg.DigestSchedule = strings.TrimSpace(cfg.DigestSchedule)

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}
	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}
	if cfg.LoginInterval <= 0 {
		cfg.LoginInterval = defaultLoginInterval
	}
	if cfg.LoginBurst <= 0 {
		cfg.LoginBurst = defaultLoginBurst
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}
	switch {
	case len(cfg.SessionSecret) < minSessionSecretLen:
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSessionSecretLen)
	case cfg.SessionSecret == placeholderSessionSecret:
		return nil, fmt.Errorf("session secret must be changed from the placeholder")
	}
	if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password or password hash must be provided")
	}
	if !cfg.PriceSource.Valid() {
		return nil, fmt.Errorf("unknown price source %q", priceSource)
	}

	return cfg, nil
}

// DigestEnabled reports whether the digest job should be scheduled.
func (c *Config) DigestEnabled() bool {
	return c.DigestSchedule != "" && !strings.EqualFold(c.DigestSchedule, DigestDisabled)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
