package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Preference store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// LogOff disables file logging when used as FEED_LOG_PATH.
const LogOff = "off"

// Config holds application-level configuration.
type Config struct {
	Scope        string // Origin the preferences are scoped to
	PrefsBackend string // file, sqlite or redis
	PrefsPath    string // JSON preferences file
	SQLitePath   string
	RedisURL     string
	LogPath      string // Empty when logging is disabled
	LogLevel     string

	Splash        bool
	SplashDelay   time.Duration
	LoadDelay     time.Duration // Simulated latency before load-more appends
	SettleDelay   time.Duration // Scroll-settle debounce
	LoadThreshold int           // Rows from the bottom that trigger load-more
	ThemeButton   bool
	ColorScheme   string // "", "light" or "dark"
	SeedPath      string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present; real environment wins.
//
//	FEED_SCOPE         : preference origin (default: "local")
//	FEED_PREFS_BACKEND : file | sqlite | redis (default: file)
//	FEED_PREFS_PATH    : JSON preferences file (default: ~/.config/terminalfeed/prefs.json)
//	FEED_SQLITE_PATH   : SQLite database (default: ~/.config/terminalfeed/prefs.db)
//	FEED_REDIS_URL     : redis:// URL (default: redis://localhost:6379/0)
//	FEED_LOG_PATH      : log file, "off" to disable (default: ~/.cache/terminalfeed/terminalfeed.log)
//	FEED_LOG_LEVEL     : debug | info | warn | error (default: info)
//	FEED_SPLASH        : show the splash screen (default: true)
//	FEED_SPLASH_DELAY  : splash duration (default: 2s)
//	FEED_LOAD_DELAY    : simulated load latency (default: 500ms)
//	FEED_SETTLE_DELAY  : scroll-settle debounce (default: 150ms)
//	FEED_LOAD_THRESHOLD: rows from the bottom that trigger load-more (default: 10)
//	FEED_THEME_BUTTON  : show the theme toggle (default: true)
//	FEED_COLOR_SCHEME  : force the system color-scheme hint: light | dark
//	FEED_SEED_PATH     : JSON file replacing the built-in posts
func Load() (Config, error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "terminalfeed")

	cfg := Config{
		Scope:        strings.TrimSpace(getEnv("FEED_SCOPE", "local")),
		PrefsBackend: strings.ToLower(strings.TrimSpace(getEnv("FEED_PREFS_BACKEND", BackendFile))),
		PrefsPath:    getEnv("FEED_PREFS_PATH", filepath.Join(configDir, "prefs.json")),
		SQLitePath:   getEnv("FEED_SQLITE_PATH", filepath.Join(configDir, "prefs.db")),
		RedisURL:     getEnv("FEED_REDIS_URL", "redis://localhost:6379/0"),
		LogPath:      getEnv("FEED_LOG_PATH", filepath.Join(home, ".cache", "terminalfeed", "terminalfeed.log")),
		LogLevel:     strings.ToLower(getEnv("FEED_LOG_LEVEL", "info")),
		SeedPath:     os.Getenv("FEED_SEED_PATH"),
	}
	if cfg.Scope == "" {
		return Config{}, fmt.Errorf("invalid FEED_SCOPE: must not be blank")
	}
	switch cfg.PrefsBackend {
	case BackendFile, BackendSQLite:
	case BackendRedis:
		parsed, err := url.Parse(cfg.RedisURL)
		if err != nil || (parsed.Scheme != "redis" && parsed.Scheme != "rediss") {
			return Config{}, fmt.Errorf("invalid FEED_REDIS_URL: must be a redis:// or rediss:// URL")
		}
	default:
		return Config{}, fmt.Errorf("invalid FEED_PREFS_BACKEND: %q (want file, sqlite or redis)", cfg.PrefsBackend)
	}
	if strings.EqualFold(strings.TrimSpace(cfg.LogPath), LogOff) {
		cfg.LogPath = ""
	}

	if cfg.Splash, err = getBool("FEED_SPLASH", true); err != nil {
		return Config{}, err
	}
	if cfg.ThemeButton, err = getBool("FEED_THEME_BUTTON", true); err != nil {
		return Config{}, err
	}
	if cfg.SplashDelay, err = getDuration("FEED_SPLASH_DELAY", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.LoadDelay, err = getDuration("FEED_LOAD_DELAY", 500*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.SettleDelay, err = getDuration("FEED_SETTLE_DELAY", 150*time.Millisecond); err != nil {
		return Config{}, err
	}

	threshold := getEnv("FEED_LOAD_THRESHOLD", "10")
	cfg.LoadThreshold, err = strconv.Atoi(threshold)
	if err != nil || cfg.LoadThreshold < 1 {
		return Config{}, fmt.Errorf("invalid FEED_LOAD_THRESHOLD: %q", threshold)
	}

	switch scheme := strings.ToLower(strings.TrimSpace(os.Getenv("FEED_COLOR_SCHEME"))); scheme {
	case "", "light", "dark":
		cfg.ColorScheme = scheme
	default:
		return Config{}, fmt.Errorf("invalid FEED_COLOR_SCHEME: %q (want light or dark)", scheme)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}
