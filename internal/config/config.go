package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CoursesSource     string        // URL or file path of the courses JSON document
	InternshipsSource string        // URL or file path of the internships JSON document
	FetchTimeout      time.Duration // per-source fetch timeout (default: 10s)
	DebounceDelay     time.Duration // quiet interval before a coalesced task fires (default: 300ms)

	BookmarkFile string // file-backed bookmark store path (used when redis is not configured)

	// Redis (optional; empty RedisAddr selects the file-backed store)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts

	CORSOrigins  []string // origins allowed to call the API (the browser front end)
	AllowedHosts []string // optional, restrict ops routes to specific Host headers
	AllowedCIDRS []string // optional, restrict ops routes to specific IPs
	TrustProxy   bool     // true => trust X-Forwarded-For headers

	SearchRateBurst  int // token bucket burst for the search route
	SearchRateRefill int // tokens refilled per IP per minute
}

// fileOverrides is the optional YAML config file. Any field left unset
// falls through to the environment and then to the built-in default;
// environment variables always win over the file.
type fileOverrides struct {
	ListenPort        *string `yaml:"listen_port"`
	LogLevel          *string `yaml:"log_level"`
	PrettyLog         *bool   `yaml:"pretty_log"`
	CoursesSource     *string `yaml:"courses_source"`
	InternshipsSource *string `yaml:"internships_source"`
	FetchTimeout      *string `yaml:"fetch_timeout"`
	DebounceDelay     *string `yaml:"debounce_delay"`
	BookmarkFile      *string `yaml:"bookmark_file"`
	RedisAddr         *string `yaml:"redis_addr"`
	RedisDB           *int    `yaml:"redis_db"`
	CORSOrigins       *string `yaml:"cors_origins"`
	AllowedHosts      *string `yaml:"allowed_hosts"`
	AllowedCIDRs      *string `yaml:"allowed_cidrs"`
	TrustProxy        *bool   `yaml:"trust_proxy"`
}

func Load() *Config {
	file := loadFileOverrides(os.Getenv("SKILLBRIDGE_CONFIG_FILE"))

	cfg := &Config{
		// Server settings
		ListenPort:      stringVal("SKILLBRIDGE_LISTEN_PORT", file.ListenPort, ":8080"),
		ShutdownTimeout: durationVal("SKILLBRIDGE_SHUTDOWN_TIMEOUT", nil, 5*time.Second),

		// Logging
		LogLevel:  stringVal("SKILLBRIDGE_LOG_LEVEL", file.LogLevel, "info"),
		PrettyLog: boolVal("SKILLBRIDGE_PRETTY_LOG", file.PrettyLog, true),

		// Catalog sources
		CoursesSource:     stringVal("SKILLBRIDGE_COURSES_SOURCE", file.CoursesSource, "data/courses.json"),
		InternshipsSource: stringVal("SKILLBRIDGE_INTERNSHIPS_SOURCE", file.InternshipsSource, "data/internships.json"),
		FetchTimeout:      durationVal("SKILLBRIDGE_FETCH_TIMEOUT", file.FetchTimeout, 10*time.Second),
		DebounceDelay:     durationVal("SKILLBRIDGE_DEBOUNCE_DELAY", file.DebounceDelay, 300*time.Millisecond),

		// Bookmark persistence
		BookmarkFile: stringVal("SKILLBRIDGE_BOOKMARK_FILE", file.BookmarkFile, "data/bookmarks.json"),

		// Redis settings (optional backend)
		RedisAddr:           stringVal("SKILLBRIDGE_REDIS_ADDR", file.RedisAddr, ""),
		RedisUser:           getenv("SKILLBRIDGE_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("SKILLBRIDGE_REDIS_PASSWORD", ""),
		RedisDB:             intVal("SKILLBRIDGE_REDIS_DB", file.RedisDB, 0),
		RedisDT:             durationVal("REDIS_DIAL_TIMEOUT", nil, 5*time.Second),
		RedisRT:             durationVal("REDIS_READ_TIMEOUT", nil, 3*time.Second),
		RedisWT:             durationVal("REDIS_WRITE_TIMEOUT", nil, 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: durationVal("REDIS_CONNECT_TIMEOUT", nil, 30*time.Second),
		RedisRetryInterval:  durationVal("REDIS_RETRY_INTERVAL", nil, 2*time.Second),
		RedisMaxWait:        durationVal("REDIS_MAX_WAIT", nil, 10*time.Second),
		RedisPingTimeout:    durationVal("REDIS_PING_TIMEOUT", nil, 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access
		CORSOrigins:  sliceVal("SKILLBRIDGE_CORS_ORIGINS", file.CORSOrigins, "*"),
		AllowedHosts: sliceVal("SKILLBRIDGE_ALLOWED_HOSTS", file.AllowedHosts, ""),
		AllowedCIDRS: sliceVal("SKILLBRIDGE_ALLOWED_CIDRS", file.AllowedCIDRs, ""),
		TrustProxy:   boolVal("SKILLBRIDGE_TRUST_PROXY", file.TrustProxy, true),

		// Rate limiting
		SearchRateBurst:  getenvInt("SKILLBRIDGE_SEARCH_RATE_BURST", 20),
		SearchRateRefill: getenvInt("SKILLBRIDGE_SEARCH_RATE_REFILL", 120),
	}

	return cfg
}

// loadFileOverrides parses the optional YAML config file. A missing
// file is silently skipped; a file that exists but does not parse is
// a startup error.
func loadFileOverrides(path string) fileOverrides {
	if path == "" {
		return fileOverrides{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileOverrides{}
	}

	var file fileOverrides
	if err := yaml.Unmarshal(data, &file); err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid config file %s: %v", path, err))
	}
	return file
}

// helpers — precedence is env > config file > default

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func stringVal(key string, fileVal *string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if fileVal != nil && *fileVal != "" {
		return *fileVal
	}
	return def
}

func boolVal(key string, fileVal *bool, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if fileVal != nil {
		return *fileVal
	}
	return def
}

func intVal(key string, fileVal *int, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	if fileVal != nil {
		return *fileVal
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func durationVal(key string, fileVal *string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	if fileVal != nil && *fileVal != "" {
		if d, err := time.ParseDuration(*fileVal); err == nil {
			return d
		}
	}
	return def
}

func sliceVal(key string, fileVal *string, def string) []string {
	if v := os.Getenv(key); v != "" {
		return splitAndTrim(v)
	}
	if fileVal != nil && *fileVal != "" {
		return splitAndTrim(*fileVal)
	}
	return splitAndTrim(def)
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
