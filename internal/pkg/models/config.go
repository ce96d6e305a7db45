package models

import "time"

// Config represents application configuration
type Config struct {
	App           AppConfig
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	NSQ           NSQConfig
	Geocoder      GeocoderConfig
	ProviderCache ProviderCacheConfig
	Match         MatchConfig
	RateLimit     RateLimitConfig
	Logger        LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int // in seconds
	AllowedOrigins  []string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	Schema      string
	UseMockData bool
}

// ProviderTable returns the catalog table the service reads from
func (c DatabaseConfig) ProviderTable() string {
	if c.UseMockData {
		return "providers_mock"
	}
	return "providers"
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ consumer configuration
type NSQConfig struct {
	Enabled        bool
	Address        string
	LookupdAddress []string
	Topic          string
	Channel        string
}

// GeocoderConfig selects and tunes the address geocoding backend
type GeocoderConfig struct {
	Provider         string // nominatim or google
	NominatimURL     string
	UserAgent        string
	GoogleAPIKey     string
	RateLimit        time.Duration // minimum spacing between upstream calls
	Timeout          time.Duration
	MaxRetries       int
	CacheTTL         time.Duration
	BreakerThreshold int           // consecutive upstream failures before failing fast
	BreakerTimeout   time.Duration // how long to fail fast before probing again
}

// ProviderCacheConfig controls the Redis copy of the provider catalog
type ProviderCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// MatchConfig contains matching engine configuration
type MatchConfig struct {
	Timezone string // IANA zone every schedule is evaluated in
	Workers  int    // upper bound on concurrent provider evaluations
}

// RateLimitConfig limits match requests per client, since each one may
// reach the upstream geocoder
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
