package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Syllabus     SyllabusConfig     `yaml:"syllabus"`
	Bibliography BibliographyConfig `yaml:"bibliography"`
	Redis        RedisConfig        `yaml:"redis"`
	Meilisearch  MeilisearchConfig  `yaml:"meilisearch"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token settings. Tokens are issued by the
// institution's identity provider with a shared HS256 secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"syllabus"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"8h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SyllabusConfig holds document editing rules.
type SyllabusConfig struct {
	WeightMin           float64  `yaml:"weight_min"            env:"SYLLABUS_WEIGHT_MIN"            env-default:"0"`
	WeightMax           float64  `yaml:"weight_max"            env:"SYLLABUS_WEIGHT_MAX"            env-default:"100"`
	WeightBoundsEnabled bool     `yaml:"weight_bounds_enabled" env:"SYLLABUS_WEIGHT_BOUNDS_ENABLED" env-default:"true"`
	RestrictedCourses   []string `yaml:"restricted_courses"    env:"SYLLABUS_RESTRICTED_COURSES"    env-separator:","`
	CatalogPath         string   `yaml:"catalog_path"          env:"SYLLABUS_CATALOG_PATH"`
}

// BibliographyConfig holds reference search settings.
type BibliographyConfig struct {
	OpenLibraryEnabled bool          `yaml:"openlibrary_enabled" env:"BIB_OPENLIBRARY_ENABLED" env-default:"true"`
	OpenLibraryURL     string        `yaml:"openlibrary_url"     env:"BIB_OPENLIBRARY_URL"     env-default:"https://openlibrary.org"`
	CrossrefEnabled    bool          `yaml:"crossref_enabled"    env:"BIB_CROSSREF_ENABLED"    env-default:"true"`
	CrossrefURL        string        `yaml:"crossref_url"        env:"BIB_CROSSREF_URL"        env-default:"https://api.crossref.org"`
	CrossrefMailto     string        `yaml:"crossref_mailto"     env:"BIB_CROSSREF_MAILTO"`
	ProviderTimeout    time.Duration `yaml:"provider_timeout"    env:"BIB_PROVIDER_TIMEOUT"    env-default:"4s"`
	CacheTTL           time.Duration `yaml:"cache_ttl"           env:"BIB_CACHE_TTL"           env-default:"6h"`
	DefaultLimit       int           `yaml:"default_limit"       env:"BIB_DEFAULT_LIMIT"       env-default:"10"`
	MaxLimit           int           `yaml:"max_limit"           env:"BIB_MAX_LIMIT"           env-default:"50"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_min"  env:"BIB_RATE_LIMIT_PER_MIN"  env-default:"60"`
}

// RedisConfig holds the result cache connection. An empty URL disables caching.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// MeilisearchConfig holds the library catalog index. An empty URL disables
// the library provider.
type MeilisearchConfig struct {
	URL    string `yaml:"url"     env:"MEILI_URL"`
	APIKey string `yaml:"api_key" env:"MEILI_API_KEY"`
	Index  string `yaml:"index"   env:"MEILI_INDEX"   env-default:"library_holdings"`
}
