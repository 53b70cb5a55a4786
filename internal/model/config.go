package model

import "time"

// Config is the full runtime configuration.
//
// Hierarchy (highest to lowest priority): CLI flags, MACROGRAPH_* environment
// variables, config file (~/.macrograph/config.yaml), defaults.
type Config struct {
	Server     ServerConfig    `yaml:"server" mapstructure:"server"`
	HTTP       HTTPConfig      `yaml:"http" mapstructure:"http"`
	Cache      CacheConfig     `yaml:"cache" mapstructure:"cache"`
	RateLimit  RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Connectors ConnectorConfig `yaml:"connectors" mapstructure:"connectors"`

	// Regime the ranker scores alignment against.
	Regime RegimeType `yaml:"regime" mapstructure:"regime"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port            string        `yaml:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// HTTPConfig configures the outbound HTTP client used by the metrics
// connectors.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
}

// CacheConfig configures the connector response cache. A non-empty Dir adds
// a disk layer beneath the memory cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
	Dir             string        `yaml:"dir" mapstructure:"dir"`
	DiskTTL         time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// RateLimitConfig configures per-host outbound rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ConnectorConfig holds external API endpoints and credentials. API keys fall
// back to the environment (.env supported) when empty.
type ConnectorConfig struct {
	BinanceBaseURL   string `yaml:"binance_base_url" mapstructure:"binance_base_url"`
	EtherscanBaseURL string `yaml:"etherscan_base_url" mapstructure:"etherscan_base_url"`
	EtherscanAPIKey  string `yaml:"etherscan_api_key" mapstructure:"etherscan_api_key"`
	GitHubBaseURL    string `yaml:"github_base_url" mapstructure:"github_base_url"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "macrograph/0.1 (+https://github.com/narrativelab/macrograph)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
			DiskTTL:         time.Hour,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Connectors: ConnectorConfig{
			BinanceBaseURL:   "https://fapi.binance.com/fapi/v1",
			EtherscanBaseURL: "https://api.etherscan.io/v2/api",
			GitHubBaseURL:    "https://api.github.com",
		},
		Regime: RegimeExpansion,
	}
}
