package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Remote systems
	Asana    AsanaConfig
	Everhour EverhourConfig

	// Engine
	Cache  CacheConfig
	Digest DigestConfig
	Warmer WarmerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig bounds inbound listing requests per client IP.
type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

type AsanaConfig struct {
	BaseURL            string
	Token              string
	Timeout            time.Duration
	RequestsPerMinute  int
	MaxRetries         int
	RetryDelay         time.Duration
	PageSize           int
	ProjectConcurrency int
	ExcludedProjectIDs []string
}

type EverhourConfig struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
	MaxRetries        int
	PageSize          int
	WorkItemHost      string
}

// CacheConfig tunes the three tiers. An empty SQLitePath keeps the persistent tier in memory.
type CacheConfig struct {
	ShortTTL         time.Duration
	MediumTTL        time.Duration
	PersistentTTL    time.Duration
	MemoSize         int
	FetchTimeout     time.Duration
	SQLitePath       string
	MemoryQuotaBytes int
}

type TabConfig struct {
	ID            string   `mapstructure:"id"`
	Label         string   `mapstructure:"label"`
	ProjectIDs    []string `mapstructure:"project_ids"`
	IncludeTagIDs []string `mapstructure:"include_tag_ids"`
	ExcludeTagIDs []string `mapstructure:"exclude_tag_ids"`
}

type DigestConfig struct {
	Timezone          string
	WaitingPrefix     string
	MaybeLaterSection string
	Tabs              []TabConfig
	ExcludedTagIDs    []string
}

type WarmerConfig struct {
	Interval time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/task-digest/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/task-digest/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Asana
	cfg.Asana.BaseURL = viper.GetString("asana.base_url")
	cfg.Asana.Token = viper.GetString("asana.token")
	if token := viper.GetString("asana_token"); token != "" {
		cfg.Asana.Token = token
	}
	cfg.Asana.Timeout = viper.GetDuration("asana.timeout")
	cfg.Asana.RequestsPerMinute = viper.GetInt("asana.requests_per_minute")
	cfg.Asana.MaxRetries = viper.GetInt("asana.max_retries")
	cfg.Asana.RetryDelay = viper.GetDuration("asana.retry_delay")
	cfg.Asana.PageSize = viper.GetInt("asana.page_size")
	cfg.Asana.ProjectConcurrency = viper.GetInt("asana.project_concurrency")
	cfg.Asana.ExcludedProjectIDs = splitList(viper.GetStringSlice("asana.excluded_project_ids"))

	// Everhour
	cfg.Everhour.BaseURL = viper.GetString("everhour.base_url")
	cfg.Everhour.APIKey = viper.GetString("everhour.api_key")
	if key := viper.GetString("everhour_api_key"); key != "" {
		cfg.Everhour.APIKey = key
	}
	cfg.Everhour.Timeout = viper.GetDuration("everhour.timeout")
	cfg.Everhour.RequestsPerMinute = viper.GetInt("everhour.requests_per_minute")
	cfg.Everhour.MaxRetries = viper.GetInt("everhour.max_retries")
	cfg.Everhour.PageSize = viper.GetInt("everhour.page_size")
	cfg.Everhour.WorkItemHost = viper.GetString("everhour.work_item_host")

	// Cache
	cfg.Cache.ShortTTL = viper.GetDuration("cache.short_ttl")
	cfg.Cache.MediumTTL = viper.GetDuration("cache.medium_ttl")
	cfg.Cache.PersistentTTL = viper.GetDuration("cache.persistent_ttl")
	cfg.Cache.MemoSize = viper.GetInt("cache.memo_size")
	cfg.Cache.FetchTimeout = viper.GetDuration("cache.fetch_timeout")
	cfg.Cache.SQLitePath = viper.GetString("cache.sqlite_path")
	cfg.Cache.MemoryQuotaBytes = viper.GetInt("cache.memory_quota_bytes")

	// Digest
	cfg.Digest.Timezone = viper.GetString("digest.timezone")
	cfg.Digest.WaitingPrefix = viper.GetString("digest.waiting_prefix")
	cfg.Digest.MaybeLaterSection = viper.GetString("digest.maybe_later_section")
	cfg.Digest.ExcludedTagIDs = splitList(viper.GetStringSlice("digest.excluded_tag_ids"))
	if err := viper.UnmarshalKey("digest.tabs", &cfg.Digest.Tabs); err != nil {
		return nil, fmt.Errorf("error reading digest.tabs: %w", err)
	}
	if err := validateTabs(cfg.Digest.Tabs); err != nil {
		return nil, err
	}

	cfg.Warmer.Interval = viper.GetDuration("warmer.interval")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("rate_limit.max_clients", 1024)

	viper.SetDefault("asana.base_url", "https://app.asana.com/api/1.0")
	viper.SetDefault("asana.timeout", "30s")
	viper.SetDefault("asana.requests_per_minute", 150)
	viper.SetDefault("asana.max_retries", 3)
	viper.SetDefault("asana.retry_delay", "1s")
	viper.SetDefault("asana.page_size", 100)
	viper.SetDefault("asana.project_concurrency", 4)

	viper.SetDefault("everhour.base_url", "https://api.everhour.com")
	viper.SetDefault("everhour.timeout", "30s")
	viper.SetDefault("everhour.requests_per_minute", 60)
	viper.SetDefault("everhour.max_retries", 3)
	viper.SetDefault("everhour.page_size", 1000)
	viper.SetDefault("everhour.work_item_host", "app.asana.com")

	viper.SetDefault("cache.short_ttl", "60s")
	viper.SetDefault("cache.medium_ttl", "600s")
	viper.SetDefault("cache.persistent_ttl", "600s")
	viper.SetDefault("cache.memo_size", 256)
	viper.SetDefault("cache.fetch_timeout", "2m")
	viper.SetDefault("cache.memory_quota_bytes", 5<<20)

	viper.SetDefault("digest.timezone", "Europe/Berlin")
	viper.SetDefault("digest.waiting_prefix", "[WARTE AUF ")
	viper.SetDefault("digest.maybe_later_section", "maybe later")

	viper.SetDefault("warmer.interval", "5m")
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func validateTabs(tabs []TabConfig) error {
	seen := make(map[string]bool, len(tabs))
	for i, tab := range tabs {
		if tab.ID == "" {
			return fmt.Errorf("digest.tabs[%d]: id is required", i)
		}
		if tab.ID == "other" {
			return fmt.Errorf("digest.tabs[%d]: id %q is reserved", i, tab.ID)
		}
		if seen[tab.ID] {
			return fmt.Errorf("digest.tabs[%d]: duplicate id %q", i, tab.ID)
		}
		seen[tab.ID] = true
	}
	return nil
}
