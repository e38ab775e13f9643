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
	Admin      AdminConfig

	// Calendar status sync
	Reconcile     ReconcileConfig
	Calendar      CalendarConfig
	Slack         SlackConfig
	RoomDirectory RoomDirectoryConfig
	Storage       StorageConfig
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

type AdminConfig struct {
	APIKey string
}

type ReconcileConfig struct {
	Interval    time.Duration
	Timeout     time.Duration // per pass; 0 means the interval
	Concurrency int
}

type CalendarConfig struct {
	Provider string // graph | google | ical
	Graph    GraphConfig
	Google   GoogleConfig
	ICal     ICalConfig
}

type GraphConfig struct {
	ClientID     string
	ClientSecret string
	Tenant       string
}

type GoogleConfig struct {
	CredentialsFile string
}

type ICalConfig struct {
	Timeout time.Duration
}

type SlackConfig struct {
	BotToken        string
	APIURL          string
	RateLimitPerMin int
}

type RoomDirectoryConfig struct {
	URL     string // empty disables room link resolution
	APIKey  string
	Timeout time.Duration
	TTL     time.Duration
	Size    int
}

type StorageConfig struct {
	Driver string // postgres | memory
	DSN    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.Admin.APIKey = viper.GetString("admin.api_key")

	// Reconciliation
	cfg.Reconcile.Interval = viper.GetDuration("reconcile.interval")
	cfg.Reconcile.Timeout = viper.GetDuration("reconcile.timeout")
	cfg.Reconcile.Concurrency = viper.GetInt("reconcile.concurrency")

	// Calendar
	cfg.Calendar.Provider = strings.ToLower(viper.GetString("calendar.provider"))
	cfg.Calendar.Graph.ClientID = viper.GetString("calendar.graph.client_id")
	cfg.Calendar.Graph.ClientSecret = viper.GetString("calendar.graph.client_secret")
	cfg.Calendar.Graph.Tenant = viper.GetString("calendar.graph.tenant")
	cfg.Calendar.Google.CredentialsFile = viper.GetString("calendar.google.credentials_file")
	cfg.Calendar.ICal.Timeout = viper.GetDuration("calendar.ical.timeout")

	// Slack
	cfg.Slack.BotToken = viper.GetString("slack.bot_token")
	if botToken := viper.GetString("slack_bot_token"); botToken != "" {
		cfg.Slack.BotToken = botToken
	}
	cfg.Slack.APIURL = viper.GetString("slack.api_url")
	cfg.Slack.RateLimitPerMin = viper.GetInt("slack.rate_limit_per_min")

	// Room directory
	cfg.RoomDirectory.URL = viper.GetString("room_directory.url")
	cfg.RoomDirectory.APIKey = viper.GetString("room_directory.api_key")
	cfg.RoomDirectory.Timeout = viper.GetDuration("room_directory.timeout")
	cfg.RoomDirectory.TTL = viper.GetDuration("room_directory.ttl")
	cfg.RoomDirectory.Size = viper.GetInt("room_directory.size")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.DSN = viper.GetString("storage.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Storage.DSN = dsn
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Reconcile.Interval <= 0 {
		return fmt.Errorf("reconcile.interval must be positive")
	}
	if cfg.Reconcile.Concurrency <= 0 {
		return fmt.Errorf("reconcile.concurrency must be positive")
	}

	switch cfg.Calendar.Provider {
	case "graph":
		if cfg.Calendar.Graph.ClientID == "" || cfg.Calendar.Graph.ClientSecret == "" {
			return fmt.Errorf("calendar.graph.client_id and calendar.graph.client_secret are required")
		}
	case "google":
		if cfg.Calendar.Google.CredentialsFile == "" {
			return fmt.Errorf("calendar.google.credentials_file is required")
		}
	case "ical":
	default:
		return fmt.Errorf("calendar.provider %q is not one of graph, google, ical", cfg.Calendar.Provider)
	}

	switch cfg.Storage.Driver {
	case "postgres":
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the postgres driver")
		}
	case "memory":
	default:
		return fmt.Errorf("storage.driver %q is not one of postgres, memory", cfg.Storage.Driver)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("reconcile.interval", "1m")
	viper.SetDefault("reconcile.concurrency", 8)
	viper.SetDefault("calendar.provider", "graph")
	viper.SetDefault("calendar.ical.timeout", "15s")
	viper.SetDefault("slack.rate_limit_per_min", 50)
	viper.SetDefault("room_directory.timeout", "10s")
	viper.SetDefault("room_directory.ttl", "1h")
	viper.SetDefault("room_directory.size", 1000)
	viper.SetDefault("storage.driver", "postgres")
}
