package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice tool backend specifics
	GoogleCalendar GoogleCalendarConfig
	Weather        WeatherConfig
	Notes          NotesConfig
	RemoteTools    RemoteToolsConfig
	RateLimit      RateLimitConfig
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

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarSummary string // find-or-create target; the resolved ID scopes every call
}

type WeatherConfig struct {
	BaseURL string
	APIKey  string
}

type NotesConfig struct {
	FilePath string
}

// RemoteToolsConfig maps tool names outside the local classifications to
// their remote function endpoints.
type RemoteToolsConfig struct {
	Functions      map[string]string
	TimeoutSeconds int
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Calendar backend
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarSummary = viper.GetString("google_calendar.calendar_summary")
	if credsPath := viper.GetString("google_calendar_credentials_path"); credsPath != "" {
		cfg.GoogleCalendar.CredentialsPath = credsPath
	}

	// Weather
	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	cfg.Weather.APIKey = viper.GetString("weather.api_key")
	if apiKey := viper.GetString("openweather_api_key"); apiKey != "" {
		cfg.Weather.APIKey = apiKey
	}

	// Notes
	cfg.Notes.FilePath = viper.GetString("notes.file_path")

	// Remote tool functions
	cfg.RemoteTools.Functions = viper.GetStringMapString("tools.remote")
	cfg.RemoteTools.TimeoutSeconds = viper.GetInt("tools.timeout_seconds")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8081)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.calendar_summary", "Assistant Calendar")
	viper.SetDefault("notes.file_path", "notes.json")
	viper.SetDefault("tools.timeout_seconds", 30)
	viper.SetDefault("rate_limit.per_min", 120)
}
