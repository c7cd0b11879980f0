package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"dugunsalon/internal/booking"
	"dugunsalon/internal/slots"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Redis struct {
		Address         string `yaml:"address"`
		Password        string `yaml:"password"`
		DB              int    `yaml:"db"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"redis"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	Booking struct {
		WindowStart string `yaml:"window_start"` // "10:00"
		WindowEnd   string `yaml:"window_end"`   // "24:00"
	} `yaml:"booking"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	Backup struct {
		Enabled       bool   `yaml:"enabled"`
		StoragePath   string `yaml:"storage_path"`
		IntervalHours int    `yaml:"interval_hours"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"backup"`
}

func Load(path string) (*Config, error) {
	// Optional .env for ${VAR} placeholders below.
	_ = godotenv.Load()

	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/salon.db"
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = 20
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 40
	}
	if cfg.Backup.StoragePath == "" {
		cfg.Backup.StoragePath = "data/backups"
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SlotWindow resolves the configured business window for candidate start
// slots, defaulting to 10:00-24:00.
func (c *Config) SlotWindow() (slots.Window, error) {
	window := slots.DefaultWindow
	if c.Booking.WindowStart != "" {
		start, ok := booking.SafeTimeToMinutes(c.Booking.WindowStart)
		if !ok {
			return window, fmt.Errorf("invalid booking.window_start %q", c.Booking.WindowStart)
		}
		window.StartMinutes = start
	}
	if c.Booking.WindowEnd != "" {
		end, ok := booking.SafeTimeToMinutes(c.Booking.WindowEnd)
		if !ok {
			return window, fmt.Errorf("invalid booking.window_end %q", c.Booking.WindowEnd)
		}
		window.EndMinutes = end
	}
	if window.EndMinutes <= window.StartMinutes {
		return window, fmt.Errorf("booking window end must be after start")
	}
	return window, nil
}
