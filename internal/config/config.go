package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Server struct {
		Port         string   `yaml:"port"`
		Mode         string   `yaml:"mode"` // gin mode: debug, release, test
		MaxUploadMB  int64    `yaml:"max_upload_mb"`
		AllowOrigins []string `yaml:"allow_origins"`
		SecureCookie bool     `yaml:"secure_cookie"`
	} `yaml:"server"`

	Log struct {
		Production bool `yaml:"production"`
	} `yaml:"log"`

	Database struct {
		Type string `yaml:"type"` // "sqlite" or "postgres"
		Path string `yaml:"path"` // SQLite path or PostgreSQL URL
	} `yaml:"database"`

	Auth struct {
		JWTSecret string        `yaml:"jwt_secret"`
		TokenTTL  time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`

	Session struct {
		TTL           time.Duration `yaml:"ttl"`
		PurgeInterval time.Duration `yaml:"purge_interval"`
	} `yaml:"session"`

	Telegram struct {
		Enabled  bool   `yaml:"enabled"`
		BotToken string `yaml:"bot_token"`
		ChatID   int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	Kafka struct {
		Enabled bool          `yaml:"enabled"`
		Brokers []string      `yaml:"brokers"`
		Topic   string        `yaml:"topic"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"kafka"`
}

// LoadConfig loads configuration from YAML file.
// Variables from a .env file next to the working directory are exported first
// so ${VAR} references in the YAML can pick them up.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, expands environment variables and fills defaults.
func Parse(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.setDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.MaxUploadMB <= 0 {
		c.Server.MaxUploadMB = 50
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"*"}
	}

	if c.Database.Type == "" {
		c.Database.Type = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/goldenhour.db"
	}

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	if c.Session.TTL == 0 {
		c.Session.TTL = 30 * 24 * time.Hour
	}
	if c.Session.PurgeInterval == 0 {
		c.Session.PurgeInterval = time.Hour
	}

	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "accident-events"
	}
	if c.Kafka.Timeout == 0 {
		c.Kafka.Timeout = 5 * time.Second
	}
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode %q", c.Server.Mode)
	}
	switch c.Database.Type {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database type %q", c.Database.Type)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Telegram.Enabled && (c.Telegram.BotToken == "" || c.Telegram.ChatID == 0) {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id are required when telegram is enabled")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}
	return nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}
