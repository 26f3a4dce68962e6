package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port     string `yaml:"port"`
		Env      string `yaml:"env"`
		Timezone string `yaml:"timezone"`
	} `yaml:"server"`

	Database struct {
		Driver     string `yaml:"driver"` // postgres or sqlite
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
		SSLMode    string `yaml:"sslmode"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`

	JWT JWTSettings `yaml:"jwt"`

	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`

	Reminders struct {
		Dedupe bool `yaml:"dedupe"`
	} `yaml:"reminders"`

	location *time.Location
}

// Load reads .env when present, then the YAML file named by CONFIG_PATH when set,
// then lets environment variables override individual keys.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Env = "development"
	cfg.Server.Timezone = "UTC"
	cfg.Database.Driver = "sqlite"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "shoot_scheduler"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SQLitePath = "shoot_scheduler.db"
	cfg.JWT.Secret = defaultJWTSecret
	cfg.JWT.ExpirationHours = 24
	cfg.location = time.UTC
	return cfg
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Env = getEnv("APP_ENV", c.Server.Env)
	c.Server.Timezone = getEnv("APP_TIMEZONE", c.Server.Timezone)

	c.Database.Driver = strings.ToLower(getEnv("DB_DRIVER", c.Database.Driver))
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.SQLitePath = getEnv("SQLITE_PATH", c.Database.SQLitePath)

	c.JWT.Secret = getEnv("JWT_SECRET", c.JWT.Secret)
	if hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS")); err == nil {
		c.JWT.ExpirationHours = hours
	}

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	if dedupe, err := strconv.ParseBool(os.Getenv("REMINDER_DEDUPE")); err == nil {
		c.Reminders.Dedupe = dedupe
	}
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.ExpirationHours <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be positive")
	}
	if c.Reminders.Dedupe && c.Redis.Addr == "" {
		return fmt.Errorf("REMINDER_DEDUPE requires REDIS_ADDR")
	}
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return fmt.Errorf("unknown APP_TIMEZONE %q: %w", c.Server.Timezone, err)
	}
	c.location = loc
	return nil
}

// Location is the timezone that decides what "today" means for reminders.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
