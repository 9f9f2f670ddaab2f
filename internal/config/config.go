package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
}

// DatabaseConfig selects and tunes the relational store
type DatabaseConfig struct {
	Driver   string // "sqlite" or "postgres"
	URL      string
	LogLevel string // gorm logger level: silent, error, warn, info
}

type AuthConfig struct {
	BcryptCost int
}

// LoadConfig loads configuration from .jobly.yaml, JOBLY_* env vars and .env files.
func LoadConfig() (*Config, error) {
	// .env.local overrides .env; neither is required
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := os.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	v := viper.New()
	v.SetConfigName(".jobly")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("JOBLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return fromViper(v), nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.url", "jobly.db")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:   v.GetString("database.driver"),
			URL:      v.GetString("database.url"),
			LogLevel: v.GetString("database.log_level"),
		},
		Auth: AuthConfig{
			BcryptCost: v.GetInt("auth.bcrypt_cost"),
		},
	}
}
