package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds CLI configuration.
type Config struct {
	Log        LogConfig   `mapstructure:"log"`
	PathConfig string      `mapstructure:"path_config"`
	Root       string      `mapstructure:"root"`
	Language   string      `mapstructure:"language"`
	Theme      ThemeConfig `mapstructure:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// ThemeConfig holds terminal colors.
type ThemeConfig struct {
	Accent string `mapstructure:"accent"`
}

// LoadConfig reads configuration from file and env. Env var overrides use prefix
// WAYPOINT_ (e.g. WAYPOINT_PATH_CONFIG, WAYPOINT_LOG_LEVEL). An explicit path
// must exist; the default location is optional.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("path_config", "")
	v.SetDefault("root", "/")
	v.SetDefault("language", "en")
	v.SetDefault("theme.accent", "")

	if path == "" {
		path = os.Getenv("WAYPOINT_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigType("toml")
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WAYPOINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// configDir returns the config directory using XDG standard (~/.config/waypoint/).
func configDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", appName)
}
