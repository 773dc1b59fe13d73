// Package config resolves alertdeck settings from flags, ALERTDECK_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"alertdeck/internal/logging"
)

// EnvPrefix prefixes every environment variable, e.g. ALERTDECK_LOG_LEVEL.
const EnvPrefix = "ALERTDECK"

// Keys.
const (
	KeyDeck          = "deck"
	KeyManager       = "manager"
	KeyLogLevel      = "log-level"
	KeyLogFile       = "log-file"
	KeyMarkdownStyle = "markdown-style"
	KeyMouse         = "mouse"
)

// Markdown styles accepted for card bodies.
var MarkdownStyles = []string{"dark", "light", "notty"}

// Config holds the resolved settings.
type Config struct {
	Deck          string `mapstructure:"deck"`
	Manager       bool   `mapstructure:"manager"`
	LogLevel      string `mapstructure:"log-level"`
	LogFile       string `mapstructure:"log-file"`
	MarkdownStyle string `mapstructure:"markdown-style"`
	Mouse         bool   `mapstructure:"mouse"`
}

// XDGConfigHome returns XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// XDGStateHome returns XDG_STATE_HOME or ~/.local/state.
func XDGStateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state")
}

// ConfigFilePath is where the optional config file lives.
func ConfigFilePath() string {
	return filepath.Join(XDGConfigHome(), "alertdeck", "config.toml")
}

// DefaultLogFile is where logs go unless log-file is set.
func DefaultLogFile() string {
	return filepath.Join(XDGStateHome(), "alertdeck", "alertdeck.log")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDeck, "")
	v.SetDefault(KeyManager, false)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, DefaultLogFile())
	v.SetDefault(KeyMarkdownStyle, "dark")
	v.SetDefault(KeyMouse, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(ConfigFilePath())
	v.SetConfigType("toml")
	return v
}

// BindFlags binds every flag in fs whose name is a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyDeck, KeyManager, KeyLogLevel, KeyLogFile, KeyMarkdownStyle, KeyMouse} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load reads the config file when it exists and resolves the settings.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Deck, err = expand(c.Deck); err != nil {
		return fmt.Errorf("deck path: %w", err)
	}
	if c.LogFile, err = expand(c.LogFile); err != nil {
		return fmt.Errorf("log file path: %w", err)
	}
	if _, _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	c.MarkdownStyle = strings.ToLower(strings.TrimSpace(c.MarkdownStyle))
	for _, s := range MarkdownStyles {
		if c.MarkdownStyle == s {
			return nil
		}
	}
	return fmt.Errorf("unknown markdown style %q (expected one of %s)", c.MarkdownStyle, strings.Join(MarkdownStyles, ", "))
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return homedir.Expand(path)
}
