// Package config loads gitchart settings from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".gitchart"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for gitchart settings.
const envPrefix = "GITCHART"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// DefaultMaxItems is the default cap for ranked charts.
const DefaultMaxItems = 20

// DefaultIssuesRegex matches ticket references in commit subjects; the first
// capture group is the ticket number. Kept case-sensitive to match the
// historical chart output.
const DefaultIssuesRegex = `(?:close|closes|closed|fix|fixes|fixed|resolve|resolves|resolved) *#([0-9]+)`

// Themes accepted by the renderer.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Validation errors.
var (
	ErrNegativeMaxItems = errors.New("max_items must not be negative")
	ErrUnknownTheme     = errors.New("theme must be dark or light")
)

// Config holds the options consumed by the chart pipeline.
type Config struct {
	Repository  string `mapstructure:"repository"`
	Title       string `mapstructure:"title"`
	NoMerges    bool   `mapstructure:"no_merges"`
	MaxItems    int    `mapstructure:"max_items"`
	FoldOthers  bool   `mapstructure:"fold_others"`
	SortMax     int    `mapstructure:"sort_max"`
	IssuesRegex string `mapstructure:"issues_regex"`
	AllBranches bool   `mapstructure:"all_branches"`
	Theme       string `mapstructure:"theme"`
}

// Load reads configuration from file, env vars, and defaults. If configPath
// is non-empty, it is used as the explicit config file path; otherwise the
// config file is searched in CWD and $HOME. A missing config file is not an
// error.
//
// Load does not validate: callers run Validate after applying their own
// overrides, so a bad file value can still be corrected by a flag.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	return &cfg, nil
}

// applyDefaults registers every config key with viper. AutomaticEnv only
// surfaces GITCHART_* variables for keys viper already knows, so even
// zero-valued options need a default here.
func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("repository", ".")
	viperCfg.SetDefault("title", "")
	viperCfg.SetDefault("no_merges", false)
	viperCfg.SetDefault("max_items", DefaultMaxItems)
	viperCfg.SetDefault("fold_others", true)
	viperCfg.SetDefault("sort_max", 0)
	viperCfg.SetDefault("issues_regex", DefaultIssuesRegex)
	viperCfg.SetDefault("all_branches", true)
	viperCfg.SetDefault("theme", ThemeDark)
}

// Validate checks option ranges and that the issues regex compiles.
func (c *Config) Validate() error {
	if c.MaxItems < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMaxItems, c.MaxItems)
	}

	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
	}

	_, err := regexp.Compile(c.IssuesRegex)
	if err != nil {
		return fmt.Errorf("issues_regex: %w", err)
	}

	return nil
}
