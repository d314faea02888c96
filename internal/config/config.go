package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from flags, environment variables or a config file.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	History HistoryConfig `mapstructure:"history"`
	Import  ImportConfig  `mapstructure:"import"`
}

type StoreConfig struct {
	Path   string `mapstructure:"path"`
	Atomic bool   `mapstructure:"atomic"`
}

type HistoryConfig struct {
	Limit int `mapstructure:"limit"`
}

// ImportConfig defines FIT import configuration
type ImportConfig struct {
	Location string   `mapstructure:"location"`
	Files    []string `mapstructure:"files"`
}

// EnvPrefix namespaces environment variables, e.g. RUNTRACKER_STORE_PATH.
const EnvPrefix = "RUNTRACKER"

var ErrInvalidConfig = errors.New("invalid configuration")

// NewFlagSet declares the command-line flags understood by LoadConfig.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config-dir", ".", "directory containing config.yaml")
	fs.String("store", "", "path of the run store file")
	fs.Int("history-limit", 0, "number of runs shown in history")
	fs.StringSlice("import", nil, "FIT activity file to import (repeatable); imports and exits")
	return fs
}

// LoadConfig reads configuration from flags, environment variables, an
// optional .env file and an optional config.yaml, in that order of precedence.
func LoadConfig(fs *pflag.FlagSet) (config Config, err error) {
	// A missing .env is normal outside development
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found, using system environment variables")
	}

	v := viper.New()

	configDir, _ := fs.GetString("config-dir")
	v.AddConfigPath(configDir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// store.path -> RUNTRACKER_STORE_PATH
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	v.SetDefault("store.path", "runs.csv")
	v.SetDefault("store.atomic", true)
	v.SetDefault("history.limit", 25)
	v.SetDefault("import.location", "Local")
	v.SetDefault("import.files", []string{})

	// --- Flags override everything, but only when set ---
	for key, flag := range map[string]string{
		"store.path":    "store",
		"history.limit": "history-limit",
		"import.files":  "import",
	} {
		if f := fs.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return config, fmt.Errorf("bind flag --%s: %w", flag, err)
			}
		}
	}

	// --- Read Config File ---
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}
	if err := config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("%w: store.path is required", ErrInvalidConfig)
	}
	if c.History.Limit < 1 {
		return fmt.Errorf("%w: history.limit must be at least 1 (got %d)", ErrInvalidConfig, c.History.Limit)
	}
	if _, err := c.Import.TimeLocation(); err != nil {
		return fmt.Errorf("%w: import.location: %v", ErrInvalidConfig, err)
	}
	return nil
}

// TimeLocation resolves the configured IANA zone name.
func (c ImportConfig) TimeLocation() (*time.Location, error) {
	return time.LoadLocation(c.Location)
}
