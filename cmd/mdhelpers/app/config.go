package app

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/mdhelpers"
	"github.com/agentstation/mdhelpers/pkg/constants"
	mderrors "github.com/agentstation/mdhelpers/pkg/errors"
)

// EnvPrefix is prepended to every environment variable the CLI reads,
// except the shared LOG_* variables.
const EnvPrefix = "MDHELPERS"

// Config holds the application configuration loaded from flags,
// environment variables, .env files and the config file.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string

	// Config file
	ConfigFile string

	// Helper configuration
	ProfileBaseURL string
	TruncateMax    int
	TemplateDir    string

	// Logging configuration
	LogFormat     string
	LogOutput     string
	LogTimeFormat string
	LogCaller     bool
	LogFields     string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables (MDHELPERS_*)
//  3. .env and .env.local files
//  4. Config file (configFile, or .mdhelpers.yaml in $HOME or the working directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	bindLogEnv(v)
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".mdhelpers")
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicit config file must exist; the search paths are optional.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, mderrors.NewConfigError("config", "failed to read config file", err)
		}
	}

	config := &Config{
		Verbose:  v.GetBool("verbose"),
		Quiet:    v.GetBool("quiet"),
		NoColor:  v.GetBool("no-color"),
		Format:   v.GetString("format"),
		LogLevel: v.GetString("log-level"),

		ConfigFile: v.ConfigFileUsed(),

		ProfileBaseURL: v.GetString("profile_base_url"),
		TruncateMax:    v.GetInt("truncate_max"),
		TemplateDir:    v.GetString("template_dir"),

		LogFormat:     v.GetString("log_format"),
		LogOutput:     v.GetString("log_output"),
		LogTimeFormat: v.GetString("log_time_format"),
		LogCaller:     v.GetBool("log_caller"),
		LogFields:     v.GetString("log_fields"),
	}

	return config, nil
}

// logEnv maps logging keys to the unprefixed LOG_* variables shared with
// pkg/logging.
var logEnv = map[string]string{
	"log-level":       "LOG_LEVEL",
	"log_format":      "LOG_FORMAT",
	"log_output":      "LOG_OUTPUT",
	"log_time_format": "LOG_TIME_FORMAT",
	"log_caller":      "LOG_CALLER",
	"log_fields":      "LOG_FIELDS",
}

func bindLogEnv(v *viper.Viper) {
	for key, env := range logEnv {
		_ = v.BindEnv(key, env) // only fails without a key
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("profile_base_url", constants.DefaultProfileBaseURL)
	v.SetDefault("truncate_max", mdhelpers.DescTruncateMax)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
	v.SetDefault("log_time_format", "kitchen")
}

// UpdateFromFlags updates config values from parsed command flags.
// Flags only override when they were set.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables that are already set, so .env.local
// only fills in what .env left unset.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
