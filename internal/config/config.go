package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Lexicon LexiconConfig `mapstructure:"lexicon"`
	Extract ExtractConfig `mapstructure:"extract"`
	Log     LogConfig     `mapstructure:"log"`
}

// LexiconConfig controls how extracted text is split into words
type LexiconConfig struct {
	Fold      bool `mapstructure:"fold"`
	MinLength int  `mapstructure:"min_length"`
	MaxLength int  `mapstructure:"max_length"`
}

// ExtractConfig holds document extraction settings
type ExtractConfig struct {
	TmpDir string `mapstructure:"tmp_dir"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
	Debug   bool `mapstructure:"debug"`
}

// LoadConfig loads configuration from file and LEXTRIE_ environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("LEXTRIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("lexicon.fold", true)
	v.SetDefault("lexicon.min_length", 1)
	v.SetDefault("lexicon.max_length", 0) // unlimited

	v.SetDefault("extract.tmp_dir", "")

	v.SetDefault("log.verbose", false)
	v.SetDefault("log.debug", false)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Lexicon.MinLength < 0 {
		return fmt.Errorf("lexicon min_length must not be negative: %d", c.Lexicon.MinLength)
	}
	if c.Lexicon.MaxLength < 0 {
		return fmt.Errorf("lexicon max_length must not be negative: %d", c.Lexicon.MaxLength)
	}
	if c.Lexicon.MaxLength > 0 && c.Lexicon.MaxLength < c.Lexicon.MinLength {
		return fmt.Errorf("lexicon max_length %d is less than min_length %d", c.Lexicon.MaxLength, c.Lexicon.MinLength)
	}
	return nil
}
