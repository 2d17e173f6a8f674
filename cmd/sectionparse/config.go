package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds CLI settings. Flags override it.
type Config struct {
	LogLevel          string `yaml:"log_level"          env:"SECTIONPARSE_LOG_LEVEL"          env-default:"INFO"`
	LogFormat         string `yaml:"log_format"         env:"SECTIONPARSE_LOG_FORMAT"         env-default:"compact"`
	JSONRepair        bool   `yaml:"json_repair"        env:"SECTIONPARSE_JSON_REPAIR"        env-default:"true"`
	RecoverTruncated  bool   `yaml:"recover_truncated"  env:"SECTIONPARSE_RECOVER_TRUNCATED"  env-default:"true"`
	HTMLNormalization bool   `yaml:"html_normalization" env:"SECTIONPARSE_HTML_NORMALIZATION" env-default:"true"`
	CacheSize         int    `yaml:"cache_size"         env:"SECTIONPARSE_CACHE_SIZE"         env-default:"256"`
	ExpectedCounts    string `yaml:"expected_counts"    env:"SECTIONPARSE_EXPECTED_COUNTS"`
}

// LoadConfig reads config from a YAML file, or from environment variables
// when path is empty.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}
