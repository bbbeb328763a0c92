package config

import (
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v2"
)

const (
	DefaultBaseURL   = "https://slotify.pythonanywhere.com"
	DefaultTokenFile = ".slotify_api_token"
	DefaultOutputDir = "backups"
	DefaultTimeout   = 30 * time.Second

	ConfigFile = "slotify.config.yml"
)

// Config holds the resolved settings for one invocation. Precedence per
// setting is flag > environment > config file > default; flags are
// applied by the command layer on top of Load.
type Config struct {
	BaseURL   string
	TokenFile string
	OutputDir string
	Timeout   time.Duration
}

type fileConfig struct {
	BaseURL   string `yaml:"base_url"`
	TokenFile string `yaml:"token_file"`
	OutputDir string `yaml:"output_dir"`
	Timeout   string `yaml:"timeout"`
}

// Load reads the YAML config file at path (ConfigFile when empty),
// overlays SLOTIFY_* environment variables and fills in defaults. A
// missing config file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFile
	}

	fc := fileConfig{}
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		BaseURL:   getEnv("SLOTIFY_BASE_URL", fc.BaseURL),
		TokenFile: getEnv("SLOTIFY_TOKEN_FILE", fc.TokenFile),
		OutputDir: getEnv("SLOTIFY_OUTPUT_DIR", fc.OutputDir),
	}

	if raw := getEnv("SLOTIFY_TIMEOUT", fc.Timeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", raw, err)
		}
		cfg.Timeout = d
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = DefaultTokenFile
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
