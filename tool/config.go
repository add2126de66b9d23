package tool

import (
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/moritani/scribe-go/types"
)

var (
	ConfigPath = "config.yaml" // be aware that it can be changed, default to ./config.yaml
)

func defaultConfig() types.AppConfig {
	return types.AppConfig{
		Port:           8080,
		Production:     false,
		Model:          "gpt-4o-mini",
		APIBaseURL:     "https://api.openai.com/v1",
		MaxTokens:      500,
		MaxUploadBytes: 10 << 20, // 10 MB
		SessionTTL:     types.Duration(2 * time.Hour),
		StrictSessions: false,
		CacheTTL:       types.Duration(15 * time.Minute),
	}
}

// LoadConfig resolves the app config: defaults, then the YAML file at path
// (the default path may be absent; an explicit path must exist), then
// environment variables on top.
func LoadConfig(path string) (*types.AppConfig, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if path == "" {
		path = ConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg types.AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// no config file is fine, defaults + env cover everything
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	return &cfg, nil
}
