package types

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that parses human-readable values ("2h", "15m")
// from both YAML config files and environment variables.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the env parser.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// AppConfig holds all runtime settings for the service. Values are resolved
// in three layers: built-in defaults, then the optional YAML config file,
// then environment variables. Secrets come from the environment only.
type AppConfig struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `yaml:"port" env:"SCRIBE_PORT"`

	// Production toggles production behavior such as the Secure cookie flag.
	Production bool `yaml:"production" env:"SCRIBE_PRODUCTION"`

	// Model is the multimodal completion model used for transcription.
	Model string `yaml:"model" env:"SCRIBE_MODEL"`

	// APIBaseURL is the base URL of the OpenAI-compatible completion API.
	APIBaseURL string `yaml:"api_base_url" env:"SCRIBE_API_BASE_URL"`

	// MaxTokens caps the length of each transcription response.
	MaxTokens int `yaml:"max_tokens" env:"SCRIBE_MAX_TOKENS"`

	// MaxUploadBytes caps the size of one analyze request body.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"SCRIBE_MAX_UPLOAD_BYTES"`

	// SessionTTL is the lifetime of an issued session cookie.
	SessionTTL Duration `yaml:"session_ttl" env:"SCRIBE_SESSION_TTL"`

	// StrictSessions makes the access gate verify cookies against the
	// server-side token registry instead of accepting any non-empty value.
	StrictSessions bool `yaml:"strict_sessions" env:"SCRIBE_STRICT_SESSIONS"`

	// CacheTTL is the lifetime of cached per-image transcriptions.
	CacheTTL Duration `yaml:"cache_ttl" env:"SCRIBE_CACHE_TTL"`

	// AuthPassword is the shared login secret. Environment only.
	AuthPassword string `yaml:"-" env:"AUTH_PASSWORD"`

	// OpenAIAPIKey authenticates outbound completion requests. Environment only.
	OpenAIAPIKey string `yaml:"-" env:"OPENAI_API_KEY"`
}
