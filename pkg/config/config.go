package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. It is built once at startup and
// passed by reference into each component constructor; nothing reads ambient
// globals after that.
type Config struct {
	OpenAIAPIKey    string
	GoogleAPIKey    string
	AnthropicAPIKey string
	Signals         *SignalConfig
	Agents          *AgentConfig
	ConfigDir       string
}

// FileConfig represents the structure of ~/.refinery/config.yaml
type FileConfig struct {
	APIKeys APIKeysConfig `yaml:"api_keys"`
}

// APIKeysConfig holds API key configuration from file.
type APIKeysConfig struct {
	OpenAI    string `yaml:"openai"`
	Google    string `yaml:"google"`
	Anthropic string `yaml:"anthropic"`
}

// MissingKeysError reports required credentials that are not configured.
// It is fatal at startup and never retried.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing required API keys: %s", strings.Join(e.Keys, ", "))
}

// Load reads configuration from config files and environment variables.
// Environment variables take precedence over file configuration.
func Load() (*Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	fileConfig := loadFileConfig(filepath.Join(configDir, "config.yaml"))

	cfg := &Config{
		OpenAIAPIKey:    getEnvOrDefault("OPENAI_API_KEY", fileConfig.APIKeys.OpenAI),
		GoogleAPIKey:    getEnvOrDefault("GEMINI_API_KEY", fileConfig.APIKeys.Google),
		AnthropicAPIKey: getEnvOrDefault("ANTHROPIC_API_KEY", fileConfig.APIKeys.Anthropic),
		ConfigDir:       configDir,
	}

	cfg.Signals, err = loadSignalConfig(filepath.Join(configDir, "signals.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load signal config: %w", err)
	}

	cfg.Agents, err = loadAgentConfig(filepath.Join(configDir, "agents.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load agent config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the credentials required by the default agent bindings
// are present. The generator and critic roles need OpenAI and Gemini keys.
func (c *Config) Validate() error {
	var missing []string
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.GoogleAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

// HasAdapter returns true if the API key for the given adapter is configured.
func (c *Config) HasAdapter(name string) bool {
	switch name {
	case "openai":
		return c.OpenAIAPIKey != ""
	case "google":
		return c.GoogleAPIKey != ""
	case "anthropic":
		return c.AnthropicAPIKey != ""
	default:
		return false
	}
}

// Status describes credential readiness without performing any LLM call.
type Status struct {
	Ready    bool            `json:"ready"`
	Missing  []string        `json:"missing,omitempty"`
	Adapters map[string]bool `json:"adapters"`
	Checked  time.Time       `json:"checked"`
}

// Status reports which provider credentials are configured.
func (c *Config) Status() Status {
	s := Status{
		Adapters: map[string]bool{
			"openai":    c.HasAdapter("openai"),
			"google":    c.HasAdapter("google"),
			"anthropic": c.HasAdapter("anthropic"),
		},
		Checked: time.Now().UTC(),
	}
	if err := c.Validate(); err != nil {
		var missingErr *MissingKeysError
		if errors.As(err, &missingErr) {
			s.Missing = missingErr.Keys
		}
		return s
	}
	s.Ready = true
	return s
}

// loadFileConfig reads the config file, returning empty config if not found.
func loadFileConfig(path string) *FileConfig {
	cfg := &FileConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, cfg)
	return cfg
}

func getEnvOrDefault(envVar, defaultValue string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return defaultValue
}

func getConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".refinery")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}
