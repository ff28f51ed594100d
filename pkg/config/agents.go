package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Binding ties an agent role to a provider adapter, a model and a sampling
// temperature.
type Binding struct {
	Adapter     string  `yaml:"adapter"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

// AgentConfig binds every agent role to an adapter/model. Each LLM call is
// bounded by RequestTimeout; a timeout counts as an ordinary call failure.
type AgentConfig struct {
	Roles          map[string]Binding `yaml:"roles"`
	RequestTimeout time.Duration      `yaml:"request_timeout"`
}

// Agent role names. The generator and critic drive the refinement loop; the
// rest are synthesis pipeline stages.
const (
	RoleGenerator = "generator"
	RoleCritic    = "critic"
	RoleFinalizer = "finalizer"

	RoleMarketResearch     = "market_research"
	RoleTechnicalArchitect = "technical_architect"
	RoleAISpecialist       = "ai_specialist"
	RoleBusinessStrategy   = "business_strategy"
	RoleImplementation     = "implementation"

	RoleHardwareSpecialist    = "hardware_specialist"
	RoleComponentResearcher   = "component_researcher"
	RoleIoTArchitect          = "iot_architect"
	RoleImplementationPlanner = "implementation_planner"
)

// Role returns the binding for a role name.
func (c *AgentConfig) Role(name string) (Binding, error) {
	b, ok := c.Roles[name]
	if !ok {
		return Binding{}, fmt.Errorf("no binding for agent role %q", name)
	}
	return b, nil
}

// loadAgentConfig reads agent bindings from a YAML file, falling back to the
// defaults when the file does not exist.
func loadAgentConfig(path string) (*AgentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAgentConfig(), nil
		}
		return nil, err
	}

	var cfg AgentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyAgentDefaults(&cfg)
	return &cfg, nil
}

// DefaultAgentConfig returns the default role bindings: GPT for the
// strategist-style roles, Gemini for the critic-style roles.
func DefaultAgentConfig() *AgentConfig {
	cfg := &AgentConfig{
		Roles: map[string]Binding{
			RoleGenerator: {Adapter: "openai", Model: "gpt-4-turbo", Temperature: 0.7},
			RoleCritic:    {Adapter: "google", Model: "gemini-1.5-flash", Temperature: 0.8},
			RoleFinalizer: {Adapter: "google", Model: "gemini-1.5-flash", Temperature: 0.3},

			RoleMarketResearch:     {Adapter: "openai", Model: "gpt-4-turbo", Temperature: 0.3},
			RoleTechnicalArchitect: {Adapter: "openai", Model: "gpt-4-turbo", Temperature: 0.2},
			RoleAISpecialist:       {Adapter: "google", Model: "gemini-1.5-flash", Temperature: 0.3},
			RoleBusinessStrategy:   {Adapter: "openai", Model: "gpt-4-turbo", Temperature: 0.4},
			RoleImplementation:     {Adapter: "google", Model: "gemini-1.5-flash", Temperature: 0.2},

			RoleHardwareSpecialist:    {Adapter: "openai", Model: "gpt-4-turbo", Temperature: 0.2},
			RoleComponentResearcher:   {Adapter: "openai", Model: "gpt-4-turbo", Temperature: 0.1},
			RoleIoTArchitect:          {Adapter: "openai", Model: "gpt-4-turbo", Temperature: 0.3},
			RoleImplementationPlanner: {Adapter: "openai", Model: "gpt-4-turbo", Temperature: 0.2},
		},
		RequestTimeout: 2 * time.Minute,
	}

	applyAgentDefaults(cfg)
	return cfg
}

func applyAgentDefaults(cfg *AgentConfig) {
	if cfg == nil {
		return
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 2 * time.Minute
	}
	if cfg.Roles == nil {
		cfg.Roles = DefaultAgentConfig().Roles
	}
}
