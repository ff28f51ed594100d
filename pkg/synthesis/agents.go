package synthesis

import (
	"fmt"

	"github.com/plancraft/refinery/pkg/config"
)

// AgentResult is the immutable outcome of one specialist stage. A failed
// stage carries Err and empty content; failure never escapes the pipeline as
// an exception.
type AgentResult struct {
	Content    string  `json:"content,omitempty"`
	AgentType  string  `json:"agent_type"`
	Confidence float64 `json:"confidence"`
	Err        string  `json:"error,omitempty"`
}

// Failed reports whether the stage produced an error instead of content.
func (r AgentResult) Failed() bool { return r.Err != "" }

// Stage describes one specialist agent invocation: its role binding, the
// section heading its output lands under, the fixed confidence it reports on
// success, and how its prompt is assembled from the project description and
// prior stage outputs.
type Stage struct {
	Role       string
	Heading    string
	Confidence float64
	Prompt     func(description string, prior map[string]AgentResult) (system, prompt string)
}

// Variant selects a synthesis pipeline shape.
type Variant string

const (
	// VariantComplexAI chains five specialists, each consuming prior
	// stage outputs.
	VariantComplexAI Variant = "multi_agent_complex"
	// VariantIoT runs four specialists that each consume only the raw
	// project description.
	VariantIoT Variant = "iot_hardware_specialist"
)

// Stages returns the fixed stage sequence for a variant.
func Stages(v Variant) ([]Stage, error) {
	switch v {
	case VariantComplexAI:
		return complexAIStages(), nil
	case VariantIoT:
		return iotStages(), nil
	default:
		return nil, fmt.Errorf("unknown synthesis variant %q", v)
	}
}

func priorContent(prior map[string]AgentResult, role string) string {
	return prior[role].Content
}

func complexAIStages() []Stage {
	return []Stage{
		{
			Role:       config.RoleMarketResearch,
			Heading:    "Market Opportunity Analysis",
			Confidence: 0.85,
			Prompt: func(description string, _ map[string]AgentResult) (string, string) {
				return marketResearchSystem, fmt.Sprintf(marketResearchPrompt, description)
			},
		},
		{
			Role:       config.RoleTechnicalArchitect,
			Heading:    "Technical Architecture & System Design",
			Confidence: 0.90,
			Prompt: func(description string, prior map[string]AgentResult) (string, string) {
				return architectSystem, fmt.Sprintf(architectPrompt,
					description, priorContent(prior, config.RoleMarketResearch))
			},
		},
		{
			Role:       config.RoleAISpecialist,
			Heading:    "AI/ML Models & Algorithms",
			Confidence: 0.88,
			Prompt: func(description string, prior map[string]AgentResult) (string, string) {
				return aiSpecialistSystem, fmt.Sprintf(aiSpecialistPrompt,
					description, priorContent(prior, config.RoleTechnicalArchitect))
			},
		},
		{
			Role:       config.RoleBusinessStrategy,
			Heading:    "Business Strategy & Monetization",
			Confidence: 0.87,
			Prompt: func(description string, prior map[string]AgentResult) (string, string) {
				return businessSystem, fmt.Sprintf(businessPrompt,
					description,
					priorContent(prior, config.RoleMarketResearch),
					priorContent(prior, config.RoleTechnicalArchitect))
			},
		},
		{
			Role:       config.RoleImplementation,
			Heading:    "Implementation Plan & Execution",
			Confidence: 0.92,
			Prompt: func(_ string, prior map[string]AgentResult) (string, string) {
				return implementationSystem, fmt.Sprintf(implementationPrompt,
					priorContent(prior, config.RoleMarketResearch),
					priorContent(prior, config.RoleTechnicalArchitect),
					priorContent(prior, config.RoleAISpecialist),
					priorContent(prior, config.RoleBusinessStrategy))
			},
		},
	}
}

func iotStages() []Stage {
	return []Stage{
		{
			Role:       config.RoleHardwareSpecialist,
			Heading:    "Hardware Requirements & System Design",
			Confidence: 0.95,
			Prompt: func(description string, _ map[string]AgentResult) (string, string) {
				return hardwareSystem, fmt.Sprintf(hardwarePrompt, description)
			},
		},
		{
			Role:       config.RoleComponentResearcher,
			Heading:    "Component List & Pricing",
			Confidence: 0.92,
			Prompt: func(description string, _ map[string]AgentResult) (string, string) {
				return componentSystem, fmt.Sprintf(componentPrompt, description)
			},
		},
		{
			Role:       config.RoleIoTArchitect,
			Heading:    "Technical Architecture & Wiring",
			Confidence: 0.94,
			Prompt: func(description string, _ map[string]AgentResult) (string, string) {
				return iotArchitectSystem, fmt.Sprintf(iotArchitectPrompt, description)
			},
		},
		{
			Role:       config.RoleImplementationPlanner,
			Heading:    "Implementation Guide & Setup",
			Confidence: 0.93,
			Prompt: func(description string, _ map[string]AgentResult) (string, string) {
				return iotPlannerSystem, fmt.Sprintf(iotPlannerPrompt, description)
			},
		},
	}
}
