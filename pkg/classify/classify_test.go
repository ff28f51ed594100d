package classify

import (
	"testing"

	"github.com/plancraft/refinery/pkg/config"
)

func TestClassifyCategories(t *testing.T) {
	c := New(config.DefaultSignalConfig())

	tests := []struct {
		name     string
		text     string
		expected Category
	}{
		{
			name:     "trivial input",
			text:     "hi",
			expected: CategoryGeneral,
		},
		{
			name:     "plain web project",
			text:     "Build a simple website for my bakery with an about page",
			expected: CategoryGeneral,
		},
		{
			name:     "strong ai phrase with research term",
			text:     "I want an ai agent that does deep research on new industries",
			expected: CategoryComplexAI,
		},
		{
			name: "broad ai keyword accumulation",
			text: "Create a multi-agent platform for market research, trend analysis, competitive intelligence and opportunity identification with strong market potential",
			expected: CategoryComplexAI,
		},
		{
			name:     "strong iot phrase with hardware term",
			text:     "Smart aquarium controller using an esp32 with full wiring and components list",
			expected: CategoryIoTHardware,
		},
		{
			name:     "broad iot keyword accumulation",
			text:     "A greenhouse weather station with a temperature sensor and a relay",
			expected: CategoryIoTHardware,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.text)
			if result.Category != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, result.Category, tt.expected)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	c := New(config.DefaultSignalConfig())

	// Matches both heuristics: strong AI phrase plus research term, and
	// strong IoT term plus hardware term.
	text := "Build an ai agent for market research and analysis of iot sensor fleets, including esp32 components and monitoring"

	result := c.Classify(text)

	if !result.HasAIStrong || !result.HasIoTStrong {
		t.Fatalf("test input must trigger both heuristics: %+v", result)
	}
	if result.Category != CategoryComplexAI {
		t.Errorf("expected complex_ai to win precedence, got %s", result.Category)
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := New(config.DefaultSignalConfig())
	text := "An ai system that will study different industries to identify problems"

	first := c.Classify(text)
	second := c.Classify(text)

	if first != second {
		t.Errorf("classification must be deterministic: %+v vs %+v", first, second)
	}
}

func TestDetectProjectType(t *testing.T) {
	c := New(config.DefaultSignalConfig())

	tests := []struct {
		name     string
		text     string
		expected ProjectType
	}{
		{
			name:     "iot wins over later buckets",
			text:     "smart home energy dashboard with arduino",
			expected: ProjectIoTHardware,
		},
		{
			name:     "mobile app",
			text:     "An iOS app for tracking workouts",
			expected: ProjectMobileApp,
		},
		{
			name:     "website wins over ecommerce",
			text:     "An e-commerce website for handmade shoes",
			expected: ProjectWebPlatform,
		},
		{
			name:     "ai project",
			text:     "A chatbot for customer support",
			expected: ProjectAIML,
		},
		{
			name:     "marketplace",
			text:     "An online marketplace for vintage furniture",
			expected: ProjectEcommerce,
		},
		{
			name:     "fallback",
			text:     "A desktop application for accounting",
			expected: ProjectGeneralSoftware,
		},
		{
			name:     "short keyword needs word boundary",
			text:     "A tool to maintain inventory levels",
			expected: ProjectGeneralSoftware,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.DetectProjectType(tt.text); got != tt.expected {
				t.Errorf("DetectProjectType(%q) = %s, want %s", tt.text, got, tt.expected)
			}
		})
	}
}
