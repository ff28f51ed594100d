package refine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/plancraft/refinery/pkg/adapter"
	"github.com/plancraft/refinery/pkg/artifact"
	"github.com/plancraft/refinery/pkg/classify"
	"github.com/plancraft/refinery/pkg/components"
	"github.com/plancraft/refinery/pkg/config"
)

// Generator is the strategist role: it drafts the initial roadmap and later
// revises it against the critic's feedback. Drafts are enriched with
// component pricing data when a catalog is available.
type Generator struct {
	adapter adapter.Adapter
	binding config.Binding
	catalog *components.Catalog
	timeout time.Duration
}

// NewGenerator binds the generator role to its configured adapter. The
// catalog may be nil; enrichment is then skipped.
func NewGenerator(adapters map[string]adapter.Adapter, agents *config.AgentConfig, catalog *components.Catalog) (*Generator, error) {
	binding, err := agents.Role(config.RoleGenerator)
	if err != nil {
		return nil, err
	}
	a, ok := adapters[binding.Adapter]
	if !ok {
		return nil, fmt.Errorf("generator adapter %q not available", binding.Adapter)
	}
	return &Generator{
		adapter: a,
		binding: binding,
		catalog: catalog,
		timeout: agents.RequestTimeout,
	}, nil
}

// Draft produces the initial roadmap from the project description.
func (g *Generator) Draft(ctx context.Context, description string, projectType classify.ProjectType) (*artifact.Artifact, error) {
	system := draftSystemPrompt
	if spec, ok := specializations[projectType]; ok {
		system = system + "\n\n" + spec
	}

	var research []components.Result
	var costs *components.CostAnalysis
	if g.catalog != nil {
		keywords := ExtractComponents(description)
		for _, keyword := range keywords {
			if r := g.catalog.Lookup(keyword); r.Recommended != nil {
				research = append(research, r)
			}
		}
		if len(keywords) > 0 {
			analysis := g.catalog.Analyze(keywords)
			costs = &analysis
		}
	}

	return g.generate(ctx, adapter.Request{
		System:      system,
		Prompt:      buildDraftPrompt(description, research, costs),
		Temperature: g.binding.Temperature,
	})
}

// Revise produces an improved roadmap from the prior draft and the critic's
// feedback. The original input is not shown again.
func (g *Generator) Revise(ctx context.Context, draft, feedback string) (*artifact.Artifact, error) {
	return g.generate(ctx, adapter.Request{
		System:      reviseSystemPrompt,
		Prompt:      fmt.Sprintf(revisePromptTemplate, draft, feedback),
		Temperature: g.binding.Temperature,
	})
}

func (g *Generator) generate(ctx context.Context, req adapter.Request) (*artifact.Artifact, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.adapter.Generate(callCtx, g.binding.Model, req)
}

// componentPatterns maps component categories to trigger keywords for
// generic extraction.
var componentPatterns = map[string][]string{
	"microcontroller": {"esp32", "arduino", "raspberry pi", "microcontroller"},
	"sensors":         {"temperature", "ph", "turbidity", "water level", "motion", "camera", "sensor"},
	"actuators":       {"pump", "heater", "motor", "servo", "relay"},
	"display":         {"lcd", "oled", "display", "screen"},
	"power":           {"battery", "power supply", "solar"},
}

// ExtractComponents pulls component keywords from a project description for
// pricing research. Known project shapes get a curated list; anything else
// falls back to generic pattern matching.
func ExtractComponents(description string) []string {
	lower := strings.ToLower(description)

	switch {
	case strings.Contains(lower, "aquarium"):
		return []string{"ESP32", "DS18B20 Temperature Sensor", "pH Sensor", "Water Level Sensor", "Water Pump", "Heater"}
	case strings.Contains(lower, "doorbell"):
		return []string{"ESP32 Camera", "Motion Sensor", "Display"}
	case strings.Contains(lower, "smart home"):
		return []string{"ESP32", "Temperature Sensor", "Relay Module", "Display"}
	}

	seen := make(map[string]bool)
	var keywords []string
	for _, patterns := range componentPatterns {
		for _, keyword := range patterns {
			if strings.Contains(lower, keyword) && !seen[keyword] {
				seen[keyword] = true
				keywords = append(keywords, keyword)
			}
		}
	}
	return keywords
}
