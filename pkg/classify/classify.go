// Package classify assigns incoming project descriptions to a pipeline
// category using keyword heuristics. Classification is a best-effort gate,
// not a trained model; known imprecision is acceptable.
package classify

import (
	"strings"

	"github.com/plancraft/refinery/pkg/config"
)

// Category is the classification outcome that selects a pipeline.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryIoTHardware Category = "iot_hardware"
	CategoryComplexAI   Category = "complex_ai"
)

// ProjectType is the finer bucket used to pick a system-prompt
// specialization for the generic refinement loop.
type ProjectType string

const (
	ProjectIoTHardware     ProjectType = "iot_hardware"
	ProjectMobileApp       ProjectType = "mobile_app"
	ProjectWebPlatform     ProjectType = "web_platform"
	ProjectAIML            ProjectType = "ai_ml"
	ProjectEcommerce       ProjectType = "ecommerce"
	ProjectGeneralSoftware ProjectType = "general_software"
)

// Result captures one classification. Multiple heuristics can fire; Category
// reflects the fixed precedence complex_ai > iot_hardware > general.
type Result struct {
	Category Category `json:"category"`

	// Matched-signal counts against the broad keyword lists.
	AIMatches  int `json:"ai_matches"`
	IoTMatches int `json:"iot_matches"`

	// Per-signal-group flags.
	HasAIStrong      bool `json:"has_ai_strong"`
	HasAIResearch    bool `json:"has_ai_research"`
	HasAIMarket      bool `json:"has_ai_market"`
	HasIoTStrong     bool `json:"has_iot_strong"`
	HasIoTHardware   bool `json:"has_iot_hardware"`
	HasIoTMonitoring bool `json:"has_iot_monitoring"`
}

// Classifier evaluates an ordered list of (predicate, category) rules over
// normalized lowercase text.
type Classifier struct {
	signals *config.SignalConfig
	rules   []rule
}

type rule struct {
	category Category
	match    func(*Result) bool
}

// New creates a classifier over the given signal lists. The rule order is a
// policy decision: complex_ai is checked before iot_hardware, so a request
// matching both resolves to complex_ai.
func New(signals *config.SignalConfig) *Classifier {
	c := &Classifier{signals: signals}
	c.rules = []rule{
		{CategoryComplexAI, func(r *Result) bool {
			return (r.HasAIStrong && (r.HasAIResearch || r.HasAIMarket)) || r.AIMatches >= signals.AIBroadMin
		}},
		{CategoryIoTHardware, func(r *Result) bool {
			return (r.HasIoTStrong && (r.HasIoTHardware || r.HasIoTMonitoring)) || r.IoTMatches >= signals.IoTBroadMin
		}},
	}
	return c
}

// Classify scores the text against every signal group and applies the rules
// in priority order. It is a pure function of the input text.
func (c *Classifier) Classify(text string) Result {
	lower := strings.ToLower(text)

	r := Result{
		Category:         CategoryGeneral,
		AIMatches:        countMatches(lower, c.signals.AIBroad),
		IoTMatches:       countMatches(lower, c.signals.IoTBroad),
		HasAIStrong:      anyMatch(lower, c.signals.AIStrong),
		HasAIResearch:    anyMatch(lower, c.signals.AIResearch),
		HasAIMarket:      anyMatch(lower, c.signals.AIMarket),
		HasIoTStrong:     anyMatch(lower, c.signals.IoTStrong),
		HasIoTHardware:   anyMatch(lower, c.signals.IoTHardware),
		HasIoTMonitoring: anyMatch(lower, c.signals.IoTMonitoring),
	}

	for _, rule := range c.rules {
		if rule.match(&r) {
			r.Category = rule.category
			break
		}
	}

	return r
}

// DetectProjectType picks the finer bucket for the generic loop. Buckets are
// evaluated in the configured enumeration order; the first bucket with a
// matching keyword wins. Bucket keywords match on word boundaries so short
// terms like "ai" do not fire inside larger words.
func (c *Classifier) DetectProjectType(text string) ProjectType {
	lower := strings.ToLower(text)

	for _, name := range c.signals.ProjectTypeOrder {
		for _, keyword := range c.signals.ProjectTypes[name] {
			if containsWord(lower, strings.ToLower(keyword)) {
				return ProjectType(name)
			}
		}
	}

	return ProjectGeneralSoftware
}

// countMatches counts keywords present as case-insensitive substrings.
func countMatches(lower string, keywords []string) int {
	n := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			n++
		}
	}
	return n
}

func anyMatch(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// containsWord checks for the keyword at word/phrase boundaries.
func containsWord(text, keyword string) bool {
	idx := strings.Index(text, keyword)
	if idx == -1 {
		return false
	}
	if idx > 0 && isWordChar(text[idx-1]) {
		return false
	}
	if end := idx + len(keyword); end < len(text) && isWordChar(text[end]) {
		return false
	}
	return true
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}
