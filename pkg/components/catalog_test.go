package components

import (
	"testing"
)

func TestLookupKnownComponent(t *testing.T) {
	c := NewCatalog()

	result := c.Lookup("esp32 development board")

	if result.Recommended == nil {
		t.Fatal("expected a recommendation for esp32")
	}
	if result.Recommended.Price <= 0 {
		t.Errorf("recommended listing has no price: %+v", result.Recommended)
	}
	if len(result.Alternatives) > 3 {
		t.Errorf("expected at most 3 alternatives, got %d", len(result.Alternatives))
	}
	for i := 1; i < len(result.Alternatives); i++ {
		if result.Alternatives[i].Price < result.Alternatives[i-1].Price {
			t.Errorf("alternatives not sorted by price: %+v", result.Alternatives)
		}
	}
}

func TestLookupUnknownComponent(t *testing.T) {
	c := NewCatalog()

	result := c.Lookup("flux capacitor")

	if result.Recommended != nil {
		t.Errorf("unknown component must yield an empty result, got %+v", result.Recommended)
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("unknown component must have no alternatives")
	}
}

func TestAnalyzeCosts(t *testing.T) {
	c := NewCatalog()

	analysis := c.Analyze([]string{"esp32", "ph sensor", "flux capacitor"})

	if analysis.TotalEstimated <= 0 {
		t.Error("expected a positive total for known components")
	}
	if analysis.BudgetBuild > analysis.PremiumBuild {
		t.Errorf("budget build %.2f exceeds premium build %.2f",
			analysis.BudgetBuild, analysis.PremiumBuild)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	c := NewCatalog()

	analysis := c.Analyze(nil)

	if analysis.TotalEstimated != 0 || analysis.BudgetBuild != 0 || analysis.PremiumBuild != 0 {
		t.Errorf("empty component list must produce a zero analysis: %+v", analysis)
	}
}
