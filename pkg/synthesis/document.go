package synthesis

import (
	"strings"
)

// synthesize merges the stage results into the final roadmap document for
// the variant. Failed stages contribute no section; the surrounding frame is
// emitted regardless.
func synthesize(variant Variant, stages []Stage, results map[string]AgentResult) string {
	switch variant {
	case VariantIoT:
		return synthesizeIoT(stages, results)
	default:
		return synthesizeComplexAI(stages, results)
	}
}

func synthesizeComplexAI(stages []Stage, results map[string]AgentResult) string {
	var b strings.Builder

	b.WriteString("# AI System: Comprehensive Project Roadmap\n\n")
	b.WriteString("## Executive Summary\n")
	b.WriteString("This roadmap presents a **comprehensive plan** for developing an advanced AI system with a specialized multi-agent architecture, covering market opportunity, technical design, AI/ML models, business strategy, and execution.\n\n")
	b.WriteString("---\n\n")

	for _, stage := range stages {
		result := results[stage.Role]
		if result.Failed() || result.Content == "" {
			continue
		}
		b.WriteString("## " + stage.Heading + "\n\n")
		b.WriteString(formatSectionContent(result.Content))
		b.WriteString("\n\n---\n\n")
	}

	b.WriteString("## Multi-Agent System Architecture Summary\n\n")
	b.WriteString("### **Specialized Agent Roles:**\n\n")
	b.WriteString("| Agent | Primary Function | Key Capabilities |\n")
	b.WriteString("|-------|------------------|------------------|\n")
	b.WriteString("| **Market Research Agent** | Market Intelligence | Scans markets, identifies trends, analyzes gaps |\n")
	b.WriteString("| **Technical Architect Agent** | System Design | Designs scalable architecture and infrastructure |\n")
	b.WriteString("| **AI Specialist Agent** | ML/AI Development | Develops and optimizes machine learning models |\n")
	b.WriteString("| **Business Strategy Agent** | Strategic Planning | Creates monetization and go-to-market strategies |\n")
	b.WriteString("| **Implementation Agent** | Project Execution | Coordinates development, deployment, and operations |\n\n")
	b.WriteString("### **Success Metrics & KPIs:**\n\n")
	b.WriteString("| Metric Category | Key Indicators | Target Performance |\n")
	b.WriteString("|-----------------|----------------|-------------------|\n")
	b.WriteString("| **Idea Quality** | Market potential, uniqueness, feasibility scores | 8.5+ out of 10 |\n")
	b.WriteString("| **Implementation Success** | Conversion rate from idea to profitable product | 60%+ success rate |\n")
	b.WriteString("| **Market Accuracy** | Prediction accuracy for trends and opportunities | 85%+ accuracy |\n")
	b.WriteString("| **Revenue Generation** | ROI from implemented ideas and products | $10M+ ARR target |\n\n")
	b.WriteString("---\n\n")
	b.WriteString("## **Project Completion Summary**\n\n")
	b.WriteString("This roadmap provides a **complete blueprint** for building the system. The multi-agent architecture ensures:\n\n")
	b.WriteString("- **Comprehensive Analysis** across all business domains\n")
	b.WriteString("- **Scalable Architecture** for enterprise-grade deployment\n")
	b.WriteString("- **Advanced AI/ML Models** for accurate predictions\n")
	b.WriteString("- **Profitable Business Model** with multiple revenue streams\n")
	b.WriteString("- **Clear Implementation Path** with defined milestones\n")

	return b.String()
}

func synthesizeIoT(stages []Stage, results map[string]AgentResult) string {
	var b strings.Builder

	b.WriteString("# IoT Smart System: Complete Implementation Guide\n\n")
	b.WriteString("## Executive Summary\n")
	b.WriteString("This guide provides everything needed to build a professional IoT system with detailed component specifications, pricing, wiring diagrams, and step-by-step implementation instructions.\n\n")
	b.WriteString("---\n\n")

	for _, stage := range stages {
		result := results[stage.Role]
		if result.Failed() || result.Content == "" {
			continue
		}
		b.WriteString("## " + stage.Heading + "\n\n")
		b.WriteString(result.Content)
		b.WriteString("\n\n---\n\n")
	}

	b.WriteString("## **Project Completion Checklist**\n\n")
	b.WriteString("- **Hardware Components** - All parts specified with suppliers\n")
	b.WriteString("- **Wiring Diagrams** - Complete connection schematics\n")
	b.WriteString("- **Software Code** - Ready-to-deploy firmware\n")
	b.WriteString("- **Setup Instructions** - Step-by-step assembly guide\n")
	b.WriteString("- **Testing Procedures** - Validation and calibration\n")
	b.WriteString("- **Troubleshooting** - Common issues and solutions\n")

	return b.String()
}

// formatSectionContent normalizes a specialist's markdown so sections nest
// under the document's H2 headings: every heading becomes H3, and short
// lines ending in a colon are bolded as inline labels.
func formatSectionContent(content string) string {
	if content == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	formatted := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			formatted = append(formatted, "")
		case strings.HasPrefix(line, "#"):
			formatted = append(formatted, "### "+strings.TrimSpace(strings.TrimLeft(line, "#")))
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			formatted = append(formatted, line)
		case strings.HasSuffix(line, ":") && len(line) < 100:
			formatted = append(formatted, "**"+line+"**")
		default:
			formatted = append(formatted, line)
		}
	}

	return strings.Join(formatted, "\n")
}
