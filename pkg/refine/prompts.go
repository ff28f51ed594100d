package refine

import (
	"fmt"
	"strings"

	"github.com/plancraft/refinery/pkg/classify"
	"github.com/plancraft/refinery/pkg/components"
)

const draftSystemPrompt = `You are an expert project strategist with 15+ years of experience turning
rough project descriptions into detailed, actionable roadmaps. Provide
specific, implementable guidance: concrete technology choices, real component
or service names where relevant, realistic timelines and cost estimates.
Never use placeholder text such as "Model XYZ" or "[list components here]".

Structure every roadmap as:
1. Executive Summary (goals and success metrics)
2. Scope & Requirements
3. Technical Architecture
4. Component/Technology Choices (with justification and costs where known)
5. Implementation Plan (phased, with milestones)
6. Testing & Validation
7. Deployment & Operations
8. Risks & Mitigations
9. Future Enhancements`

// specializations sharpen the draft system prompt for the detected project
// type.
var specializations = map[classify.ProjectType]string{
	classify.ProjectIoTHardware: "The project is an IoT/hardware build. Name exact components with model numbers, supplier pricing, wiring and pin assignments, firmware libraries with versions, and calibration procedures.",
	classify.ProjectMobileApp:   "The project is a mobile application. Cover platform choice, app architecture, offline behavior, store submission, and analytics.",
	classify.ProjectWebPlatform: "The project is a web platform. Cover frontend/backend stack, data model, API design, hosting, and scaling.",
	classify.ProjectAIML:        "The project is an AI/ML system. Cover model selection, training data, evaluation metrics, serving infrastructure, and iteration loops.",
	classify.ProjectEcommerce:   "The project is an e-commerce system. Cover catalog and inventory modeling, payment integration, fulfillment, and fraud considerations.",
}

const critiquePrompt = `You are an expert project analyst and critic specializing in identifying
weaknesses and improvement opportunities in project roadmaps.

Analyze the following roadmap and provide comprehensive feedback on:

1. Logical Consistency: contradictions or gaps in the plan
2. Feasibility: are timelines and resource requirements realistic?
3. Risk Analysis: challenges or risks missing or underestimated
4. Technical Soundness: are the technical approaches appropriate and current?
5. Implementation Details: critical details that are missing
6. Alternative Approaches: better or more efficient alternatives
7. Scalability & Maintenance: long-term considerations

For each area give specific issues, detailed recommendations, and practical
suggestions. Be thorough, constructive, and actionable.

ROADMAP TO ANALYZE:
%s

Provide your detailed analysis and recommendations:`

const reviseSystemPrompt = `You are an expert project strategist. You previously created a project
roadmap and have received detailed feedback from a specialist reviewer.
Integrate the feedback: address every concern raised, incorporate suggested
alternatives, fix inconsistencies, and enhance the practical implementation
detail, while maintaining the overall structure and actionability.`

const revisePromptTemplate = `Here is the original roadmap you created:

%s

Here is the detailed feedback from the specialist reviewer:

%s

Create an improved version of the roadmap that addresses all the feedback
points and incorporates the suggested improvements.`

const finalizePrompt = `You are presenting the final, refined project roadmap to the user. It has
been through multiple iterations of review and improvement.

Present it as a clean, professional, standalone document: highlight key
strengths, provide clear next steps for implementation, and remove any
references to the review or refinement process.

FINAL ROADMAP:
%s

Present this as the definitive project roadmap:`

// buildDraftPrompt assembles the generator's first prompt from the project
// description and optional component research data.
func buildDraftPrompt(description string, research []components.Result, costs *components.CostAnalysis) string {
	var sb strings.Builder
	sb.WriteString("Create a comprehensive, specific project roadmap for the following project.\n\n")
	sb.WriteString("PROJECT REQUIREMENTS: ")
	sb.WriteString(description)
	sb.WriteString("\n")

	if len(research) > 0 {
		sb.WriteString("\nCOMPONENT RESEARCH DATA:\n")
		for _, r := range research {
			if r.Recommended == nil {
				continue
			}
			fmt.Fprintf(&sb, "\n%s:\n- Recommended: %s - $%.2f from %s\n",
				r.Component, r.Recommended.Name, r.Recommended.Price, r.Recommended.Supplier)
			if len(r.Alternatives) > 0 {
				fmt.Fprintf(&sb, "- Alternatives: %d options found\n", len(r.Alternatives))
			}
		}
	}

	if costs != nil && costs.TotalEstimated > 0 {
		sb.WriteString("\nCOST ANALYSIS:\n")
		fmt.Fprintf(&sb, "- Estimated Total: $%.2f\n", costs.TotalEstimated)
		fmt.Fprintf(&sb, "- Budget Build: $%.2f\n", costs.BudgetBuild)
		fmt.Fprintf(&sb, "- Premium Build: $%.2f\n", costs.PremiumBuild)
	}

	sb.WriteString("\nEvery specification must be concrete enough to act on immediately.")
	return sb.String()
}

// chunkedFraming wraps a summary of an oversized input with its section and
// token counts so the generator knows it is working from a condensation.
func chunkedFraming(summary string, sections, tokens int) string {
	return fmt.Sprintf(`Project Requirements Summary:
%s

Note: This is a summary of a larger document with %d sections totaling %d tokens.`, summary, sections, tokens)
}
