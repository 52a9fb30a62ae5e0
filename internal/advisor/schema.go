package advisor

import (
	"strings"

	"github.com/evanlowell/growlab/internal/llm"
)

// ConsultScenario is an LLM-generated scenario in structured form,
// used by the terminal UI's consult mode.
type ConsultScenario struct {
	Level         int          `json:"-"`
	Crop          string       `json:"crop"`
	GrowingSystem string       `json:"growing_system"`
	Environment   []EnvReading `json:"environment"`
	Symptoms      []string     `json:"symptoms"`
}

// EnvReading is one labeled environmental measurement, e.g.
// {"Temperature", "28°C (82°F)"}.
type EnvReading struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BriefingText renders the structured scenario as prose so it can be
// fed back into the evaluation prompt unchanged.
func (s *ConsultScenario) BriefingText() string {
	var b strings.Builder

	b.WriteString("1) Crop Type and Growing System:\n")
	b.WriteString("- " + s.Crop + " in " + s.GrowingSystem + "\n\n")

	b.WriteString("2) Current Environmental Conditions:\n")
	for _, r := range s.Environment {
		b.WriteString("- " + r.Name + ": " + r.Value + "\n")
	}
	b.WriteString("\n3) Observed Plant Symptoms:\n")
	for _, sym := range s.Symptoms {
		b.WriteString("– " + sym + "\n")
	}

	b.WriteString("\nYour Task:\n")
	b.WriteString("1. Identify the primary suspected issue(s).\n")
	b.WriteString("2. Recommend corrective actions to fix the problem.\n")
	b.WriteString("3. Explain the underlying plant physiology or system-level rationale.\n")

	return b.String()
}

// consultScenarioSchema describes the JSON shape for structured
// scenario generation.
func consultScenarioSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "consult-scenario",
		Description: "A CEA diagnostic scenario: crop, growing system, environmental readings, and observed symptoms. Do not reveal the cause.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"crop": map[string]any{
					"type":        "string",
					"description": "Crop name, e.g. Lettuce",
				},
				"growing_system": map[string]any{
					"type":        "string",
					"description": "Specific growing system, e.g. an ebb-and-flow media bed",
				},
				"environment": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name":  map[string]any{"type": "string"},
							"value": map[string]any{"type": "string"},
						},
						"required": []any{"name", "value"},
					},
				},
				"symptoms": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "2-4 observed symptoms, without naming the cause",
				},
			},
			"required": []any{"crop", "growing_system", "environment", "symptoms"},
		},
	}
}
