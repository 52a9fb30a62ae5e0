package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/evanlowell/growlab/internal/llm"
	"github.com/evanlowell/growlab/internal/scoring"
)

func TestRequestScenario_RejectsInvalidLevel(t *testing.T) {
	a := New(llm.NewMockProvider())

	for _, level := range []int{0, -1, 7, 100} {
		_, err := a.RequestScenario(context.Background(), level)
		if !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("level %d: expected ErrInvalidLevel, got %v", level, err)
		}
	}
}

func TestRequestScenario_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("  A scenario briefing.  ")},
	)
	a := New(mock)

	got, err := a.RequestScenario(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A scenario briefing." {
		t.Fatalf("expected trimmed briefing, got %q", got)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content

	for _, want := range []string{
		"Glossary of Key Facts",
		"Level 3",
		"Budding Specialist",
		"1) Crop Type and Growing System:",
		"2) Current Environmental Conditions:",
		"3) Observed Plant Symptoms:",
		"4) Your Task:",
		"under 200 words",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRequestScenario_PropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	a := New(mock)

	_, err := a.RequestScenario(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestRequestEvaluation_RejectsMalformedInput(t *testing.T) {
	a := New(llm.NewMockProvider())

	tests := []EvaluationInput{
		{Level: 2, Recommendation: "fix it"},   // missing scenario
		{Level: 2, ScenarioText: "a scenario"}, // missing recommendation
		{},
	}
	for _, in := range tests {
		if _, err := a.RequestEvaluation(context.Background(), in); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("input %+v: expected ErrMalformedInput, got %v", in, err)
		}
	}
}

func TestRequestEvaluation_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Good work.")},
	)
	a := New(mock)

	in := EvaluationInput{
		Level:        2,
		ScenarioText: "Lettuce in NFT with wilting.",
		Sliders: scoring.Sliders{
			Temp: 20, Humidity: 55, Light: 14, CO2: 800, DLI: 12,
		},
		Recommendation: "Lower the water temperature.",
	}

	got, err := a.RequestEvaluation(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Good work." {
		t.Fatalf("unexpected feedback: %q", got)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Glossary of Key Facts",
		"Level 2",
		"Lettuce in NFT with wilting.",
		"Temperature: 20°C (68°F)",
		"Humidity: 55%",
		"Photoperiod: 14 hrs",
		"CO₂: 800 ppm",
		"DLI: 12 mol/m²/day",
		"Lower the water temperature.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRequestStructuredScenario_Decodes(t *testing.T) {
	content := `{
		"crop": "Lettuce",
		"growing_system": "an ebb-and-flow media bed",
		"environment": [
			{"name": "Temperature", "value": "28°C (82°F)"},
			{"name": "Relative Humidity", "value": "85%"}
		],
		"symptoms": ["Tip burn", "Leaf curling"]
	}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(content)},
	)
	a := New(mock)

	sc, err := a.RequestStructuredScenario(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Level != 4 {
		t.Errorf("level = %d, want 4", sc.Level)
	}
	if sc.Crop != "Lettuce" || sc.GrowingSystem != "an ebb-and-flow media bed" {
		t.Errorf("unexpected crop/system: %q / %q", sc.Crop, sc.GrowingSystem)
	}
	if len(sc.Environment) != 2 || sc.Environment[0].Name != "Temperature" {
		t.Errorf("unexpected environment: %+v", sc.Environment)
	}
	if len(sc.Symptoms) != 2 {
		t.Errorf("unexpected symptoms: %v", sc.Symptoms)
	}

	// Schema must be attached so the provider enforces the shape.
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "consult-scenario" {
		t.Error("structured request did not carry the consult schema")
	}

	text := sc.BriefingText()
	for _, want := range []string{
		"Lettuce in an ebb-and-flow media bed",
		"Temperature: 28°C (82°F)",
		"Tip burn",
		"Your Task:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("briefing text missing %q", want)
		}
	}
}
