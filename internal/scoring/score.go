// Package scoring evaluates a player's corrective settings and trigger-quiz
// answers against a generated scenario's ground truth. Scoring is a pure
// function of its inputs; persistence of the result is the caller's concern.
package scoring

import (
	"fmt"
	"strings"

	"github.com/evanlowell/growlab/internal/catalog"
)

// PassThreshold is the fixed total-points gate between "Pass" and
// "Needs Improvement".
const PassThreshold = 4

// Points awarded per correct element.
const (
	pointsPerParam   = 1
	pointsPerSymptom = 2
)

// Sliders holds the player's seven parameter settings.
type Sliders struct {
	Temp     float64
	Humidity float64
	Light    float64
	CO2      float64
	DLI      float64
	EC       float64
	PH       float64
}

// For returns the slider value for a core parameter.
func (s Sliders) For(p catalog.Param) float64 {
	switch p {
	case catalog.ParamTemp:
		return s.Temp
	case catalog.ParamHumidity:
		return s.Humidity
	case catalog.ParamLight:
		return s.Light
	case catalog.ParamCO2:
		return s.CO2
	case catalog.ParamDLI:
		return s.DLI
	case catalog.ParamEC:
		return s.EC
	case catalog.ParamPH:
		return s.PH
	default:
		return 0
	}
}

// Attempt is the player's full answer to one scenario: slider settings plus
// one selected cause per observed symptom (empty string = no answer).
type Attempt struct {
	Sliders Sliders
	Answers []string
}

// ParamResult is the per-parameter feedback row.
type ParamResult struct {
	Param       catalog.Param
	Value       float64
	InRange     bool
	Optimal     catalog.Range
	OptimalText string // range with units; temperature includes °F
	Explanation string // in-range rationale or out-of-range consequence
}

// SymptomResult is the per-symptom quiz feedback row.
type SymptomResult struct {
	Symptom        string
	Answer         string // empty if the player did not answer
	Correct        bool
	TrueCause      string
	TrueSymptoms   string // the true cause's symptoms joined with " or "
	WrongedSymptom string // what the player's wrong answer actually produces
}

// Result is the complete scored outcome of one attempt.
type Result struct {
	RangePoints   int
	SymptomPoints int
	TotalPoints   int
	Passed        bool
	Params        []ParamResult
	Symptoms      []SymptomResult
}

// Verdict returns the pass-gate label for the result.
func (r *Result) Verdict() string {
	if r.Passed {
		return "Pass"
	}
	return "Needs Improvement"
}

// QuizCorrect reports whether at least one symptom answer was right.
func (r *Result) QuizCorrect() bool {
	return r.SymptomPoints > 0
}

// Score evaluates an attempt against the scenario's crop, chosen stressors,
// and observed symptom list. Answers are matched positionally to symptoms;
// missing positions count as unanswered.
func Score(crop catalog.Crop, stressors []catalog.Stressor, symptoms []string, attempt Attempt) *Result {
	res := &Result{}
	explain := explanationsFor(crop.Name)

	for _, p := range catalog.CoreParams() {
		value := attempt.Sliders.For(p)
		optimal := crop.Prefs.For(p)
		inRange := optimal.Contains(value)
		if inRange {
			res.RangePoints += pointsPerParam
		}

		res.Params = append(res.Params, ParamResult{
			Param:       p,
			Value:       value,
			InRange:     inRange,
			Optimal:     optimal,
			OptimalText: optimalText(p, optimal),
			Explanation: explain.For(p).Text(inRange, value),
		})
	}

	for i, symptom := range symptoms {
		answer := ""
		if i < len(attempt.Answers) {
			answer = attempt.Answers[i]
		}

		trueCause := trueCauseFor(stressors, symptom)
		correct := answer != "" && answer == trueCause
		if correct {
			res.SymptomPoints += pointsPerSymptom
		}

		sr := SymptomResult{
			Symptom:      symptom,
			Answer:       answer,
			Correct:      correct,
			TrueCause:    trueCause,
			TrueSymptoms: causeSymptoms(crop, trueCause, symptom),
		}
		if !correct && answer != "" {
			sr.WrongedSymptom = wrongAnswerText(crop, answer, symptom)
		}
		res.Symptoms = append(res.Symptoms, sr)
	}

	res.TotalPoints = res.RangePoints + res.SymptomPoints
	res.Passed = res.TotalPoints >= PassThreshold
	return res
}

// trueCauseFor finds the chosen stressor listing the symptom and returns its
// cause label.
func trueCauseFor(stressors []catalog.Stressor, symptom string) string {
	for _, st := range stressors {
		for _, sym := range st.Symptoms {
			if sym == symptom {
				return st.Cause
			}
		}
	}
	return ""
}

// causeSymptoms returns the full symptom list of the named cause, joined
// with " or ". Falls back to the observed symptom when the cause is unknown.
func causeSymptoms(crop catalog.Crop, cause, fallback string) string {
	if st, ok := crop.StressorByCause(cause); ok {
		return strings.Join(st.Symptoms, " or ")
	}
	return fallback
}

// wrongAnswerText explains what the player's incorrect choice actually
// produces, to teach discrimination between stressors.
func wrongAnswerText(crop catalog.Crop, answer, symptom string) string {
	if st, ok := crop.StressorByCause(answer); ok {
		return fmt.Sprintf("“%s” typically causes %s, not “%s.”",
			answer, strings.Join(st.Symptoms, " or "), symptom)
	}
	return fmt.Sprintf("“%s” is not associated with “%s.”", answer, symptom)
}

// optimalText formats an optimal range with its unit; temperature also gets
// the Fahrenheit span.
func optimalText(p catalog.Param, r catalog.Range) string {
	switch p {
	case catalog.ParamTemp:
		return fmt.Sprintf("%.0f–%.0f°C [%d°F–%d°F]", r.Min, r.Max, ToF(r.Min), ToF(r.Max))
	case catalog.ParamEC, catalog.ParamPH:
		return fmt.Sprintf("%.1f–%.1f%s", r.Min, r.Max, p.Unit())
	default:
		return fmt.Sprintf("%.0f–%.0f%s", r.Min, r.Max, p.Unit())
	}
}
