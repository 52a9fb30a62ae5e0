package scoring

import (
	"reflect"
	"testing"

	"github.com/evanlowell/growlab/internal/catalog"
)

func lettuce(t *testing.T) catalog.Crop {
	t.Helper()
	c, ok := catalog.CropByName("Lettuce")
	if !ok {
		t.Fatal("Lettuce not in catalog")
	}
	return c
}

// optimalSliders returns sliders at the midpoint of every preference range.
func optimalSliders(c catalog.Crop) Sliders {
	return Sliders{
		Temp:     c.Prefs.Temp.Mid(),
		Humidity: c.Prefs.Humidity.Mid(),
		Light:    c.Prefs.Light.Mid(),
		CO2:      c.Prefs.CO2.Mid(),
		DLI:      c.Prefs.DLI.Mid(),
		EC:       c.Prefs.EC.Mid(),
		PH:       c.Prefs.PH.Mid(),
	}
}

func TestToF(t *testing.T) {
	tests := []struct {
		c    float64
		want int
	}{
		{0, 32},
		{100, 212},
		{20, 68},
		{25, 77},
		{16, 61},
	}
	for _, tt := range tests {
		if got := ToF(tt.c); got != tt.want {
			t.Errorf("ToF(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestScore_AllOptimal(t *testing.T) {
	crop := lettuce(t)
	st, _ := crop.StressorByCause("Low humidity")

	res := Score(crop, []catalog.Stressor{st}, st.Symptoms, Attempt{
		Sliders: optimalSliders(crop),
		Answers: []string{"Low humidity", "Low humidity"},
	})

	if res.RangePoints != 7 {
		t.Errorf("RangePoints = %d, want 7", res.RangePoints)
	}
	if res.SymptomPoints != 4 {
		t.Errorf("SymptomPoints = %d, want 4", res.SymptomPoints)
	}
	if res.TotalPoints != 11 {
		t.Errorf("TotalPoints = %d, want 11", res.TotalPoints)
	}
	if !res.Passed || res.Verdict() != "Pass" {
		t.Error("expected a passing verdict")
	}
	if !res.QuizCorrect() {
		t.Error("expected QuizCorrect")
	}
}

func TestScore_RangeBoundariesInclusive(t *testing.T) {
	crop := lettuce(t)
	sliders := optimalSliders(crop)
	sliders.Temp = crop.Prefs.Temp.Min // exactly on the boundary

	res := Score(crop, nil, nil, Attempt{Sliders: sliders})
	if res.RangePoints != 7 {
		t.Errorf("min boundary: RangePoints = %d, want 7", res.RangePoints)
	}

	sliders.Temp = crop.Prefs.Temp.Max
	res = Score(crop, nil, nil, Attempt{Sliders: sliders})
	if res.RangePoints != 7 {
		t.Errorf("max boundary: RangePoints = %d, want 7", res.RangePoints)
	}

	sliders.Temp = crop.Prefs.Temp.Min - 0.01
	res = Score(crop, nil, nil, Attempt{Sliders: sliders})
	if res.RangePoints != 6 {
		t.Errorf("below min: RangePoints = %d, want 6", res.RangePoints)
	}
}

func TestScore_OutOfRangeTempFeedback(t *testing.T) {
	crop := lettuce(t)
	sliders := optimalSliders(crop)
	sliders.Temp = 25 // Lettuce prefers 16-22

	res := Score(crop, nil, nil, Attempt{Sliders: sliders})

	tempRow := res.Params[0]
	if tempRow.Param != catalog.ParamTemp {
		t.Fatalf("first param row is %q, want temp", tempRow.Param)
	}
	if tempRow.InRange {
		t.Error("temp 25 should be out of range for Lettuce")
	}
	want := "Temp 25°C pushes lettuce toward bolting and tip burn; hold 16–22°C for crisp heads."
	if tempRow.Explanation != want {
		t.Errorf("explanation = %q, want %q", tempRow.Explanation, want)
	}
	if tempRow.OptimalText != "16–22°C [61°F–72°F]" {
		t.Errorf("OptimalText = %q", tempRow.OptimalText)
	}
}

func TestScore_SymptomQuiz(t *testing.T) {
	crop := lettuce(t)
	low, _ := crop.StressorByCause("Low humidity")
	dli, _ := crop.StressorByCause("Low DLI")
	stressors := []catalog.Stressor{low, dli}
	symptoms := append(append([]string{}, low.Symptoms...), dli.Symptoms...)

	attempt := Attempt{
		Sliders: optimalSliders(crop),
		Answers: []string{"Low humidity", "EC too high", "", "Low DLI"},
	}
	res := Score(crop, stressors, symptoms, attempt)

	// 2 correct × 2 points.
	if res.SymptomPoints != 4 {
		t.Errorf("SymptomPoints = %d, want 4", res.SymptomPoints)
	}

	// Wrong answer gets the discrimination sentence.
	wrong := res.Symptoms[1]
	if wrong.Correct {
		t.Error("answer 2 should be wrong")
	}
	if wrong.TrueCause != "Low humidity" {
		t.Errorf("TrueCause = %q", wrong.TrueCause)
	}
	wantWrong := "“EC too high” typically causes Tip burn or Stunted roots, not “Leaf curling.”"
	if wrong.WrongedSymptom != wantWrong {
		t.Errorf("WrongedSymptom = %q, want %q", wrong.WrongedSymptom, wantWrong)
	}

	// Missing answer: no discrimination sentence, not correct.
	skipped := res.Symptoms[2]
	if skipped.Answer != "" || skipped.Correct || skipped.WrongedSymptom != "" {
		t.Errorf("unexpected skipped-answer result: %+v", skipped)
	}
}

func TestScore_UnknownAnswerLabel(t *testing.T) {
	crop := lettuce(t)
	st, _ := crop.StressorByCause("Low DLI")

	res := Score(crop, []catalog.Stressor{st}, st.Symptoms, Attempt{
		Answers: []string{"Gamma rays"},
	})

	want := "“Gamma rays” is not associated with “Elongated internodes.”"
	if res.Symptoms[0].WrongedSymptom != want {
		t.Errorf("WrongedSymptom = %q, want %q", res.Symptoms[0].WrongedSymptom, want)
	}
}

func TestScore_Pure(t *testing.T) {
	crop := lettuce(t)
	st, _ := crop.StressorByCause("EC too high")
	attempt := Attempt{
		Sliders: Sliders{Temp: 19, Humidity: 55, Light: 10, CO2: 400, DLI: 15, EC: 0.6, PH: 5.8},
		Answers: []string{"EC too high", "pH too high"},
	}

	first := Score(crop, []catalog.Stressor{st}, st.Symptoms, attempt)
	second := Score(crop, []catalog.Stressor{st}, st.Symptoms, attempt)

	if !reflect.DeepEqual(first, second) {
		t.Error("Score is not pure: identical inputs produced different results")
	}
}

func TestExplanationsFallback(t *testing.T) {
	set := explanationsFor("Kohlrabi")
	if set.Temp.Pos != genericExplanations.Temp.Pos {
		t.Error("unknown crop should get the generic explanation set")
	}

	set = explanationsFor("Tomato")
	if set.Temp.Pos == genericExplanations.Temp.Pos {
		t.Error("Tomato should have a crop-specific explanation set")
	}
}

func TestPassGate(t *testing.T) {
	crop := lettuce(t)
	st, _ := crop.StressorByCause("Low humidity")

	// 3 range points, no quiz points → below the gate.
	res := Score(crop, []catalog.Stressor{st}, st.Symptoms, Attempt{
		Sliders: Sliders{Temp: 19, Humidity: 55, Light: 10},
	})
	if res.TotalPoints != 3 || res.Passed {
		t.Errorf("TotalPoints = %d Passed = %v, want 3 and false", res.TotalPoints, res.Passed)
	}
	if res.Verdict() != "Needs Improvement" {
		t.Errorf("Verdict = %q", res.Verdict())
	}

	// One correct quiz answer tips it to 5.
	res = Score(crop, []catalog.Stressor{st}, st.Symptoms, Attempt{
		Sliders: Sliders{Temp: 19, Humidity: 55, Light: 10},
		Answers: []string{"Low humidity"},
	})
	if res.TotalPoints != 5 || !res.Passed {
		t.Errorf("TotalPoints = %d Passed = %v, want 5 and true", res.TotalPoints, res.Passed)
	}
}
