package catalog

import "testing"

func TestSeedContentValid(t *testing.T) {
	if err := validateCrops(seedCrops()); err != nil {
		t.Fatalf("seed content invalid: %v", err)
	}
}

func TestEveryAllowedLevelHasStressor(t *testing.T) {
	for _, c := range Crops() {
		for _, l := range c.Levels {
			if len(c.StressorsAt(l)) == 0 {
				t.Errorf("crop %q: no stressors at allowed level %d", c.Name, l)
			}
		}
	}
}

func TestCropsAtLevel(t *testing.T) {
	tests := []struct {
		level int
		want  []string
	}{
		{1, []string{"Lettuce", "Tomato"}},
		{2, []string{"Lettuce", "Tomato", "Cannabis"}},
		{3, []string{"Lettuce", "Tomato", "Cannabis", "Strawberries"}},
		{4, []string{"Tomato", "Cannabis", "Strawberries"}},
		{5, []string{"Cannabis"}},
		{6, []string{"Cannabis"}},
	}

	for _, tt := range tests {
		got := CropsAtLevel(tt.level)
		if len(got) != len(tt.want) {
			t.Errorf("level %d: got %d crops, want %d", tt.level, len(got), len(tt.want))
			continue
		}
		for i, c := range got {
			if c.Name != tt.want[i] {
				t.Errorf("level %d crop %d: got %q, want %q", tt.level, i, c.Name, tt.want[i])
			}
		}
	}
}

func TestRangeContainsInclusive(t *testing.T) {
	r := Range{16, 22}

	if !r.Contains(16) {
		t.Error("Contains(min) should be true")
	}
	if !r.Contains(22) {
		t.Error("Contains(max) should be true")
	}
	if r.Contains(15.99) {
		t.Error("Contains(min-0.01) should be false")
	}
	if r.Contains(22.01) {
		t.Error("Contains(max+0.01) should be false")
	}
}

func TestRangeMid(t *testing.T) {
	if got := (Range{0.5, 0.8}).Mid(); got != 0.65 {
		t.Errorf("Mid() = %v, want 0.65", got)
	}
}

func TestCropByName(t *testing.T) {
	c, ok := CropByName("Lettuce")
	if !ok {
		t.Fatal("Lettuce not found")
	}
	if c.Prefs.Temp != (Range{16, 22}) {
		t.Errorf("Lettuce temp prefs = %v, want [16, 22]", c.Prefs.Temp)
	}

	if _, ok := CropByName("Kudzu"); ok {
		t.Error("unexpected crop Kudzu")
	}
}

func TestLevelTitles(t *testing.T) {
	if got := LevelTitle(1); got != "Seedling Scout" {
		t.Errorf("LevelTitle(1) = %q", got)
	}
	if got := LevelTitle(6); got != "Greenhouse Grandmaster" {
		t.Errorf("LevelTitle(6) = %q", got)
	}
	if got := LevelTitle(7); got != "" {
		t.Errorf("LevelTitle(7) = %q, want empty", got)
	}
}

func TestStressorByCause(t *testing.T) {
	c, _ := CropByName("Lettuce")

	s, ok := c.StressorByCause("Low humidity")
	if !ok {
		t.Fatal("Low humidity stressor not found")
	}
	if len(s.Symptoms) != 2 || s.Symptoms[0] != "Tip burn" {
		t.Errorf("unexpected symptoms: %v", s.Symptoms)
	}

	if _, ok := c.StressorByCause("Locust swarm"); ok {
		t.Error("unexpected stressor found")
	}
}
