package catalog

import (
	"fmt"
	"strings"
)

// validateCrops performs all structural checks on the seed content.
// Returns a combined error describing all problems found, or nil if valid.
func validateCrops(crops []Crop) error {
	var errs []string

	nameSet := make(map[string]bool, len(crops))
	for _, c := range crops {
		if nameSet[c.Name] {
			errs = append(errs, fmt.Sprintf("duplicate crop name: %q", c.Name))
		}
		nameSet[c.Name] = true

		if len(c.Levels) == 0 {
			errs = append(errs, fmt.Sprintf("crop %q has no allowed levels", c.Name))
		}

		allowed := make(map[int]bool, len(c.Levels))
		for _, l := range c.Levels {
			if !ValidLevel(l) {
				errs = append(errs, fmt.Sprintf("crop %q: level %d out of range [%d, %d]", c.Name, l, MinLevel, MaxLevel))
			}
			allowed[l] = true
		}

		causeSet := make(map[string]bool, len(c.Stressors))
		stressorLevels := make(map[int]int)
		for _, s := range c.Stressors {
			prefix := fmt.Sprintf("crop %q stressor %q", c.Name, s.Cause)

			if causeSet[s.Cause] {
				errs = append(errs, fmt.Sprintf("%s: duplicate cause label", prefix))
			}
			causeSet[s.Cause] = true

			if !allowed[s.Level] {
				errs = append(errs, fmt.Sprintf("%s: level %d not in crop's allowed levels", prefix, s.Level))
			}
			stressorLevels[s.Level]++

			if len(s.Symptoms) != 2 {
				errs = append(errs, fmt.Sprintf("%s: must have exactly 2 symptoms, got %d", prefix, len(s.Symptoms)))
			}
			if len(s.Affects) == 0 {
				errs = append(errs, fmt.Sprintf("%s: must affect at least one parameter", prefix))
			}
			for _, p := range s.Affects {
				if !knownParam(p) {
					errs = append(errs, fmt.Sprintf("%s: unknown parameter tag %q", prefix, p))
				}
			}
		}

		// Every allowed level needs at least one stressor, otherwise the
		// generator has no valid choice at that level.
		for _, l := range c.Levels {
			if stressorLevels[l] == 0 {
				errs = append(errs, fmt.Sprintf("crop %q: no stressor defined at allowed level %d", c.Name, l))
			}
		}

		if len(c.Quiz.Options) != 4 {
			errs = append(errs, fmt.Sprintf("crop %q quiz: must have exactly 4 options, got %d", c.Name, len(c.Quiz.Options)))
		} else {
			found := false
			for _, o := range c.Quiz.Options {
				if o == c.Quiz.Answer {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, fmt.Sprintf("crop %q quiz: answer %q not among options", c.Name, c.Quiz.Answer))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("crop catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func knownParam(p Param) bool {
	switch p {
	case ParamTemp, ParamHumidity, ParamLight, ParamCO2, ParamDLI, ParamEC,
		ParamPH, ParamDO, ParamAirflow, ParamNutrient, ParamDisease, ParamSensor:
		return true
	}
	return false
}
