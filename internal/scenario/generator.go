// Package scenario builds randomized crop-stress scenarios from the catalog.
// A Generator owns its random source so generation is reproducible under a
// seeded source in tests.
package scenario

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/evanlowell/growlab/internal/catalog"
)

// ErrNoStressors indicates the chosen crop has no stressor at the requested
// level. Given the catalog's init-time validation this is unreachable in
// normal operation; it is a content-authoring error when it fires.
var ErrNoStressors = errors.New("no stressors defined for crop at this level")

// Scenario is one unit of play: a crop under one or two stressors, the
// perturbed environment, and the observed symptoms.
type Scenario struct {
	ID        string
	Crop      catalog.Crop
	Stressors []catalog.Stressor
	Env       EnvState
	Symptoms  []string
	Cause     string
	Level     int
}

// StressorFor returns the chosen stressor that lists the given symptom.
func (s *Scenario) StressorFor(symptom string) (catalog.Stressor, bool) {
	for _, st := range s.Stressors {
		for _, sym := range st.Symptoms {
			if sym == symptom {
				return st, true
			}
		}
	}
	return catalog.Stressor{}, false
}

// Generator produces scenarios from the catalog using an injected random
// source.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator backed by the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds a scenario at the given difficulty level. cropFilter
// restricts the crop pool by name; an empty filter or one containing "all"
// means no restriction. A filter that matches no eligible crop falls back
// to the unfiltered eligible set.
func (g *Generator) Generate(level int, cropFilter []string) (*Scenario, error) {
	eligible := catalog.CropsAtLevel(level)
	if len(eligible) == 0 {
		return nil, ErrNoStressors
	}

	if filtered := filterCrops(eligible, cropFilter); len(filtered) > 0 {
		eligible = filtered
	}

	crop := eligible[g.rng.Intn(len(eligible))]

	candidates := crop.StressorsAt(level)
	if len(candidates) == 0 {
		return nil, ErrNoStressors
	}

	chosen := g.chooseStressors(level, candidates)

	env := baselineEnv(crop)
	for _, st := range chosen {
		for _, p := range st.Affects {
			env.apply(p, crop, g.rng)
		}
	}

	var symptoms []string
	var causes []string
	for _, st := range chosen {
		symptoms = append(symptoms, st.Symptoms...)
		causes = append(causes, st.Cause)
	}

	return &Scenario{
		ID:        uuid.NewString(),
		Crop:      crop,
		Stressors: chosen,
		Env:       env,
		Symptoms:  symptoms,
		Cause:     strings.Join(causes, " + "),
		Level:     level,
	}, nil
}

// chooseStressors picks one or two distinct stressors. Level 1 and
// single-candidate levels always get one; otherwise a fair coin decides.
func (g *Generator) chooseStressors(level int, candidates []catalog.Stressor) []catalog.Stressor {
	if level == 1 || len(candidates) == 1 {
		return []catalog.Stressor{candidates[g.rng.Intn(len(candidates))]}
	}

	if g.rng.Float64() < 0.5 {
		return []catalog.Stressor{candidates[g.rng.Intn(len(candidates))]}
	}

	first := g.rng.Intn(len(candidates))
	second := g.rng.Intn(len(candidates))
	// Rejection-sample until distinct; terminates since len >= 2 here.
	for second == first {
		second = g.rng.Intn(len(candidates))
	}
	return []catalog.Stressor{candidates[first], candidates[second]}
}

// filterCrops returns the crops whose names appear in the filter. A nil
// filter or one containing "all" disables filtering (returns nil so the
// caller keeps the unfiltered set).
func filterCrops(crops []catalog.Crop, filter []string) []catalog.Crop {
	if len(filter) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		if name == "all" {
			return nil
		}
		wanted[name] = true
	}

	var out []catalog.Crop
	for _, c := range crops {
		if wanted[c.Name] {
			out = append(out, c)
		}
	}
	return out
}
