package scenario

import (
	"fmt"
	"math/rand"

	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/scoring"
)

// ErraticReading is the sentinel shown when a sensor fault makes a channel
// unreadable.
const ErraticReading = "Erratic"

// Airflow descriptions for the baseline and perturbed states.
const (
	airflowAdequate = "Adequate HAF fans"
	airflowStagnant = "No HAF fans; stagnant air"
)

// EnvState is the simulated environment presented to the player. The seven
// core channels plus dissolved oxygen are numeric; temperature can flip to
// an erratic sensor reading, and airflow is descriptive.
type EnvState struct {
	Temp        float64
	TempErratic bool
	Humidity    float64
	Light       float64
	CO2         float64
	DLI         float64
	EC          float64
	PH          float64
	DO          float64
	Airflow     string
}

// baselineEnv returns the near-optimal starting environment for a crop:
// EC and pH at the crop's preference midpoints, fixed defaults elsewhere.
func baselineEnv(crop catalog.Crop) EnvState {
	return EnvState{
		Temp:     25,
		Humidity: 60,
		Light:    12,
		CO2:      450,
		DLI:      20,
		EC:       crop.Prefs.EC.Mid(),
		PH:       crop.Prefs.PH.Mid(),
		DO:       8,
		Airflow:  airflowAdequate,
	}
}

// perturbFunc applies one channel's distortion to the environment.
// Each sets an absolute value, so reapplying a channel's rule is idempotent
// and the last stressor to touch a channel wins.
type perturbFunc func(env *EnvState, crop catalog.Crop, rng *rand.Rand)

// perturbations maps each affectable parameter tag to its distortion rule.
// Adding a channel is a one-line registration here.
var perturbations = map[catalog.Param]perturbFunc{
	catalog.ParamTemp: func(env *EnvState, _ catalog.Crop, _ *rand.Rand) {
		env.Temp = 35
	},
	catalog.ParamHumidity: func(env *EnvState, _ catalog.Crop, _ *rand.Rand) {
		env.Humidity = 85
	},
	catalog.ParamLight: func(env *EnvState, _ catalog.Crop, _ *rand.Rand) {
		env.Light = 20
	},
	catalog.ParamCO2: func(env *EnvState, _ catalog.Crop, _ *rand.Rand) {
		env.CO2 = 300
	},
	catalog.ParamDLI: func(env *EnvState, _ catalog.Crop, rng *rand.Rand) {
		// Lighting faults swing both ways: total darkness or photoinhibition.
		if rng.Float64() < 0.5 {
			env.DLI = 0
		} else {
			env.DLI = 45
		}
	},
	catalog.ParamEC: func(env *EnvState, crop catalog.Crop, _ *rand.Rand) {
		env.EC = crop.Prefs.EC.Max + 1
	},
	catalog.ParamPH: func(env *EnvState, crop catalog.Crop, _ *rand.Rand) {
		env.PH = crop.Prefs.PH.Max + 0.5
	},
	catalog.ParamDO: func(env *EnvState, _ catalog.Crop, _ *rand.Rand) {
		env.DO = 3
	},
	catalog.ParamAirflow: func(env *EnvState, _ catalog.Crop, _ *rand.Rand) {
		env.Airflow = airflowStagnant
	},
	catalog.ParamNutrient: func(env *EnvState, crop catalog.Crop, _ *rand.Rand) {
		env.EC = crop.Prefs.EC.Min - 0.3
	},
	catalog.ParamDisease: func(env *EnvState, _ catalog.Crop, _ *rand.Rand) {
		env.Humidity = 90
	},
	catalog.ParamSensor: func(env *EnvState, _ catalog.Crop, _ *rand.Rand) {
		env.TempErratic = true
	},
}

// apply runs the distortion rule for one parameter tag, if one is registered.
func (env *EnvState) apply(p catalog.Param, crop catalog.Crop, rng *rand.Rand) {
	if fn, ok := perturbations[p]; ok {
		fn(env, crop, rng)
	}
}

// DisplayTemp renders the temperature reading, with Fahrenheit, or the
// erratic sentinel when the sensor has failed.
func (env EnvState) DisplayTemp() string {
	if env.TempErratic {
		return ErraticReading
	}
	return fmt.Sprintf("%.0f°C (%d°F)", env.Temp, scoring.ToF(env.Temp))
}

// Readings returns the full environment as labeled display strings, in the
// order the original readout presents them.
func (env EnvState) Readings() []Reading {
	return []Reading{
		{"Temperature", env.DisplayTemp()},
		{"Humidity", fmt.Sprintf("%.0f%%", env.Humidity)},
		{"Photoperiod", fmt.Sprintf("%.0f hrs", env.Light)},
		{"CO₂", fmt.Sprintf("%.0f ppm", env.CO2)},
		{"DLI", fmt.Sprintf("%.0f mol/m²/day", env.DLI)},
		{"EC", fmt.Sprintf("%.1f mS/cm", env.EC)},
		{"pH", fmt.Sprintf("%.1f", env.PH)},
		{"Dissolved O₂", fmt.Sprintf("%.0f mg/L", env.DO)},
		{"Airflow", env.Airflow},
	}
}

// Reading is one labeled environment readout line.
type Reading struct {
	Label string
	Value string
}
