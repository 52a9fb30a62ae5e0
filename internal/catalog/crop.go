package catalog

// Param identifies an environment channel or a meta-tag that a stressor
// can perturb.
type Param string

const (
	// The seven core parameters the player controls with sliders.
	ParamTemp     Param = "temp"     // air temperature, °C
	ParamHumidity Param = "humidity" // relative humidity, %
	ParamLight    Param = "light"    // photoperiod, hours per day
	ParamCO2      Param = "co2"      // CO₂ concentration, ppm
	ParamDLI      Param = "dli"      // daily light integral, mol/m²/day
	ParamEC       Param = "ec"       // nutrient solution conductivity, mS/cm
	ParamPH       Param = "ph"       // nutrient solution pH

	// Two extra perturbable channels not exposed as sliders.
	ParamDO      Param = "do"      // dissolved oxygen, mg/L
	ParamAirflow Param = "airflow" // airflow quality, descriptive

	// Meta-tags that map onto core channels when applied.
	ParamNutrient Param = "nutrient" // nutrient deficiency → lowers ec
	ParamDisease  Param = "disease"  // disease pressure → raises humidity
	ParamSensor   Param = "sensor"   // sensor fault → erratic temp readings
)

// CoreParams returns the seven slider-controlled parameters in display order.
func CoreParams() []Param {
	return []Param{
		ParamTemp,
		ParamHumidity,
		ParamLight,
		ParamCO2,
		ParamDLI,
		ParamEC,
		ParamPH,
	}
}

// DisplayName returns a human-readable name for a parameter.
func (p Param) DisplayName() string {
	switch p {
	case ParamTemp:
		return "Temperature"
	case ParamHumidity:
		return "Humidity"
	case ParamLight:
		return "Photoperiod"
	case ParamCO2:
		return "CO₂"
	case ParamDLI:
		return "DLI"
	case ParamEC:
		return "EC"
	case ParamPH:
		return "pH"
	case ParamDO:
		return "Dissolved O₂"
	case ParamAirflow:
		return "Airflow"
	default:
		return string(p)
	}
}

// Unit returns the display unit suffix for a parameter. Empty for
// unitless or descriptive channels.
func (p Param) Unit() string {
	switch p {
	case ParamTemp:
		return "°C"
	case ParamHumidity:
		return "%"
	case ParamLight:
		return " hrs"
	case ParamCO2:
		return " ppm"
	case ParamDLI:
		return " mol/m²/day"
	case ParamEC:
		return " mS/cm"
	case ParamDO:
		return " mg/L"
	default:
		return ""
	}
}

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range, inclusive at both ends.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Preferences holds a crop's optimal range for each core parameter.
type Preferences struct {
	Temp     Range
	Humidity Range
	Light    Range
	CO2      Range
	DLI      Range
	EC       Range
	PH       Range
}

// For returns the preference range for a core parameter.
func (p Preferences) For(param Param) Range {
	switch param {
	case ParamTemp:
		return p.Temp
	case ParamHumidity:
		return p.Humidity
	case ParamLight:
		return p.Light
	case ParamCO2:
		return p.CO2
	case ParamDLI:
		return p.DLI
	case ParamEC:
		return p.EC
	case ParamPH:
		return p.PH
	default:
		return Range{}
	}
}

// Stressor is a named environmental deviation defined for one crop at one
// difficulty level. Applying it perturbs the affected channels and surfaces
// the listed symptoms.
type Stressor struct {
	Level    int
	Cause    string
	Affects  []Param
	Symptoms []string
}

// Quiz is a single trivia question attached to a crop. Shown for flavor;
// not part of scoring.
type Quiz struct {
	Question string
	Options  []string
	Answer   string
}

// Crop is the static definition of one playable crop.
type Crop struct {
	Name      string
	Levels    []int
	Prefs     Preferences
	Stressors []Stressor
	Quiz      Quiz
}

// AllowedAt reports whether the crop may appear at the given level.
func (c Crop) AllowedAt(level int) bool {
	for _, l := range c.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// StressorsAt returns the crop's stressors defined at the given level,
// in declaration order.
func (c Crop) StressorsAt(level int) []Stressor {
	var out []Stressor
	for _, s := range c.Stressors {
		if s.Level == level {
			out = append(out, s)
		}
	}
	return out
}

// StressorByCause returns the crop's stressor with the given cause label.
func (c Crop) StressorByCause(cause string) (Stressor, bool) {
	for _, s := range c.Stressors {
		if s.Cause == cause {
			return s, true
		}
	}
	return Stressor{}, false
}

// CauseLabels returns the distinct cause labels of all the crop's
// stressors, in declaration order.
func (c Crop) CauseLabels() []string {
	seen := make(map[string]bool, len(c.Stressors))
	var out []string
	for _, s := range c.Stressors {
		if !seen[s.Cause] {
			seen[s.Cause] = true
			out = append(out, s.Cause)
		}
	}
	return out
}
