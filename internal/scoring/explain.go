package scoring

import (
	"fmt"

	"github.com/evanlowell/growlab/internal/catalog"
)

// Explanation is the pair of feedback sentences for one parameter: a fixed
// in-range rationale and an out-of-range consequence templated with the
// player's actual value.
type Explanation struct {
	Pos string
	Neg string // fmt template with one %g verb for the player's value
}

// Text resolves the explanation for a given outcome.
func (e Explanation) Text(inRange bool, value float64) string {
	if inRange {
		return e.Pos
	}
	return fmt.Sprintf(e.Neg, value)
}

// ExplanationSet holds the seven per-parameter explanations for one crop.
type ExplanationSet struct {
	Temp     Explanation
	Humidity Explanation
	Light    Explanation
	CO2      Explanation
	DLI      Explanation
	EC       Explanation
	PH       Explanation
}

// For returns the explanation for a core parameter.
func (s ExplanationSet) For(p catalog.Param) Explanation {
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
		return Explanation{}
	}
}

// explanationsFor returns the explanation set for a crop name, or the
// generic fallback set when no crop-specific entry exists. Total over all
// possible names.
func explanationsFor(cropName string) ExplanationSet {
	if set, ok := cropExplanations[cropName]; ok {
		return set
	}
	return genericExplanations
}

// genericExplanations serves any crop without a dedicated entry.
var genericExplanations = ExplanationSet{
	Temp: Explanation{
		Pos: "This temperature avoids heat stress while maximizing metabolic rates.",
		Neg: "Temp %g°C is off target; leaves may overheat or fail to grow.",
	},
	Humidity: Explanation{
		Pos: "This humidity prevents dehydration or fungal risk.",
		Neg: "Humidity %g%% is off; plants might dehydrate or develop mold.",
	},
	Light: Explanation{
		Pos: "This photoperiod balances energy supply without photoinhibition.",
		Neg: "Photoperiod %g hrs is off; plants might stretch or bleach.",
	},
	CO2: Explanation{
		Pos: "This CO₂ range is enough for normal photosynthesis without waste.",
		Neg: "CO₂ %g ppm is off; plants might be CO₂-limited or close stomata.",
	},
	DLI: Explanation{
		Pos: "This DLI avoids photoinhibition while fueling healthy growth.",
		Neg: "DLI %g mol/m²/day is off; plants might grow weak or bleach.",
	},
	EC: Explanation{
		Pos: "This EC avoids salt stress while supplying nutrients.",
		Neg: "EC %g mS/cm is off; roots may suffer deficiency or salt burn.",
	},
	PH: Explanation{
		Pos: "This pH maximizes nutrient availability.",
		Neg: "pH %g is off; nutrient lockouts or toxicity can occur.",
	},
}

// cropExplanations holds the crop-specific feedback content.
var cropExplanations = map[string]ExplanationSet{
	"Lettuce": {
		Temp: Explanation{
			Pos: "Cool air keeps lettuce vegetative and the heads crisp.",
			Neg: "Temp %g°C pushes lettuce toward bolting and tip burn; hold 16–22°C for crisp heads.",
		},
		Humidity: Explanation{
			Pos: "Moderate humidity keeps transpiration steady so calcium reaches the leaf tips.",
			Neg: "Humidity %g%% disrupts calcium transport to young leaves, inviting tip burn or mold.",
		},
		Light: Explanation{
			Pos: "A short photoperiod keeps lettuce from racing to flower.",
			Neg: "Photoperiod %g hrs nudges lettuce toward bolting or starves it of energy.",
		},
		CO2: Explanation{
			Pos: "Ambient-plus CO₂ is plenty for a low-light leafy crop.",
			Neg: "CO₂ %g ppm mismatches the light level; growth stalls or the gas is wasted.",
		},
		DLI: Explanation{
			Pos: "A gentle DLI grows tender leaves without scorch.",
			Neg: "DLI %g mol/m²/day makes lettuce leggy and pale or scorches the outer leaves.",
		},
		EC: Explanation{
			Pos: "Lettuce feeds lightly; a low EC avoids salt stress on shallow roots.",
			Neg: "EC %g mS/cm stresses lettuce roots; expect tip burn or pale deficient leaves.",
		},
		PH: Explanation{
			Pos: "Slightly acidic solution keeps iron and calcium available to lettuce.",
			Neg: "pH %g locks out iron or calcium; watch for chlorosis between the veins.",
		},
	},
	"Tomato": {
		Temp: Explanation{
			Pos: "Warm days in this band drive steady flowering and fruit set.",
			Neg: "Temp %g°C disrupts pollen viability and fruit set; tomatoes want 22–28°C.",
		},
		Humidity: Explanation{
			Pos: "This humidity supports transpiration without inviting fungal disease.",
			Neg: "Humidity %g%% risks cracked fruit, blossom rot, or fungal outbreaks.",
		},
		Light: Explanation{
			Pos: "Long bright days fuel both canopy and fruit load.",
			Neg: "Photoperiod %g hrs starves or exhausts the crop; fruit set suffers first.",
		},
		CO2: Explanation{
			Pos: "Moderate enrichment matches a fruiting canopy's appetite.",
			Neg: "CO₂ %g ppm limits photosynthesis or wastes enrichment on closed stomata.",
		},
		DLI: Explanation{
			Pos: "A heavy DLI is what a fruiting tomato canopy demands.",
			Neg: "DLI %g mol/m²/day leaves fruit undersized or curls and bleaches leaves.",
		},
		EC: Explanation{
			Pos: "This EC feeds heavy fruit load without locking out calcium.",
			Neg: "EC %g mS/cm causes blossom drop at the low end or nutrient lockout at the high end.",
		},
		PH: Explanation{
			Pos: "This pH window keeps calcium and micronutrients moving into fruit.",
			Neg: "pH %g drifts out of the uptake window; interveinal chlorosis and flower abortion follow.",
		},
	},
	"Cannabis": {
		Temp: Explanation{
			Pos: "Warm, steady air keeps cannabis metabolizing at full tilt.",
			Neg: "Temp %g°C stresses the canopy; trichome production and terpenes suffer.",
		},
		Humidity: Explanation{
			Pos: "Keeping humidity near 55% protects dense buds from mold.",
			Neg: "Humidity %g%% in a dense canopy is a bud-rot invitation or a VPD spike.",
		},
		Light: Explanation{
			Pos: "An 18-20 hour vegetative photoperiod maximizes growth before flip.",
			Neg: "Photoperiod %g hrs confuses the photoperiodic cycle; expect stretch or early flower.",
		},
		CO2: Explanation{
			Pos: "High CO₂ enrichment lets a high-DLI canopy actually use the light.",
			Neg: "CO₂ %g ppm bottlenecks a bright room; the extra light becomes heat stress.",
		},
		DLI: Explanation{
			Pos: "A 30-40 DLI drives dense flower production in cannabis.",
			Neg: "DLI %g mol/m²/day either stretches the plant or photo-bleaches the upper canopy.",
		},
		EC: Explanation{
			Pos: "This EC keeps nitrogen adequate without salt buildup in coco.",
			Neg: "EC %g mS/cm shows up fast as yellowing lower leaves or burned leaf edges.",
		},
		PH: Explanation{
			Pos: "A tight 5.8-6.0 pH keeps the full nutrient menu available.",
			Neg: "pH %g locks out micronutrients; cannabis shows it in the newest growth first.",
		},
	},
	"Strawberries": {
		Temp: Explanation{
			Pos: "Mild temperatures concentrate sugars and slow disease.",
			Neg: "Temp %g°C costs fruit flavor and invites soft, pale berries.",
		},
		Humidity: Explanation{
			Pos: "This humidity keeps berries firm without drying the crowns.",
			Neg: "Humidity %g%% around ripening fruit breeds gray mold or desiccates the crowns.",
		},
		Light: Explanation{
			Pos: "A moderate photoperiod balances runners, flowers, and fruit.",
			Neg: "Photoperiod %g hrs pushes the plant to runners or scorches the leaves.",
		},
		CO2: Explanation{
			Pos: "Light enrichment supports steady flowering without waste.",
			Neg: "CO₂ %g ppm slows flowering or goes unused at this light level.",
		},
		DLI: Explanation{
			Pos: "This DLI sizes berries well without bleaching the canopy.",
			Neg: "DLI %g mol/m²/day gives small berries or bleached, scorched leaves.",
		},
		EC: Explanation{
			Pos: "A fruiting-strength EC fills berries without salt stress.",
			Neg: "EC %g mS/cm undersizes the berries or burns the fine root system.",
		},
		PH: Explanation{
			Pos: "Slightly acidic solution keeps iron available for dark green leaves.",
			Neg: "pH %g costs iron uptake and fruit flavor; keep it near 6.0.",
		},
	},
}
