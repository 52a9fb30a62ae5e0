package advisor

import (
	"fmt"

	"github.com/evanlowell/growlab/internal/catalog"
	"github.com/evanlowell/growlab/internal/scoring"
)

// scenarioPrompt builds the full prompt for a free-text diagnostic
// scenario at the given level. The caller validates the level.
func scenarioPrompt(level int) string {
	instructions := fmt.Sprintf(`
You are a world-class controlled-environment agriculture (CEA) consultant.
Generate a **diagnostic scenario** for a player at **Level %d**: **"%s"**.

**Please include exactly these four sections, in this order, and do NOT omit any of them:**

1) Crop Type and Growing System:
- List one of the exact crops used in our simulation (choose from: Lettuce in media bed/DWC/NFT; Tomato/Cucurbit/Pepper in media bed/Kratky/rockwool-gutter; Cannabis in coco-coir pots [indoor or greenhouse + lighting]; Strawberries in troughs; Edible flowers in NFT; Microgreens in rack-with-trays).
- Be very specific (e.g., “Lettuce in an ebb-and-flow media bed,” or “Tomatoes in a Kratky bucket system”).

2) Current Environmental Conditions:
- Temperature (°C and °F in parentheses)
- Relative Humidity (%%)
- CO₂ (ppm, if relevant)
- Photoperiod or DLI (must specify “X hours light / Y hours dark” or “Z mol/m²/day”)
- EC (e.g., “1.2 mS/cm”)
- pH
- Water Temperature (°C/°F) OR Substrate Type (if media-based)
- Airflow description (e.g., “No HAF fans,” or “Light mixing from overhead vents”)

3) Observed Plant Symptoms:
- Bullet-list 2–4 symptoms (e.g., “– Interveinal chlorosis on new leaves,” etc.)
- Do NOT reveal the cause—only list what you see.

4) Your Task:
- At the end, append exactly three numbered questions, like:

  Your Task:
  1. Identify the primary suspected issue(s).
  2. Recommend corrective actions to fix the problem.
  3. Explain the underlying plant physiology or system-level rationale.

- Do not put any additional text after question 3.
- Keep the total response under 200 words.
`, level, catalog.LevelTitle(level))

	return factSheet + instructions
}

// evaluationPrompt builds the prompt that grades a player's slider
// settings and written recommendation against a scenario.
func evaluationPrompt(level int, scenarioText string, sliders scoring.Sliders, recommendation string) string {
	instructions := fmt.Sprintf(`
You are a CEA training AI. Below is the full AI-generated diagnostic scenario (including "Your Task" questions) for Level %d.
The player has now provided their slider adjustments and a written recommendation.

---- AI SCENARIO (FULL TEXT) ----
%s

---- PLAYER’S SLIDER SETTINGS ----
- Temperature: %g°C (%d°F)
- Humidity: %g%%
- Photoperiod: %g hrs
- CO₂: %g ppm
- DLI: %g mol/m²/day

---- PLAYER’S WRITTEN RECOMMENDATION ----
%s

Your task:
1. Evaluate whether the player's slider adjustments and written recommendation correctly diagnose and fix the scenario’s root cause.
2. Provide constructive feedback in bullet form:
   a) ✅ What the player got right.
   b) ❌ What they missed or partially answered.
   c) How they could improve their slider settings or their written strategy.
Keep your feedback concise (<200 words) and do NOT repeat the entire scenario—focus on their solution.
`, level, scenarioText,
		sliders.Temp, scoring.ToF(sliders.Temp),
		sliders.Humidity, sliders.Light, sliders.CO2, sliders.DLI,
		recommendation)

	return factSheet + instructions
}
