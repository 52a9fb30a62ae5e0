package catalog

// seedCrops defines the full playable crop set. Content changes here are
// checked by validateCrops at init.
func seedCrops() []Crop {
	return []Crop{
		{
			Name:   "Lettuce",
			Levels: []int{1, 2, 3},
			Prefs: Preferences{
				Temp:     Range{16, 22},
				Humidity: Range{50, 70},
				Light:    Range{8, 12},
				CO2:      Range{350, 450},
				DLI:      Range{12, 18},
				EC:       Range{0.5, 0.8},
				PH:       Range{5.5, 6.2},
			},
			Stressors: []Stressor{
				{Level: 1, Cause: "Low humidity", Affects: []Param{ParamHumidity}, Symptoms: []string{"Tip burn", "Leaf curling"}},
				{Level: 1, Cause: "Low DLI", Affects: []Param{ParamDLI}, Symptoms: []string{"Elongated internodes", "Pale leaves"}},
				{Level: 1, Cause: "EC too high", Affects: []Param{ParamEC}, Symptoms: []string{"Tip burn", "Stunted roots"}},
				{Level: 1, Cause: "pH too high", Affects: []Param{ParamPH}, Symptoms: []string{"Interveinal chlorosis", "Leaf yellowing"}},
				{Level: 2, Cause: "High temperature + High DLI", Affects: []Param{ParamTemp, ParamDLI}, Symptoms: []string{"Bolting", "Leaf scorch"}},
				{Level: 2, Cause: "EC too low + Low humidity", Affects: []Param{ParamEC, ParamHumidity}, Symptoms: []string{"Wilting", "Pale leaves"}},
				{Level: 2, Cause: "Low pH + Low dissolved oxygen", Affects: []Param{ParamPH, ParamDO}, Symptoms: []string{"Root stunting", "Curling leaf tips"}},
				{Level: 3, Cause: "High EC + High DLI under low airflow", Affects: []Param{ParamEC, ParamDLI, ParamAirflow}, Symptoms: []string{"Salt buildup spots", "Leggy yet crispy leaves"}},
				{Level: 3, Cause: "Low DLI + Low pH under high humidity", Affects: []Param{ParamDLI, ParamPH, ParamHumidity}, Symptoms: []string{"Weak stem elongation", "Mold on lower leaves"}},
			},
			Quiz: Quiz{
				Question: "Why does lettuce bolt prematurely?",
				Options:  []string{"Too much heat", "Low CO₂", "Too much humidity", "Low photoperiod"},
				Answer:   "Too much heat",
			},
		},
		{
			Name:   "Tomato",
			Levels: []int{1, 2, 3, 4},
			Prefs: Preferences{
				Temp:     Range{22, 28},
				Humidity: Range{55, 70},
				Light:    Range{12, 18},
				CO2:      Range{400, 500},
				DLI:      Range{20, 30},
				EC:       Range{0.8, 1.2},
				PH:       Range{5.8, 6.5},
			},
			Stressors: []Stressor{
				{Level: 1, Cause: "Overwatering", Affects: []Param{ParamHumidity}, Symptoms: []string{"Root rot", "Leaf yellowing"}},
				{Level: 1, Cause: "Low DLI", Affects: []Param{ParamDLI}, Symptoms: []string{"Leggy growth", "Poor fruit set"}},
				{Level: 1, Cause: "EC too low", Affects: []Param{ParamEC}, Symptoms: []string{"Blossom drop", "Pale new leaves"}},
				{Level: 1, Cause: "High pH", Affects: []Param{ParamPH}, Symptoms: []string{"Interveinal chlorosis", "Flower abortion"}},
				{Level: 2, Cause: "High temperature + Low humidity", Affects: []Param{ParamTemp, ParamHumidity}, Symptoms: []string{"Wilted tops", "Fruit cracking"}},
				{Level: 2, Cause: "Low CO₂ + Low DLI", Affects: []Param{ParamCO2, ParamDLI}, Symptoms: []string{"Slow flowering", "Yellow older leaves"}},
				{Level: 3, Cause: "High DLI under nutrient lockout (high EC)", Affects: []Param{ParamDLI, ParamEC}, Symptoms: []string{"Leaf curl edges", "Sparse fruit set"}},
				{Level: 3, Cause: "High CO₂ + Slight pH drift", Affects: []Param{ParamCO2, ParamPH}, Symptoms: []string{"Misshapen fruit", "Subtle interveinal striping"}},
				{Level: 4, Cause: "Low airflow + High DLI + High humidity", Affects: []Param{ParamAirflow, ParamDLI, ParamHumidity}, Symptoms: []string{"Early blossom rot", "Pale new leaves"}},
			},
			Quiz: Quiz{
				Question: "What causes blossom end rot in tomatoes?",
				Options:  []string{"Low calcium", "Too much sunlight", "High nitrogen", "Fungal disease"},
				Answer:   "Low calcium",
			},
		},
		{
			Name:   "Cannabis",
			Levels: []int{2, 3, 4, 5, 6},
			Prefs: Preferences{
				Temp:     Range{22, 28},
				Humidity: Range{50, 60},
				Light:    Range{18, 20},
				CO2:      Range{600, 800},
				DLI:      Range{30, 40},
				EC:       Range{1.0, 1.2},
				PH:       Range{5.8, 6.0},
			},
			Stressors: []Stressor{
				{Level: 2, Cause: "Nitrogen deficiency", Affects: []Param{ParamNutrient}, Symptoms: []string{"Yellow lower leaves", "Stunted growth"}},
				{Level: 2, Cause: "Low DLI", Affects: []Param{ParamDLI}, Symptoms: []string{"Slow veg growth", "Stretching"}},
				{Level: 3, Cause: "Low CO₂ + High DLI", Affects: []Param{ParamCO2, ParamDLI}, Symptoms: []string{"Leaf burn", "Sparse trichomes"}},
				{Level: 3, Cause: "High humidity + Slight pH drift", Affects: []Param{ParamHumidity, ParamPH}, Symptoms: []string{"Mold spots", "Leaf tip burn"}},
				{Level: 4, Cause: "High DLI + High EC under low airflow", Affects: []Param{ParamDLI, ParamEC, ParamAirflow}, Symptoms: []string{"Leaf edge burn", "Leaf curl in canopy"}},
				{Level: 5, Cause: "Low pH + Low dissolved oxygen", Affects: []Param{ParamPH, ParamDO}, Symptoms: []string{"Root rot smell", "Drooping leaves"}},
				{Level: 5, Cause: "High DLI + Low nitrogen", Affects: []Param{ParamDLI, ParamNutrient}, Symptoms: []string{"Yellowing interveinal", "Weak bud set"}},
				{Level: 6, Cause: "Sensor failure + Random pH swings", Affects: []Param{ParamSensor, ParamPH}, Symptoms: []string{"Wild parameter readings", "Uneven canopy growth"}},
				{Level: 6, Cause: "Extreme DLI variance (lighting fault) + High CO₂", Affects: []Param{ParamDLI, ParamCO2}, Symptoms: []string{"Growth stops intermittently", "Heat stress patterns"}},
			},
			Quiz: Quiz{
				Question: "What is the ideal flowering photoperiod for cannabis?",
				Options:  []string{"12/12", "18/6", "20/4", "6/18"},
				Answer:   "12/12",
			},
		},
		{
			Name:   "Strawberries",
			Levels: []int{3, 4},
			Prefs: Preferences{
				Temp:     Range{18, 24},
				Humidity: Range{60, 75},
				Light:    Range{10, 16},
				CO2:      Range{400, 500},
				DLI:      Range{15, 25},
				EC:       Range{1.2, 1.6},
				PH:       Range{5.8, 6.2},
			},
			Stressors: []Stressor{
				{Level: 3, Cause: "Fungal disease + High humidity", Affects: []Param{ParamDisease, ParamHumidity}, Symptoms: []string{"Gray mold", "Soft fruit"}},
				{Level: 3, Cause: "Low DLI + Slight nutrient stress", Affects: []Param{ParamDLI, ParamNutrient}, Symptoms: []string{"Small berries", "Slow flowering"}},
				{Level: 4, Cause: "High photoperiod + High DLI", Affects: []Param{ParamLight, ParamDLI}, Symptoms: []string{"Leaf scorch", "Leaf bleaching"}},
				{Level: 4, Cause: "Low pH + High DLI", Affects: []Param{ParamPH, ParamDLI}, Symptoms: []string{"Poor fruit flavor", "Yellowing leaves"}},
			},
			Quiz: Quiz{
				Question: "What pest often affects strawberries?",
				Options:  []string{"Spider mites", "Aphids", "Thrips", "All of the above"},
				Answer:   "All of the above",
			},
		},
	}
}

func init() {
	crops := seedCrops()
	if err := validateCrops(crops); err != nil {
		panic(err)
	}
	allCrops = crops
}
