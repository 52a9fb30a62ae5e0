// Package catalog holds the static crop and stressor reference data that
// drives scenario generation. The content is defined once in seed.go and
// validated at init; there are no mutation operations.
package catalog

// MinLevel and MaxLevel bound the difficulty scale.
const (
	MinLevel = 1
	MaxLevel = 6
)

// allCrops is set by init() in seed.go after validation.
var allCrops []Crop

// levelTitles are the player rank names for levels 1-6.
var levelTitles = [MaxLevel]string{
	"Seedling Scout",
	"Vegetative Voyager",
	"Budding Specialist",
	"Fruit & Flower Strategist",
	"Yield Champion",
	"Greenhouse Grandmaster",
}

// Crops returns all crop definitions in declaration order.
func Crops() []Crop {
	out := make([]Crop, len(allCrops))
	copy(out, allCrops)
	return out
}

// CropsAtLevel returns the crops eligible at the given difficulty level.
func CropsAtLevel(level int) []Crop {
	var out []Crop
	for _, c := range allCrops {
		if c.AllowedAt(level) {
			out = append(out, c)
		}
	}
	return out
}

// CropByName looks up a crop by exact name.
func CropByName(name string) (Crop, bool) {
	for _, c := range allCrops {
		if c.Name == name {
			return c, true
		}
	}
	return Crop{}, false
}

// ValidLevel reports whether level is within the 1-6 difficulty scale.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// LevelTitle returns the rank name for a level, e.g. 1 → "Seedling Scout".
// Out-of-range levels return an empty string.
func LevelTitle(level int) string {
	if !ValidLevel(level) {
		return ""
	}
	return levelTitles[level-1]
}
