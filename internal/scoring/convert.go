package scoring

import "math"

// ToF converts Celsius to Fahrenheit, rounded to the nearest degree.
func ToF(c float64) int {
	return int(math.Round(c*9/5 + 32))
}
