package numberutils

import "math"

// RoundToInt rounds to the nearest integer with halves going up, so 21.5 becomes 22 and -2.5 becomes -2.
func RoundToInt(value float64) int {
	return int(math.Floor(value + 0.5))
}
