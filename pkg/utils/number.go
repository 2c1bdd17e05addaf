package utils

import "math"

// RoundWithTwoDecimalPlace redondea a dos decimales los promedios y márgenes
// que se exponen en las respuestas.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
