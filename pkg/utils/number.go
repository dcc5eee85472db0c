package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CentsToCurrency converte centavos inteiros em valor monetário com duas
// casas decimais
func CentsToCurrency(cents int64) float64 {
	return math.Round(float64(cents)) / 100
}
