// Package strain holds the parts of the strain algorithm every ruleset revision agrees on.
// Constants stay in the revision packages.
package strain

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// DecayFactor returns how much strain is kept after ms milliseconds
func DecayFactor[T constraints.Float](base, ms T) T {
	return T(math.Pow(float64(base), float64(ms)/1000))
}

// SortDescending sorts peaks in place, highest first
func SortDescending[T constraints.Float](peaks []T) {
	slices.SortFunc(peaks, func(a, b T) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}

		return 0
	})
}

// WeightedSum sorts a copy of peaks descending and sums peak[i] * decayWeight^i
func WeightedSum[T constraints.Float](peaks []T, decayWeight T) T {
	sorted := slices.Clone(peaks)
	SortDescending(sorted)

	var difficulty T
	weight := T(1)

	for _, peak := range sorted {
		difficulty += peak * weight
		weight *= decayWeight
	}

	return difficulty
}

// RetainPositive drops non-positive peaks, keeping order
func RetainPositive[T constraints.Float](peaks []T) []T {
	return slices.DeleteFunc(peaks, func(p T) bool { return p <= 0 })
}
