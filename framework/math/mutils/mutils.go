package mutils

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Clamp[T Number](x, min, max T) T {
	if x < min {
		return min
	}

	if x > max {
		return max
	}

	return x
}

func Lerp[T constraints.Float](start, end, t T) T {
	return start + (end-start)*t
}

// ReverseLerp returns the position of x between start and end, clamped to 0..1
func ReverseLerp[T constraints.Float](x, start, end T) T {
	if start == end {
		return 0
	}

	return Clamp((x-start)/(end-start), 0, 1)
}

func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

func Signum[T constraints.Signed | constraints.Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}

// DifficultyRange maps a 0..10 map setting onto min..avg..max with 5 as the midpoint
func DifficultyRange[T constraints.Float](val, max, avg, min T) T {
	if val > 5 {
		return avg + (max-avg)*(val-5)/5
	}

	if val < 5 {
		return avg - (avg-min)*(5-val)/5
	}

	return avg
}

// Logistic is a sigmoid going from 0 to maxValue, reaching half of it at midpointOffset
func Logistic(x, midpointOffset, multiplier, maxValue float64) float64 {
	return maxValue / (1 + math.Exp(multiplier*(midpointOffset-x)))
}

// Smoothstep returns 0 below start, 1 above end and a smooth curve in between
func Smoothstep(x, start, end float64) float64 {
	x = ReverseLerp(x, start, end)

	return x * x * (3 - 2*x)
}

// SmootherStep is the 2nd order variant of Smoothstep
func SmootherStep(x, start, end float64) float64 {
	x = ReverseLerp(x, start, end)

	return x * x * x * (x*(6*x-15) + 10)
}

// PowMean computes the power mean of two values
func PowMean(x, y, power float64) float64 {
	return math.Pow((math.Pow(x, power)+math.Pow(y, power))/2, 1/power)
}

// Norm computes the p-norm of the given values
func Norm(p float64, values ...float64) float64 {
	sum := 0.0

	for _, v := range values {
		sum += math.Pow(v, p)
	}

	return math.Pow(sum, 1/p)
}
