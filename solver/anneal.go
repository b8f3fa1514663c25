package solver

import (
	"math"
	"math/rand"
)

const (
	initialTemperature = 2.0
	minTemperature     = 0.05
	// temperatureFloor guards the Metropolis divisor against a zero schedule.
	temperatureFloor = 1e-9
)

// Neighbor proposal spans: full-time and contractor counts move up to
// six heads per step, part-time up to ten (part-time staffing churns in
// larger increments).
const (
	offsetSpanFT = 6
	offsetSpanPT = 10
	offsetSpanCT = 6
)

// Schedule is a linear cooling schedule floored at a minimum temperature.
type Schedule struct {
	Initial float64
	Min     float64
}

// DefaultSchedule returns the standard cooling schedule for annealing walks.
func DefaultSchedule() Schedule {
	return Schedule{Initial: initialTemperature, Min: minTemperature}
}

// At returns the temperature for step i of a walk with totalSteps steps.
// Formula: max(Min, Initial * (1 - i/totalSteps))
func (s Schedule) At(i, totalSteps int) float64 {
	return math.Max(s.Min, s.Initial*(1-float64(i)/float64(totalSteps)))
}

// uniformOffset draws a uniform integer in [-span, span].
func uniformOffset(rng *rand.Rand, span int) int {
	return rng.Intn(2*span+1) - span
}

// proposeNeighbor perturbs each coordinate of cur by an independent uniform
// offset and clamps the result into [0, 3*target]. The upper bound floors
// at zero so a non-positive target pins proposals to the origin instead of
// producing negative headcounts.
func proposeNeighbor(rng *rand.Rand, cur Mix, target int) Mix {
	hi := max(0, 3*target)
	return Mix{
		FT: min(max(cur.FT+uniformOffset(rng, offsetSpanFT), 0), hi),
		PT: min(max(cur.PT+uniformOffset(rng, offsetSpanPT), 0), hi),
		CT: min(max(cur.CT+uniformOffset(rng, offsetSpanCT), 0), hi),
	}
}

// metropolisAccept decides whether a candidate score replaces the incumbent
// at temperature t. Strictly better candidates always pass; worse or equal
// ones pass with probability exp(-(candidate-current)/max(t, floor)), so an
// equal-score candidate always passes too (exp(0) = 1).
func metropolisAccept(rng *rand.Rand, current, candidate, t float64) bool {
	if candidate < current {
		return true
	}
	return rng.Float64() < math.Exp(-(candidate-current)/math.Max(t, temperatureFloor))
}
