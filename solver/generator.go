package solver

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/workforce-sim/workforce-sim/solver/trace"
)

// EnergyTrace is the ordered sequence of incumbent scores after each
// annealing step. Sampling contributes nothing to it, and assembly never
// rewrites it.
type EnergyTrace []float64

// Phase sizing. Draw and step counts derive from the requested sample
// count but never fall below fixed floors, so small runs still explore.
const (
	sprayFraction = 0.50
	minSprayDraws = 200
	walkFraction  = 0.35
	minWalkSteps  = 400
)

// Start-mix shares: the annealing walk begins at the conventional
// 60/25/15 split of the headcount target.
const (
	startShareFT = 0.60
	startSharePT = 0.25
	startShareCT = 0.15
)

// Generator produces one scored scenario population from fixed parameters.
// Construct with NewGenerator, optionally attach a Walk, then call Run.
// A Generator is single-use: Run consumes its random streams, so a fresh
// Generator with the same (params, sampleCount, seed) is what reproduces
// a run bit-for-bit.
type Generator struct {
	params      Parameters
	sampleCount int
	rng         *PartitionedRNG
	schedule    Schedule

	// Walk, when non-nil with level "steps", records every annealing
	// step decision. Left nil by default: recording costs memory and
	// most callers only want the energy trace.
	Walk *trace.WalkTrace
}

// NewGenerator creates a Generator for one run.
func NewGenerator(params Parameters, sampleCount int, seed int64) *Generator {
	return &Generator{
		params:      params,
		sampleCount: sampleCount,
		rng:         NewPartitionedRNG(NewRunKey(seed)),
		schedule:    DefaultSchedule(),
	}
}

// Generate runs one complete generation without step recording.
// Deterministic given identical params, sampleCount, and seed.
func Generate(params Parameters, sampleCount int, seed int64) (Population, ScoredScenario, EnergyTrace) {
	return NewGenerator(params, sampleCount, seed).Run()
}

// Run executes the sampling and annealing phases and assembles the
// population. Returns the score-sorted population, the best row, and the
// annealing energy trace.
func (g *Generator) Run() (Population, ScoredScenario, EnergyTrace) {
	rows := g.spray()
	walked, energies := g.walk()
	rows = append(rows, walked...)

	pop := assemblePopulation(rows, g.sampleCount)

	// The sampling floor guarantees a non-empty population.
	best := pop[0]
	return pop, best, energies
}

// scored evaluates and scores a mix under the run's parameters.
func (g *Generator) scored(mix Mix) ScoredScenario {
	metrics := Evaluate(mix, g.params)
	return ScoredScenario{
		MixMetrics: metrics,
		Score:      Score(metrics, g.params.Weights),
	}
}

// spray is the diversity phase: independent uniform draws across the full
// mix space so assembly and the Pareto filter see extreme corners the
// local walk would never visit.
func (g *Generator) spray() []ScoredScenario {
	rng := g.rng.ForSubsystem(SubsystemSampling)
	draws := max(minSprayDraws, int(math.Round(sprayFraction*float64(g.sampleCount))))
	// Coordinates range over [0, 2*target]; the bound floors at zero so a
	// non-positive target degrades to the all-zero mix without erroring.
	bound := max(0, 2*g.params.TargetTotal)

	logrus.Debugf("sampling phase: %d draws, coordinate bound %d", draws, bound)

	rows := make([]ScoredScenario, 0, draws)
	for i := 0; i < draws; i++ {
		mix := Mix{
			FT: rng.Intn(bound + 1),
			PT: rng.Intn(bound + 1),
			CT: rng.Intn(bound + 1),
		}
		rows = append(rows, g.scored(mix))
	}
	return rows
}

// startMix returns the heuristic seed mix for the annealing walk.
func startMix(target int) Mix {
	t := float64(target)
	return Mix{
		FT: int(math.Round(startShareFT * t)),
		PT: int(math.Round(startSharePT * t)),
		CT: max(0, int(math.Round(startShareCT*t))),
	}
}

// walk is the refinement phase: a simulated-annealing walk from the seed
// mix. Every step appends the post-decision incumbent, so rejected
// proposals re-record the unchanged row; the energy trace reflects the
// walk's position, not proposal attempts.
func (g *Generator) walk() ([]ScoredScenario, EnergyTrace) {
	rng := g.rng.ForSubsystem(SubsystemAnnealing)
	steps := max(minWalkSteps, int(math.Round(walkFraction*float64(g.sampleCount))))
	target := g.params.TargetTotal

	current := g.scored(startMix(target))
	logrus.Debugf("annealing phase: %d steps from mix (%d/%d/%d)", steps, current.FT, current.PT, current.CT)

	recording := g.Walk != nil && g.Walk.Config.Level == trace.TraceLevelSteps

	rows := make([]ScoredScenario, 0, steps)
	energies := make(EnergyTrace, 0, steps)
	for i := 0; i < steps; i++ {
		t := g.schedule.At(i, steps)
		proposal := g.scored(proposeNeighbor(rng, current.Mix, target))
		incumbent := current.Score

		accepted := metropolisAccept(rng, incumbent, proposal.Score, t)
		if accepted {
			current = proposal
		}

		rows = append(rows, current)
		energies = append(energies, current.Score)

		if recording {
			g.Walk.RecordStep(trace.StepRecord{
				Step:          i,
				Temperature:   t,
				ProposalFT:    proposal.FT,
				ProposalPT:    proposal.PT,
				ProposalCT:    proposal.CT,
				ProposalScore: proposal.Score,
				CurrentScore:  incumbent,
				Accepted:      accepted,
				Uphill:        accepted && proposal.Score > incumbent,
				Energy:        current.Score,
			})
		}
	}
	return rows, energies
}
