// Package trace provides step-trace recording for annealing-walk analysis.
// This package has no dependencies on solver/ and stores pure data types.
package trace

// StepRecord captures a single annealing step decision.
type StepRecord struct {
	Step          int
	Temperature   float64
	ProposalFT    int
	ProposalPT    int
	ProposalCT    int
	ProposalScore float64
	CurrentScore  float64 // incumbent score before the decision
	Accepted      bool
	Uphill        bool    // accepted although ProposalScore > CurrentScore
	Energy        float64 // incumbent score after the decision
}
