package trace

// TraceSummary aggregates statistics from a WalkTrace.
type TraceSummary struct {
	TotalSteps     int     `json:"total_steps"`
	AcceptedCount  int     `json:"accepted_count"`
	RejectedCount  int     `json:"rejected_count"`
	UphillCount    int     `json:"uphill_count"`    // accepted moves that worsened the score
	AcceptanceRate float64 `json:"acceptance_rate"` // AcceptedCount / TotalSteps
	InitialEnergy  float64 `json:"initial_energy"`  // incumbent score after the first step
	FinalEnergy    float64 `json:"final_energy"`    // incumbent score after the last step
	BestEnergy     float64 `json:"best_energy"`     // lowest incumbent score seen on the walk
	BestStep       int     `json:"best_step"`       // step index where BestEnergy was first reached
}

// Summarize computes aggregate statistics from a WalkTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(wt *WalkTrace) *TraceSummary {
	summary := &TraceSummary{}
	if wt == nil || len(wt.Steps) == 0 {
		return summary
	}

	summary.TotalSteps = len(wt.Steps)
	summary.InitialEnergy = wt.Steps[0].Energy
	summary.FinalEnergy = wt.Steps[len(wt.Steps)-1].Energy
	summary.BestEnergy = wt.Steps[0].Energy
	summary.BestStep = wt.Steps[0].Step

	for _, s := range wt.Steps {
		if s.Accepted {
			summary.AcceptedCount++
		} else {
			summary.RejectedCount++
		}
		if s.Uphill {
			summary.UphillCount++
		}
		if s.Energy < summary.BestEnergy {
			summary.BestEnergy = s.Energy
			summary.BestStep = s.Step
		}
	}
	summary.AcceptanceRate = float64(summary.AcceptedCount) / float64(summary.TotalSteps)

	return summary
}
