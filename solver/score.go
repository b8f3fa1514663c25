package solver

const (
	// costScale converts absolute currency cost into score units (millions).
	costScale = 1e6
	// penaltyScale converts the raw deviation penalty into score units.
	penaltyScale = 100
)

// Weights are the relative priorities blended into a scenario score.
// Zero is legal for any weight and removes that term; the penalty term
// is not weighted and always applies.
type Weights struct {
	Cost      float64 `yaml:"cost" json:"cost"`
	Risk      float64 `yaml:"risk" json:"risk"`
	Retention float64 `yaml:"retention" json:"retention"`
}

// Score collapses a metric record into a single comparable value.
// Lower is better. Cost enters in millions and penalty divided by 100
// so all terms land on comparable magnitudes; retention is subtracted
// because more retention is better.
//
// Formula: w.cost*(cost/1e6) + w.risk*risk - w.retention*retention + penalty/100
func Score(m MixMetrics, w Weights) float64 {
	return w.Cost*(m.Cost/costScale) +
		w.Risk*m.Risk -
		w.Retention*m.Retention +
		m.Penalty/penaltyScale
}
