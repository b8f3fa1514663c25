package solver

import (
	"fmt"
	"sort"
)

// minKeepLimit is the floor on population truncation: assembly never cuts
// the deduplicated population below this many rows even for small runs.
const minKeepLimit = 600

// ScoredScenario is one row of a generated population: a mix, its derived
// metrics, and the composite score under the run's weights.
type ScoredScenario struct {
	MixMetrics
	Score float64 `json:"score"`
}

// Population is a collection of scored scenarios. After generation it is
// sorted ascending by score, so index 0 is the recommended mix.
type Population []ScoredScenario

// Top returns the n best rows (fewer if the population is smaller).
// The result shares backing storage with the population.
func (p Population) Top(n int) Population {
	if n > len(p) {
		n = len(p)
	}
	return p[:n]
}

// FieldKey names a numeric column of a ScoredScenario. Used for Pareto
// objectives and artifact columns.
type FieldKey string

const (
	FieldFT        FieldKey = "ft"
	FieldPT        FieldKey = "pt"
	FieldCT        FieldKey = "ct"
	FieldFTE       FieldKey = "fte"
	FieldCost      FieldKey = "cost"
	FieldRisk      FieldKey = "risk"
	FieldRetention FieldKey = "retention"
	FieldPenalty   FieldKey = "penalty"
	FieldScore     FieldKey = "score"
)

// validFieldKeys maps recognized field names.
var validFieldKeys = map[FieldKey]bool{
	FieldFT: true, FieldPT: true, FieldCT: true, FieldFTE: true,
	FieldCost: true, FieldRisk: true, FieldRetention: true,
	FieldPenalty: true, FieldScore: true,
}

// ParseFieldKey validates a field name from user input.
func ParseFieldKey(name string) (FieldKey, error) {
	key := FieldKey(name)
	if !validFieldKeys[key] {
		return "", fmt.Errorf("unknown field %q; valid: ft, pt, ct, fte, cost, risk, retention, penalty, score", name)
	}
	return key, nil
}

// Field returns the named numeric column of the row.
// Panics on unrecognized keys; parse user input with ParseFieldKey first.
func (s ScoredScenario) Field(key FieldKey) float64 {
	switch key {
	case FieldFT:
		return float64(s.FT)
	case FieldPT:
		return float64(s.PT)
	case FieldCT:
		return float64(s.CT)
	case FieldFTE:
		return s.FTE
	case FieldCost:
		return s.Cost
	case FieldRisk:
		return s.Risk
	case FieldRetention:
		return s.Retention
	case FieldPenalty:
		return s.Penalty
	case FieldScore:
		return s.Score
	}
	panic(fmt.Sprintf("unknown field key %q", key))
}

// dedupeByMix keeps one row per (ft, pt, ct) coordinate, preferring the
// lowest-scoring occurrence and keeping the first on exact ties. Survivor
// order follows first appearance.
func dedupeByMix(rows []ScoredScenario) []ScoredScenario {
	index := make(map[Mix]int, len(rows))
	out := make([]ScoredScenario, 0, len(rows))
	for _, row := range rows {
		if at, ok := index[row.Mix]; ok {
			if row.Score < out[at].Score {
				out[at] = row
			}
			continue
		}
		index[row.Mix] = len(out)
		out = append(out, row)
	}
	return out
}

// sortByScore orders rows ascending by score. The sort is stable so rows
// with equal scores keep their pre-sort relative order, which keeps the
// whole pipeline deterministic.
func sortByScore(rows []ScoredScenario) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score < rows[j].Score
	})
}

// assemblePopulation runs the post-generation pipeline: dedupe, stable
// score sort, then truncate to max(sampleCount, minKeepLimit) rows.
func assemblePopulation(rows []ScoredScenario, sampleCount int) Population {
	unique := dedupeByMix(rows)
	sortByScore(unique)
	limit := max(sampleCount, minKeepLimit)
	if len(unique) > limit {
		unique = unique[:limit]
	}
	return Population(unique)
}
