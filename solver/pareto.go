package solver

// ParetoFront returns the Pareto-efficient subset of the population under
// the given objectives: the rows no other row dominates, in their input
// order. Minimize keys count lower-is-better, maximize keys the reverse.
// Rows with identical objective vectors never dominate each other, so
// exact ties all survive; with no objectives at all, every row survives.
// O(n^2) dominance check, fine for generated population sizes.
func ParetoFront(pop Population, minimize, maximize []FieldKey) Population {
	if len(pop) <= 1 {
		return pop
	}

	// Project rows onto a minimize-only objective matrix; maximize keys
	// are negated so dominance reads one way for every component.
	vectors := make([][]float64, len(pop))
	for i, row := range pop {
		vec := make([]float64, 0, len(minimize)+len(maximize))
		for _, key := range minimize {
			vec = append(vec, row.Field(key))
		}
		for _, key := range maximize {
			vec = append(vec, -row.Field(key))
		}
		vectors[i] = vec
	}

	front := make(Population, 0, len(pop))
	for i := range pop {
		dominated := false
		for j := range pop {
			if i == j {
				continue
			}
			if dominates(vectors[j], vectors[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, pop[i])
		}
	}
	return front
}

// dominates returns true if a dominates b: a <= b on every component and
// a < b on at least one. Both vectors are minimize-oriented.
func dominates(a, b []float64) bool {
	strict := false
	for k := range a {
		if a[k] > b[k] {
			return false
		}
		if a[k] < b[k] {
			strict = true
		}
	}
	return strict
}
