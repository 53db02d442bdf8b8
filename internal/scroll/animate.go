package scroll

import "math"

// Step moves current toward target by half the remaining distance, in
// whole rows, and lands on target once within a row.
func Step(current, target float64) float64 {
	d := target - current
	if math.Abs(d) <= 1 {
		return target
	}
	return current + math.Round(d/2)
}

// steps is the number of Step calls needed to travel from current to target.
func steps(current, target float64) int {
	n := 0
	for current != target {
		current = Step(current, target)
		n++
	}
	return n
}
