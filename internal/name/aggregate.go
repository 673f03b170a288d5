package name

import "strings"

// Aggregate reduces a non-empty score pool to a single score.
type Aggregate func(scores []int) int

// Max returns the highest score.
func Max(scores []int) int {
	best := scores[0]
	for _, s := range scores[1:] {
		best = max(best, s)
	}
	return best
}

// Min returns the lowest score.
func Min(scores []int) int {
	worst := scores[0]
	for _, s := range scores[1:] {
		worst = min(worst, s)
	}
	return worst
}

// Mean returns the integer mean, rounded down.
func Mean(scores []int) int {
	total := 0
	for _, s := range scores {
		total += s
	}
	return total / len(scores)
}

var aggregates = map[string]Aggregate{
	"max":  Max,
	"mean": Mean,
	"min":  Min,
}

// AggregateByName resolves "max", "mean", or "min" (case-insensitive).
func AggregateByName(name string) (Aggregate, bool) {
	agg, ok := aggregates[strings.ToLower(strings.TrimSpace(name))]
	return agg, ok
}

// AggregateNames lists the names accepted by AggregateByName.
func AggregateNames() []string {
	return []string{"max", "mean", "min"}
}
