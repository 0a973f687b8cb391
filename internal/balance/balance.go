// Package balance tallies the five elements across a chart's pillars and
// hidden stems and scores how evenly they are distributed.
package balance

import (
	"math"

	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/hidden"
)

// Tally weights.
const (
	StemWeight   = 1.0
	BranchWeight = 0.8
)

// hiddenWeights is indexed by rank counted back from the Main entry.
var hiddenWeights = [3]float64{1.0, 0.5, 0.3}

// ideal is the percentage each element holds in a perfectly even chart.
const ideal = 100.0 / ganzhi.ElementCount

// Result is the outcome of Analyze.
type Result struct {
	Scores      ganzhi.PerElement[float64] `json:"scores"`
	Percentages ganzhi.PerElement[float64] `json:"percentages"`
	Dominant    ganzhi.Element             `json:"dominant"`
	Weakest     ganzhi.Element             `json:"weakest"`
	Score       float64                    `json:"balanceScore"`
}

// Analyze tallies the given pillars. Each stem adds StemWeight to its
// element, each branch BranchWeight to its own element, and each of the
// branch's hidden stems a weight by rank: Main 1.0, the next 0.5, the
// next 0.3.
func Analyze(pillars ...ganzhi.Pillar) Result {
	var scores ganzhi.PerElement[float64]
	for _, p := range pillars {
		scores[p.Stem.Element()] += StemWeight
		scores[p.Branch.Element()] += BranchWeight
		entries := hidden.Entries(p.Branch)
		for rank := range entries {
			e := entries[len(entries)-1-rank]
			scores[e.Stem.Element()] += hiddenWeights[rank]
		}
	}

	var pct ganzhi.PerElement[float64]
	if total := scores.Sum(); total > 0 {
		for _, e := range ganzhi.Elements() {
			pct[e] = scores[e] / total * 100
		}
	}
	return Result{
		Scores:      scores,
		Percentages: pct,
		Dominant:    pct.Max(),
		Weakest:     pct.Min(),
		Score:       Score(pct),
	}
}

// Score rates a percentage distribution: 100 minus twice its standard
// deviation from an even 20% split, floored at 0.
func Score(pct ganzhi.PerElement[float64]) float64 {
	var sq float64
	for _, p := range pct {
		d := p - ideal
		sq += d * d
	}
	return math.Max(0, 100-2*math.Sqrt(sq/ganzhi.ElementCount))
}
