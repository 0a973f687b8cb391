// Package energy computes the energy score: every stem present in the
// year, month and day pillars (their own stems plus the branches' energy
// candidates) is scored against the three branches and weighted by how
// often it occurs.
package energy

import (
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/hidden"
)

// points is indexed [stem][branch], branches from 子. Each row is a
// permutation of 1-12. 戊 shares 丙's row and 己 shares 丁's.
var points = [ganzhi.StemCount][ganzhi.BranchCount]int{
	{7, 10, 11, 12, 8, 4, 2, 5, 1, 3, 6, 9},  // 甲
	{4, 8, 12, 11, 10, 7, 9, 6, 3, 1, 5, 2},  // 乙
	{3, 6, 9, 7, 10, 11, 12, 8, 4, 2, 5, 1},  // 丙
	{1, 5, 2, 4, 8, 12, 11, 10, 7, 9, 6, 3},  // 丁
	{3, 6, 9, 7, 10, 11, 12, 8, 4, 2, 5, 1},  // 戊
	{1, 5, 2, 4, 8, 12, 11, 10, 7, 9, 6, 3},  // 己
	{2, 5, 1, 3, 6, 9, 7, 10, 11, 12, 8, 4},  // 庚
	{9, 6, 3, 1, 5, 2, 4, 8, 12, 11, 10, 7},  // 辛
	{12, 8, 4, 2, 5, 1, 3, 6, 9, 7, 10, 11},  // 壬
	{11, 10, 7, 9, 6, 3, 1, 5, 2, 4, 8, 12},  // 癸
}

// Points returns the energy a stem draws from a branch.
func Points(s ganzhi.Stem, b ganzhi.Branch) int {
	return points[s.Index()][b.Index()]
}

// StemScore is one distinct stem's contribution.
type StemScore struct {
	Stem  ganzhi.Stem `json:"stem"`
	Count int         `json:"count"`
	Base  int         `json:"base"`
	Score int         `json:"score"`
}

// Result is the outcome of Analyze.
type Result struct {
	Total          int                    `json:"totalEnergy"`
	PerElement     ganzhi.PerElement[int] `json:"perElement"`
	Stems          []StemScore            `json:"stems"`
	Directions     Directions             `json:"directions"`
	Directionality string                 `json:"directionalityType"`
}

// Analyze scores the year, month and day pillars. The hour pillar takes no
// part by convention.
func Analyze(year, month, day ganzhi.Pillar) Result {
	pillars := [3]ganzhi.Pillar{year, month, day}

	var counts [ganzhi.StemCount]int
	for _, p := range pillars {
		counts[p.Stem.Index()]++
		for _, s := range hidden.EnergyCandidates(p.Branch) {
			counts[s.Index()]++
		}
	}

	var r Result
	for i, n := range counts {
		if n == 0 {
			continue
		}
		s := ganzhi.NewStem(i)
		base := 0
		for _, p := range pillars {
			base += Points(s, p.Branch)
		}
		score := base * n
		r.Stems = append(r.Stems, StemScore{Stem: s, Count: n, Base: base, Score: score})
		r.PerElement[s.Element()] += score
	}
	r.Total = r.PerElement.Sum()
	r.Directions = Classify(r.PerElement, day.Stem.Element())
	r.Directionality = r.Directions.Type()
	return r
}
