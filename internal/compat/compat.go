// Package compat scores how well two charts suit each other.
//
// The comparison is directional: person A is always the first argument,
// and the day-stem sub-score reads the element relation from A to B.
package compat

import (
	"fmt"
	"math"

	"github.com/papapumpkin/meishiki/internal/calendar"
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/relation"
)

// Rating buckets the final score.
type Rating string

// Ratings from best to worst.
const (
	Excellent    Rating = "excellent"
	Good         Rating = "good"
	Normal       Rating = "normal"
	Poor         Rating = "poor"
	Incompatible Rating = "incompatible"
)

// RatingFor maps a 0-100 score to its rating.
func RatingFor(score int) Rating {
	switch {
	case score >= 90:
		return Excellent
	case score >= 70:
		return Good
	case score >= 50:
		return Normal
	case score >= 30:
		return Poor
	default:
		return Incompatible
	}
}

// dayStemPoints is keyed by the relation from A's day element to B's.
var dayStemPoints = map[relation.Relation]int{
	relation.Same:         20,
	relation.Generates:    30,
	relation.GeneratedBy:  25,
	relation.Controls:     5,
	relation.ControlledBy: 10,
}

// Sub-score points.
const (
	combinationPoints = 20
	partnershipPoints = 25
	clashPoints       = 0
	neutralPoints     = 10
	yearStemPoints    = 10
	yearBranchPoints  = 5
)

// SubScores itemises Result.Score.
type SubScores struct {
	DayStem     int `json:"dayStem"`
	Combination int `json:"stemCombination"`
	DayBranch   int `json:"dayBranch"`
	YearHarmony int `json:"yearHarmony"`
	Diversity   int `json:"diversity"`
}

// Sum adds the sub-scores.
func (s SubScores) Sum() int {
	return s.DayStem + s.Combination + s.DayBranch + s.YearHarmony + s.Diversity
}

// Result is the outcome of Compare.
type Result struct {
	Score        int       `json:"score"`
	Rating       Rating    `json:"rating"`
	SubScores    SubScores `json:"subscores"`
	Explanations []string  `json:"explanations"`
}

// Compare scores chart a against chart b. Only the year, month and day
// pillars take part.
func Compare(a, b calendar.FourPillars) Result {
	var s SubScores
	var notes []string

	rel := relation.Between(a.Day.Stem.Element(), b.Day.Stem.Element())
	s.DayStem = dayStemPoints[rel]
	notes = append(notes, dayStemNote(rel, a.Day.Stem, b.Day.Stem))

	if m := relation.StemCombination(a.Day.Stem, b.Day.Stem); m.Matched {
		s.Combination = combinationPoints
		notes = append(notes, fmt.Sprintf("日干%s%sが干合し、%sの気を生む", a.Day.Stem, b.Day.Stem, m.Element.Kanji()))
	}

	switch {
	case relation.BranchPartnership(a.Day.Branch, b.Day.Branch).Matched:
		s.DayBranch = partnershipPoints
		notes = append(notes, fmt.Sprintf("日支%s%sが支合する", a.Day.Branch, b.Day.Branch))
	case relation.BranchClash(a.Day.Branch, b.Day.Branch):
		s.DayBranch = clashPoints
		notes = append(notes, fmt.Sprintf("日支%s%sが対冲する", a.Day.Branch, b.Day.Branch))
	default:
		s.DayBranch = neutralPoints
		notes = append(notes, "日支に支合も冲もない")
	}

	if relation.StemCombination(a.Year.Stem, b.Year.Stem).Matched {
		s.YearHarmony += yearStemPoints
		notes = append(notes, fmt.Sprintf("年干%s%sが干合する", a.Year.Stem, b.Year.Stem))
	}
	if relation.BranchPartnership(a.Year.Branch, b.Year.Branch).Matched {
		s.YearHarmony += yearBranchPoints
		notes = append(notes, fmt.Sprintf("年支%s%sが支合する", a.Year.Branch, b.Year.Branch))
	}

	da, db := diversity(a), diversity(b)
	s.Diversity = diversityPoints(da, db)
	notes = append(notes, fmt.Sprintf("五行の種類はAが%d、Bが%d", da, db))

	score := int(math.Round(math.Max(0, math.Min(100, float64(s.Sum())))))
	return Result{
		Score:        score,
		Rating:       RatingFor(score),
		SubScores:    s,
		Explanations: notes,
	}
}

func dayStemNote(rel relation.Relation, a, b ganzhi.Stem) string {
	ea, eb := a.Element().Kanji(), b.Element().Kanji()
	switch rel {
	case relation.Same:
		return fmt.Sprintf("日干%sと%sは同じ%sの気", a, b, ea)
	case relation.Generates:
		return fmt.Sprintf("Aの%s(%s)がBの%s(%s)を生じる", a, ea, b, eb)
	case relation.GeneratedBy:
		return fmt.Sprintf("Aの%s(%s)はBの%s(%s)から生じられる", a, ea, b, eb)
	case relation.Controls:
		return fmt.Sprintf("Aの%s(%s)がBの%s(%s)を剋す", a, ea, b, eb)
	default:
		return fmt.Sprintf("Aの%s(%s)はBの%s(%s)から剋される", a, ea, b, eb)
	}
}

// diversity counts the distinct elements among the year, month and day
// stems and branches.
func diversity(p calendar.FourPillars) int {
	var seen [ganzhi.ElementCount]bool
	n := 0
	for _, pl := range []ganzhi.Pillar{p.Year, p.Month, p.Day} {
		for _, e := range []ganzhi.Element{pl.StemElement(), pl.BranchElement()} {
			if !seen[e] {
				seen[e] = true
				n++
			}
		}
	}
	return n
}

func diversityPoints(a, b int) int {
	switch {
	case a >= 4 && b >= 4:
		return 10
	case a >= 3 && b >= 3:
		return 8
	default:
		return 2
	}
}
