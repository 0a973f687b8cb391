// Package cycle generates the decade-long major cycles (大運) and the
// annual cycles (年運), annotating each period against the day pillar.
package cycle

import (
	"github.com/papapumpkin/meishiki/internal/calendar"
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/relation"
	"github.com/papapumpkin/meishiki/internal/stars"
	"github.com/papapumpkin/meishiki/internal/voidperiod"
)

// DefaultCount is the number of major cycles generated by default.
const DefaultCount = 10

// Start age bounds.
const (
	MinStartAge = 1
	MaxStartAge = 10
)

// Natal is what cycle generation needs from a chart.
type Natal struct {
	Year   ganzhi.Pillar
	Month  ganzhi.Pillar
	Day    ganzhi.Pillar
	Birth  calendar.Moment
	Gender Gender
}

// Period is one major cycle.
type Period struct {
	Index   int              `json:"index"`
	Age     int              `json:"age"`
	EndAge  int              `json:"endAge"`
	Pillar  ganzhi.Pillar    `json:"pillar"`
	TenStar stars.TenStar    `json:"tenStar"`
	Stage   stars.Stage      `json:"twelveStage"`
	Phases  []relation.Phase `json:"phases"`
	Void    bool             `json:"isVoid"`
}

// Major is the full major-cycle sequence.
type Major struct {
	Forward    bool     `json:"forward"`
	DaysToTerm int      `json:"daysToTerm"`
	StartAge   int      `json:"startAge"`
	Periods    []Period `json:"cycles"`
}

// Forward reports the cycle direction: forward for a yang year stem with
// a male holder or a yin year stem with a female holder.
func Forward(yearStem ganzhi.Stem, g Gender) bool {
	return yearStem.IsYang() == (g == Male)
}

// StartAge converts days to the nearest solar term into the age at which
// the first cycle begins: one year per three days, rounded up and clamped
// to [MinStartAge, MaxStartAge].
func StartAge(days int) int {
	age := (days + 2) / 3
	return max(MinStartAge, min(MaxStartAge, age))
}

// Generate builds count major cycles by stepping the month pillar one
// place per decade in the cycle direction. A non-positive count uses
// DefaultCount.
func Generate(n Natal, count int) Major {
	if count <= 0 {
		count = DefaultCount
	}
	fwd := Forward(n.Year.Stem, n.Gender)
	days := calendar.DaysToTerm(n.Birth.Year, n.Birth.Month, n.Birth.Day, fwd)
	start := StartAge(days)
	step := 1
	if !fwd {
		step = -1
	}

	m := Major{Forward: fwd, DaysToTerm: days, StartAge: start}
	for i := range count {
		age := start + 10*i
		p := n.Month.Add(step * (i + 1))
		m.Periods = append(m.Periods, Period{
			Index:   i + 1,
			Age:     age,
			EndAge:  age + 9,
			Pillar:  p,
			TenStar: stars.TenStarOf(n.Day.Stem, p.Stem),
			Stage:   stars.StageOf(n.Day.Stem, p.Branch),
			Phases:  relation.Phases(p, n.Day),
			Void:    voidperiod.IsBranchVoid(n.Day, p.Branch),
		})
	}
	return m
}

// At returns the period covering age, or false before the first cycle
// or after the last.
func (m Major) At(age int) (Period, bool) {
	for _, p := range m.Periods {
		if age >= p.Age && age <= p.EndAge {
			return p, true
		}
	}
	return Period{}, false
}
