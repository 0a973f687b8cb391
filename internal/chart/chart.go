// Package chart assembles a complete destiny chart from a birth moment:
// the four pillars with their hidden stems, star placements, void period,
// major cycles and both scoring systems.
package chart

import (
	"github.com/papapumpkin/meishiki/internal/balance"
	"github.com/papapumpkin/meishiki/internal/calendar"
	"github.com/papapumpkin/meishiki/internal/cycle"
	"github.com/papapumpkin/meishiki/internal/energy"
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/hidden"
	"github.com/papapumpkin/meishiki/internal/stars"
	"github.com/papapumpkin/meishiki/internal/voidperiod"
)

// Pillar is a pillar together with its derived attributes.
type Pillar struct {
	ganzhi.Pillar
	StemElement   ganzhi.Element  `json:"stemElement"`
	BranchElement ganzhi.Element  `json:"branchElement"`
	YinYang       ganzhi.Polarity `json:"yinYang"`
	Index         int             `json:"index"`
	HiddenStem    hidden.Entry    `json:"hiddenStem"`
	HiddenStems   []hidden.Entry  `json:"hiddenStems"`
}

// Pillars holds the four annotated pillars.
type Pillars struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// Chart is the full computed chart. It is a pure value of its Input.
type Chart struct {
	Input        Input              `json:"input"`
	SolarTime    *calendar.Moment   `json:"solarTime,omitempty"`
	Pillars      Pillars            `json:"pillars"`
	ElapsedDays  int                `json:"elapsedDays"`
	TenStars     stars.TenStarChart `json:"tenStars"`
	TwelveStages stars.StageChart   `json:"twelveStages"`
	StagePoints  int                `json:"stagePoints"`
	VoidPeriod   voidperiod.Pair    `json:"voidPeriod"`
	BirthVoid    voidperiod.Flags   `json:"birthVoid"`
	VoidNames    []string           `json:"birthVoidNames"`
	MajorCycles  cycle.Major        `json:"majorCycles"`
	Balance      balance.Result     `json:"balance"`
	Energy       energy.Result      `json:"energy"`
}

// Compute validates in and builds its chart.
func Compute(in Input) (Chart, error) {
	if err := in.Validate(); err != nil {
		return Chart{}, err
	}
	b := in.Birth
	fp := calendar.Convert(b)

	c := Chart{Input: in}
	if in.TrueSolarTime {
		solar := b.SolarCorrected(in.Longitude)
		c.SolarTime = &solar
		fp.Hour = calendar.HourPillar(fp.Day.Stem, solar.Hour)
	}

	elapsed := calendar.ElapsedDays(b.Year, b.Month, b.Day)
	c.ElapsedDays = elapsed
	c.Pillars = Pillars{
		Year:  annotate(fp.Year, elapsed),
		Month: annotate(fp.Month, elapsed),
		Day:   annotate(fp.Day, elapsed),
		Hour:  annotate(fp.Hour, elapsed),
	}
	c.TenStars = stars.PlaceTenStars(fp.Year, fp.Month, fp.Day, elapsed)
	c.TwelveStages = stars.PlaceStages(fp.Year, fp.Month, fp.Day)
	c.StagePoints = c.TwelveStages.Total()
	c.VoidPeriod = voidperiod.ForPillar(fp.Day)
	c.BirthVoid = voidperiod.BirthFlags(fp.Year, fp.Month, fp.Day)
	c.VoidNames = c.BirthVoid.Names()
	c.MajorCycles = cycle.Generate(c.Natal(), in.Cycles)
	c.Balance = balance.Analyze(fp.Year, fp.Month, fp.Day, fp.Hour)
	c.Energy = energy.Analyze(fp.Year, fp.Month, fp.Day)
	return c, nil
}

// FourPillars returns the bare pillars.
func (c Chart) FourPillars() calendar.FourPillars {
	return calendar.FourPillars{
		Year:  c.Pillars.Year.Pillar,
		Month: c.Pillars.Month.Pillar,
		Day:   c.Pillars.Day.Pillar,
		Hour:  c.Pillars.Hour.Pillar,
	}
}

// Natal returns what the cycle generators need from the chart.
func (c Chart) Natal() cycle.Natal {
	return cycle.Natal{
		Year:   c.Pillars.Year.Pillar,
		Month:  c.Pillars.Month.Pillar,
		Day:    c.Pillars.Day.Pillar,
		Birth:  c.Input.Birth,
		Gender: c.Input.Gender,
	}
}

func annotate(p ganzhi.Pillar, elapsed int) Pillar {
	return Pillar{
		Pillar:        p,
		StemElement:   p.StemElement(),
		BranchElement: p.BranchElement(),
		YinYang:       p.Polarity(),
		Index:         p.Index(),
		HiddenStem:    hidden.Resolve(p.Branch, elapsed),
		HiddenStems:   hidden.Entries(p.Branch),
	}
}
