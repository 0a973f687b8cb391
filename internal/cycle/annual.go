package cycle

import (
	"github.com/papapumpkin/meishiki/internal/calendar"
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/relation"
	"github.com/papapumpkin/meishiki/internal/stars"
	"github.com/papapumpkin/meishiki/internal/voidperiod"
)

// DefaultSpan is the number of annual cycles generated by default.
const DefaultSpan = 10

// Year is one annual cycle.
type Year struct {
	Year    int              `json:"year"`
	Age     int              `json:"age"`
	Pillar  ganzhi.Pillar    `json:"pillar"`
	TenStar stars.TenStar    `json:"tenStar"`
	Stage   stars.Stage      `json:"twelveStage"`
	Phases  []relation.Phase `json:"phases"`
	Void    bool             `json:"isVoid"`
}

// Annual returns span annual cycles starting at calendar year from. Age is
// the holder's age reached during that year. A non-positive span uses
// DefaultSpan.
func Annual(n Natal, from, span int) []Year {
	if span <= 0 {
		span = DefaultSpan
	}
	out := make([]Year, 0, span)
	for y := from; y < from+span; y++ {
		p := calendar.YearPillar(y)
		out = append(out, Year{
			Year:    y,
			Age:     y - n.Birth.Year,
			Pillar:  p,
			TenStar: stars.TenStarOf(n.Day.Stem, p.Stem),
			Stage:   stars.StageOf(n.Day.Stem, p.Branch),
			Phases:  relation.Phases(p, n.Day),
			Void:    voidperiod.IsBranchVoid(n.Day, p.Branch),
		})
	}
	return out
}
