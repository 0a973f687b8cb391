package energy

import (
	"strings"

	"github.com/papapumpkin/meishiki/internal/ganzhi"
)

// Directions buckets element energy by its offset from the day element:
// same element east, the one it generates south, then center, west and
// north around the generation cycle.
type Directions struct {
	North  int `json:"north"`
	South  int `json:"south"`
	East   int `json:"east"`
	West   int `json:"west"`
	Center int `json:"center"`
}

// Classify assigns each element's energy to a direction relative to self.
func Classify(per ganzhi.PerElement[int], self ganzhi.Element) Directions {
	var d Directions
	for _, e := range ganzhi.Elements() {
		v := per[e]
		switch (int(e) - int(self) + 5) % 5 {
		case 0:
			d.East += v
		case 1:
			d.South += v
		case 2:
			d.Center += v
		case 3:
			d.West += v
		case 4:
			d.North += v
		}
	}
	return d
}

// Type names the strongest direction(s). Ties are joined with "・" in
// the order north, south, east, west, center. A chart with no energy has
// no type.
func (d Directions) Type() string {
	ordered := []struct {
		v    int
		name string
	}{
		{d.North, "玄武型"},
		{d.South, "朱雀型"},
		{d.East, "青龍型"},
		{d.West, "白虎型"},
		{d.Center, "騰蛇型"},
	}
	best := 0
	for _, o := range ordered {
		best = max(best, o.v)
	}
	if best == 0 {
		return ""
	}
	var names []string
	for _, o := range ordered {
		if o.v == best {
			names = append(names, o.name)
		}
	}
	return strings.Join(names, "・")
}
