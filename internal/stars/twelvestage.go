package stars

import (
	"encoding/json"

	"github.com/papapumpkin/meishiki/internal/ganzhi"
)

// Stage is a twelve-stage star, numbered from the embryo stage.
type Stage int

type stageInfo struct {
	name   string
	phase  string
	points int
}

// stageTable runs from the embryo stage. Points peak at 帝旺 and bottom out
// at 絶; they are not monotonic.
var stageTable = [12]stageInfo{
	{"天報星", "胎", 3},
	{"天印星", "養", 6},
	{"天貴星", "長生", 9},
	{"天恍星", "沐浴", 7},
	{"天南星", "冠帯", 10},
	{"天禄星", "建禄", 11},
	{"天将星", "帝旺", 12},
	{"天堂星", "衰", 8},
	{"天胡星", "病", 4},
	{"天極星", "死", 2},
	{"天庫星", "墓", 5},
	{"天馳星", "絶", 1},
}

// embryo gives each stem's 胎 branch index.
var embryo = [ganzhi.StemCount]int{9, 8, 0, 11, 0, 11, 3, 2, 6, 5}

// StageOf places target in the day stem's stage sequence. Yang stems walk
// forward through the branches from their embryo branch, yin stems walk
// backward.
func StageOf(day ganzhi.Stem, target ganzhi.Branch) Stage {
	e := embryo[day.Index()]
	b := target.Index()
	if day.Forward() {
		return Stage((b - e + 12) % 12)
	}
	return Stage((e - b + 12) % 12)
}

// Index returns the stage number normalised to 0..11.
func (s Stage) Index() int {
	return (int(s)%12 + 12) % 12
}

// String returns the star name.
func (s Stage) String() string {
	return stageTable[s.Index()].name
}

// Phase returns the life-phase label (胎, 養, 長生, ...).
func (s Stage) Phase() string {
	return stageTable[s.Index()].phase
}

// Points returns the stage's energy value, 1 to 12.
func (s Stage) Points() int {
	return stageTable[s.Index()].points
}

// MarshalJSON encodes the stage with its name, phase and points.
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string `json:"name"`
		Phase  string `json:"phase"`
		Points int    `json:"points"`
	}{s.String(), s.Phase(), s.Points()})
}

// StageChart holds the three body positions.
type StageChart struct {
	LeftShoulder Stage `json:"leftShoulder"`
	LeftLeg      Stage `json:"leftLeg"`
	RightLeg     Stage `json:"rightLeg"`
}

// PlaceStages fills the body positions from the year, month and day
// branches.
func PlaceStages(year, month, day ganzhi.Pillar) StageChart {
	d := day.Stem
	return StageChart{
		LeftShoulder: StageOf(d, year.Branch),
		LeftLeg:      StageOf(d, month.Branch),
		RightLeg:     StageOf(d, day.Branch),
	}
}

// Total returns the sum of the three stage points.
func (c StageChart) Total() int {
	return c.LeftShoulder.Points() + c.LeftLeg.Points() + c.RightLeg.Points()
}
