package balance

import (
	"math"
	"testing"

	"github.com/papapumpkin/meishiki/internal/ganzhi"
)

func TestScoreBounds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		pct  ganzhi.PerElement[float64]
		want float64
	}{
		{"even", ganzhi.PerElement[float64]{20, 20, 20, 20, 20}, 100},
		{"single element", ganzhi.PerElement[float64]{100, 0, 0, 0, 0}, 20},
		{"two elements", ganzhi.PerElement[float64]{50, 50, 0, 0, 0}, 100 - 2*math.Sqrt((900+900+400*3)/5.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.pct)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("Score %v out of [0,100]", got)
			}
		})
	}
	if Score(ganzhi.PerElement[float64]{100, 0, 0, 0, 0}) >= 50 {
		t.Error("maximally skewed chart should score well below 50")
	}
}

func pillars(t *testing.T, ss ...string) []ganzhi.Pillar {
	t.Helper()
	var out []ganzhi.Pillar
	for _, s := range ss {
		p, err := ganzhi.ParsePillar(s)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, p)
	}
	return out
}

func TestAnalyzeSinglePillar(t *testing.T) {
	t.Parallel()
	// 甲子: stem wood 1.0; branch water 0.8; hidden 癸 main 1.0 (water),
	// 壬 next 0.5 (water).
	r := Analyze(pillars(t, "甲子")...)
	want := ganzhi.PerElement[float64]{1.0, 0, 0, 0, 2.3}
	for _, e := range ganzhi.Elements() {
		if math.Abs(r.Scores[e]-want[e]) > 1e-9 {
			t.Errorf("%v score = %v, want %v", e, r.Scores[e], want[e])
		}
	}
	if r.Dominant != ganzhi.Water {
		t.Errorf("Dominant = %v, want water", r.Dominant)
	}
	// Fire, earth and metal tie at zero; wood is not among them.
	if r.Weakest != ganzhi.Fire {
		t.Errorf("Weakest = %v, want fire", r.Weakest)
	}
}

func TestAnalyzePercentagesSumTo100(t *testing.T) {
	t.Parallel()
	r := Analyze(pillars(t, "癸亥", "庚申", "辛未", "甲午")...)
	if math.Abs(r.Percentages.Sum()-100) > 1e-9 {
		t.Errorf("percentages sum to %v", r.Percentages.Sum())
	}
	// Four stems, four branches and ten hidden stems.
	wantTotal := 4*StemWeight + 4*BranchWeight + (1.0 + 0.5) + (1.0 + 0.5 + 0.3) + (1.0 + 0.5 + 0.3) + (1.0 + 0.5 + 0.3)
	if math.Abs(r.Scores.Sum()-wantTotal) > 1e-9 {
		t.Errorf("total = %v, want %v", r.Scores.Sum(), wantTotal)
	}
	if r.Score < 0 || r.Score > 100 {
		t.Errorf("balance score %v out of range", r.Score)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()
	// Every percentage is zero, twenty points off the ideal.
	if got := Analyze().Score; math.Abs(got-60) > 1e-9 {
		t.Errorf("Score = %v, want 60", got)
	}
}
