package compat

import (
	"testing"

	"github.com/papapumpkin/meishiki/internal/calendar"
	"github.com/papapumpkin/meishiki/internal/ganzhi"
)

func pillars(t *testing.T, year, month, day string) calendar.FourPillars {
	t.Helper()
	parse := func(s string) ganzhi.Pillar {
		p, err := ganzhi.ParsePillar(s)
		if err != nil {
			t.Fatalf("ParsePillar(%q): %v", s, err)
		}
		return p
	}
	return calendar.FourPillars{Year: parse(year), Month: parse(month), Day: parse(day)}
}

func TestRatingFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		score int
		want  Rating
	}{
		{100, Excellent}, {90, Excellent}, {89, Good}, {70, Good},
		{69, Normal}, {50, Normal}, {49, Poor}, {30, Poor}, {29, Incompatible}, {0, Incompatible},
	}
	for _, tt := range tests {
		if got := RatingFor(tt.score); got != tt.want {
			t.Errorf("RatingFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestCompareAllHarmonies(t *testing.T) {
	t.Parallel()
	a := pillars(t, "甲寅", "丙午", "甲子")
	b := pillars(t, "己亥", "庚申", "己丑")
	r := Compare(a, b)
	want := SubScores{DayStem: 5, Combination: 20, DayBranch: 25, YearHarmony: 15, Diversity: 8}
	if r.SubScores != want {
		t.Errorf("subscores = %+v, want %+v", r.SubScores, want)
	}
	if r.Score != 73 || r.Rating != Good {
		t.Errorf("score = %d %s, want 73 good", r.Score, r.Rating)
	}
	if len(r.Explanations) != 6 {
		t.Errorf("got %d explanations: %v", len(r.Explanations), r.Explanations)
	}
}

func TestCompareClash(t *testing.T) {
	t.Parallel()
	a := pillars(t, "甲子", "丙寅", "甲子")
	b := pillars(t, "甲子", "丙寅", "庚午")
	r := Compare(a, b)
	if r.SubScores.DayStem != 10 {
		t.Errorf("wood to metal = %d, want 10", r.SubScores.DayStem)
	}
	if r.SubScores.DayBranch != 0 {
		t.Errorf("子午 clash = %d, want 0", r.SubScores.DayBranch)
	}
	if r.SubScores.Combination != 0 || r.SubScores.YearHarmony != 0 {
		t.Errorf("unexpected harmony: %+v", r.SubScores)
	}
}

func TestCompareComputedCharts(t *testing.T) {
	t.Parallel()
	a := calendar.Convert(calendar.Moment{Year: 1983, Month: 8, Day: 11, Hour: 12})
	b := calendar.Convert(calendar.Moment{Year: 1995, Month: 9, Day: 14, Hour: 12})
	r := Compare(a, b)
	want := SubScores{DayStem: 25, DayBranch: 10, Diversity: 8}
	if r.SubScores != want {
		t.Errorf("subscores = %+v, want %+v", r.SubScores, want)
	}
	if r.Score != 43 || r.Rating != Poor {
		t.Errorf("score = %d %s, want 43 poor", r.Score, r.Rating)
	}
}

func TestCompareSwapChangesOnlyDayStem(t *testing.T) {
	t.Parallel()
	cases := [][2]calendar.FourPillars{
		{pillars(t, "甲寅", "丙午", "甲子"), pillars(t, "己亥", "庚申", "己丑")},
		{
			calendar.Convert(calendar.Moment{Year: 1983, Month: 8, Day: 11, Hour: 12}),
			calendar.Convert(calendar.Moment{Year: 1995, Month: 9, Day: 14, Hour: 12}),
		},
	}
	for _, c := range cases {
		ab, ba := Compare(c[0], c[1]).SubScores, Compare(c[1], c[0]).SubScores
		if ab.Combination != ba.Combination || ab.DayBranch != ba.DayBranch ||
			ab.YearHarmony != ba.YearHarmony || ab.Diversity != ba.Diversity {
			t.Errorf("symmetric sub-scores differ: %+v vs %+v", ab, ba)
		}
	}
	ab := Compare(cases[1][0], cases[1][1]).SubScores.DayStem
	ba := Compare(cases[1][1], cases[1][0]).SubScores.DayStem
	if ab != 25 || ba != 30 {
		t.Errorf("day stem A->B %d, B->A %d; want 25 and 30", ab, ba)
	}
}

func TestDiversityPoints(t *testing.T) {
	t.Parallel()
	tests := []struct{ a, b, want int }{
		{5, 4, 10}, {4, 3, 8}, {3, 3, 8}, {2, 5, 2}, {1, 1, 2},
	}
	for _, tt := range tests {
		if got := diversityPoints(tt.a, tt.b); got != tt.want {
			t.Errorf("diversityPoints(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
