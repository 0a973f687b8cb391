package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/papapumpkin/meishiki/internal/chart"
	"github.com/papapumpkin/meishiki/internal/compat"
	"github.com/papapumpkin/meishiki/internal/cycle"
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/roster"
)

func mustChart(t *testing.T, date string, solar bool) chart.Chart {
	t.Helper()
	in, err := chart.ParseInput(date, "12:00", "male", 135)
	if err != nil {
		t.Fatal(err)
	}
	in.TrueSolarTime = solar
	c, err := chart.Compute(in)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func assertContains(t *testing.T, output string, substrs ...string) {
	t.Helper()
	for _, s := range substrs {
		if !strings.Contains(output, s) {
			t.Errorf("expected output to contain %q, got:\n%s", s, output)
		}
	}
}

func TestPrinterStatusLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriter(&buf)
	p.Info("loading")
	p.Success("done")
	p.Warn("careful")
	p.Error("broken")
	p.Watching("roster.toml")

	assertContains(t, buf.String(), "loading", "done", "careful", "error:", "broken", "watching", "roster.toml")
	if n := strings.Count(buf.String(), "\n"); n != 5 {
		t.Errorf("expected 5 lines, got %d", n)
	}
}

func TestPrinterRosterResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriter(&buf)
	p.RosterResult("a.toml", 3, nil)
	assertContains(t, buf.String(), "a.toml", "3 person(s)")

	buf.Reset()
	p.RosterResult("b.toml", 0, []roster.ValidationError{
		{Err: roster.ErrNoPeople},
		{Person: "Aki", Field: "date", Err: fmt.Errorf("%w: date", roster.ErrMissingField)},
	})
	assertContains(t, buf.String(), "2 error(s)", "roster has no people", "person Aki")
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, mustChart(t, "1983-08-11", false))
	out := buf.String()
	assertContains(t, out,
		"1983-08-11 12:00 male",
		"辛", "未", "癸", "亥",
		"鳳閣星", "玉堂星", "天将星", "total 27",
		"戌亥天中殺", "生年中殺",
		"major cycles (backward, 3 days, from age 1)",
	)
	if strings.Contains(out, "solar") {
		t.Error("solar time shown without correction")
	}
}

func TestReportSolarTime(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, mustChart(t, "1983-08-11", true))
	assertContains(t, buf.String(), "(solar ")
}

func TestAnnual(t *testing.T) {
	c := mustChart(t, "1983-08-11", false)
	var buf bytes.Buffer
	Annual(&buf, cycle.Annual(c.Natal(), 2031, 1))
	assertContains(t, buf.String(), "annual cycles", "2031", "天中殺")
}

func TestCompare(t *testing.T) {
	a := mustChart(t, "1983-08-11", false)
	b := mustChart(t, "1995-09-14", false)
	r := compat.Compare(a.FourPillars(), b.FourPillars())

	var buf bytes.Buffer
	Compare(&buf, "Aki", "Mio", r)
	assertContains(t, buf.String(), "Aki × Mio", fmt.Sprintf("%d %s", r.Score, r.Rating), "day stem 25")
	for _, e := range r.Explanations {
		assertContains(t, buf.String(), e)
	}
}

func TestRelations(t *testing.T) {
	a, _ := ganzhi.ParsePillar("甲子")
	b, _ := ganzhi.ParsePillar("庚午")

	var buf bytes.Buffer
	Relations(&buf, a, b)
	assertContains(t, buf.String(), "controlled_by", "冲", "天剋地冲")

	buf.Reset()
	c, _ := ganzhi.ParsePillar("己丑")
	Relations(&buf, a, c)
	assertContains(t, buf.String(), "干合", "支合")
}
