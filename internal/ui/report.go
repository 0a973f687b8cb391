package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/meishiki/internal/chart"
	"github.com/papapumpkin/meishiki/internal/compat"
	"github.com/papapumpkin/meishiki/internal/cycle"
	"github.com/papapumpkin/meishiki/internal/ganzhi"
	"github.com/papapumpkin/meishiki/internal/relation"
)

// Report writes a text rendering of c.
func Report(w io.Writer, c chart.Chart) {
	b := c.Input.Birth
	title := fmt.Sprintf("%04d-%02d-%02d %02d:%02d %s", b.Year, b.Month, b.Day, b.Hour, b.Minute, c.Input.Gender)
	if c.SolarTime != nil {
		title += fmt.Sprintf(" (solar %02d:%02d)", c.SolarTime.Hour, c.SolarTime.Minute)
	}
	fmt.Fprintln(w, styleHeading.Render(title))

	p := c.Pillars
	cols := []chart.Pillar{p.Hour, p.Day, p.Month, p.Year}
	row := func(label string, cell func(chart.Pillar) string) {
		cells := []string{styleCell.Render(styleLabel.Render(label))}
		for _, col := range cols {
			cells = append(cells, styleCell.Render(cell(col)))
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	header := []string{styleCell.Render("")}
	for _, h := range []string{"hour", "day", "month", "year"} {
		header = append(header, styleCell.Render(styleLabel.Render(h)))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, header...))
	row("pillar", func(cp chart.Pillar) string { return pillarText(cp.Pillar) })
	row("element", func(cp chart.Pillar) string { return cp.StemElement.Kanji() + cp.BranchElement.Kanji() })
	row("hidden", func(cp chart.Pillar) string { return cp.HiddenStem.Stem.String() + cp.HiddenStem.Role.Kanji() })
	fmt.Fprintln(w)

	ts := c.TenStars
	stars := strings.Join([]string{
		"head " + ts.Head.String(),
		"chest " + ts.Chest.String(),
		"belly " + ts.Belly.String(),
		"right " + ts.RightHand.String(),
		"left " + ts.LeftHand.String(),
	}, "  ")
	st := c.TwelveStages
	stages := fmt.Sprintf("shoulder %s(%d)  left leg %s(%d)  right leg %s(%d)  total %d",
		st.LeftShoulder, st.LeftShoulder.Points(),
		st.LeftLeg, st.LeftLeg.Points(),
		st.RightLeg, st.RightLeg.Points(),
		c.StagePoints)
	fmt.Fprintln(w, styleBox.Render(styleLabel.Render("ten stars  ")+stars+"\n"+styleLabel.Render("stages     ")+stages))

	void := c.VoidPeriod.Name()
	if len(c.VoidNames) > 0 {
		void += "  " + styleWarn.Render(strings.Join(c.VoidNames, " "))
	}
	kv(w, "void", void)
	kv(w, "balance", balanceLine(c))
	kv(w, "energy", fmt.Sprintf("%d %s  %s", c.Energy.Total, perElement(c.Energy.PerElement), c.Energy.Directionality))
	fmt.Fprintln(w)
	Cycles(w, c.MajorCycles)
}

// Cycles writes the major-cycle table.
func Cycles(w io.Writer, m cycle.Major) {
	dir := "backward"
	if m.Forward {
		dir = "forward"
	}
	fmt.Fprintln(w, styleHeading.Render(fmt.Sprintf("major cycles (%s, %d days, from age %d)", dir, m.DaysToTerm, m.StartAge)))
	for _, p := range m.Periods {
		fmt.Fprintln(w, periodLine(fmt.Sprintf("%3d-%-3d", p.Age, p.EndAge), p.Pillar, p.TenStar.String(), p.Stage.String(), p.Phases, p.Void))
	}
}

// Annual writes the annual-cycle table.
func Annual(w io.Writer, years []cycle.Year) {
	fmt.Fprintln(w, styleHeading.Render("annual cycles"))
	for _, y := range years {
		fmt.Fprintln(w, periodLine(fmt.Sprintf("%d %3d", y.Year, y.Age), y.Pillar, y.TenStar.String(), y.Stage.String(), y.Phases, y.Void))
	}
}

// Compare writes a compatibility result between two named people.
func Compare(w io.Writer, nameA, nameB string, r compat.Result) {
	style := styleSuccess
	switch r.Rating {
	case compat.Poor:
		style = styleWarn
	case compat.Incompatible:
		style = styleError
	}
	fmt.Fprintln(w, styleHeading.Render(nameA+" × "+nameB)+"  "+style.Render(fmt.Sprintf("%d %s", r.Score, r.Rating)))
	s := r.SubScores
	kv(w, "subscores", fmt.Sprintf("day stem %d, combination %d, day branch %d, year %d, diversity %d",
		s.DayStem, s.Combination, s.DayBranch, s.YearHarmony, s.Diversity))
	for _, e := range r.Explanations {
		fmt.Fprintln(w, "  • "+e)
	}
}

// Relations writes every relationship between two pillars.
func Relations(w io.Writer, a, b ganzhi.Pillar) {
	d := relation.Describe(a, b)
	fmt.Fprintln(w, styleHeading.Render(pillarText(a)+" → "+pillarText(b)))
	kv(w, "stem", d.StemRelation.String())
	kv(w, "branch", d.BranchRelation.String())
	if d.StemCombination.Matched {
		kv(w, "干合", d.StemCombination.Element.Kanji())
	}
	if d.BranchPartnership.Matched {
		kv(w, "支合", d.BranchPartnership.Element.Kanji())
	}
	if d.BranchClash {
		kv(w, "冲", styleError.Render("yes"))
	}
	if len(d.Phases) == 0 {
		kv(w, "phases", styleInfo.Render("none"))
		return
	}
	kv(w, "phases", phaseNames(d.Phases))
}

func periodLine(when string, p ganzhi.Pillar, star, stage string, phases []relation.Phase, void bool) string {
	line := fmt.Sprintf("  %s  %s  %s  %s", when, pillarText(p), star, stage)
	if len(phases) > 0 {
		line += "  " + phaseNames(phases)
	}
	if void {
		line += "  " + styleWarn.Render("天中殺")
	}
	return line
}

func phaseNames(phases []relation.Phase) string {
	names := make([]string, len(phases))
	for i, ph := range phases {
		s := styleInfo
		switch ph.Category {
		case relation.CategoryHarmony:
			s = styleSuccess
		case relation.CategoryClash:
			s = styleError
		case relation.CategoryCaution:
			s = styleWarn
		}
		names[i] = s.Render(ph.Name)
	}
	return strings.Join(names, " ")
}

func balanceLine(c chart.Chart) string {
	bl := c.Balance
	return fmt.Sprintf("%.1f  %s  dominant %s  weakest %s",
		bl.Score, perElement(bl.Percentages), bl.Dominant.Kanji(), bl.Weakest.Kanji())
}

func perElement[T int | float64](v ganzhi.PerElement[T]) string {
	parts := make([]string, 0, ganzhi.ElementCount)
	for _, e := range ganzhi.Elements() {
		var n string
		switch x := any(v.Get(e)).(type) {
		case float64:
			n = fmt.Sprintf("%.0f%%", x)
		default:
			n = fmt.Sprint(x)
		}
		parts = append(parts, elementStyle(e).Render(e.Kanji())+n)
	}
	return strings.Join(parts, " ")
}

func kv(w io.Writer, key, val string) {
	fmt.Fprintln(w, styleLabel.Render(fmt.Sprintf("%-10s", key))+" "+val)
}
