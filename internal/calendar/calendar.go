// Package calendar converts a Gregorian birth moment into the four
// sexagenary pillars. Month boundaries come from a fixed per-month
// solar-term day table rather than astronomical solar longitude.
package calendar

import (
	"github.com/papapumpkin/meishiki/internal/ganzhi"
)

// YearEpoch is a 甲子 year; year offsets are counted from it.
const YearEpoch = 1924

// epochDayIndex is the sexagenary index of 1970-01-01 (辛巳).
const epochDayIndex = 17

// termDays holds the approximate day-of-month on which each Gregorian
// month's governing solar term begins, January first.
var termDays = [12]int{6, 4, 6, 5, 6, 6, 7, 8, 8, 9, 8, 7}

// Moment is a civil birth date and clock time. The converter trusts its
// fields; use ValidDate before converting untrusted input.
type Moment struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// FourPillars is the output of Convert.
type FourPillars struct {
	Year  ganzhi.Pillar `json:"year"`
	Month ganzhi.Pillar `json:"month"`
	Day   ganzhi.Pillar `json:"day"`
	Hour  ganzhi.Pillar `json:"hour"`
}

// Convert computes all four pillars for m.
func Convert(m Moment) FourPillars {
	effYear, effMonth := EffectiveMonth(m.Year, m.Month, m.Day)
	year := YearPillar(effYear)
	day := DayPillar(m.Year, m.Month, m.Day)
	return FourPillars{
		Year:  year,
		Month: MonthPillar(year.Stem, effMonth),
		Day:   day,
		Hour:  HourPillar(day.Stem, m.Hour),
	}
}

// SolarTermDay returns the day of month on which the given month's solar
// term begins. Months outside 1-12 wrap.
func SolarTermDay(month int) int {
	return termDays[wrapMonth(month)-1]
}

// EffectiveMonth returns the year and month whose solar term governs the
// date. Days before the month's term belong to the previous month; only
// January wraps the year.
func EffectiveMonth(year, month, day int) (int, int) {
	if day >= SolarTermDay(month) {
		return year, month
	}
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// YearPillar returns the pillar for an effective year.
func YearPillar(effYear int) ganzhi.Pillar {
	return ganzhi.PillarAt(effYear - YearEpoch)
}

// MonthPillar applies the five-tiger rule: the 寅 month of a year starts
// at stem ((yearStem mod 5)·2 + 2) and each later month advances one.
// effMonth is the Gregorian month number, so February maps to 寅.
func MonthPillar(yearStem ganzhi.Stem, effMonth int) ganzhi.Pillar {
	start := (yearStem.Index()%5)*2 + 2
	offset := (wrapMonth(effMonth) + 10) % 12
	return ganzhi.Pillar{
		Stem:   ganzhi.NewStem(start + offset),
		Branch: ganzhi.NewBranch(offset + 2),
	}
}

// DayPillar returns the pillar for a civil date. The day count is pure
// calendar arithmetic, independent of any time zone.
func DayPillar(year, month, day int) ganzhi.Pillar {
	return ganzhi.PillarAt(epochDayIndex + daysFromCivil(year, month, day))
}

// HourPillar applies the five-rat rule. Hour 23 belongs to the 子 hour.
func HourPillar(dayStem ganzhi.Stem, hour int) ganzhi.Pillar {
	branch := ganzhi.NewBranch((hour + 1) / 2)
	start := (dayStem.Index() % 5) * 2
	return ganzhi.Pillar{
		Stem:   ganzhi.NewStem(start + branch.Index()),
		Branch: branch,
	}
}

func wrapMonth(month int) int {
	m := (month - 1) % 12
	if m < 0 {
		m += 12
	}
	return m + 1
}
