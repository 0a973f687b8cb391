package voidperiod

import "github.com/papapumpkin/meishiki/internal/ganzhi"

// Flags records the void conditions present at birth.
type Flags struct {
	YearVoid     bool `json:"yearVoid"`     // 生年中殺: year branch in the day void
	MonthVoid    bool `json:"monthVoid"`    // 生月中殺: month branch in the day void
	DayVoid      bool `json:"dayVoid"`      // 生日中殺: day branch in the year void
	DaySeat      bool `json:"daySeat"`      // 日座中殺: day pillar 甲戌 or 乙亥
	DayResidence bool `json:"dayResidence"` // 日居中殺: day pillar 甲辰 or 乙巳
	Mutual       bool `json:"mutual"`       // 互換中殺: YearVoid and DayVoid together
}

// BirthFlags evaluates the birth void conditions for a chart.
func BirthFlags(year, month, day ganzhi.Pillar) Flags {
	dayVoid := ForPillar(day)
	f := Flags{
		YearVoid:  dayVoid.Contains(year.Branch),
		MonthVoid: dayVoid.Contains(month.Branch),
		DayVoid:   ForPillar(year).Contains(day.Branch),
	}
	switch day.Index() {
	case 10, 11:
		f.DaySeat = true
	case 40, 41:
		f.DayResidence = true
	}
	f.Mutual = f.YearVoid && f.DayVoid
	return f
}

// Names returns the traditional labels of the set flags, in field order.
func (f Flags) Names() []string {
	var out []string
	for _, c := range []struct {
		set  bool
		name string
	}{
		{f.YearVoid, "生年中殺"},
		{f.MonthVoid, "生月中殺"},
		{f.DayVoid, "生日中殺"},
		{f.DaySeat, "日座中殺"},
		{f.DayResidence, "日居中殺"},
		{f.Mutual, "互換中殺"},
	} {
		if c.set {
			out = append(out, c.name)
		}
	}
	return out
}
