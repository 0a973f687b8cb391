package calendar

import (
	"math"
	"testing"
)

func TestConvertGoldenCases(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                   string
		m                      Moment
		year, month, day, hour string
	}{
		{"1983-08-11 noon", Moment{1983, 8, 11, 12, 0}, "癸亥", "庚申", "辛未", "甲午"},
		{"1995-09-14 noon", Moment{1995, 9, 14, 12, 0}, "乙亥", "乙酉", "戊申", "戊午"},
		{"1990-03-02 before term", Moment{1990, 3, 2, 12, 0}, "庚午", "戊寅", "丙寅", "甲午"},
		{"2000-01-01 midnight", Moment{2000, 1, 1, 0, 0}, "己卯", "丙子", "戊午", "壬子"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Convert(tt.m)
			check := func(label, got, want string) {
				if got != want {
					t.Errorf("%s pillar = %s, want %s", label, got, want)
				}
			}
			check("year", got.Year.String(), tt.year)
			check("month", got.Month.String(), tt.month)
			check("day", got.Day.String(), tt.day)
			check("hour", got.Hour.String(), tt.hour)
		})
	}
}

func TestConvertEmitsValidPillars(t *testing.T) {
	t.Parallel()
	for year := 1899; year <= 2101; year += 7 {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= DaysInMonth(year, month); day += 3 {
				for hour := 0; hour < 24; hour += 5 {
					fp := Convert(Moment{Year: year, Month: month, Day: day, Hour: hour})
					for _, p := range []struct {
						name string
						ok   bool
					}{
						{"year", fp.Year.Valid()},
						{"month", fp.Month.Valid()},
						{"day", fp.Day.Valid()},
						{"hour", fp.Hour.Valid()},
					} {
						if !p.ok {
							t.Fatalf("%04d-%02d-%02d %02d: invalid %s pillar", year, month, day, hour, p.name)
						}
					}
				}
			}
		}
	}
}

func TestEffectiveMonth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name              string
		y, m, d           int
		wantYear, wantMon int
	}{
		{"on term", 1983, 8, 8, 1983, 8},
		{"day before term", 1983, 8, 7, 1983, 7},
		{"january wraps year", 1984, 1, 5, 1983, 12},
		{"january after term", 1984, 1, 6, 1984, 1},
		{"february before term stays in year", 1984, 2, 3, 1984, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m := EffectiveMonth(tt.y, tt.m, tt.d)
			if y != tt.wantYear || m != tt.wantMon {
				t.Errorf("EffectiveMonth(%d,%d,%d) = %d,%d want %d,%d", tt.y, tt.m, tt.d, y, m, tt.wantYear, tt.wantMon)
			}
		})
	}
}

func TestDayPillarIsContinuous(t *testing.T) {
	t.Parallel()
	prev := DayPillar(1899, 12, 31).Index()
	for year := 1900; year <= 1904; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				got := DayPillar(year, month, day).Index()
				if got != (prev+1)%60 {
					t.Fatalf("%04d-%02d-%02d index %d does not follow %d", year, month, day, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestDayPillarReferenceDates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		y, m, d int
		want    int
	}{
		{1900, 1, 1, 10},
		{1970, 1, 1, 17},
		{2000, 1, 1, 54},
		{1983, 8, 11, 7},
		{1995, 9, 14, 44},
		{1990, 3, 2, 2},
	}
	for _, tt := range tests {
		if got := DayPillar(tt.y, tt.m, tt.d).Index(); got != tt.want {
			t.Errorf("DayPillar(%d-%d-%d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.want)
		}
	}
}

func TestHourPillarBranches(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hour int
		want string
	}{
		{0, "子"}, {1, "丑"}, {2, "丑"}, {3, "寅"}, {11, "午"},
		{12, "午"}, {13, "未"}, {22, "亥"}, {23, "子"},
	}
	for _, tt := range tests {
		if got := HourPillar(0, tt.hour).Branch.String(); got != tt.want {
			t.Errorf("hour %d branch = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestElapsedDays(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		y, m, d int
		want    int
	}{
		{"after term", 1983, 8, 11, 3},
		{"on term", 1983, 8, 8, 0},
		{"before term uses previous month", 1990, 3, 2, 28 - 4 + 2},
		{"leap february tail", 1992, 3, 2, 29 - 4 + 2},
		{"january looks back to december", 1990, 1, 3, 31 - 7 + 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedDays(tt.y, tt.m, tt.d); got != tt.want {
				t.Errorf("ElapsedDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysToTerm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		y, m, d int
		forward bool
		want    int
	}{
		{"forward after term", 1983, 8, 11, true, 31 - 11 + 8},
		{"forward before term", 1983, 8, 5, true, 3},
		{"december rolls into january", 1983, 12, 20, true, 31 - 20 + 6},
		{"backward after term", 1983, 8, 11, false, 3},
		{"backward before term", 1983, 8, 5, false, 31 - 7 + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysToTerm(tt.y, tt.m, tt.d, tt.forward); got != tt.want {
				t.Errorf("DaysToTerm = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidDate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		y, m, d int
		want    bool
	}{
		{2024, 2, 29, true},
		{2023, 2, 29, false},
		{1900, 2, 29, false},
		{2000, 2, 29, true},
		{2024, 4, 31, false},
		{2024, 13, 1, false},
		{2024, 0, 1, false},
		{2024, 1, 0, false},
	}
	for _, tt := range tests {
		if got := ValidDate(tt.y, tt.m, tt.d); got != tt.want {
			t.Errorf("ValidDate(%d,%d,%d) = %v, want %v", tt.y, tt.m, tt.d, got, tt.want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	t.Parallel()
	if got := DayOfYear(2024, 12, 31); got != 366 {
		t.Errorf("DayOfYear(2024-12-31) = %d, want 366", got)
	}
	if got := DayOfYear(1983, 8, 11); got != 223 {
		t.Errorf("DayOfYear(1983-08-11) = %d, want 223", got)
	}
}

func TestSolarTimeOffset(t *testing.T) {
	t.Parallel()
	// On the standard meridian only the equation of time remains, which
	// stays within roughly ±17 minutes through the year.
	for doy := 1; doy <= 365; doy++ {
		off := SolarTimeOffset(StandardMeridian, doy)
		if math.Abs(off) > 17.5 {
			t.Fatalf("day %d: offset %.2f out of range", doy, off)
		}
	}
	east := SolarTimeOffset(StandardMeridian+1, 100)
	base := SolarTimeOffset(StandardMeridian, 100)
	if math.Abs(east-base-4) > 1e-9 {
		t.Errorf("one degree east adds %.4f minutes, want 4", east-base)
	}
}

func TestSolarCorrectedWrapsMidnight(t *testing.T) {
	t.Parallel()
	m := Moment{Year: 2024, Month: 6, Day: 1, Hour: 0, Minute: 10}
	got := m.SolarCorrected(120) // 60 minutes west plus a small equation of time
	if got.Hour != 23 {
		t.Errorf("hour = %d, want 23", got.Hour)
	}
	if got.Day != 1 || got.Month != 6 || got.Year != 2024 {
		t.Errorf("date changed: %+v", got)
	}
}
