package calendar

// daysFromCivil returns the number of days from 1970-01-01 to the given
// proleptic Gregorian date. Negative for earlier dates.
func daysFromCivil(year, month, day int) int {
	y := year
	if month <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (month + 9) % 12
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// IsLeapYear reports whether year has a 29 February.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of the month. Months outside 1-12 wrap
// into the adjacent year.
func DaysInMonth(year, month int) int {
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// ValidDate reports whether the triple names a real Gregorian date.
func ValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= DaysInMonth(year, month)
}

// DayOfYear returns 1 for 1 January.
func DayOfYear(year, month, day int) int {
	return daysFromCivil(year, month, day) - daysFromCivil(year, 1, 1) + 1
}

// ElapsedDays counts the days since the solar term governing the date
// began: day − term on or after the term, otherwise the tail of the
// previous month plus day.
func ElapsedDays(year, month, day int) int {
	term := SolarTermDay(month)
	if day >= term {
		return day - term
	}
	return DaysInMonth(year, month-1) - SolarTermDay(month-1) + day
}

// DaysToTerm counts the days from the date to the nearest solar term in
// the given direction: the next term going forward, the governing term
// going backward.
func DaysToTerm(year, month, day int, forward bool) int {
	if !forward {
		return ElapsedDays(year, month, day)
	}
	term := SolarTermDay(month)
	if day >= term {
		return DaysInMonth(year, month) - day + SolarTermDay(month+1)
	}
	return term - day
}
