package calendar

import "math"

// StandardMeridian is the longitude of Japan Standard Time.
const StandardMeridian = 135.0

// SolarTimeOffset returns the minutes to add to standard clock time to get
// local apparent solar time: four minutes per degree east of the standard
// meridian plus the equation of time.
func SolarTimeOffset(longitude float64, dayOfYear int) float64 {
	b := (360.0 / 365.0) * float64(dayOfYear-81) * math.Pi / 180
	eot := 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
	return (longitude-StandardMeridian)*4 + eot
}

// SolarCorrected returns m with its clock time shifted to apparent solar
// time at longitude. The date is left alone; the clock wraps around
// midnight, so only the hour pillar changes.
func (m Moment) SolarCorrected(longitude float64) Moment {
	offset := SolarTimeOffset(longitude, DayOfYear(m.Year, m.Month, m.Day))
	minutes := m.Hour*60 + m.Minute + int(math.Round(offset))
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	m.Hour = minutes / 60
	m.Minute = minutes % 60
	return m
}
