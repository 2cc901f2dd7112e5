package timegrid

import (
	"strconv"
	"time"
)

// BandClass drives the styling of a header cell.
type BandClass int

const (
	ClassWeekday BandClass = iota
	ClassWeekend
	ClassHoliday
	ClassToday
)

// Band is one cell of a header row. Units is the cell's width in scale
// columns; it is fractional only at the weeks scale, where year and month
// boundaries split a week between two bands.
type Band struct {
	Label   string
	Class   BandClass
	Units   float64
	WidthPx float64
}

var dowLetters = [7]string{"S", "M", "T", "W", "T", "F", "S"}

func classFor(t time.Time, holidays []time.Time, today time.Time) BandClass {
	switch {
	case DatesEqual(t, today):
		return ClassToday
	case IsHoliday(t, holidays):
		return ClassHoliday
	case t.Weekday() == time.Saturday || t.Weekday() == time.Sunday:
		return ClassWeekend
	default:
		return ClassWeekday
	}
}

func plainBand(label string, units int, cellSize int) Band {
	return Band{
		Label:   label,
		Class:   ClassWeekday,
		Units:   float64(units),
		WidthPx: float64(units * cellSize),
	}
}

func classedBand(label string, class BandClass, units int, cellSize int) Band {
	b := plainBand(label, units, cellSize)
	b.Class = class
	return b
}

// sevenths expresses weekly band widths in whole days so that split
// corrections stay exact. One column is seven days.
func seventhsBand(label string, days int, cellSize int) Band {
	return Band{
		Label:   label,
		Class:   ClassWeekday,
		Units:   float64(days) / 7,
		WidthPx: float64(cellSize) * float64(days) / 7,
	}
}

// GenerateBands turns the column list into header rows, coarse rows first.
// Each row's bands tile the full grid width: running counters accumulate
// columns and flush a band whenever the year, month, day or week boundary is
// crossed, plus a final flush after the loop.
func GenerateBands(buckets []Bucket, scale Scale, cellSize int, holidays []time.Time, today time.Time) [][]Band {
	if len(buckets) == 0 {
		return nil
	}
	switch {
	case scale.IsHourFamily():
		return hourBands(buckets, cellSize, holidays, today)
	case scale == ScaleDays:
		return dayBands(buckets, cellSize, holidays, today)
	case scale == ScaleWeeks:
		return weekBands(buckets, cellSize, holidays, today)
	default:
		return monthBands(buckets, cellSize)
	}
}

func monthBands(buckets []Bucket, cellSize int) [][]Band {
	var yearRow, monthRow []Band
	year := buckets[0].Time.Year()
	unitsThisYear := 0

	for _, b := range buckets {
		t := b.Time
		if t.Year() != year {
			yearRow = append(yearRow, plainBand(strconv.Itoa(year), unitsThisYear, cellSize))
			year = t.Year()
			unitsThisYear = 0
		}
		unitsThisYear++
		monthRow = append(monthRow, plainBand(strconv.Itoa(int(t.Month())), 1, cellSize))
	}
	yearRow = append(yearRow, plainBand(strconv.Itoa(year), unitsThisYear, cellSize))

	return [][]Band{yearRow, monthRow}
}

func weekBands(buckets []Bucket, cellSize int, holidays []time.Time, today time.Time) [][]Band {
	var yearRow, monthRow, weekRow []Band
	year := buckets[0].Time.Year()
	month := buckets[0].Time.Month()
	week := WeekOfYear(buckets[0].Time)

	// Day-granular counters: one column is 7 days.
	daysThisYear := 0
	daysThisMonth := 0

	for _, b := range buckets {
		t := b.Time
		prevWeek := week
		week = WeekOfYear(t)

		// The week number wrapping around marks the year boundary. The part of
		// the split week that belongs to the old year moves back into its band.
		if prevWeek > week {
			carry := t.Day() - 1
			if t.Month() != time.January {
				// Week starts in late December of the closing year.
				carry -= 31
			}
			yearRow = append(yearRow, seventhsBand(strconv.Itoa(year), daysThisYear-carry, cellSize))
			year++
			daysThisYear = carry
		}
		daysThisYear += 7

		if t.Month() != month {
			carry := t.Day() - 1
			monthRow = append(monthRow, seventhsBand(month.String(), daysThisMonth-carry, cellSize))
			month = t.Month()
			daysThisMonth = carry
		}
		daysThisMonth += 7

		weekRow = append(weekRow, classedBand(strconv.Itoa(week), classFor(t, holidays, today), 1, cellSize))
	}
	yearRow = append(yearRow, seventhsBand(strconv.Itoa(year), daysThisYear, cellSize))
	monthRow = append(monthRow, seventhsBand(month.String(), daysThisMonth, cellSize))

	return [][]Band{yearRow, monthRow, weekRow}
}

func dayBands(buckets []Bucket, cellSize int, holidays []time.Time, today time.Time) [][]Band {
	var yearRow, monthRow, dateRow, dowRow []Band
	year := buckets[0].Time.Year()
	month := buckets[0].Time.Month()
	unitsThisYear := 0
	unitsThisMonth := 0

	for _, b := range buckets {
		t := b.Time
		if t.Year() != year {
			yearRow = append(yearRow, plainBand(strconv.Itoa(year), unitsThisYear, cellSize))
			year = t.Year()
			unitsThisYear = 0
		}
		unitsThisYear++

		if t.Month() != month {
			monthRow = append(monthRow, plainBand(month.String(), unitsThisMonth, cellSize))
			month = t.Month()
			unitsThisMonth = 0
		}
		unitsThisMonth++

		class := classFor(t, holidays, today)
		dateRow = append(dateRow, classedBand(strconv.Itoa(t.Day()), class, 1, cellSize))
		dowRow = append(dowRow, classedBand(dowLetters[t.Weekday()], class, 1, cellSize))
	}
	yearRow = append(yearRow, plainBand(strconv.Itoa(year), unitsThisYear, cellSize))
	monthRow = append(monthRow, plainBand(month.String(), unitsThisMonth, cellSize))

	return [][]Band{yearRow, monthRow, dateRow, dowRow}
}

func hourBands(buckets []Bucket, cellSize int, holidays []time.Time, today time.Time) [][]Band {
	var yearRow, monthRow, dateRow, dowRow, hourRow []Band
	year := buckets[0].Time.Year()
	month := buckets[0].Time.Month()
	day := buckets[0].Time
	unitsThisYear := 0
	unitsThisMonth := 0
	hoursInDay := 0

	for _, b := range buckets {
		t := b.Time
		if t.Year() != year {
			yearRow = append(yearRow, plainBand(strconv.Itoa(year), unitsThisYear, cellSize))
			year = t.Year()
			unitsThisYear = 0
		}
		unitsThisYear++

		if t.Month() != month {
			monthRow = append(monthRow, plainBand(month.String(), unitsThisMonth, cellSize))
			month = t.Month()
			unitsThisMonth = 0
		}
		unitsThisMonth++

		if !DatesEqual(t, day) {
			class := classFor(day, holidays, today)
			dateRow = append(dateRow, classedBand(strconv.Itoa(day.Day()), class, hoursInDay, cellSize))
			dowRow = append(dowRow, classedBand(dowLetters[day.Weekday()], class, hoursInDay, cellSize))
			day = t
			hoursInDay = 0
		}
		hoursInDay++

		hourRow = append(hourRow, classedBand(strconv.Itoa(t.Hour()), classFor(t, holidays, today), 1, cellSize))
	}
	yearRow = append(yearRow, plainBand(strconv.Itoa(year), unitsThisYear, cellSize))
	monthRow = append(monthRow, plainBand(month.String(), unitsThisMonth, cellSize))
	class := classFor(day, holidays, today)
	dateRow = append(dateRow, classedBand(strconv.Itoa(day.Day()), class, hoursInDay, cellSize))
	dowRow = append(dowRow, classedBand(dowLetters[day.Weekday()], class, hoursInDay, cellSize))

	return [][]Band{yearRow, monthRow, dateRow, dowRow, hourRow}
}
