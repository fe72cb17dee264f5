package ds3231

import (
	"fmt"
	"time"
)

// DateTime is the register-backed form of the chip's seven time/date
// registers. It is a plain value: build one with EncodeDateTime or
// DateTimeFromBytes, convert it with Time, and copy it freely.
type DateTime struct {
	Seconds Seconds
	Minutes Minutes
	Hours   Hours
	Day     Day
	Date    Date
	Month   Month
	Year    Year
}

// EncodeDateTime packs a calendar timestamp into the time/date registers.
// The chip stores years as an offset from 2000, with the month register's
// century flag extending the range to 2199; earlier or later years fail with
// ErrYearTooEarly or ErrYearTooLate. The day-of-week register is always
// recomputed from the date, counting days from Sunday as zero.
func EncodeDateTime(t time.Time, format TimeFormat) (DateTime, error) {
	var dt DateTime

	ones, tens, err := encodeBCD(uint8(t.Second()), 59)
	if err != nil {
		return DateTime{}, fmt.Errorf("encode seconds: %w", err)
	}
	dt.Seconds = dt.Seconds.WithOnes(ones).WithTens(tens)

	ones, tens, err = encodeBCD(uint8(t.Minute()), 59)
	if err != nil {
		return DateTime{}, fmt.Errorf("encode minutes: %w", err)
	}
	dt.Minutes = dt.Minutes.WithOnes(ones).WithTens(tens)

	he, err := encodeHour(uint8(t.Hour()), format)
	if err != nil {
		return DateTime{}, fmt.Errorf("encode hours: %w", err)
	}
	dt.Hours = dt.Hours.
		WithTimeFormat(he.format).
		WithPMOrTwenty(he.pmOrTwenty).
		WithTens(he.tens).
		WithOnes(he.ones)

	dt.Day = dt.Day.WithDay(uint8(t.Weekday()))

	ones, tens, err = encodeBCD(uint8(t.Day()), 31)
	if err != nil {
		return DateTime{}, fmt.Errorf("encode date: %w", err)
	}
	dt.Date = dt.Date.WithOnes(ones).WithTens(tens)

	ones, tens, err = encodeBCD(uint8(t.Month()), 12)
	if err != nil {
		return DateTime{}, fmt.Errorf("encode month: %w", err)
	}
	dt.Month = dt.Month.WithOnes(ones).WithTens(tens)

	year := t.Year() - 2000
	if year < 0 {
		return DateTime{}, fmt.Errorf("%w: %d", ErrYearTooEarly, t.Year())
	}
	if year > 199 {
		return DateTime{}, fmt.Errorf("%w: %d", ErrYearTooLate, t.Year())
	}
	if year > 99 {
		year -= 100
		dt.Month = dt.Month.WithCentury(true)
	}
	ones, tens, err = encodeBCD(uint8(year), 99)
	if err != nil {
		return DateTime{}, fmt.Errorf("encode year: %w", err)
	}
	dt.Year = dt.Year.WithOnes(ones).WithTens(tens)

	return dt, nil
}

// DateTimeFromBytes wraps seven raw register bytes, in register-address
// order, read from the chip in one burst.
func DateTimeFromBytes(b [7]byte) DateTime {
	return DateTime{
		Seconds: Seconds(b[0]),
		Minutes: Minutes(b[1]),
		Hours:   Hours(b[2]),
		Day:     Day(b[3]),
		Date:    Date(b[4]),
		Month:   Month(b[5]),
		Year:    Year(b[6]),
	}
}

// Bytes returns the raw register bytes in register-address order, ready to
// write to the chip in one burst.
func (dt DateTime) Bytes() [7]byte {
	return [7]byte{
		uint8(dt.Seconds),
		uint8(dt.Minutes),
		uint8(dt.Hours),
		uint8(dt.Day),
		uint8(dt.Date),
		uint8(dt.Month),
		uint8(dt.Year),
	}
}

// Weekday returns the stored day-of-week ordinal, days from Sunday. It is
// returned as stored: the chip does not guarantee it agrees with the date,
// and Time does not consult it.
func (dt DateTime) Weekday() uint8 {
	return dt.Day.Day()
}

// Time unpacks the registers into a calendar timestamp. Any register whose
// digits are not valid BCD fails with ErrInvalidBCD or ErrInvalidHour; a
// field combination that is not a real calendar date (February 30th, month
// zero) fails with ErrInvalidDateTime.
func (dt DateTime) Time() (time.Time, error) {
	second, err := decodeBCD(dt.Seconds.Ones(), dt.Seconds.Tens(), 59)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode seconds: %w", err)
	}
	minute, err := decodeBCD(dt.Minutes.Ones(), dt.Minutes.Tens(), 59)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode minutes: %w", err)
	}
	hour, err := hourEncoding{
		ones:       dt.Hours.Ones(),
		tens:       dt.Hours.Tens(),
		pmOrTwenty: dt.Hours.PMOrTwenty(),
		format:     dt.Hours.TimeFormat(),
	}.hourOfDay()
	if err != nil {
		return time.Time{}, fmt.Errorf("decode hours: %w", err)
	}
	date, err := decodeBCD(dt.Date.Ones(), dt.Date.Tens(), 31)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode date: %w", err)
	}
	month, err := decodeBCD(dt.Month.Ones(), dt.Month.Tens(), 12)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode month: %w", err)
	}
	yr, err := decodeBCD(dt.Year.Ones(), dt.Year.Tens(), 99)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode year: %w", err)
	}
	year := 2000 + int(yr)
	if dt.Month.Century() {
		year += 100
	}

	t := time.Date(year, time.Month(month), int(date), int(hour), int(minute), int(second), 0, time.UTC)
	// time.Date normalizes an impossible date onto a neighboring month, so an
	// exact component match is the validity check.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != int(date) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDateTime, year, month, date)
	}
	return t, nil
}
