package ds3231

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestDateTimeEndToEnd(t *testing.T) {
	c := qt.New(t)

	// 2024-03-14 15:30:00 UTC, a Thursday, as it sits in the registers.
	raw := [7]byte{0x00, 0x30, 0x15, 0x04, 0x14, 0x03, 0x24}

	dt := DateTimeFromBytes(raw)
	got, err := dt.Time()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, time.Date(2024, time.March, 14, 15, 30, 0, 0, time.UTC))
	c.Assert(dt.Weekday(), qt.Equals, uint8(4))

	enc, err := EncodeDateTime(got, TwentyFourHour)
	c.Assert(err, qt.IsNil)
	c.Assert(enc.Bytes(), qt.Equals, raw)
}

func TestDateTimeRoundTrip12Hour(t *testing.T) {
	c := qt.New(t)

	times := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 15, 11, 59, 59, 0, time.UTC),
		time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, want := range times {
		dt, err := EncodeDateTime(want, TwelveHour)
		c.Assert(err, qt.IsNil)
		got, err := dt.Time()
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, want)
	}
}

func TestDateTimeCentury(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		year    int
		century bool
		stored  uint8
	}{
		{year: 2000, century: false, stored: 0},
		{year: 2099, century: false, stored: 99},
		{year: 2100, century: true, stored: 0},
		{year: 2155, century: true, stored: 55},
		{year: 2199, century: true, stored: 99},
	}
	for _, tt := range tests {
		want := time.Date(tt.year, time.March, 1, 12, 0, 0, 0, time.UTC)
		dt, err := EncodeDateTime(want, TwentyFourHour)
		c.Assert(err, qt.IsNil)
		c.Assert(dt.Month.Century(), qt.Equals, tt.century)
		stored, err := decodeBCD(dt.Year.Ones(), dt.Year.Tens(), 99)
		c.Assert(err, qt.IsNil)
		c.Assert(stored, qt.Equals, tt.stored)

		got, err := dt.Time()
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, want)
	}
}

func TestEncodeDateTimeYearRange(t *testing.T) {
	c := qt.New(t)

	_, err := EncodeDateTime(time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC), TwentyFourHour)
	c.Assert(errors.Is(err, ErrYearTooEarly), qt.Equals, true)

	_, err = EncodeDateTime(time.Date(2200, time.January, 1, 0, 0, 0, 0, time.UTC), TwentyFourHour)
	c.Assert(errors.Is(err, ErrYearTooLate), qt.Equals, true)
}

func TestDateTimeDecodeInvalid(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		raw  [7]byte
		err  error
	}{
		{
			name: "seconds ones not a digit",
			raw:  [7]byte{0x6A, 0x30, 0x15, 0x04, 0x14, 0x03, 0x24},
			err:  ErrInvalidBCD,
		},
		{
			name: "minutes above 59",
			raw:  [7]byte{0x00, 0x60, 0x15, 0x04, 0x14, 0x03, 0x24},
			err:  ErrInvalidBCD,
		},
		{
			name: "hours above 23",
			raw:  [7]byte{0x00, 0x30, 0x35, 0x04, 0x14, 0x03, 0x24},
			err:  ErrInvalidHour,
		},
		{
			name: "month zero",
			raw:  [7]byte{0x00, 0x30, 0x15, 0x04, 0x14, 0x00, 0x24},
			err:  ErrInvalidDateTime,
		},
		{
			name: "february 30th",
			raw:  [7]byte{0x00, 0x30, 0x15, 0x04, 0x30, 0x02, 0x24},
			err:  ErrInvalidDateTime,
		},
	}
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			_, err := DateTimeFromBytes(tt.raw).Time()
			c.Assert(errors.Is(err, tt.err), qt.Equals, true)
		})
	}
}

func TestWeekdayRecomputedOnEncode(t *testing.T) {
	c := qt.New(t)

	// A stored weekday that disagrees with the date survives decoding, but
	// re-encoding the decoded time replaces it with the computed one.
	raw := [7]byte{0x00, 0x30, 0x15, 0x07, 0x14, 0x03, 0x24}
	dt := DateTimeFromBytes(raw)
	c.Assert(dt.Weekday(), qt.Equals, uint8(7))

	got, err := dt.Time()
	c.Assert(err, qt.IsNil)
	enc, err := EncodeDateTime(got, TwentyFourHour)
	c.Assert(err, qt.IsNil)
	c.Assert(enc.Weekday(), qt.Equals, uint8(time.Thursday))
}
