package ds3231

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEncodeHour24(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		hour       uint8
		ones       uint8
		tens       uint8
		pmOrTwenty uint8
	}{
		{hour: 0, ones: 0, tens: 0, pmOrTwenty: 0},
		{hour: 9, ones: 9, tens: 0, pmOrTwenty: 0},
		{hour: 10, ones: 0, tens: 1, pmOrTwenty: 0},
		{hour: 19, ones: 9, tens: 1, pmOrTwenty: 0},
		{hour: 20, ones: 0, tens: 0, pmOrTwenty: 1},
		{hour: 23, ones: 3, tens: 0, pmOrTwenty: 1},
	}
	for _, tt := range tests {
		he, err := encodeHour(tt.hour, TwentyFourHour)
		c.Assert(err, qt.IsNil)
		c.Assert(he, qt.Equals, hourEncoding{
			ones:       tt.ones,
			tens:       tt.tens,
			pmOrTwenty: tt.pmOrTwenty,
			format:     TwentyFourHour,
		})
	}
}

func TestEncodeHour12(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		hour       uint8
		ones       uint8
		tens       uint8
		pmOrTwenty uint8
	}{
		// Midnight folds onto 12 AM, noon stays 12 PM.
		{hour: 0, ones: 2, tens: 1, pmOrTwenty: 0},
		{hour: 1, ones: 1, tens: 0, pmOrTwenty: 0},
		{hour: 11, ones: 1, tens: 1, pmOrTwenty: 0},
		{hour: 12, ones: 2, tens: 1, pmOrTwenty: 1},
		{hour: 13, ones: 1, tens: 0, pmOrTwenty: 1},
		{hour: 23, ones: 1, tens: 1, pmOrTwenty: 1},
	}
	for _, tt := range tests {
		he, err := encodeHour(tt.hour, TwelveHour)
		c.Assert(err, qt.IsNil)
		c.Assert(he, qt.Equals, hourEncoding{
			ones:       tt.ones,
			tens:       tt.tens,
			pmOrTwenty: tt.pmOrTwenty,
			format:     TwelveHour,
		})
	}
}

func TestEncodeHourOutOfRange(t *testing.T) {
	c := qt.New(t)

	_, err := encodeHour(24, TwentyFourHour)
	c.Assert(errors.Is(err, ErrOutOfRange), qt.Equals, true)
	_, err = encodeHour(24, TwelveHour)
	c.Assert(errors.Is(err, ErrOutOfRange), qt.Equals, true)
}

func TestHourRoundTrip(t *testing.T) {
	c := qt.New(t)

	for _, format := range []TimeFormat{TwentyFourHour, TwelveHour} {
		for hour := uint8(0); hour <= 23; hour++ {
			he, err := encodeHour(hour, format)
			c.Assert(err, qt.IsNil)
			got, err := he.hourOfDay()
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, hour)
		}
	}
}

func TestHourOfDayInvalid(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		he   hourEncoding
		err  error
	}{
		{
			name: "ones not a digit",
			he:   hourEncoding{ones: 0xF, format: TwentyFourHour},
			err:  ErrInvalidBCD,
		},
		{
			name: "24-hour both decade bits",
			he:   hourEncoding{ones: 5, tens: 1, pmOrTwenty: 1, format: TwentyFourHour},
			err:  ErrInvalidHour,
		},
		{
			name: "12-hour zero",
			he:   hourEncoding{ones: 0, tens: 0, format: TwelveHour},
			err:  ErrInvalidHour,
		},
		{
			name: "12-hour thirteen",
			he:   hourEncoding{ones: 3, tens: 1, format: TwelveHour},
			err:  ErrInvalidHour,
		},
	}
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			_, err := tt.he.hourOfDay()
			c.Assert(errors.Is(err, tt.err), qt.Equals, true)
		})
	}
}
