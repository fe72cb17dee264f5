package ds3231

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEncodeBCD(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name  string
		value uint8
		max   uint8
		ones  uint8
		tens  uint8
		err   error
	}{
		{name: "zero", value: 0, max: 59, ones: 0, tens: 0},
		{name: "single digit", value: 7, max: 59, ones: 7, tens: 0},
		{name: "two digits", value: 42, max: 59, ones: 2, tens: 4},
		{name: "at max", value: 59, max: 59, ones: 9, tens: 5},
		{name: "above max", value: 60, max: 59, err: ErrOutOfRange},
		{name: "date at max", value: 31, max: 31, ones: 1, tens: 3},
		{name: "date above max", value: 32, max: 31, err: ErrOutOfRange},
	}
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			ones, tens, err := encodeBCD(tt.value, tt.max)
			if tt.err != nil {
				c.Assert(errors.Is(err, tt.err), qt.Equals, true)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(ones, qt.Equals, tt.ones)
			c.Assert(tens, qt.Equals, tt.tens)
		})
	}
}

func TestDecodeBCD(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name  string
		ones  uint8
		tens  uint8
		max   uint8
		value uint8
		err   error
	}{
		{name: "zero", ones: 0, tens: 0, max: 59, value: 0},
		{name: "two digits", ones: 2, tens: 4, max: 59, value: 42},
		{name: "at max", ones: 9, tens: 5, max: 59, value: 59},
		{name: "ones not a digit", ones: 0xA, tens: 0, max: 59, err: ErrInvalidBCD},
		{name: "composed above max", ones: 0, tens: 6, max: 59, err: ErrInvalidBCD},
		{name: "month above max", ones: 3, tens: 1, max: 12, err: ErrInvalidBCD},
	}
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			v, err := decodeBCD(tt.ones, tt.tens, tt.max)
			if tt.err != nil {
				c.Assert(errors.Is(err, tt.err), qt.Equals, true)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(v, qt.Equals, tt.value)
		})
	}
}

func TestBCDRoundTrip(t *testing.T) {
	c := qt.New(t)

	for v := uint8(0); v <= 59; v++ {
		ones, tens, err := encodeBCD(v, 59)
		c.Assert(err, qt.IsNil)
		got, err := decodeBCD(ones, tens, 59)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, v)
	}
}
