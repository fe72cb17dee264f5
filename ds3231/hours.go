package ds3231

import "fmt"

// Meridiem says how an alarm's hour field is to be interpreted. Hour24 means
// a 24-hour clock (hours 0-23); AM and PM mean a 12-hour clock (hours 1-12)
// with the given half of the day.
type Meridiem uint8

const (
	Hour24 Meridiem = iota
	AM
	PM
)

func (m Meridiem) String() string {
	switch m {
	case Hour24:
		return "24h"
	case AM:
		return "AM"
	case PM:
		return "PM"
	}
	return "invalid"
}

// hourEncoding is the unpacked form of an hours register's value bits. It
// only exists in flight between an hour of day and the register layout.
type hourEncoding struct {
	ones       uint8
	tens       uint8
	pmOrTwenty uint8
	format     TimeFormat
}

// encodeHour converts an hour of day (0-23) into register bits for the given
// format. In 24-hour format the tens and twenty-hours bits are independent
// flags, one per decade, never both set for a valid hour. In 12-hour format
// the hour is first folded onto the 1-12 clock (0 becomes 12 AM, 12 stays
// 12 PM) and the PM bit carries the meridiem.
func encodeHour(hour uint8, format TimeFormat) (hourEncoding, error) {
	if hour > 23 {
		return hourEncoding{}, fmt.Errorf("%w: hour %d", ErrOutOfRange, hour)
	}
	if format == TwentyFourHour {
		return hourEncoding{
			ones:       hour % 10,
			tens:       hour / 10 & 0x01,
			pmOrTwenty: hour / 10 >> 1 & 0x01,
			format:     TwentyFourHour,
		}, nil
	}

	h, pm := hour, uint8(0)
	switch {
	case h == 0:
		h = 12
	case h == 12:
		pm = 1
	case h > 12:
		h -= 12
		pm = 1
	}
	return hourEncoding{
		ones:       h % 10,
		tens:       h / 10,
		pmOrTwenty: pm,
		format:     TwelveHour,
	}, nil
}

// hourOfDay converts register bits back to an hour of day (0-23), branching
// on the stored format bit.
func (e hourEncoding) hourOfDay() (uint8, error) {
	if e.ones > 9 {
		return 0, fmt.Errorf("%w: hours ones digit %d", ErrInvalidBCD, e.ones)
	}
	if e.format == TwentyFourHour {
		hour := e.pmOrTwenty*20 + e.tens*10 + e.ones
		if hour > 23 {
			return 0, fmt.Errorf("%w: %d in 24-hour format", ErrInvalidHour, hour)
		}
		return hour, nil
	}

	h := e.tens*10 + e.ones
	if h == 0 || h > 12 {
		return 0, fmt.Errorf("%w: %d in 12-hour format", ErrInvalidHour, h)
	}
	// Unfold the 1-12 clock: 12 AM is midnight, 12 PM is noon.
	if e.pmOrTwenty == 0 {
		if h == 12 {
			return 0, nil
		}
		return h, nil
	}
	if h == 12 {
		return 12, nil
	}
	return h + 12, nil
}
