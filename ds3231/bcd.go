package ds3231

import "fmt"

// encodeBCD splits value into its BCD ones and tens digits. max is the
// largest value the destination field may hold (59 for seconds and minutes,
// 31 for dates, 12 for months).
func encodeBCD(value, max uint8) (ones, tens uint8, err error) {
	if value > max {
		return 0, 0, fmt.Errorf("%w: %d > %d", ErrOutOfRange, value, max)
	}
	return value % 10, value / 10, nil
}

// decodeBCD recombines a BCD digit pair read from a register. The digits are
// checked individually (a nibble above 9 is not a decimal digit) and the
// composed value is checked against the field's maximum, so a corrupt
// register fails loudly instead of decoding to a nearby number.
func decodeBCD(ones, tens, max uint8) (uint8, error) {
	if ones > 9 {
		return 0, fmt.Errorf("%w: ones digit %d", ErrInvalidBCD, ones)
	}
	value := tens*10 + ones
	if value > max {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidBCD, value, max)
	}
	return value, nil
}
