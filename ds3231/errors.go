package ds3231

import "errors"

// Errors reported by the register codecs. Encode paths reject out-of-range
// domain values before any register byte is produced; decode paths reject
// register bytes that don't represent a valid value. All are wrapped with the
// offending number, so use errors.Is to classify.
var (
	// ErrOutOfRange means a value to encode exceeds what its register field can hold.
	ErrOutOfRange = errors.New("ds3231: value out of range")
	// ErrYearTooEarly means a year before 2000, which the chip cannot store.
	ErrYearTooEarly = errors.New("ds3231: year must be 2000 or later")
	// ErrYearTooLate means a year after 2199, which the chip cannot store.
	ErrYearTooLate = errors.New("ds3231: year must be before 2200")
	// ErrInvalidBCD means a register's digit pair does not form a valid decimal value.
	ErrInvalidBCD = errors.New("ds3231: invalid BCD value")
	// ErrInvalidHour means an hours register is inconsistent with its 12/24-hour mode bit.
	ErrInvalidHour = errors.New("ds3231: invalid hour value")
	// ErrInvalidDateTime means decoded registers do not form a real calendar instant.
	ErrInvalidDateTime = errors.New("ds3231: invalid date/time")
	// ErrInvalidAlarmMask means the alarm mask bits match none of the chip's defined alarm modes.
	ErrInvalidAlarmMask = errors.New("ds3231: invalid alarm mask combination")
	// ErrInvalidDayOfWeek means an alarm day-of-week outside 1-7.
	ErrInvalidDayOfWeek = errors.New("ds3231: day of week must be 1-7")
	// ErrInvalidDateOfMonth means an alarm date-of-month outside 1-31.
	ErrInvalidDateOfMonth = errors.New("ds3231: date of month must be 1-31")
)
