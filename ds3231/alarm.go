package ds3231

import "fmt"

// Alarm1Config is a trigger condition for alarm 1, which matches with
// seconds precision. The concrete types, from least to most specific:
// Alarm1EverySecond, Alarm1AtSeconds, Alarm1AtMinutesSeconds, Alarm1AtTime,
// Alarm1AtTimeOnDate, Alarm1AtTimeOnDay.
type Alarm1Config interface {
	// Validate checks the configuration's fields against the ranges the
	// registers can hold, before anything is encoded.
	Validate() error
	alarm1Config()
}

// Alarm2Config is a trigger condition for alarm 2. Alarm 2 has no seconds
// register and always matches at second zero of a minute. The concrete
// types: Alarm2EveryMinute, Alarm2AtMinutes, Alarm2AtTime,
// Alarm2AtTimeOnDate, Alarm2AtTimeOnDay.
type Alarm2Config interface {
	Validate() error
	alarm2Config()
}

// Alarm1EverySecond triggers once per second.
type Alarm1EverySecond struct{}

// Alarm1AtSeconds triggers when the seconds match.
type Alarm1AtSeconds struct {
	Seconds uint8
}

// Alarm1AtMinutesSeconds triggers when minutes and seconds match.
type Alarm1AtMinutesSeconds struct {
	Minutes uint8
	Seconds uint8
}

// Alarm1AtTime triggers daily when hours, minutes and seconds match.
// Meridiem selects the hour representation: Hour24 with Hours 0-23, or
// AM/PM with Hours 1-12.
type Alarm1AtTime struct {
	Hours    uint8
	Minutes  uint8
	Seconds  uint8
	Meridiem Meridiem
}

// Alarm1AtTimeOnDate triggers at the given time on a date of the month (1-31).
type Alarm1AtTimeOnDate struct {
	Hours    uint8
	Minutes  uint8
	Seconds  uint8
	Date     uint8
	Meridiem Meridiem
}

// Alarm1AtTimeOnDay triggers at the given time on a day of the week
// (1-7, 1=Sunday).
type Alarm1AtTimeOnDay struct {
	Hours    uint8
	Minutes  uint8
	Seconds  uint8
	Day      uint8
	Meridiem Meridiem
}

func (Alarm1EverySecond) alarm1Config()      {}
func (Alarm1AtSeconds) alarm1Config()        {}
func (Alarm1AtMinutesSeconds) alarm1Config() {}
func (Alarm1AtTime) alarm1Config()           {}
func (Alarm1AtTimeOnDate) alarm1Config()     {}
func (Alarm1AtTimeOnDay) alarm1Config()      {}

// Alarm2EveryMinute triggers once per minute, at second zero.
type Alarm2EveryMinute struct{}

// Alarm2AtMinutes triggers when the minutes match.
type Alarm2AtMinutes struct {
	Minutes uint8
}

// Alarm2AtTime triggers daily when hours and minutes match.
type Alarm2AtTime struct {
	Hours    uint8
	Minutes  uint8
	Meridiem Meridiem
}

// Alarm2AtTimeOnDate triggers at the given time on a date of the month (1-31).
type Alarm2AtTimeOnDate struct {
	Hours    uint8
	Minutes  uint8
	Date     uint8
	Meridiem Meridiem
}

// Alarm2AtTimeOnDay triggers at the given time on a day of the week
// (1-7, 1=Sunday).
type Alarm2AtTimeOnDay struct {
	Hours    uint8
	Minutes  uint8
	Day      uint8
	Meridiem Meridiem
}

func (Alarm2EveryMinute) alarm2Config()  {}
func (Alarm2AtMinutes) alarm2Config()    {}
func (Alarm2AtTime) alarm2Config()       {}
func (Alarm2AtTimeOnDate) alarm2Config() {}
func (Alarm2AtTimeOnDay) alarm2Config()  {}

func validateSeconds(seconds uint8) error {
	if seconds > 59 {
		return fmt.Errorf("%w: seconds %d", ErrOutOfRange, seconds)
	}
	return nil
}

func validateMinutes(minutes uint8) error {
	if minutes > 59 {
		return fmt.Errorf("%w: minutes %d", ErrOutOfRange, minutes)
	}
	return nil
}

func validateHours(hours uint8, m Meridiem) error {
	if m == Hour24 {
		if hours > 23 {
			return fmt.Errorf("%w: hours %d in 24-hour format", ErrOutOfRange, hours)
		}
		return nil
	}
	if hours == 0 || hours > 12 {
		return fmt.Errorf("%w: hours %d in 12-hour format", ErrOutOfRange, hours)
	}
	return nil
}

func validateDayOfWeek(day uint8) error {
	if day == 0 || day > 7 {
		return fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, day)
	}
	return nil
}

func validateDateOfMonth(date uint8) error {
	if date == 0 || date > 31 {
		return fmt.Errorf("%w: %d", ErrInvalidDateOfMonth, date)
	}
	return nil
}

func validateClockTime(hours, minutes uint8, m Meridiem) error {
	if err := validateMinutes(minutes); err != nil {
		return err
	}
	return validateHours(hours, m)
}

func (Alarm1EverySecond) Validate() error { return nil }

func (a Alarm1AtSeconds) Validate() error { return validateSeconds(a.Seconds) }

func (a Alarm1AtMinutesSeconds) Validate() error {
	if err := validateMinutes(a.Minutes); err != nil {
		return err
	}
	return validateSeconds(a.Seconds)
}

func (a Alarm1AtTime) Validate() error {
	if err := validateSeconds(a.Seconds); err != nil {
		return err
	}
	return validateClockTime(a.Hours, a.Minutes, a.Meridiem)
}

func (a Alarm1AtTimeOnDate) Validate() error {
	if err := validateSeconds(a.Seconds); err != nil {
		return err
	}
	if err := validateClockTime(a.Hours, a.Minutes, a.Meridiem); err != nil {
		return err
	}
	return validateDateOfMonth(a.Date)
}

func (a Alarm1AtTimeOnDay) Validate() error {
	if err := validateSeconds(a.Seconds); err != nil {
		return err
	}
	if err := validateClockTime(a.Hours, a.Minutes, a.Meridiem); err != nil {
		return err
	}
	return validateDayOfWeek(a.Day)
}

func (Alarm2EveryMinute) Validate() error { return nil }

func (a Alarm2AtMinutes) Validate() error { return validateMinutes(a.Minutes) }

func (a Alarm2AtTime) Validate() error {
	return validateClockTime(a.Hours, a.Minutes, a.Meridiem)
}

func (a Alarm2AtTimeOnDate) Validate() error {
	if err := validateClockTime(a.Hours, a.Minutes, a.Meridiem); err != nil {
		return err
	}
	return validateDateOfMonth(a.Date)
}

func (a Alarm2AtTimeOnDay) Validate() error {
	if err := validateClockTime(a.Hours, a.Minutes, a.Meridiem); err != nil {
		return err
	}
	return validateDayOfWeek(a.Day)
}

// Alarm1 is the register-backed form of the four alarm 1 registers.
type Alarm1 struct {
	Seconds AlarmSeconds
	Minutes AlarmMinutes
	Hours   AlarmHours
	DayDate AlarmDayDate
}

// Alarm2 is the register-backed form of the three alarm 2 registers.
type Alarm2 struct {
	Minutes AlarmMinutes
	Hours   AlarmHours
	DayDate AlarmDayDate
}

// Alarm1FromBytes wraps the four raw alarm 1 register bytes, in
// register-address order.
func Alarm1FromBytes(b [4]byte) Alarm1 {
	return Alarm1{
		Seconds: AlarmSeconds(b[0]),
		Minutes: AlarmMinutes(b[1]),
		Hours:   AlarmHours(b[2]),
		DayDate: AlarmDayDate(b[3]),
	}
}

// Bytes returns the raw alarm 1 register bytes in register-address order.
func (a Alarm1) Bytes() [4]byte {
	return [4]byte{uint8(a.Seconds), uint8(a.Minutes), uint8(a.Hours), uint8(a.DayDate)}
}

// Alarm2FromBytes wraps the three raw alarm 2 register bytes, in
// register-address order.
func Alarm2FromBytes(b [3]byte) Alarm2 {
	return Alarm2{
		Minutes: AlarmMinutes(b[0]),
		Hours:   AlarmHours(b[1]),
		DayDate: AlarmDayDate(b[2]),
	}
}

// Bytes returns the raw alarm 2 register bytes in register-address order.
func (a Alarm2) Bytes() [3]byte {
	return [3]byte{uint8(a.Minutes), uint8(a.Hours), uint8(a.DayDate)}
}

// alarmSecondsField packs a seconds value with the mask bit clear.
func alarmSecondsField(seconds uint8) (AlarmSeconds, error) {
	ones, tens, err := encodeBCD(seconds, 59)
	if err != nil {
		return 0, fmt.Errorf("encode alarm seconds: %w", err)
	}
	return AlarmSeconds(0).WithOnes(ones).WithTens(tens), nil
}

// alarmMinutesField packs a minutes value with the mask bit clear.
func alarmMinutesField(minutes uint8) (AlarmMinutes, error) {
	ones, tens, err := encodeBCD(minutes, 59)
	if err != nil {
		return 0, fmt.Errorf("encode alarm minutes: %w", err)
	}
	return AlarmMinutes(0).WithOnes(ones).WithTens(tens), nil
}

// alarmHoursField packs an hours value with the mask bit clear. With Hour24
// the hour of day 0-23 goes through the 24-hour packing; with AM or PM the
// hour is the literal 1-12 value and the PM bit carries the meridiem.
func alarmHoursField(hours uint8, m Meridiem) (AlarmHours, error) {
	if m == Hour24 {
		he, err := encodeHour(hours, TwentyFourHour)
		if err != nil {
			return 0, fmt.Errorf("encode alarm hours: %w", err)
		}
		return AlarmHours(0).
			WithTimeFormat(TwentyFourHour).
			WithPMOrTwenty(he.pmOrTwenty).
			WithTens(he.tens).
			WithOnes(he.ones), nil
	}

	ones, tens, err := encodeBCD(hours, 12)
	if err != nil {
		return 0, fmt.Errorf("encode alarm hours: %w", err)
	}
	pm := uint8(0)
	if m == PM {
		pm = 1
	}
	return AlarmHours(0).
		WithTimeFormat(TwelveHour).
		WithPMOrTwenty(pm).
		WithTens(tens).
		WithOnes(ones), nil
}

// alarmDayDateField packs the day/date register with the mask bit clear. A
// day of week is stored as a plain ordinal; a date of month is stored BCD.
func alarmDayDateField(dayOrDate uint8, sel DayDateSelect) (AlarmDayDate, error) {
	if sel == SelectDay {
		return AlarmDayDate(0).WithSelect(SelectDay).WithDayOrDate(dayOrDate), nil
	}
	ones, tens, err := encodeBCD(dayOrDate, 31)
	if err != nil {
		return 0, fmt.Errorf("encode alarm date: %w", err)
	}
	return AlarmDayDate(0).WithSelect(SelectDate).WithDayOrDate(ones).WithTenDate(tens), nil
}

// EncodeAlarm1 packs a trigger condition into the alarm 1 registers. Fields
// the condition does not match on are left zero with their mask bit set, the
// chip's don't-care convention.
func EncodeAlarm1(config Alarm1Config) (Alarm1, error) {
	if err := config.Validate(); err != nil {
		return Alarm1{}, err
	}

	var a Alarm1
	var err error
	switch c := config.(type) {
	case Alarm1EverySecond:
		a.Seconds = a.Seconds.WithMask(true)
		a.Minutes = a.Minutes.WithMask(true)
		a.Hours = a.Hours.WithMask(true)
		a.DayDate = a.DayDate.WithMask(true)

	case Alarm1AtSeconds:
		if a.Seconds, err = alarmSecondsField(c.Seconds); err != nil {
			return Alarm1{}, err
		}
		a.Minutes = a.Minutes.WithMask(true)
		a.Hours = a.Hours.WithMask(true)
		a.DayDate = a.DayDate.WithMask(true)

	case Alarm1AtMinutesSeconds:
		if a.Seconds, err = alarmSecondsField(c.Seconds); err != nil {
			return Alarm1{}, err
		}
		if a.Minutes, err = alarmMinutesField(c.Minutes); err != nil {
			return Alarm1{}, err
		}
		a.Hours = a.Hours.WithMask(true)
		a.DayDate = a.DayDate.WithMask(true)

	case Alarm1AtTime:
		if a, err = alarm1TimeFields(c.Hours, c.Minutes, c.Seconds, c.Meridiem); err != nil {
			return Alarm1{}, err
		}
		a.DayDate = a.DayDate.WithMask(true)

	case Alarm1AtTimeOnDate:
		if a, err = alarm1TimeFields(c.Hours, c.Minutes, c.Seconds, c.Meridiem); err != nil {
			return Alarm1{}, err
		}
		if a.DayDate, err = alarmDayDateField(c.Date, SelectDate); err != nil {
			return Alarm1{}, err
		}

	case Alarm1AtTimeOnDay:
		if a, err = alarm1TimeFields(c.Hours, c.Minutes, c.Seconds, c.Meridiem); err != nil {
			return Alarm1{}, err
		}
		if a.DayDate, err = alarmDayDateField(c.Day, SelectDay); err != nil {
			return Alarm1{}, err
		}

	default:
		return Alarm1{}, fmt.Errorf("%w: unknown alarm 1 config %T", ErrInvalidAlarmMask, config)
	}
	return a, nil
}

// alarm1TimeFields fills seconds, minutes and hours with their masks clear.
func alarm1TimeFields(hours, minutes, seconds uint8, m Meridiem) (Alarm1, error) {
	var a Alarm1
	var err error
	if a.Seconds, err = alarmSecondsField(seconds); err != nil {
		return Alarm1{}, err
	}
	if a.Minutes, err = alarmMinutesField(minutes); err != nil {
		return Alarm1{}, err
	}
	if a.Hours, err = alarmHoursField(hours, m); err != nil {
		return Alarm1{}, err
	}
	return a, nil
}

// EncodeAlarm2 packs a trigger condition into the alarm 2 registers.
func EncodeAlarm2(config Alarm2Config) (Alarm2, error) {
	if err := config.Validate(); err != nil {
		return Alarm2{}, err
	}

	var a Alarm2
	var err error
	switch c := config.(type) {
	case Alarm2EveryMinute:
		a.Minutes = a.Minutes.WithMask(true)
		a.Hours = a.Hours.WithMask(true)
		a.DayDate = a.DayDate.WithMask(true)

	case Alarm2AtMinutes:
		if a.Minutes, err = alarmMinutesField(c.Minutes); err != nil {
			return Alarm2{}, err
		}
		a.Hours = a.Hours.WithMask(true)
		a.DayDate = a.DayDate.WithMask(true)

	case Alarm2AtTime:
		if a, err = alarm2TimeFields(c.Hours, c.Minutes, c.Meridiem); err != nil {
			return Alarm2{}, err
		}
		a.DayDate = a.DayDate.WithMask(true)

	case Alarm2AtTimeOnDate:
		if a, err = alarm2TimeFields(c.Hours, c.Minutes, c.Meridiem); err != nil {
			return Alarm2{}, err
		}
		if a.DayDate, err = alarmDayDateField(c.Date, SelectDate); err != nil {
			return Alarm2{}, err
		}

	case Alarm2AtTimeOnDay:
		if a, err = alarm2TimeFields(c.Hours, c.Minutes, c.Meridiem); err != nil {
			return Alarm2{}, err
		}
		if a.DayDate, err = alarmDayDateField(c.Day, SelectDay); err != nil {
			return Alarm2{}, err
		}

	default:
		return Alarm2{}, fmt.Errorf("%w: unknown alarm 2 config %T", ErrInvalidAlarmMask, config)
	}
	return a, nil
}

func alarm2TimeFields(hours, minutes uint8, m Meridiem) (Alarm2, error) {
	var a Alarm2
	var err error
	if a.Minutes, err = alarmMinutesField(minutes); err != nil {
		return Alarm2{}, err
	}
	if a.Hours, err = alarmHoursField(hours, m); err != nil {
		return Alarm2{}, err
	}
	return a, nil
}

// decodeAlarmSeconds unpacks an alarm seconds register's value bits.
func decodeAlarmSeconds(r AlarmSeconds) (uint8, error) {
	v, err := decodeBCD(r.Ones(), r.Tens(), 59)
	if err != nil {
		return 0, fmt.Errorf("decode alarm seconds: %w", err)
	}
	return v, nil
}

func decodeAlarmMinutes(r AlarmMinutes) (uint8, error) {
	v, err := decodeBCD(r.Ones(), r.Tens(), 59)
	if err != nil {
		return 0, fmt.Errorf("decode alarm minutes: %w", err)
	}
	return v, nil
}

// decodeAlarmHours unpacks an alarm hours register. In 24-hour format it
// returns the hour of day 0-23 and Hour24; in 12-hour format the literal
// 1-12 value and the stored meridiem.
func decodeAlarmHours(r AlarmHours) (uint8, Meridiem, error) {
	if r.TimeFormat() == TwentyFourHour {
		hour, err := hourEncoding{
			ones:       r.Ones(),
			tens:       r.Tens(),
			pmOrTwenty: r.PMOrTwenty(),
			format:     TwentyFourHour,
		}.hourOfDay()
		if err != nil {
			return 0, Hour24, fmt.Errorf("decode alarm hours: %w", err)
		}
		return hour, Hour24, nil
	}

	hour, err := decodeBCD(r.Ones(), r.Tens(), 12)
	if err != nil {
		return 0, Hour24, fmt.Errorf("decode alarm hours: %w", err)
	}
	if hour == 0 {
		return 0, Hour24, fmt.Errorf("decode alarm hours: %w: 0 in 12-hour format", ErrInvalidHour)
	}
	if r.PMOrTwenty() != 0 {
		return hour, PM, nil
	}
	return hour, AM, nil
}

// decodeAlarmDate unpacks the day/date register in date mode.
func decodeAlarmDate(r AlarmDayDate) (uint8, error) {
	date, err := decodeBCD(r.DayOrDate(), r.TenDate(), 31)
	if err != nil {
		return 0, fmt.Errorf("decode alarm date: %w", err)
	}
	if date == 0 {
		return 0, fmt.Errorf("decode alarm date: %w: 0", ErrInvalidBCD)
	}
	return date, nil
}

// Config recovers the trigger condition from the alarm 1 registers. The four
// mask bits select the condition; only the chip's six defined combinations
// decode, anything else fails with ErrInvalidAlarmMask.
func (a Alarm1) Config() (Alarm1Config, error) {
	m1, m2, m3, m4 := a.Seconds.Mask(), a.Minutes.Mask(), a.Hours.Mask(), a.DayDate.Mask()

	switch {
	case m1 && m2 && m3 && m4:
		return Alarm1EverySecond{}, nil

	case !m1 && m2 && m3 && m4:
		seconds, err := decodeAlarmSeconds(a.Seconds)
		if err != nil {
			return nil, err
		}
		return Alarm1AtSeconds{Seconds: seconds}, nil

	case !m1 && !m2 && m3 && m4:
		seconds, err := decodeAlarmSeconds(a.Seconds)
		if err != nil {
			return nil, err
		}
		minutes, err := decodeAlarmMinutes(a.Minutes)
		if err != nil {
			return nil, err
		}
		return Alarm1AtMinutesSeconds{Minutes: minutes, Seconds: seconds}, nil

	case !m1 && !m2 && !m3 && m4:
		seconds, minutes, hours, m, err := a.timeFields()
		if err != nil {
			return nil, err
		}
		return Alarm1AtTime{Hours: hours, Minutes: minutes, Seconds: seconds, Meridiem: m}, nil

	case !m1 && !m2 && !m3 && !m4:
		seconds, minutes, hours, m, err := a.timeFields()
		if err != nil {
			return nil, err
		}
		if a.DayDate.Select() == SelectDay {
			return Alarm1AtTimeOnDay{
				Hours:    hours,
				Minutes:  minutes,
				Seconds:  seconds,
				Day:      a.DayDate.DayOrDate(),
				Meridiem: m,
			}, nil
		}
		date, err := decodeAlarmDate(a.DayDate)
		if err != nil {
			return nil, err
		}
		return Alarm1AtTimeOnDate{
			Hours:    hours,
			Minutes:  minutes,
			Seconds:  seconds,
			Date:     date,
			Meridiem: m,
		}, nil

	default:
		return nil, fmt.Errorf("%w: A1M1=%t A1M2=%t A1M3=%t A1M4=%t",
			ErrInvalidAlarmMask, m1, m2, m3, m4)
	}
}

func (a Alarm1) timeFields() (seconds, minutes, hours uint8, m Meridiem, err error) {
	if seconds, err = decodeAlarmSeconds(a.Seconds); err != nil {
		return
	}
	if minutes, err = decodeAlarmMinutes(a.Minutes); err != nil {
		return
	}
	hours, m, err = decodeAlarmHours(a.Hours)
	return
}

// Config recovers the trigger condition from the alarm 2 registers. Only the
// chip's five defined mask combinations decode.
func (a Alarm2) Config() (Alarm2Config, error) {
	m2, m3, m4 := a.Minutes.Mask(), a.Hours.Mask(), a.DayDate.Mask()

	switch {
	case m2 && m3 && m4:
		return Alarm2EveryMinute{}, nil

	case !m2 && m3 && m4:
		minutes, err := decodeAlarmMinutes(a.Minutes)
		if err != nil {
			return nil, err
		}
		return Alarm2AtMinutes{Minutes: minutes}, nil

	case !m2 && !m3 && m4:
		minutes, hours, m, err := a.timeFields()
		if err != nil {
			return nil, err
		}
		return Alarm2AtTime{Hours: hours, Minutes: minutes, Meridiem: m}, nil

	case !m2 && !m3 && !m4:
		minutes, hours, m, err := a.timeFields()
		if err != nil {
			return nil, err
		}
		if a.DayDate.Select() == SelectDay {
			return Alarm2AtTimeOnDay{
				Hours:    hours,
				Minutes:  minutes,
				Day:      a.DayDate.DayOrDate(),
				Meridiem: m,
			}, nil
		}
		date, err := decodeAlarmDate(a.DayDate)
		if err != nil {
			return nil, err
		}
		return Alarm2AtTimeOnDate{
			Hours:    hours,
			Minutes:  minutes,
			Date:     date,
			Meridiem: m,
		}, nil

	default:
		return nil, fmt.Errorf("%w: A2M2=%t A2M3=%t A2M4=%t",
			ErrInvalidAlarmMask, m2, m3, m4)
	}
}

func (a Alarm2) timeFields() (minutes, hours uint8, m Meridiem, err error) {
	if minutes, err = decodeAlarmMinutes(a.Minutes); err != nil {
		return
	}
	hours, m, err = decodeAlarmHours(a.Hours)
	return
}
