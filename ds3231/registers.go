package ds3231

// Address is the fixed I2C address of the DS3231.
const Address = 0x68

// Register addresses. The time/date registers (RegSeconds..RegYear) and each
// alarm bank are contiguous so they can be transferred in one burst.
const (
	RegSeconds       = 0x00
	RegMinutes       = 0x01
	RegHours         = 0x02
	RegDay           = 0x03
	RegDate          = 0x04
	RegMonth         = 0x05
	RegYear          = 0x06
	RegAlarm1Seconds = 0x07
	RegAlarm1Minutes = 0x08
	RegAlarm1Hours   = 0x09
	RegAlarm1DayDate = 0x0A
	RegAlarm2Minutes = 0x0B
	RegAlarm2Hours   = 0x0C
	RegAlarm2DayDate = 0x0D
	RegControl       = 0x0E
	RegStatus        = 0x0F
	RegAgingOffset   = 0x10
	RegTempMSB       = 0x11
	RegTempLSB       = 0x12
)

// TimeFormat selects how the hours registers store the hour of day.
type TimeFormat uint8

const (
	// TwentyFourHour stores hours 0-23 with a tens bit and a twenty-hours bit.
	TwentyFourHour TimeFormat = 0
	// TwelveHour stores hours 1-12 with an AM/PM bit.
	TwelveHour TimeFormat = 1
)

// Oscillator controls whether the clock keeps running on battery power.
type Oscillator uint8

const (
	OscillatorEnabled  Oscillator = 0
	OscillatorDisabled Oscillator = 1
)

// InterruptControl selects the function of the INT/SQW pin.
type InterruptControl uint8

const (
	// OutputSquareWave outputs a square wave at the configured frequency.
	OutputSquareWave InterruptControl = 0
	// OutputInterrupt pulls the pin low when an enabled alarm triggers.
	OutputInterrupt InterruptControl = 1
)

// SquareWaveFrequency is the square wave output rate on the INT/SQW pin.
type SquareWaveFrequency uint8

const (
	Freq1Hz    SquareWaveFrequency = 0b00
	Freq1024Hz SquareWaveFrequency = 0b01
	Freq4096Hz SquareWaveFrequency = 0b10
	Freq8192Hz SquareWaveFrequency = 0b11
)

// DayDateSelect chooses whether an alarm's day/date register matches the date
// of the month (1-31) or the day of the week (1-7, 1=Sunday).
type DayDateSelect uint8

const (
	SelectDate DayDateSelect = 0
	SelectDay  DayDateSelect = 1
)

// Each register kind below wraps one raw byte. They are plain value types:
// constructed from a byte read off the bus (or zero), inspected with the
// getters, and rebuilt with the With* copies. Bit ranges follow the datasheet.

// Seconds is the seconds register: tens digit in bits 6:4, ones digit in bits 3:0.
type Seconds uint8

func (r Seconds) Ones() uint8 { return uint8(r) & 0x0F }
func (r Seconds) Tens() uint8 { return uint8(r) >> 4 & 0x07 }

func (r Seconds) WithOnes(v uint8) Seconds { return r&^0x0F | Seconds(v&0x0F) }
func (r Seconds) WithTens(v uint8) Seconds { return r&^0x70 | Seconds(v&0x07)<<4 }

// Minutes is the minutes register, laid out like Seconds.
type Minutes uint8

func (r Minutes) Ones() uint8 { return uint8(r) & 0x0F }
func (r Minutes) Tens() uint8 { return uint8(r) >> 4 & 0x07 }

func (r Minutes) WithOnes(v uint8) Minutes { return r&^0x0F | Minutes(v&0x0F) }
func (r Minutes) WithTens(v uint8) Minutes { return r&^0x70 | Minutes(v&0x07)<<4 }

// Hours is the hours register: format bit 6, PM-or-twenty-hours bit 5, tens
// bit 4, ones in bits 3:0. Bit 5 is the AM/PM flag in 12-hour format and the
// twenty-hours bit in 24-hour format; bits 4 and 5 are independent flags, not
// a two-bit tens count.
type Hours uint8

func (r Hours) Ones() uint8            { return uint8(r) & 0x0F }
func (r Hours) Tens() uint8            { return uint8(r) >> 4 & 0x01 }
func (r Hours) PMOrTwenty() uint8      { return uint8(r) >> 5 & 0x01 }
func (r Hours) TimeFormat() TimeFormat { return TimeFormat(uint8(r) >> 6 & 0x01) }

func (r Hours) WithOnes(v uint8) Hours       { return r&^0x0F | Hours(v&0x0F) }
func (r Hours) WithTens(v uint8) Hours       { return r&^0x10 | Hours(v&0x01)<<4 }
func (r Hours) WithPMOrTwenty(v uint8) Hours { return r&^0x20 | Hours(v&0x01)<<5 }
func (r Hours) WithTimeFormat(f TimeFormat) Hours {
	return r&^0x40 | Hours(f&0x01)<<6
}

// Day is the day-of-week register: a plain ordinal in bits 2:0, no BCD.
type Day uint8

func (r Day) Day() uint8 { return uint8(r) & 0x07 }

func (r Day) WithDay(v uint8) Day { return r&^0x07 | Day(v&0x07) }

// Date is the date-of-month register: tens digit in bits 5:4, ones in bits 3:0.
type Date uint8

func (r Date) Ones() uint8 { return uint8(r) & 0x0F }
func (r Date) Tens() uint8 { return uint8(r) >> 4 & 0x03 }

func (r Date) WithOnes(v uint8) Date { return r&^0x0F | Date(v&0x0F) }
func (r Date) WithTens(v uint8) Date { return r&^0x30 | Date(v&0x03)<<4 }

// Month is the month register: century flag in bit 7, tens digit in bit 4,
// ones in bits 3:0. The century flag means the year register holds an offset
// from 2100 instead of 2000.
type Month uint8

func (r Month) Ones() uint8   { return uint8(r) & 0x0F }
func (r Month) Tens() uint8   { return uint8(r) >> 4 & 0x01 }
func (r Month) Century() bool { return r&0x80 != 0 }

func (r Month) WithOnes(v uint8) Month { return r&^0x0F | Month(v&0x0F) }
func (r Month) WithTens(v uint8) Month { return r&^0x10 | Month(v&0x01)<<4 }
func (r Month) WithCentury(set bool) Month {
	if set {
		return r | 0x80
	}
	return r &^ 0x80
}

// Year is the year register: tens digit in bits 7:4, ones in bits 3:0,
// counting from 2000 (or 2100 with the century flag).
type Year uint8

func (r Year) Ones() uint8 { return uint8(r) & 0x0F }
func (r Year) Tens() uint8 { return uint8(r) >> 4 }

func (r Year) WithOnes(v uint8) Year { return r&^0x0F | Year(v&0x0F) }
func (r Year) WithTens(v uint8) Year { return r&^0xF0 | Year(v&0x0F)<<4 }

// AlarmSeconds is the alarm 1 seconds register: mask bit A1M1 in bit 7 above
// the Seconds layout.
type AlarmSeconds uint8

func (r AlarmSeconds) Mask() bool  { return r&0x80 != 0 }
func (r AlarmSeconds) Ones() uint8 { return uint8(r) & 0x0F }
func (r AlarmSeconds) Tens() uint8 { return uint8(r) >> 4 & 0x07 }

func (r AlarmSeconds) WithOnes(v uint8) AlarmSeconds { return r&^0x0F | AlarmSeconds(v&0x0F) }
func (r AlarmSeconds) WithTens(v uint8) AlarmSeconds { return r&^0x70 | AlarmSeconds(v&0x07)<<4 }
func (r AlarmSeconds) WithMask(set bool) AlarmSeconds {
	if set {
		return r | 0x80
	}
	return r &^ 0x80
}

// AlarmMinutes is the alarm minutes register (both alarms): mask bit A1M2/A2M2
// in bit 7 above the Minutes layout.
type AlarmMinutes uint8

func (r AlarmMinutes) Mask() bool  { return r&0x80 != 0 }
func (r AlarmMinutes) Ones() uint8 { return uint8(r) & 0x0F }
func (r AlarmMinutes) Tens() uint8 { return uint8(r) >> 4 & 0x07 }

func (r AlarmMinutes) WithOnes(v uint8) AlarmMinutes { return r&^0x0F | AlarmMinutes(v&0x0F) }
func (r AlarmMinutes) WithTens(v uint8) AlarmMinutes { return r&^0x70 | AlarmMinutes(v&0x07)<<4 }
func (r AlarmMinutes) WithMask(set bool) AlarmMinutes {
	if set {
		return r | 0x80
	}
	return r &^ 0x80
}

// AlarmHours is the alarm hours register (both alarms): mask bit A1M3/A2M3 in
// bit 7 above the Hours layout.
type AlarmHours uint8

func (r AlarmHours) Mask() bool             { return r&0x80 != 0 }
func (r AlarmHours) Ones() uint8            { return uint8(r) & 0x0F }
func (r AlarmHours) Tens() uint8            { return uint8(r) >> 4 & 0x01 }
func (r AlarmHours) PMOrTwenty() uint8      { return uint8(r) >> 5 & 0x01 }
func (r AlarmHours) TimeFormat() TimeFormat { return TimeFormat(uint8(r) >> 6 & 0x01) }

func (r AlarmHours) WithOnes(v uint8) AlarmHours       { return r&^0x0F | AlarmHours(v&0x0F) }
func (r AlarmHours) WithTens(v uint8) AlarmHours       { return r&^0x10 | AlarmHours(v&0x01)<<4 }
func (r AlarmHours) WithPMOrTwenty(v uint8) AlarmHours { return r&^0x20 | AlarmHours(v&0x01)<<5 }
func (r AlarmHours) WithTimeFormat(f TimeFormat) AlarmHours {
	return r&^0x40 | AlarmHours(f&0x01)<<6
}
func (r AlarmHours) WithMask(set bool) AlarmHours {
	if set {
		return r | 0x80
	}
	return r &^ 0x80
}

// AlarmDayDate is the alarm day/date register (both alarms): mask bit
// A1M4/A2M4 in bit 7, DY/DT select in bit 6, date tens digit in bits 5:4
// (date mode only), day ordinal or date ones digit in bits 3:0.
type AlarmDayDate uint8

func (r AlarmDayDate) Mask() bool            { return r&0x80 != 0 }
func (r AlarmDayDate) Select() DayDateSelect { return DayDateSelect(uint8(r) >> 6 & 0x01) }
func (r AlarmDayDate) DayOrDate() uint8      { return uint8(r) & 0x0F }
func (r AlarmDayDate) TenDate() uint8        { return uint8(r) >> 4 & 0x03 }

func (r AlarmDayDate) WithDayOrDate(v uint8) AlarmDayDate { return r&^0x0F | AlarmDayDate(v&0x0F) }
func (r AlarmDayDate) WithTenDate(v uint8) AlarmDayDate   { return r&^0x30 | AlarmDayDate(v&0x03)<<4 }
func (r AlarmDayDate) WithSelect(s DayDateSelect) AlarmDayDate {
	return r&^0x40 | AlarmDayDate(s&0x01)<<6
}
func (r AlarmDayDate) WithMask(set bool) AlarmDayDate {
	if set {
		return r | 0x80
	}
	return r &^ 0x80
}

// Control is the control register at 0x0E.
type Control uint8

func (r Control) Oscillator() Oscillator { return Oscillator(uint8(r) >> 7 & 0x01) }
func (r Control) BatteryBackedSquareWave() bool {
	return r&0x40 != 0
}
func (r Control) ConvertTemperature() bool { return r&0x20 != 0 }
func (r Control) SquareWaveFrequency() SquareWaveFrequency {
	return SquareWaveFrequency(uint8(r) >> 3 & 0x03)
}
func (r Control) InterruptControl() InterruptControl {
	return InterruptControl(uint8(r) >> 2 & 0x01)
}
func (r Control) Alarm2InterruptEnabled() bool { return r&0x02 != 0 }
func (r Control) Alarm1InterruptEnabled() bool { return r&0x01 != 0 }

func (r Control) WithOscillator(o Oscillator) Control {
	return r&^0x80 | Control(o&0x01)<<7
}
func (r Control) WithBatteryBackedSquareWave(set bool) Control { return r.withBit(0x40, set) }
func (r Control) WithConvertTemperature(set bool) Control      { return r.withBit(0x20, set) }
func (r Control) WithSquareWaveFrequency(f SquareWaveFrequency) Control {
	return r&^0x18 | Control(f&0x03)<<3
}
func (r Control) WithInterruptControl(ic InterruptControl) Control {
	return r&^0x04 | Control(ic&0x01)<<2
}
func (r Control) WithAlarm2InterruptEnabled(set bool) Control { return r.withBit(0x02, set) }
func (r Control) WithAlarm1InterruptEnabled(set bool) Control { return r.withBit(0x01, set) }

func (r Control) withBit(mask Control, set bool) Control {
	if set {
		return r | mask
	}
	return r &^ mask
}

// Status is the control/status register at 0x0F.
type Status uint8

func (r Status) OscillatorStopped() bool { return r&0x80 != 0 }
func (r Status) Output32kHzEnabled() bool {
	return r&0x08 != 0
}
func (r Status) Busy() bool            { return r&0x04 != 0 }
func (r Status) Alarm2Triggered() bool { return r&0x02 != 0 }
func (r Status) Alarm1Triggered() bool { return r&0x01 != 0 }

func (r Status) WithOscillatorStopped(set bool) Status  { return r.withBit(0x80, set) }
func (r Status) WithOutput32kHzEnabled(set bool) Status { return r.withBit(0x08, set) }
func (r Status) WithAlarm2Triggered(set bool) Status    { return r.withBit(0x02, set) }
func (r Status) WithAlarm1Triggered(set bool) Status    { return r.withBit(0x01, set) }

func (r Status) withBit(mask Status, set bool) Status {
	if set {
		return r | mask
	}
	return r &^ mask
}

// AgingOffset is the aging offset register: a signed capacitance trim.
type AgingOffset uint8

func (r AgingOffset) Offset() int8 { return int8(r) }

func (r AgingOffset) WithOffset(v int8) AgingOffset { return AgingOffset(v) }

// Temperature is the temperature MSB: signed whole degrees Celsius.
type Temperature uint8

func (r Temperature) Degrees() int8 { return int8(r) }

// TemperatureFraction is the temperature LSB: quarter degrees in bits 7:6.
type TemperatureFraction uint8

func (r TemperatureFraction) QuarterDegrees() uint8 { return uint8(r) >> 6 }
