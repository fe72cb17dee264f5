// Package ds3231 implements a driver for the DS3231 battery-backed Real-Time
// Clock (RTC), including both alarms, the temperature sensor, and the
// INT/SQW output pin. Time and alarm registers are exposed twice: through the
// time.Time and alarm config APIs on Device, and as register-level types for
// code that needs the raw bytes.
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/DS3231.pdf
package ds3231

import (
	"time"

	"tinygo.org/x/drivers"
)

type Device struct {
	bus     drivers.I2C
	Address uint8
	format  TimeFormat
}

// Config holds the settings applied by Configure.
type Config struct {
	// TimeFormat selects 24-hour or 12-hour storage for the clock's hours
	// register. The zero value is 24-hour.
	TimeFormat TimeFormat
	// Oscillator controls whether the clock keeps counting on battery power.
	// The zero value keeps it running.
	Oscillator Oscillator
	// InterruptControl selects the INT/SQW pin function: square wave output
	// (the zero value) or alarm interrupt.
	InterruptControl InterruptControl
	// SquareWaveFrequency is the square wave rate when InterruptControl is
	// OutputSquareWave.
	SquareWaveFrequency SquareWaveFrequency
	// BatteryBackedSquareWave keeps the square wave running on battery power.
	BatteryBackedSquareWave bool
}

func New(i2c drivers.I2C) Device {
	return Device{
		bus:     i2c,
		Address: Address,
	}
}

// Configure applies cfg to the control register, preserving the alarm
// interrupt enable bits, and records the time format used by Set.
func (d *Device) Configure(cfg Config) error {
	ctl, err := d.Control()
	if err != nil {
		return err
	}
	ctl = ctl.
		WithOscillator(cfg.Oscillator).
		WithBatteryBackedSquareWave(cfg.BatteryBackedSquareWave).
		WithSquareWaveFrequency(cfg.SquareWaveFrequency).
		WithInterruptControl(cfg.InterruptControl)
	if err := d.SetControl(ctl); err != nil {
		return err
	}
	d.format = cfg.TimeFormat
	return nil
}

// Now reads the clock. The returned time is in UTC regardless of what was
// handed to Set; the chip stores no zone.
func (d *Device) Now() (time.Time, error) {
	buf := [7]byte{}
	err := d.bus.ReadRegister(d.Address, RegSeconds, buf[:])
	if err != nil {
		return time.Time{}, err
	}
	return DateTimeFromBytes(buf).Time()
}

// Set writes t to the clock in one burst, using the format given to
// Configure, and clears the oscillator stop flag so LostPower reports false
// until the next power loss.
func (d *Device) Set(t time.Time) error {
	dt, err := EncodeDateTime(t, d.format)
	if err != nil {
		return err
	}
	buf := dt.Bytes()
	if err := d.bus.WriteRegister(d.Address, RegSeconds, buf[:]); err != nil {
		return err
	}

	st, err := d.Status()
	if err != nil {
		return err
	}
	return d.SetStatus(st.WithOscillatorStopped(false))
}

// Alarm1 reads the alarm 1 registers and decodes their trigger condition.
func (d *Device) Alarm1() (Alarm1Config, error) {
	buf := [4]byte{}
	err := d.bus.ReadRegister(d.Address, RegAlarm1Seconds, buf[:])
	if err != nil {
		return nil, err
	}
	return Alarm1FromBytes(buf).Config()
}

// SetAlarm1 encodes config and writes the alarm 1 registers in one burst.
// The alarm flag and interrupt enable are not touched; see
// EnableAlarm1Interrupt and ClearAlarm1.
func (d *Device) SetAlarm1(config Alarm1Config) error {
	a, err := EncodeAlarm1(config)
	if err != nil {
		return err
	}
	buf := a.Bytes()
	return d.bus.WriteRegister(d.Address, RegAlarm1Seconds, buf[:])
}

// Alarm2 reads the alarm 2 registers and decodes their trigger condition.
func (d *Device) Alarm2() (Alarm2Config, error) {
	buf := [3]byte{}
	err := d.bus.ReadRegister(d.Address, RegAlarm2Minutes, buf[:])
	if err != nil {
		return nil, err
	}
	return Alarm2FromBytes(buf).Config()
}

// SetAlarm2 encodes config and writes the alarm 2 registers in one burst.
func (d *Device) SetAlarm2(config Alarm2Config) error {
	a, err := EncodeAlarm2(config)
	if err != nil {
		return err
	}
	buf := a.Bytes()
	return d.bus.WriteRegister(d.Address, RegAlarm2Minutes, buf[:])
}

// EnableAlarm1Interrupt routes alarm 1 to the INT/SQW pin. The pin only
// asserts when interrupt output is selected; see SetInterruptOutput.
func (d *Device) EnableAlarm1Interrupt(enable bool) error {
	ctl, err := d.Control()
	if err != nil {
		return err
	}
	return d.SetControl(ctl.WithAlarm1InterruptEnabled(enable))
}

// EnableAlarm2Interrupt routes alarm 2 to the INT/SQW pin.
func (d *Device) EnableAlarm2Interrupt(enable bool) error {
	ctl, err := d.Control()
	if err != nil {
		return err
	}
	return d.SetControl(ctl.WithAlarm2InterruptEnabled(enable))
}

// Alarm1Triggered reports whether alarm 1 has fired since it was last
// cleared. The flag sets on a match even with the interrupt disabled.
func (d *Device) Alarm1Triggered() (bool, error) {
	st, err := d.Status()
	if err != nil {
		return false, err
	}
	return st.Alarm1Triggered(), nil
}

// Alarm2Triggered reports whether alarm 2 has fired since it was last cleared.
func (d *Device) Alarm2Triggered() (bool, error) {
	st, err := d.Status()
	if err != nil {
		return false, err
	}
	return st.Alarm2Triggered(), nil
}

// ClearAlarm1 clears the alarm 1 flag, releasing the INT/SQW pin if the
// alarm was driving it.
func (d *Device) ClearAlarm1() error {
	st, err := d.Status()
	if err != nil {
		return err
	}
	return d.SetStatus(st.WithAlarm1Triggered(false))
}

// ClearAlarm2 clears the alarm 2 flag.
func (d *Device) ClearAlarm2() error {
	st, err := d.Status()
	if err != nil {
		return err
	}
	return d.SetStatus(st.WithAlarm2Triggered(false))
}

// SetInterruptOutput selects the INT/SQW pin function without disturbing the
// rest of the control register.
func (d *Device) SetInterruptOutput(ic InterruptControl) error {
	ctl, err := d.Control()
	if err != nil {
		return err
	}
	return d.SetControl(ctl.WithInterruptControl(ic))
}

// LostPower reports whether the oscillator has stopped since the flag was
// last cleared, which means the time is not trustworthy. Set clears the flag.
func (d *Device) LostPower() (bool, error) {
	st, err := d.Status()
	if err != nil {
		return false, err
	}
	return st.OscillatorStopped(), nil
}

// StartOscillator enables or disables the oscillator on battery power.
// While disabled on battery the clock does not count.
func (d *Device) StartOscillator(run bool) error {
	ctl, err := d.Control()
	if err != nil {
		return err
	}
	o := OscillatorEnabled
	if !run {
		o = OscillatorDisabled
	}
	return d.SetControl(ctl.WithOscillator(o))
}

// Temperature returns the last temperature conversion in milli-degrees
// Celsius. The chip converts every 64 seconds; resolution is 0.25 degrees.
func (d *Device) Temperature() (int32, error) {
	buf := [2]byte{}
	err := d.bus.ReadRegister(d.Address, RegTempMSB, buf[:])
	if err != nil {
		return 0, err
	}
	whole := Temperature(buf[0])
	frac := TemperatureFraction(buf[1])
	return int32(whole.Degrees())*1000 + int32(frac.QuarterDegrees())*250, nil
}

// AgingOffset reads the oscillator aging trim.
func (d *Device) AgingOffset() (int8, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, RegAgingOffset, buf[:])
	if err != nil {
		return 0, err
	}
	return AgingOffset(buf[0]).Offset(), nil
}

// SetAgingOffset writes the oscillator aging trim. Positive values slow the
// clock, negative values speed it up.
func (d *Device) SetAgingOffset(offset int8) error {
	return d.writeRegister(RegAgingOffset, uint8(AgingOffset(0).WithOffset(offset)))
}

// Control reads the control register.
func (d *Device) Control() (Control, error) {
	v, err := d.readRegister(RegControl)
	return Control(v), err
}

// SetControl writes the control register.
func (d *Device) SetControl(ctl Control) error {
	return d.writeRegister(RegControl, uint8(ctl))
}

// Status reads the control/status register.
func (d *Device) Status() (Status, error) {
	v, err := d.readRegister(RegStatus)
	return Status(v), err
}

// SetStatus writes the control/status register.
func (d *Device) SetStatus(st Status) error {
	return d.writeRegister(RegStatus, uint8(st))
}

func (d *Device) readRegister(reg uint8) (uint8, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, reg, buf[:])
	return buf[0], err
}

func (d *Device) writeRegister(reg uint8, v uint8) error {
	buf := [1]byte{v}
	return d.bus.WriteRegister(d.Address, reg, buf[:])
}
