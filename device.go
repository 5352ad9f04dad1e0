// go-ds1302
// Copyright (c) 2025 The Soilwatch Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-ds1302.
//
// go-ds1302 is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-ds1302 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-ds1302; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package ds1302

import (
	"fmt"
	"time"

	"github.com/soilwatch/go-ds1302/internal/bcd"
)

// Device represents a DS1302 clock/calendar chip behind a Transport.
//
// The Device holds no clock state of its own; the chip is the source of
// truth and every operation is a fresh register transaction. Thread Safety:
// Device is NOT thread-safe and cannot be: an interleaved transaction from a
// second goroutine corrupts the bit framing on the shared data line. Use a
// single Device per pin set from a single goroutine.
type Device struct {
	transport   Transport
	yearPrefix  string
	centuryBase int
	burstReads  bool
}

// New creates a new DS1302 device over the given transport.
func New(transport Transport, opts ...Option) (*Device, error) {
	device := &Device{
		transport:   transport,
		yearPrefix:  defaultYearPrefix,
		centuryBase: defaultCenturyBase,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	return device, nil
}

// Transport returns the transport the device was constructed with.
func (d *Device) Transport() Transport {
	return d.transport
}

// hasCapability checks if the transport has the specified capability
func (d *Device) hasCapability(capability TransportCapability) bool {
	if checker, ok := d.transport.(TransportCapabilityChecker); ok {
		return checker.HasCapability(capability)
	}
	return false
}

// encodeBCD converts v for the chip's registers, mapping the codec's range
// error to the package sentinel.
func encodeBCD(v int) (byte, error) {
	b, err := bcd.Encode(v)
	if err != nil {
		return 0, fmt.Errorf("encode %d as BCD: %w", v, ErrValueOutOfRange)
	}
	return b, nil
}

// unlockThenWrite clears write-protect, writes the raw byte and re-arms
// write-protect. Each step is its own chip-enable bracketed transaction: the
// chip requires the protect bit to be toggled around every protected write.
func (d *Device) unlockThenWrite(reg Register, value byte) error {
	if err := d.transport.WriteRegister(WriteProtect, writeProtectOff); err != nil {
		return fmt.Errorf("clear write-protect: %w", err)
	}
	if err := d.transport.WriteRegister(reg, value); err != nil {
		return fmt.Errorf("write register %#02x: %w", byte(reg), err)
	}
	if err := d.transport.WriteRegister(WriteProtect, writeProtectOn); err != nil {
		return fmt.Errorf("arm write-protect: %w", err)
	}
	return nil
}

// writeClockField BCD-encodes value and writes it under write-protect
// bracketing.
func (d *Device) writeClockField(reg Register, value int) error {
	enc, err := encodeBCD(value)
	if err != nil {
		return err
	}
	return d.unlockThenWrite(reg, enc)
}

// readField reads one register and returns its BCD decode as an unpadded
// decimal string.
func (d *Device) readField(reg Register) (string, error) {
	raw, err := d.transport.ReadRegister(reg)
	if err != nil {
		return "", fmt.Errorf("read register %#02x: %w", byte(reg), err)
	}
	return bcd.String(raw), nil
}

// WriteSeconds sets the seconds register (0-59).
func (d *Device) WriteSeconds(seconds int) error {
	return d.writeClockField(SecondsWrite, seconds)
}

// ReadSeconds returns the seconds register as a decimal string. The value is
// returned raw: bit 7 of the register is the chip's clock-halt flag and is
// not masked here.
func (d *Device) ReadSeconds() (string, error) {
	return d.readField(SecondsRead)
}

// WriteMinutes sets the minutes register (0-59).
func (d *Device) WriteMinutes(minutes int) error {
	return d.writeClockField(MinutesWrite, minutes)
}

// ReadMinutes returns the minutes register as a decimal string.
func (d *Device) ReadMinutes() (string, error) {
	return d.readField(MinutesRead)
}

// WriteHours sets the hours register (0-23, 24-hour mode).
func (d *Device) WriteHours(hours int) error {
	return d.writeClockField(HoursWrite, hours)
}

// ReadHours returns the hours register as a decimal string.
func (d *Device) ReadHours() (string, error) {
	return d.readField(HoursRead)
}

// WriteDay sets the day-of-the-month register (1-31).
func (d *Device) WriteDay(day int) error {
	return d.writeClockField(DayWrite, day)
}

// ReadDay returns the day-of-the-month register as a decimal string.
func (d *Device) ReadDay() (string, error) {
	return d.readField(DayRead)
}

// WriteMonth sets the month register (1-12).
func (d *Device) WriteMonth(month int) error {
	return d.writeClockField(MonthWrite, month)
}

// ReadMonth returns the month register as a decimal string.
func (d *Device) ReadMonth() (string, error) {
	return d.readField(MonthRead)
}

// WriteWeekday sets the day-of-the-week register (1-7).
func (d *Device) WriteWeekday(weekday int) error {
	return d.writeClockField(WeekdayWrite, weekday)
}

// ReadWeekday returns the day-of-the-week register as a decimal string.
func (d *Device) ReadWeekday() (string, error) {
	return d.readField(WeekdayRead)
}

// WriteYear sets the year register from a four-digit year; only the low two
// digits are stored, the century is implied by the device's year prefix.
func (d *Device) WriteYear(year int) error {
	if year < 1000 || year > 9999 {
		return fmt.Errorf("year %d is not four digits: %w", year, ErrValueOutOfRange)
	}
	return d.writeClockField(YearWrite, year%100)
}

// ReadYear returns the year as a decimal string with the century prefix
// prepended to the chip's two-digit value.
func (d *Device) ReadYear() (string, error) {
	year, err := d.readField(YearRead)
	if err != nil {
		return "", err
	}
	return d.yearPrefix + year, nil
}

// GetDate reads every clock/calendar field and formats them as
// "Date: D.M.Y, H:Min:S, Day: W".
//
// The seven reads are independent transactions, not a burst snapshot, so the
// result can tear across a field rollover; use Now with WithBurstReads for
// an atomic read.
func (d *Device) GetDate() (string, error) {
	day, err := d.ReadDay()
	if err != nil {
		return "", err
	}
	month, err := d.ReadMonth()
	if err != nil {
		return "", err
	}
	year, err := d.ReadYear()
	if err != nil {
		return "", err
	}
	hour, err := d.ReadHours()
	if err != nil {
		return "", err
	}
	minute, err := d.ReadMinutes()
	if err != nil {
		return "", err
	}
	second, err := d.ReadSeconds()
	if err != nil {
		return "", err
	}
	weekday, err := d.ReadWeekday()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Date: %s.%s.%s, %s:%s:%s, Day: %s",
		day, month, year, hour, minute, second, weekday), nil
}

// SetDate writes every clock/calendar field that passes its range check.
// Fields failing their check are skipped silently; an attempted write that
// fails aborts and returns the error.
func (d *Device) SetDate(day, month, year, hour, minute, second, weekday int) error {
	if day > 0 && day < 32 {
		if err := d.WriteDay(day); err != nil {
			return err
		}
	} else {
		debugf("SetDate: skipping day %d", day)
	}
	if month > 0 && month < 13 {
		if err := d.WriteMonth(month); err != nil {
			return err
		}
	} else {
		debugf("SetDate: skipping month %d", month)
	}
	if year > 0 {
		if err := d.WriteYear(year); err != nil {
			return err
		}
	} else {
		debugf("SetDate: skipping year %d", year)
	}
	if hour > -1 && hour < 23 {
		if err := d.WriteHours(hour); err != nil {
			return err
		}
	} else {
		debugf("SetDate: skipping hour %d", hour)
	}
	if minute > -1 && minute < 60 {
		if err := d.WriteMinutes(minute); err != nil {
			return err
		}
	} else {
		debugf("SetDate: skipping minute %d", minute)
	}
	if second > -1 && second < 60 {
		if err := d.WriteSeconds(second); err != nil {
			return err
		}
	} else {
		debugf("SetDate: skipping second %d", second)
	}
	if weekday > 0 && weekday < 8 {
		if err := d.WriteWeekday(weekday); err != nil {
			return err
		}
	} else {
		debugf("SetDate: skipping weekday %d", weekday)
	}
	return nil
}

// Start issues the clock-burst command byte as a bare chip-enable bracketed
// write. It latches the clock/calendar registers into the chip's shadow copy;
// it does not halt or resume the oscillator.
func (d *Device) Start() error {
	if err := d.transport.WriteCommand(BurstMode); err != nil {
		return fmt.Errorf("burst command: %w", err)
	}
	return nil
}

// Snapshot reads the chip's clock-burst shadow copy in one chip-enable
// window: seconds, minutes, hours, day of month, month, weekday, year,
// write-protect. Returns ErrBurstUnsupported if the transport cannot burst.
func (d *Device) Snapshot() ([BurstLen]byte, error) {
	var snap [BurstLen]byte
	reader, ok := d.transport.(BurstReader)
	if !ok || !d.hasCapability(CapabilityBurstRead) {
		return snap, ErrBurstUnsupported
	}
	if err := reader.ReadBurst(snap[:]); err != nil {
		return snap, fmt.Errorf("burst read: %w", err)
	}
	return snap, nil
}

// Now reads the current time from the chip. With WithBurstReads enabled and
// a burst-capable transport the fields come from one atomic snapshot;
// otherwise they are read field by field and can tear across a rollover.
func (d *Device) Now() (time.Time, error) {
	if d.burstReads && d.hasCapability(CapabilityBurstRead) {
		snap, err := d.Snapshot()
		if err != nil {
			return time.Time{}, err
		}
		return d.decodeTime(snap[0], snap[1], snap[2], snap[3], snap[4], snap[6]), nil
	}

	second, err := d.transport.ReadRegister(SecondsRead)
	if err != nil {
		return time.Time{}, fmt.Errorf("read seconds: %w", err)
	}
	minute, err := d.transport.ReadRegister(MinutesRead)
	if err != nil {
		return time.Time{}, fmt.Errorf("read minutes: %w", err)
	}
	hour, err := d.transport.ReadRegister(HoursRead)
	if err != nil {
		return time.Time{}, fmt.Errorf("read hours: %w", err)
	}
	day, err := d.transport.ReadRegister(DayRead)
	if err != nil {
		return time.Time{}, fmt.Errorf("read day: %w", err)
	}
	month, err := d.transport.ReadRegister(MonthRead)
	if err != nil {
		return time.Time{}, fmt.Errorf("read month: %w", err)
	}
	year, err := d.transport.ReadRegister(YearRead)
	if err != nil {
		return time.Time{}, fmt.Errorf("read year: %w", err)
	}
	return d.decodeTime(second, minute, hour, day, month, year), nil
}

// decodeTime assembles a time.Time from raw register bytes, masking the
// flag and unused bits the way the registers lay them out (the seconds
// register carries the clock-halt flag in bit 7).
func (d *Device) decodeTime(second, minute, hour, day, month, year byte) time.Time {
	return time.Date(
		d.centuryBase+bcd.Decode(year),
		time.Month(bcd.Decode(month&0x1F)),
		bcd.Decode(day&0x3F),
		bcd.Decode(hour&0x3F),
		bcd.Decode(minute&0x7F),
		bcd.Decode(second&0x7F),
		0, time.UTC,
	)
}

// SetTime writes t to the chip field by field. The weekday register is set
// to ISO numbering (Monday=1 through Sunday=7). Years outside the device's
// century still store their low two digits; reading them back assumes the
// configured prefix.
func (d *Device) SetTime(t time.Time) error {
	if err := d.WriteDay(t.Day()); err != nil {
		return err
	}
	if err := d.WriteMonth(int(t.Month())); err != nil {
		return err
	}
	if err := d.WriteYear(t.Year()); err != nil {
		return err
	}
	if err := d.WriteHours(t.Hour()); err != nil {
		return err
	}
	if err := d.WriteMinutes(t.Minute()); err != nil {
		return err
	}
	if err := d.WriteSeconds(t.Second()); err != nil {
		return err
	}
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return d.WriteWeekday(weekday)
}

// ReadRAM returns battery-backed RAM byte n (0 through RAMSize-1).
func (d *Device) ReadRAM(n int) (byte, error) {
	reg, err := RAMRegister(n, true)
	if err != nil {
		return 0, err
	}
	value, err := d.transport.ReadRegister(reg)
	if err != nil {
		return 0, fmt.Errorf("read RAM byte %d: %w", n, err)
	}
	return value, nil
}

// WriteRAM stores value in battery-backed RAM byte n. RAM writes are gated
// by the same write-protect bit as the clock registers, so the write is
// bracketed the same way.
func (d *Device) WriteRAM(n int, value byte) error {
	reg, err := RAMRegister(n, false)
	if err != nil {
		return err
	}
	return d.unlockThenWrite(reg, value)
}

// SetTrickleCharger configures the battery trickle charge path.
func (d *Device) SetTrickleCharger(config TrickleConfig) error {
	return d.unlockThenWrite(TrickleCharger, byte(config))
}
