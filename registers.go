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

import "fmt"

// Register is a DS1302 command byte. The layout is fixed by the datasheet:
// bit 7 is a constant 1 marker (a command with bit 7 clear disables writes),
// bit 6 selects RAM over clock/calendar data, bits 5-1 select the register
// and bit 0 selects a read transfer over a write.
//
// Command bytes come only from this enumeration or the RAMRegister
// constructor; they are never assembled ad hoc.
type Register byte

// Clock/calendar command bytes.
const (
	// SecondsWrite sets the seconds register (00-59 BCD; bit 7 is the
	// clock-halt flag).
	SecondsWrite Register = 0x80
	// SecondsRead reads the seconds register.
	SecondsRead Register = 0x81
	// MinutesWrite sets the minutes register (00-59 BCD).
	MinutesWrite Register = 0x82
	// MinutesRead reads the minutes register.
	MinutesRead Register = 0x83
	// HoursWrite sets the hours register (00-23 BCD in 24-hour mode).
	HoursWrite Register = 0x84
	// HoursRead reads the hours register.
	HoursRead Register = 0x85
	// DayWrite sets the day-of-the-month register (01-31 BCD).
	DayWrite Register = 0x86
	// DayRead reads the day-of-the-month register.
	DayRead Register = 0x87
	// MonthWrite sets the month register (01-12 BCD).
	MonthWrite Register = 0x88
	// MonthRead reads the month register.
	MonthRead Register = 0x89
	// WeekdayWrite sets the day-of-the-week register (01-07).
	WeekdayWrite Register = 0x8A
	// WeekdayRead reads the day-of-the-week register.
	WeekdayRead Register = 0x8B
	// YearWrite sets the two-digit year register (00-99 BCD).
	YearWrite Register = 0x8C
	// YearRead reads the two-digit year register.
	YearRead Register = 0x8D

	// WriteProtect gates every write to the clock/calendar registers and
	// RAM: bit 7 must be cleared before a write and is conventionally
	// re-armed afterwards. Bits 0-6 always read back as 0.
	WriteProtect Register = 0x8E

	// TrickleCharger configures the battery trickle charge path.
	TrickleCharger Register = 0x90

	// BurstMode latches all clock/calendar registers into a shadow copy
	// so a multi-register snapshot is not torn by a rollover.
	BurstMode Register = 0xBE
	// BurstModeRead clocks the burst snapshot out of the chip.
	BurstModeRead Register = 0xBF

	// RAMBase addresses the first byte of the chip's battery-backed RAM.
	RAMBase Register = 0xC0
)

// Write-protect register payloads.
const (
	writeProtectOff byte = 0x00
	writeProtectOn  byte = 0x80
)

// RAMSize is the number of battery-backed RAM bytes on the chip.
const RAMSize = 31

// BurstLen is the number of bytes in a clock-burst snapshot: seconds,
// minutes, hours, day of month, month, weekday, year, write-protect.
const BurstLen = 8

// IsRead reports whether the command byte selects a read transfer.
func (r Register) IsRead() bool { return r&0x01 != 0 }

// IsRAM reports whether the command byte addresses static RAM rather than
// the clock/calendar registers.
func (r Register) IsRAM() bool { return r&0x40 != 0 }

// RAMRegister returns the command byte for battery-backed RAM byte n
// (0 through RAMSize-1). RAM addresses step by two because bit 0 carries
// the transfer direction; read selects the read command byte.
func RAMRegister(n int, read bool) (Register, error) {
	if n < 0 || n >= RAMSize {
		return 0, fmt.Errorf("RAM byte %d: %w", n, ErrInvalidRAMIndex)
	}
	r := RAMBase + Register(n)<<1
	if read {
		r |= 0x01
	}
	return r, nil
}

// TrickleConfig selects the DS1302 trickle charger diode and resistor path.
// The high nibble is the 1010 enable pattern; bits 3-2 pick one or two
// series diodes and bits 1-0 pick the series resistor.
type TrickleConfig byte

// Trickle charger configurations.
const (
	// TrickleOff disables the charger (the power-on default reads 0x5C,
	// any pattern without the 1010 enable nibble disables it).
	TrickleOff TrickleConfig = 0x00
	// TrickleOneDiode2K charges through one diode and 2kOhm.
	TrickleOneDiode2K TrickleConfig = 0xA5
	// TrickleOneDiode4K charges through one diode and 4kOhm.
	TrickleOneDiode4K TrickleConfig = 0xA6
	// TrickleOneDiode8K charges through one diode and 8kOhm.
	TrickleOneDiode8K TrickleConfig = 0xA7
	// TrickleTwoDiodes2K charges through two diodes and 2kOhm.
	TrickleTwoDiodes2K TrickleConfig = 0xA9
	// TrickleTwoDiodes4K charges through two diodes and 4kOhm.
	TrickleTwoDiodes4K TrickleConfig = 0xAA
	// TrickleTwoDiodes8K charges through two diodes and 8kOhm.
	TrickleTwoDiodes8K TrickleConfig = 0xAB
)
