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

// Direction selects whether a pin drives the line or samples it.
type Direction int

const (
	// DirectionInput configures a pin to sample the line.
	DirectionInput Direction = iota
	// DirectionOutput configures a pin to drive the line.
	DirectionOutput
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Level is a logic level on a pin.
type Level bool

const (
	// Low is logic 0.
	Low Level = false
	// High is logic 1.
	High Level = true
)

// String returns the level name.
func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// Pin is the capability the driver needs from each of the three lines
// (clock, data, chip-enable). The platform supplies implementations; the
// transport borrows three of them exclusively for its lifetime and never
// rebinds them.
//
// The data line changes direction mid-transaction, so direction misuse is
// checked at this boundary: implementations must reject Write on a pin
// configured as an input and Read on a pin configured as an output with an
// error wrapping ErrPinMode.
type Pin interface {
	// SetDirection reconfigures the pin as an input or an output.
	SetDirection(dir Direction) error

	// Write drives the pin to the given level. Valid only while the pin
	// is configured as an output.
	Write(level Level) error

	// Read samples the pin's current level. Valid only while the pin is
	// configured as an input.
	Read() (Level, error)

	// Name identifies the pin in error messages.
	Name() string
}
