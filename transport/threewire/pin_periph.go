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

package threewire

import (
	"fmt"

	ds1302 "github.com/soilwatch/go-ds1302"
	"periph.io/x/conn/v3/gpio"
)

// periphPin adapts a periph.io gpio.PinIO to the ds1302.Pin capability. It
// tracks the configured direction so misuse of the bidirectional data line
// is caught at the boundary instead of silently reading a driven level.
type periphPin struct {
	pin        gpio.PinIO
	dir        ds1302.Direction
	configured bool
}

// SetDirection reconfigures the pin. Outputs start driven low, which is the
// idle level for all three lines.
func (p *periphPin) SetDirection(dir ds1302.Direction) error {
	switch dir {
	case ds1302.DirectionInput:
		if err := p.pin.In(gpio.Float, gpio.NoEdge); err != nil {
			return fmt.Errorf("configure %s as input: %w", p.pin.Name(), err)
		}
	case ds1302.DirectionOutput:
		if err := p.pin.Out(gpio.Low); err != nil {
			return fmt.Errorf("configure %s as output: %w", p.pin.Name(), err)
		}
	default:
		return fmt.Errorf("unknown direction %d", dir)
	}
	p.dir = dir
	p.configured = true
	return nil
}

// Write drives the pin. Rejected unless the pin is configured as an output.
func (p *periphPin) Write(level ds1302.Level) error {
	if !p.configured || p.dir != ds1302.DirectionOutput {
		return ds1302.NewPinModeError("Write", p.pin.Name())
	}
	if err := p.pin.Out(gpio.Level(level)); err != nil {
		return fmt.Errorf("write %s: %w", p.pin.Name(), err)
	}
	return nil
}

// Read samples the pin. Rejected unless the pin is configured as an input.
func (p *periphPin) Read() (ds1302.Level, error) {
	if !p.configured || p.dir != ds1302.DirectionInput {
		return ds1302.Low, ds1302.NewPinModeError("Read", p.pin.Name())
	}
	return ds1302.Level(p.pin.Read()), nil
}

// Name identifies the pin in error messages.
func (p *periphPin) Name() string {
	return p.pin.Name()
}

// Ensure periphPin implements ds1302.Pin
var _ ds1302.Pin = (*periphPin)(nil)
