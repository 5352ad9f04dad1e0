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
	"strconv"
)

// The chip stores a two-digit year; the century is fixed configuration.
const (
	defaultYearPrefix  = "20"
	defaultCenturyBase = 2000
)

// Option is a functional option for configuring a Device
type Option func(*Device) error

// WithYearPrefix sets the century prefix prepended by ReadYear and used as
// the century base by Now. The prefix must be decimal digits, e.g. "19".
func WithYearPrefix(prefix string) Option {
	return func(d *Device) error {
		base, err := strconv.Atoi(prefix)
		if err != nil || base < 0 {
			return fmt.Errorf("year prefix %q: %w", prefix, ErrValueOutOfRange)
		}
		d.yearPrefix = prefix
		d.centuryBase = base * 100
		return nil
	}
}

// WithBurstReads makes Now read the chip's clock-burst snapshot when the
// transport supports it, so the time cannot tear across a field rollover.
func WithBurstReads(enabled bool) Option {
	return func(d *Device) error {
		d.burstReads = enabled
		return nil
	}
}
