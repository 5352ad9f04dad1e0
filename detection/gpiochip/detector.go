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

// Package gpiochip enumerates the GPIO controllers a host exposes, so tools
// can point the three-wire transport at the right pins. Enumeration uses
// the Linux GPIO character device interface; other platforms report no
// controllers.
package gpiochip

// Chip describes one GPIO controller exposed by the kernel.
type Chip struct {
	// Path is the device path, e.g. /dev/gpiochip0.
	Path string
	// Name is the kernel's name for the controller.
	Name string
	// Label is the controller's hardware label, if any.
	Label string
	// Lines is the number of GPIO lines the controller provides.
	Lines int
}

// cString converts a NUL-padded kernel string field.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
