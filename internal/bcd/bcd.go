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

// Package bcd converts between binary integers and the packed
// binary-coded-decimal bytes the DS1302's registers hold: the high nibble is
// the tens digit, the low nibble the units digit.
package bcd

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrRange is returned by Encode for values outside [0, 99].
var ErrRange = errors.New("value not encodable as packed BCD")

// Encode packs v into a BCD byte. Values outside [0, 99] are a programming
// error and are rejected, never truncated.
func Encode(v int) (byte, error) {
	if v < 0 || v > 99 {
		return 0, fmt.Errorf("%d: %w", v, ErrRange)
	}
	return byte(v/10)<<4 | byte(v%10), nil
}

// Decode unpacks a BCD byte into its decimal value. Nibbles are not
// validated: a malformed byte yields a numerically wrong but harmless
// result, which is acceptable because register contents come from the chip
// and are well formed by construction.
func Decode(b byte) int {
	return int(b>>4&0x0F)*10 + int(b&0x0F)
}

// String returns the unpadded base-10 string of Decode(b).
func String(b byte) string {
	return strconv.Itoa(Decode(b))
}
