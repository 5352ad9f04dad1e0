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

import "log"

var debugEnabled bool

// SetDebugEnabled toggles debug logging for the library. Debug output goes
// to the standard logger with a [ds1302] prefix.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

func debugf(format string, args ...any) {
	if debugEnabled {
		log.Printf("[ds1302] "+format, args...)
	}
}

func debugln(args ...any) {
	if debugEnabled {
		log.Println(append([]any{"[ds1302]"}, args...)...)
	}
}
