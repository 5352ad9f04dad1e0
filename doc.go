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

/*
Package ds1302 provides a pure Go driver for the DS1302 trickle-charge
timekeeping chip.

The DS1302 speaks a three-wire serial protocol (clock, bidirectional data,
chip-enable) with no hardware bus peripheral involved: the driver generates
every clock edge itself, shifts bits least significant first, switches the
data line direction mid-transaction, and encodes register values as packed
BCD. This library splits that work into a small Device facade and a Transport
interface, so the bit-banged GPIO transport can be swapped for a mock in
tests.

Features:
  - Bit-banged three-wire transport over any GPIO pins (periph.io backed)
  - Per-field clock/calendar reads and writes with write-protect handling
  - time.Time based Set/Now API plus the chip's clock-burst snapshot
  - Battery-backed RAM access and trickle charger configuration
  - GPIO controller discovery on Linux

Basic Usage:

	import (
	    "github.com/soilwatch/go-ds1302"
	    "github.com/soilwatch/go-ds1302/transport/threewire"
	)

	// Bit-bang the chip on three GPIO pins.
	transport, err := threewire.New("GPIO10", "GPIO11", "GPIO12")
	if err != nil {
	    log.Fatal(err)
	}
	defer transport.Close()

	device, err := ds1302.New(transport)
	if err != nil {
	    log.Fatal(err)
	}

	// Or create with custom options
	device, err = ds1302.New(transport,
	    ds1302.WithYearPrefix("20"),
	    ds1302.WithBurstReads(true),
	)

	// Print the current date
	date, err := device.GetDate()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(date)

	// Or work with time.Time directly
	if err := device.SetTime(time.Now()); err != nil {
	    log.Fatal(err)
	}
	now, err := device.Now()

The Device performs no locking and no retries: the three-wire protocol is
strictly half-duplex and a transaction interrupted mid-frame desynchronizes
the chip's internal bit counter. Use a single Device per pin set from a
single goroutine.
*/
package ds1302
