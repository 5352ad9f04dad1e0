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

// Transport carries register transactions to a DS1302. The canonical
// implementation bit-bangs the chip's three-wire protocol over GPIO pins;
// tests substitute a mock.
//
// Every method is exactly one chip-enable window containing exactly one
// command byte plus its single data byte (or burst payload). Issuing more or
// fewer bytes inside a window desynchronizes the chip's internal bit counter
// for the remainder of the session, so transports must never split or merge
// transactions.
type Transport interface {
	// WriteRegister writes one data byte to a register in a single
	// chip-enable bracketed transaction.
	WriteRegister(reg Register, value byte) error

	// ReadRegister writes the command byte, reads one data byte back and
	// returns it raw. Decoding is the caller's concern.
	ReadRegister(reg Register) (byte, error)

	// WriteCommand issues a bare command byte with no data byte, bracketed
	// by chip-enable. Used for the clock-burst command.
	WriteCommand(cmd Register) error

	// Close releases the transport. Further operations fail with
	// ErrTransportClosed.
	Close() error

	// Type returns the transport type
	Type() TransportType
}

// TransportType represents the type of transport
type TransportType string

const (
	// TransportThreeWire represents the bit-banged GPIO transport.
	TransportThreeWire TransportType = "threewire"
	// TransportMock represents a mock transport for testing
	TransportMock TransportType = "mock"
)

// TransportCapability represents specific capabilities or behaviors of a
// transport
type TransportCapability string

const (
	// CapabilityBurstRead indicates the transport can clock a full
	// clock-burst snapshot out of the chip in one chip-enable window.
	CapabilityBurstRead TransportCapability = "burst_read"
)

// TransportCapabilityChecker defines an interface for querying transport
// capabilities. This provides a clean, type-safe alternative to
// reflection-based feature detection.
type TransportCapabilityChecker interface {
	// HasCapability returns true if the transport has the specified capability
	HasCapability(capability TransportCapability) bool
}

// BurstReader is implemented by transports advertising CapabilityBurstRead.
type BurstReader interface {
	// ReadBurst fills buf (which must be BurstLen bytes) with the chip's
	// clock-burst snapshot in register order: seconds, minutes, hours,
	// day of month, month, weekday, year, write-protect.
	ReadBurst(buf []byte) error
}
