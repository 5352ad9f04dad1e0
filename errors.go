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
	"errors"
	"fmt"
)

// Driver errors
var (
	// ErrValueOutOfRange is returned when a value cannot be represented
	// in the chip's registers, e.g. a BCD encode outside [0, 99] or a
	// year that is not four digits.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrPinMode is returned when a pin is written while configured as an
	// input or read while configured as an output. This is a programming
	// error, not a hardware fault.
	ErrPinMode = errors.New("pin accessed against its configured direction")

	// ErrInvalidRAMIndex is returned for RAM byte indices outside
	// [0, RAMSize).
	ErrInvalidRAMIndex = errors.New("RAM byte index out of range")

	// ErrBurstUnsupported is returned when a clock-burst snapshot is
	// requested on a transport without the burst read capability.
	ErrBurstUnsupported = errors.New("transport does not support burst reads")

	// ErrTransportClosed is returned for operations on a closed transport.
	ErrTransportClosed = errors.New("transport closed")
)

// TransportError describes a failed pin or transaction operation on the
// three-wire bus. Pin failures are hardware faults: the driver performs no
// retries, so they surface directly to the caller.
type TransportError struct {
	// Err is the underlying error.
	Err error
	// Op is the operation that failed.
	Op string
	// Line names the pin or line involved, if any.
	Line string
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("%s on %s: %v", e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError for the given operation and line.
func NewTransportError(op, line string, err error) *TransportError {
	return &TransportError{Op: op, Line: line, Err: err}
}

// NewPinModeError reports a direction misuse on the named pin.
func NewPinModeError(op, pin string) *TransportError {
	return &TransportError{Op: op, Line: pin, Err: ErrPinMode}
}
