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

// Package threewire implements the DS1302's bit-banged three-wire serial
// protocol over three GPIO pins: clock, bidirectional data and chip-enable.
//
// The transport generates every clock edge itself. Bits travel least
// significant first in both directions; the chip samples the data line on
// the rising clock edge and drives its own output on the falling edge. No
// delays are inserted between edges: host pin-toggle latency is well above
// the chip's minimum timing, which keeps the transport simple rather than
// timing-accurate.
package threewire

import (
	"fmt"

	ds1302 "github.com/soilwatch/go-ds1302"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Transport implements the ds1302.Transport interface by toggling the three
// lines directly. It owns its pins exclusively: the pins are bound at
// construction and never rebound.
type Transport struct {
	clk    ds1302.Pin
	dio    ds1302.Pin
	ce     ds1302.Pin
	closed bool
}

// New opens the three named GPIO pins (as registered with periph's gpioreg,
// e.g. "GPIO10") and returns a transport with the bus idle: clock and
// chip-enable driven low.
func New(clkName, dioName, ceName string) (*Transport, error) {
	// Initialize host
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	clk, err := openPin(clkName)
	if err != nil {
		return nil, err
	}
	dio, err := openPin(dioName)
	if err != nil {
		return nil, err
	}
	ce, err := openPin(ceName)
	if err != nil {
		return nil, err
	}

	return NewFromPins(clk, dio, ce)
}

func openPin(name string) (ds1302.Pin, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	return &periphPin{pin: pin}, nil
}

// NewFromPins builds a transport over caller-supplied pins, for platforms
// periph does not cover (port expanders, simulators). The transport takes
// exclusive ownership of all three pins for its lifetime.
func NewFromPins(clk, dio, ce ds1302.Pin) (*Transport, error) {
	transport := &Transport{clk: clk, dio: dio, ce: ce}

	// Idle bus: clock and chip-enable low.
	for _, pin := range []ds1302.Pin{clk, ce} {
		if err := pin.SetDirection(ds1302.DirectionOutput); err != nil {
			return nil, ds1302.NewTransportError("configure", pin.Name(), err)
		}
		if err := pin.Write(ds1302.Low); err != nil {
			return nil, ds1302.NewTransportError("configure", pin.Name(), err)
		}
	}

	return transport, nil
}

// pulseClock raises the clock line and drops it again: one full pulse per
// bit, with the chip sampling on the rising edge.
func (t *Transport) pulseClock() error {
	if err := t.clk.Write(ds1302.High); err != nil {
		return ds1302.NewTransportError("pulseClock", t.clk.Name(), err)
	}
	if err := t.clk.Write(ds1302.Low); err != nil {
		return ds1302.NewTransportError("pulseClock", t.clk.Name(), err)
	}
	return nil
}

// writeByte shifts value out on the data line, least significant bit first.
// For 0x80 the line sees 0,0,0,0,0,0,0,1 with one clock pulse after each
// bit is set.
func (t *Transport) writeByte(value byte) error {
	if err := t.dio.SetDirection(ds1302.DirectionOutput); err != nil {
		return ds1302.NewTransportError("writeByte", t.dio.Name(), err)
	}
	for i := 0; i < 8; i++ {
		bit := ds1302.Level(value>>i&1 == 1)
		if err := t.dio.Write(bit); err != nil {
			return ds1302.NewTransportError("writeByte", t.dio.Name(), err)
		}
		if err := t.pulseClock(); err != nil {
			return err
		}
	}
	return nil
}

// readByte assembles a byte from the data line, least significant bit
// first. The chip presents the first bit on the falling edge after the last
// command bit, so each bit is sampled before the pulse that advances to the
// next one.
func (t *Transport) readByte() (byte, error) {
	if err := t.dio.SetDirection(ds1302.DirectionInput); err != nil {
		return 0, ds1302.NewTransportError("readByte", t.dio.Name(), err)
	}
	var value byte
	for i := 0; i < 8; i++ {
		level, err := t.dio.Read()
		if err != nil {
			return 0, ds1302.NewTransportError("readByte", t.dio.Name(), err)
		}
		if level {
			value |= 1 << i
		}
		if err := t.pulseClock(); err != nil {
			return 0, err
		}
	}
	return value, nil
}

// transact brackets fn with the chip-enable line. Exactly one command byte
// plus its payload may be shifted inside the bracket; anything else
// desynchronizes the chip's bit counter. On a failed shift the chip-enable
// line is dropped best-effort so the chip abandons the torn transaction.
func (t *Transport) transact(op string, fn func() error) error {
	if t.closed {
		return ds1302.NewTransportError(op, "", ds1302.ErrTransportClosed)
	}
	if err := t.ce.Write(ds1302.High); err != nil {
		return ds1302.NewTransportError(op, t.ce.Name(), err)
	}
	if err := fn(); err != nil {
		_ = t.ce.Write(ds1302.Low)
		return err
	}
	if err := t.ce.Write(ds1302.Low); err != nil {
		return ds1302.NewTransportError(op, t.ce.Name(), err)
	}
	return nil
}

// WriteRegister writes one data byte to a register: command byte, data
// byte, nothing else, all inside one chip-enable window.
func (t *Transport) WriteRegister(reg ds1302.Register, value byte) error {
	return t.transact("WriteRegister", func() error {
		if err := t.writeByte(byte(reg)); err != nil {
			return err
		}
		return t.writeByte(value)
	})
}

// ReadRegister writes the command byte and clocks one data byte back in,
// switching the data line to input between the two phases.
func (t *Transport) ReadRegister(reg ds1302.Register) (byte, error) {
	var value byte
	err := t.transact("ReadRegister", func() error {
		if err := t.writeByte(byte(reg)); err != nil {
			return err
		}
		read, err := t.readByte()
		if err != nil {
			return err
		}
		value = read
		return nil
	})
	return value, err
}

// WriteCommand issues a bare command byte inside its own chip-enable window.
func (t *Transport) WriteCommand(cmd ds1302.Register) error {
	return t.transact("WriteCommand", func() error {
		return t.writeByte(byte(cmd))
	})
}

// ReadBurst clocks the chip's clock-burst snapshot out in one chip-enable
// window: seconds, minutes, hours, day of month, month, weekday, year,
// write-protect.
func (t *Transport) ReadBurst(buf []byte) error {
	if len(buf) != ds1302.BurstLen {
		return fmt.Errorf("burst buffer must be %d bytes, got %d", ds1302.BurstLen, len(buf))
	}
	return t.transact("ReadBurst", func() error {
		if err := t.writeByte(byte(ds1302.BurstModeRead)); err != nil {
			return err
		}
		for i := range buf {
			value, err := t.readByte()
			if err != nil {
				return err
			}
			buf[i] = value
		}
		return nil
	})
}

// HasCapability implements ds1302.TransportCapabilityChecker.
func (*Transport) HasCapability(capability ds1302.TransportCapability) bool {
	return capability == ds1302.CapabilityBurstRead
}

// Close leaves the bus idle (clock and chip-enable low, data line released
// as an input) and marks the transport unusable.
func (t *Transport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	for _, pin := range []ds1302.Pin{t.ce, t.clk} {
		if err := pin.Write(ds1302.Low); err != nil {
			return ds1302.NewTransportError("Close", pin.Name(), err)
		}
	}
	if err := t.dio.SetDirection(ds1302.DirectionInput); err != nil {
		return ds1302.NewTransportError("Close", t.dio.Name(), err)
	}
	return nil
}

// Type returns the transport type
func (*Transport) Type() ds1302.TransportType {
	return ds1302.TransportThreeWire
}

// Ensure Transport implements the transport interfaces
var (
	_ ds1302.Transport                  = (*Transport)(nil)
	_ ds1302.BurstReader                = (*Transport)(nil)
	_ ds1302.TransportCapabilityChecker = (*Transport)(nil)
)
