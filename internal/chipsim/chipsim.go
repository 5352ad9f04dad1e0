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

// Package chipsim simulates a DS1302 at the pin level for testing the
// bit-banged transport without hardware.
//
// The simulator reacts to clock edges the way the chip does: while
// chip-enable is high it samples the data line on the rising edge, latches
// a command byte after eight bits, and for read commands presents each
// output bit on the falling edge. Writes honor the write-protect latch.
package chipsim

import (
	ds1302 "github.com/soilwatch/go-ds1302"
)

type state int

const (
	// stateCommand shifts the command byte in.
	stateCommand state = iota
	// stateWrite shifts the single data byte in.
	stateWrite
	// stateRead shifts the single data byte out.
	stateRead
	// stateBurstRead streams the burst snapshot out.
	stateBurstRead
	// stateIdle ignores further clocks until chip-enable drops.
	stateIdle
)

// Chip is a simulated DS1302. It powers up with the write-protect latch
// set, like hardware that has been armed by a previous driver run.
type Chip struct {
	regs         map[byte]byte
	writeProtect bool

	ce      bool
	clk     bool
	dioIn   ds1302.Level
	dioOut  ds1302.Level
	driving bool

	st       state
	shift    byte
	bitCount int
	cmd      byte
	data     byte
	outBit   int
}

// New creates a simulated chip with empty registers and write-protect set.
func New() *Chip {
	return &Chip{regs: make(map[byte]byte), writeProtect: true}
}

// Pins returns the chip's clock, data and chip-enable pins to hand to the
// transport under test.
func (c *Chip) Pins() (clk, dio, ce ds1302.Pin) {
	return &simPin{chip: c, name: "CLK", role: roleClk},
		&simPin{chip: c, name: "DIO", role: roleDio},
		&simPin{chip: c, name: "CE", role: roleCE}
}

// SetRegister seeds a register, keyed by either of its command bytes.
func (c *Chip) SetRegister(reg ds1302.Register, value byte) {
	c.regs[byte(reg)&^0x01] = value
}

// Register returns the current value of a register, keyed by either of its
// command bytes.
func (c *Chip) Register(reg ds1302.Register) byte {
	return c.regs[byte(reg)&^0x01]
}

// WriteProtected reports the write-protect latch.
func (c *Chip) WriteProtected() bool {
	return c.writeProtect
}

// chipEnable resets the transaction framing on every edge of the
// chip-enable line: a new window always starts with a command byte.
func (c *Chip) chipEnable(high bool) {
	c.ce = high
	c.st = stateCommand
	c.shift = 0
	c.bitCount = 0
	c.outBit = 0
	c.driving = false
}

func (c *Chip) clockEdge(high bool) {
	rising := !c.clk && high
	falling := c.clk && !high
	c.clk = high
	if !c.ce {
		return
	}
	if rising {
		c.risingEdge()
	} else if falling {
		c.fallingEdge()
	}
}

// risingEdge samples the data line while the host is shifting bits in.
func (c *Chip) risingEdge() {
	switch c.st {
	case stateCommand, stateWrite:
		if c.dioIn {
			c.shift |= 1 << c.bitCount
		}
		c.bitCount++
		if c.bitCount < 8 {
			return
		}
		if c.st == stateCommand {
			c.latchCommand()
		} else {
			c.storeData()
		}
	case stateRead, stateBurstRead, stateIdle:
		// The host samples on read transfers; the chip advances on the
		// falling edge.
	}
}

// fallingEdge presents the next output bit on read transfers. The first
// data bit appears on the falling edge after the last command bit.
func (c *Chip) fallingEdge() {
	switch c.st {
	case stateRead:
		if c.outBit >= 8 {
			c.driving = false
			return
		}
		c.dioOut = ds1302.Level(c.data>>c.outBit&1 == 1)
		c.driving = true
		c.outBit++
	case stateBurstRead:
		if c.outBit >= 8*ds1302.BurstLen {
			c.driving = false
			return
		}
		current := c.burstByte(c.outBit / 8)
		c.dioOut = ds1302.Level(current>>(c.outBit%8)&1 == 1)
		c.driving = true
		c.outBit++
	case stateCommand, stateWrite, stateIdle:
	}
}

func (c *Chip) latchCommand() {
	c.cmd = c.shift
	c.shift = 0
	c.bitCount = 0
	c.outBit = 0
	switch {
	case c.cmd&0x80 == 0:
		// Bit 7 clear is not a valid command; the chip ignores the
		// rest of the window.
		c.st = stateIdle
	case c.cmd == byte(ds1302.BurstModeRead):
		c.st = stateBurstRead
	case c.cmd&0x01 == 1:
		c.st = stateRead
		if c.cmd&^0x01 == byte(ds1302.WriteProtect) {
			// Bits 0-6 of the write-protect register always read 0.
			c.data = 0x00
			if c.writeProtect {
				c.data = 0x80
			}
		} else {
			c.data = c.regs[c.cmd&^0x01]
		}
	default:
		c.st = stateWrite
	}
}

func (c *Chip) storeData() {
	c.data = c.shift
	c.shift = 0
	c.bitCount = 0
	switch {
	case c.cmd == byte(ds1302.WriteProtect):
		c.writeProtect = c.data&0x80 != 0
	case c.writeProtect:
		// Protected writes are dropped on the floor.
	default:
		c.regs[c.cmd] = c.data
	}
	// One data byte per window.
	c.st = stateIdle
}

// burstByte returns byte i of the clock-burst snapshot: seconds, minutes,
// hours, day of month, month, weekday, year, write-protect.
func (c *Chip) burstByte(i int) byte {
	order := [...]ds1302.Register{
		ds1302.SecondsWrite,
		ds1302.MinutesWrite,
		ds1302.HoursWrite,
		ds1302.DayWrite,
		ds1302.MonthWrite,
		ds1302.WeekdayWrite,
		ds1302.YearWrite,
	}
	if i < len(order) {
		return c.regs[byte(order[i])]
	}
	if c.writeProtect {
		return 0x80
	}
	return 0x00
}

type pinRole int

const (
	roleClk pinRole = iota
	roleDio
	roleCE
)

// simPin is one of the chip's three pins as seen by the host. It enforces
// the same direction rules a real pin capability would.
type simPin struct {
	chip       *Chip
	name       string
	role       pinRole
	dir        ds1302.Direction
	configured bool
}

func (p *simPin) Name() string {
	return p.name
}

func (p *simPin) SetDirection(dir ds1302.Direction) error {
	p.dir = dir
	p.configured = true
	return nil
}

func (p *simPin) Write(level ds1302.Level) error {
	if !p.configured || p.dir != ds1302.DirectionOutput {
		return ds1302.NewPinModeError("Write", p.name)
	}
	switch p.role {
	case roleClk:
		p.chip.clockEdge(bool(level))
	case roleDio:
		p.chip.dioIn = level
	case roleCE:
		p.chip.chipEnable(bool(level))
	}
	return nil
}

func (p *simPin) Read() (ds1302.Level, error) {
	if !p.configured || p.dir != ds1302.DirectionInput {
		return ds1302.Low, ds1302.NewPinModeError("Read", p.name)
	}
	if p.role == roleDio && p.chip.driving {
		return p.chip.dioOut, nil
	}
	return ds1302.Low, nil
}

// Ensure simPin implements ds1302.Pin
var _ ds1302.Pin = (*simPin)(nil)
