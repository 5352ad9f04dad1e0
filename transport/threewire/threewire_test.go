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
	"errors"
	"testing"

	ds1302 "github.com/soilwatch/go-ds1302"
	"github.com/soilwatch/go-ds1302/internal/chipsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// event is one pin operation captured by a recorder.
type event struct {
	pin  string
	op   string // "dir", "write"
	dir  ds1302.Direction
	high bool
}

// recorder collects pin operations across a shared pin set so tests can
// assert the exact waveform the transport produces.
type recorder struct {
	events []event
}

// recordingPin is a Pin that logs operations and enforces direction rules.
type recordingPin struct {
	rec        *recorder
	name       string
	dir        ds1302.Direction
	configured bool
	readLevel  ds1302.Level
	writeErr   error
}

func (p *recordingPin) Name() string { return p.name }

func (p *recordingPin) SetDirection(dir ds1302.Direction) error {
	p.dir = dir
	p.configured = true
	p.rec.events = append(p.rec.events, event{pin: p.name, op: "dir", dir: dir})
	return nil
}

func (p *recordingPin) Write(level ds1302.Level) error {
	if !p.configured || p.dir != ds1302.DirectionOutput {
		return ds1302.NewPinModeError("Write", p.name)
	}
	if p.writeErr != nil {
		return p.writeErr
	}
	p.rec.events = append(p.rec.events, event{pin: p.name, op: "write", high: bool(level)})
	return nil
}

func (p *recordingPin) Read() (ds1302.Level, error) {
	if !p.configured || p.dir != ds1302.DirectionInput {
		return ds1302.Low, ds1302.NewPinModeError("Read", p.name)
	}
	return p.readLevel, nil
}

func newRecordingPins() (*recorder, *recordingPin, *recordingPin, *recordingPin) {
	rec := &recorder{}
	clk := &recordingPin{rec: rec, name: "CLK"}
	dio := &recordingPin{rec: rec, name: "DIO"}
	ce := &recordingPin{rec: rec, name: "CE"}
	return rec, clk, dio, ce
}

// dataBits extracts the data-line levels written between the chip-enable
// assert and deassert, in order.
func dataBits(events []event) []int {
	bits := make([]int, 0, 8)
	for _, ev := range events {
		if ev.pin == "DIO" && ev.op == "write" {
			bit := 0
			if ev.high {
				bit = 1
			}
			bits = append(bits, bit)
		}
	}
	return bits
}

// TestWriteCommand_Waveform checks the bit order and clocking for 0x80:
// the data line must see 0,0,0,0,0,0,0,1 (LSB first) with one full clock
// pulse after each bit, all inside one chip-enable window.
func TestWriteCommand_Waveform(t *testing.T) {
	t.Parallel()

	rec, clk, dio, ce := newRecordingPins()
	transport, err := NewFromPins(clk, dio, ce)
	require.NoError(t, err)

	rec.events = nil // drop construction events
	require.NoError(t, transport.WriteCommand(ds1302.SecondsWrite))

	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 1}, dataBits(rec.events))

	// Chip-enable brackets the whole transaction.
	require.NotEmpty(t, rec.events)
	first := rec.events[0]
	last := rec.events[len(rec.events)-1]
	assert.Equal(t, event{pin: "CE", op: "write", high: true}, first)
	assert.Equal(t, event{pin: "CE", op: "write", high: false}, last)

	// One rising edge after each bit is set, and the clock always returns
	// low before the next bit.
	clockState := false
	bitsSinceClock := 0
	for _, ev := range rec.events[1 : len(rec.events)-1] {
		switch {
		case ev.pin == "DIO" && ev.op == "write":
			assert.False(t, clockState, "data bit changed while clock high")
			bitsSinceClock++
			assert.Equal(t, 1, bitsSinceClock, "two data bits without a clock pulse")
		case ev.pin == "CLK" && ev.op == "write":
			if ev.high {
				assert.Equal(t, 1, bitsSinceClock, "clock pulse without a fresh data bit")
				bitsSinceClock = 0
			}
			clockState = ev.high
		}
	}
	assert.False(t, clockState, "clock left high after transaction")
}

// TestWriteRegister_SingleWindow checks that a register write is exactly one
// chip-enable window containing the command byte and one data byte.
func TestWriteRegister_SingleWindow(t *testing.T) {
	t.Parallel()

	rec, clk, dio, ce := newRecordingPins()
	transport, err := NewFromPins(clk, dio, ce)
	require.NoError(t, err)

	rec.events = nil
	require.NoError(t, transport.WriteRegister(ds1302.MinutesWrite, 0x33))

	ceWrites := 0
	for _, ev := range rec.events {
		if ev.pin == "CE" && ev.op == "write" {
			ceWrites++
		}
	}
	assert.Equal(t, 2, ceWrites, "expected exactly one assert and one deassert")
	assert.Len(t, dataBits(rec.events), 16, "command byte plus one data byte")
}

func TestPinModeEnforced(t *testing.T) {
	t.Parallel()

	_, clk, dio, ce := newRecordingPins()
	transport, err := NewFromPins(clk, dio, ce)
	require.NoError(t, err)

	// Force the data pin into input mode behind the transport's back and
	// check the next write transaction surfaces the mode error.
	require.NoError(t, dio.SetDirection(ds1302.DirectionInput))
	dio.configured = false
	dio.writeErr = ds1302.NewPinModeError("Write", "DIO")

	err = transport.WriteRegister(ds1302.SecondsWrite, 0x00)
	require.Error(t, err)
	assert.ErrorIs(t, err, ds1302.ErrPinMode)
}

func TestTransport_Closed(t *testing.T) {
	t.Parallel()

	_, clk, dio, ce := newRecordingPins()
	transport, err := NewFromPins(clk, dio, ce)
	require.NoError(t, err)
	require.NoError(t, transport.Close())
	require.NoError(t, transport.Close()) // idempotent

	_, err = transport.ReadRegister(ds1302.SecondsRead)
	assert.ErrorIs(t, err, ds1302.ErrTransportClosed)
	assert.ErrorIs(t, transport.WriteRegister(ds1302.SecondsWrite, 0), ds1302.ErrTransportClosed)
}

func TestReadBurst_BufferLength(t *testing.T) {
	t.Parallel()

	_, clk, dio, ce := newRecordingPins()
	transport, err := NewFromPins(clk, dio, ce)
	require.NoError(t, err)

	err = transport.ReadBurst(make([]byte, 4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "burst buffer")
}

// The chipsim tests drive the transport against a pin-level DS1302
// simulator, covering the full shift-in/shift-out protocol including the
// data line direction switch and the write-protect latch.

func newSimTransport(t *testing.T) (*chipsim.Chip, *Transport) {
	t.Helper()
	chip := chipsim.New()
	clk, dio, ce := chip.Pins()
	transport, err := NewFromPins(clk, dio, ce)
	require.NoError(t, err)
	return chip, transport
}

func TestSim_WriteRespectsWriteProtect(t *testing.T) {
	t.Parallel()

	chip, transport := newSimTransport(t)
	require.True(t, chip.WriteProtected())

	// A protected write is silently dropped by the chip.
	require.NoError(t, transport.WriteRegister(ds1302.SecondsWrite, 0x30))
	assert.EqualValues(t, 0x00, chip.Register(ds1302.SecondsWrite))

	// Clear write-protect, write, re-arm: the canonical sequence.
	require.NoError(t, transport.WriteRegister(ds1302.WriteProtect, 0x00))
	require.False(t, chip.WriteProtected())
	require.NoError(t, transport.WriteRegister(ds1302.SecondsWrite, 0x30))
	require.NoError(t, transport.WriteRegister(ds1302.WriteProtect, 0x80))

	assert.EqualValues(t, 0x30, chip.Register(ds1302.SecondsWrite))
	assert.True(t, chip.WriteProtected())
}

func TestSim_ReadRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reg   ds1302.Register
		value byte
	}{
		{name: "Zero", reg: ds1302.SecondsRead, value: 0x00},
		{name: "AllBitsInLowNibble", reg: ds1302.MinutesRead, value: 0x0F},
		{name: "HighBitSet", reg: ds1302.HoursRead, value: 0x80},
		{name: "TypicalBCD", reg: ds1302.YearRead, value: 0x24},
		{name: "AllOnes", reg: ds1302.DayRead, value: 0xFF},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			chip, transport := newSimTransport(t)
			chip.SetRegister(tt.reg, tt.value)

			got, err := transport.ReadRegister(tt.reg)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSim_WriteThenReadRoundTrip(t *testing.T) {
	t.Parallel()

	chip, transport := newSimTransport(t)
	require.NoError(t, transport.WriteRegister(ds1302.WriteProtect, 0x00))

	for _, value := range []byte{0x00, 0x01, 0x59, 0x7F, 0xAA} {
		require.NoError(t, transport.WriteRegister(ds1302.MinutesWrite, value))
		got, err := transport.ReadRegister(ds1302.MinutesRead)
		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.Equal(t, value, chip.Register(ds1302.MinutesWrite))
	}
}

func TestSim_WriteProtectReadsBack(t *testing.T) {
	t.Parallel()

	_, transport := newSimTransport(t)

	got, err := transport.ReadRegister(ds1302.WriteProtect | 0x01)
	require.NoError(t, err)
	assert.EqualValues(t, 0x80, got)

	require.NoError(t, transport.WriteRegister(ds1302.WriteProtect, 0x00))
	got, err = transport.ReadRegister(ds1302.WriteProtect | 0x01)
	require.NoError(t, err)
	assert.EqualValues(t, 0x00, got)
}

func TestSim_ReadBurst(t *testing.T) {
	t.Parallel()

	chip, transport := newSimTransport(t)
	chip.SetRegister(ds1302.SecondsWrite, 0x30)
	chip.SetRegister(ds1302.MinutesWrite, 0x47)
	chip.SetRegister(ds1302.HoursWrite, 0x15)
	chip.SetRegister(ds1302.DayWrite, 0x03)
	chip.SetRegister(ds1302.MonthWrite, 0x02)
	chip.SetRegister(ds1302.WeekdayWrite, 0x06)
	chip.SetRegister(ds1302.YearWrite, 0x24)

	buf := make([]byte, ds1302.BurstLen)
	require.NoError(t, transport.ReadBurst(buf))
	assert.Equal(t, []byte{0x30, 0x47, 0x15, 0x03, 0x02, 0x06, 0x24, 0x80}, buf)
}

func TestSim_RAMRoundTrip(t *testing.T) {
	t.Parallel()

	_, transport := newSimTransport(t)
	require.NoError(t, transport.WriteRegister(ds1302.WriteProtect, 0x00))

	for _, n := range []int{0, 1, 15, ds1302.RAMSize - 1} {
		writeReg, err := ds1302.RAMRegister(n, false)
		require.NoError(t, err)
		readReg, err := ds1302.RAMRegister(n, true)
		require.NoError(t, err)

		value := byte(0xC3 ^ n)
		require.NoError(t, transport.WriteRegister(writeReg, value))
		got, readErr := transport.ReadRegister(readReg)
		require.NoError(t, readErr)
		assert.Equal(t, value, got)
	}
}

func TestSim_HasCapability(t *testing.T) {
	t.Parallel()

	_, transport := newSimTransport(t)
	assert.True(t, transport.HasCapability(ds1302.CapabilityBurstRead))
	assert.False(t, transport.HasCapability(ds1302.TransportCapability("bogus")))
}

func TestNewFromPins_PinFailure(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	clk := &recordingPin{rec: rec, name: "CLK"}
	dio := &recordingPin{rec: rec, name: "DIO"}
	ce := &recordingPin{rec: rec, name: "CE"}

	// A clock pin that cannot be driven fails construction.
	clk.writeErr = errors.New("gpio fault")
	_, err := NewFromPins(clk, dio, ce)
	require.Error(t, err)

	var transportErr *ds1302.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "CLK", transportErr.Line)
}
