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

// TransactionKind distinguishes the transaction types a MockTransport
// records.
type TransactionKind string

const (
	// TransactionWrite is a register write.
	TransactionWrite TransactionKind = "write"
	// TransactionRead is a register read.
	TransactionRead TransactionKind = "read"
	// TransactionCommand is a bare command byte.
	TransactionCommand TransactionKind = "command"
	// TransactionBurst is a clock-burst read.
	TransactionBurst TransactionKind = "burst"
)

// Transaction records one chip-enable bracketed transaction seen by a
// MockTransport.
type Transaction struct {
	Kind  TransactionKind
	Reg   Register
	Value byte
}

// MockTransport is an in-memory Transport for testing the Device facade.
// It records every transaction in order and serves reads from a register
// map seeded with SetRegister.
type MockTransport struct {
	registers    map[Register]byte
	errs         map[Register]error
	Transactions []Transaction
	burst        [BurstLen]byte
	burstErr     error
	burstCapable bool
	closed       bool
}

// NewMockTransport creates a new mock transport. Burst reads are supported
// by default; call SetBurstCapable(false) to model a transport without the
// capability.
func NewMockTransport() *MockTransport {
	return &MockTransport{
		registers:    make(map[Register]byte),
		errs:         make(map[Register]error),
		burstCapable: true,
	}
}

// SetRegister seeds the value returned for reads of reg. The value is keyed
// by the exact command byte, so seed the read address for facade reads.
func (m *MockTransport) SetRegister(reg Register, value byte) {
	m.registers[reg] = value
}

// SetError makes any transaction on reg fail with err.
func (m *MockTransport) SetError(reg Register, err error) {
	m.errs[reg] = err
}

// SetBurst seeds the clock-burst snapshot returned by ReadBurst.
func (m *MockTransport) SetBurst(snap [BurstLen]byte) {
	m.burst = snap
}

// SetBurstError makes ReadBurst fail with err.
func (m *MockTransport) SetBurstError(err error) {
	m.burstErr = err
}

// SetBurstCapable toggles the burst read capability.
func (m *MockTransport) SetBurstCapable(capable bool) {
	m.burstCapable = capable
}

// Writes returns the recorded write transactions only, in order.
func (m *MockTransport) Writes() []Transaction {
	writes := make([]Transaction, 0, len(m.Transactions))
	for _, tr := range m.Transactions {
		if tr.Kind == TransactionWrite {
			writes = append(writes, tr)
		}
	}
	return writes
}

// WriteRegister records the write and stores the value so a later read of
// the paired read address observes it.
func (m *MockTransport) WriteRegister(reg Register, value byte) error {
	if m.closed {
		return ErrTransportClosed
	}
	if err := m.errs[reg]; err != nil {
		return err
	}
	m.Transactions = append(m.Transactions, Transaction{Kind: TransactionWrite, Reg: reg, Value: value})
	m.registers[reg] = value
	m.registers[reg|0x01] = value
	return nil
}

// ReadRegister records the read and returns the seeded value.
func (m *MockTransport) ReadRegister(reg Register) (byte, error) {
	if m.closed {
		return 0, ErrTransportClosed
	}
	if err := m.errs[reg]; err != nil {
		return 0, err
	}
	value := m.registers[reg]
	m.Transactions = append(m.Transactions, Transaction{Kind: TransactionRead, Reg: reg, Value: value})
	return value, nil
}

// WriteCommand records the bare command byte.
func (m *MockTransport) WriteCommand(cmd Register) error {
	if m.closed {
		return ErrTransportClosed
	}
	if err := m.errs[cmd]; err != nil {
		return err
	}
	m.Transactions = append(m.Transactions, Transaction{Kind: TransactionCommand, Reg: cmd})
	return nil
}

// ReadBurst returns the seeded snapshot.
func (m *MockTransport) ReadBurst(buf []byte) error {
	if m.closed {
		return ErrTransportClosed
	}
	if m.burstErr != nil {
		return m.burstErr
	}
	m.Transactions = append(m.Transactions, Transaction{Kind: TransactionBurst, Reg: BurstModeRead})
	copy(buf, m.burst[:])
	return nil
}

// HasCapability implements TransportCapabilityChecker.
func (m *MockTransport) HasCapability(capability TransportCapability) bool {
	return m.burstCapable && capability == CapabilityBurstRead
}

// Close marks the transport closed.
func (m *MockTransport) Close() error {
	m.closed = true
	return nil
}

// Type returns the transport type
func (*MockTransport) Type() TransportType {
	return TransportMock
}

// Ensure MockTransport implements the transport interfaces
var (
	_ Transport                  = (*MockTransport)(nil)
	_ BurstReader                = (*MockTransport)(nil)
	_ TransportCapabilityChecker = (*MockTransport)(nil)
)
