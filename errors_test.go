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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *TransportError
		name string
		want string
	}{
		{
			name: "With_Line",
			err:  NewTransportError("pulseClock", "CLK", errors.New("gpio fault")),
			want: "pulseClock on CLK: gpio fault",
		},
		{
			name: "Without_Line",
			err:  NewTransportError("WriteRegister", "", ErrTransportClosed),
			want: "WriteRegister: transport closed",
		},
		{
			name: "Pin_Mode",
			err:  NewPinModeError("Read", "DIO"),
			want: "Read on DIO: pin accessed against its configured direction",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("gpio fault")
	err := NewTransportError("writeByte", "DIO", inner)
	assert.ErrorIs(t, err, inner)

	var transportErr *TransportError
	require.ErrorAs(t, error(err), &transportErr)
	assert.Equal(t, "DIO", transportErr.Line)
	assert.Equal(t, "writeByte", transportErr.Op)
}

func TestNewPinModeError(t *testing.T) {
	t.Parallel()

	err := NewPinModeError("Write", "DIO")
	assert.ErrorIs(t, err, ErrPinMode)
}
