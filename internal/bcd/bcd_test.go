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

package bcd

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		want  byte
	}{
		{name: "Zero", value: 0, want: 0x00},
		{name: "Units_Only", value: 7, want: 0x07},
		{name: "Tens_And_Units", value: 59, want: 0x59},
		{name: "Max", value: 99, want: 0x99},
		{name: "Tens_Only", value: 30, want: 0x30},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	for _, value := range []int{-1, -10, 100, 255, 1000} {
		value := value
		t.Run(strconv.Itoa(value), func(t *testing.T) {
			t.Parallel()

			_, err := Encode(value)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRange)
		})
	}
}

// TestRoundTrip verifies Decode(Encode(v)) == v for every encodable value.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for v := 0; v <= 99; v++ {
		b, err := Encode(v)
		require.NoError(t, err)
		assert.Equal(t, v, Decode(b))
		assert.Equal(t, strconv.Itoa(v), String(b))
	}
}

func TestDecode_NoNibbleValidation(t *testing.T) {
	t.Parallel()

	// Malformed nibbles decode to a wrong but harmless value.
	assert.Equal(t, 175, Decode(0xFF))
	assert.Equal(t, 47, Decode(0x47))
	assert.Equal(t, "47", String(0x47))
}
