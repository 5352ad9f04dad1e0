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

//go:build linux

package gpiochip

import (
	"fmt"
	"path/filepath"
	"sort"
	"unsafe"

	"golang.org/x/sys/unix"
)

// gpiochipInfo mirrors struct gpiochip_info from <linux/gpio.h>.
type gpiochipInfo struct {
	name  [32]byte
	label [32]byte
	lines uint32
}

// gpioGetChipInfo is the GPIO_GET_CHIPINFO_IOCTL request code.
const gpioGetChipInfo = 0x8044b401

// Scan lists the GPIO controllers present on the system. Controllers that
// disappear mid-scan or are permission-restricted are skipped rather than
// failing the whole scan.
func Scan() ([]Chip, error) {
	paths, err := filepath.Glob("/dev/gpiochip*")
	if err != nil {
		return nil, fmt.Errorf("glob gpiochip devices: %w", err)
	}
	sort.Strings(paths)

	chips := make([]Chip, 0, len(paths))
	for _, path := range paths {
		chip, probeErr := probe(path)
		if probeErr != nil {
			continue
		}
		chips = append(chips, chip)
	}
	return chips, nil
}

// probe queries one character device for its chip info.
func probe(path string) (Chip, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return Chip{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = unix.Close(fd) }()

	var info gpiochipInfo
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), gpioGetChipInfo,
		uintptr(unsafe.Pointer(&info))); errno != 0 {
		return Chip{}, fmt.Errorf("chip info ioctl on %s: %w", path, errno)
	}

	return Chip{
		Path:  path,
		Name:  cString(info.name[:]),
		Label: cString(info.label[:]),
		Lines: int(info.lines),
	}, nil
}
