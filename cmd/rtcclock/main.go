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

// rtcclock reads and sets a DS1302 real-time clock wired to three GPIO
// pins. Without flags it prints the clock once a second, like a bench
// monitor.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	ds1302 "github.com/soilwatch/go-ds1302"
	"github.com/soilwatch/go-ds1302/detection/gpiochip"
	"github.com/soilwatch/go-ds1302/transport/threewire"
)

type config struct {
	clk      *string
	dio      *string
	ce       *string
	set      *string
	interval *time.Duration
	once     *bool
	list     *bool
	burst    *bool
	debug    *bool
}

func parseFlags() *config {
	cfg := &config{
		clk:      flag.String("clk", "GPIO10", "Clock pin name (as registered with periph gpioreg)"),
		dio:      flag.String("dio", "GPIO11", "Data pin name"),
		ce:       flag.String("ce", "GPIO12", "Chip-enable/reset pin name"),
		set:      flag.String("set", "", "Set the clock to an RFC3339 time before reading (e.g. 2024-02-03T15:47:30Z)"),
		interval: flag.Duration("interval", time.Second, "Delay between reads (default: 1s)"),
		once:     flag.Bool("once", false, "Read the clock once and exit"),
		list:     flag.Bool("list", false, "List GPIO controllers and exit"),
		burst:    flag.Bool("burst", false, "Use clock-burst snapshots for reads"),
		debug:    flag.Bool("debug", false, "Enable debug output"),
	}
	flag.Parse()

	if *cfg.debug {
		ds1302.SetDebugEnabled(true)
	}

	return cfg
}

func listChips() error {
	chips, err := gpiochip.Scan()
	if err != nil {
		return fmt.Errorf("failed to scan GPIO controllers: %w", err)
	}
	if len(chips) == 0 {
		fmt.Println("No GPIO controllers found")
		return nil
	}
	for _, chip := range chips {
		fmt.Printf("%s: %s [%s], %d lines\n", chip.Path, chip.Name, chip.Label, chip.Lines)
	}
	return nil
}

func setClock(device *ds1302.Device, value string) error {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid -set time %q: %w", value, err)
	}
	if err := device.SetTime(t); err != nil {
		return fmt.Errorf("failed to set clock: %w", err)
	}
	fmt.Printf("Clock set to %s\n", t.Format(time.RFC3339))
	return nil
}

func run(cfg *config) error {
	if *cfg.list {
		return listChips()
	}

	transport, err := threewire.New(*cfg.clk, *cfg.dio, *cfg.ce)
	if err != nil {
		return fmt.Errorf("failed to open three-wire transport: %w", err)
	}
	defer func() { _ = transport.Close() }()

	device, err := ds1302.New(transport, ds1302.WithBurstReads(*cfg.burst))
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}

	if *cfg.set != "" {
		if err := setClock(device, *cfg.set); err != nil {
			return err
		}
	}

	for {
		date, err := device.GetDate()
		if err != nil {
			return fmt.Errorf("failed to read clock: %w", err)
		}
		fmt.Println(date)

		if *cfg.once {
			return nil
		}
		time.Sleep(*cfg.interval)
	}
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
