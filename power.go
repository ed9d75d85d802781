// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"fmt"
	"time"
)

// PowerMode is the simulated power state of the desktop.
type PowerMode int

// Values of PowerMode.
const (
	PowerOn PowerMode = iota
	Sleep
	Restart
	Shutdown
)

func (m PowerMode) String() string {
	switch m {
	case PowerOn:
		return "on"
	case Sleep:
		return "sleep"
	case Restart:
		return "restart"
	case Shutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("PowerMode(%d)", int(m))
	}
}

const (
	restartStep     = 2
	restartInterval = 100 * time.Millisecond
	restartSettle   = 500 * time.Millisecond
)

// PowerButtonSize is the side of the power button shown while shut down.
var PowerButtonSize = Size{64, 64}

// PowerStates runs the sleep, restart and shutdown overlays. While a mode
// other than PowerOn is set, the overlay swallows all pointer input.
type PowerStates struct {
	elapsed   time.Duration // Time since the last restart step.
	mode      PowerMode     //
	onRestart func()        // Called when a restart completes.
	progress  int           // Restart progress in percent.
	settling  bool          // Progress reached 100.
}

// Mode returns the current power mode.
func (ps *PowerStates) Mode() PowerMode { return ps.mode }

// Progress returns the restart progress in percent.
func (ps *PowerStates) Progress() int { return ps.progress }

// Enter switches to mode.
func (ps *PowerStates) Enter(mode PowerMode) {
	ps.mode = mode
	ps.elapsed = 0
	ps.progress = 0
	ps.settling = false
}

// Tick advances the restart animation by d. The restart completes
// restartSettle after the progress reaches 100.
func (ps *PowerStates) Tick(d time.Duration) {
	if ps.mode != Restart {
		return
	}

	ps.elapsed += d
	for ps.mode == Restart {
		if ps.settling {
			if ps.elapsed < restartSettle {
				return
			}

			ps.Enter(PowerOn)
			if f := ps.onRestart; f != nil {
				f()
			}
			return
		}

		if ps.elapsed < restartInterval {
			return
		}

		ps.elapsed -= restartInterval
		if ps.progress += restartStep; ps.progress >= 100 {
			ps.progress = 100
			ps.settling = true
		}
	}
}

// PowerButton returns the area of the power button on a screen of size sz.
func PowerButton(sz Size) Rectangle {
	return Rectangle{Position{(sz.Width - PowerButtonSize.Width) / 2, (sz.Height - PowerButtonSize.Height) / 2}, PowerButtonSize}
}

// Click handles a pointer press at p on a screen of size sz and reports
// whether the overlay consumed it. Any click wakes from sleep; only the
// power button turns the machine back on.
func (ps *PowerStates) Click(p Position, sz Size) bool {
	switch ps.mode {
	case PowerOn:
		return false
	case Sleep:
		ps.Enter(PowerOn)
	case Shutdown:
		if PowerButton(sz).Has(p) {
			ps.Enter(PowerOn)
		}
	}
	return true
}
