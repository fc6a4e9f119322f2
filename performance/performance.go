// This file is part of Gopher11.
//
// Gopher11 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher11 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher11.  If not, see <https://www.gnu.org/licenses/>.

// Package performance measures the performance of the simulator. It runs a
// loaded machine flat out and reports the achieved simulation rate,
// optionally gathering Go profiling information at the same time.
package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher11/hardware"
)

// sentinel error returned by the Run() loop when the measurement period has
// expired before the program has halted.
var timedOut = errors.New("performance timed out")

// Check the performance of the simulator using the machine it is given. The
// machine should have an image loaded but not yet run.
//
// The machine runs until it halts or until the supplied duration expires,
// whichever comes first. A profile of the run is created as requested by the
// profile argument.
func Check(output io.Writer, sys *hardware.PDP11, duration string, profile Profile) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var elapsed time.Duration

	runner := func() error {
		startTime := time.Now()
		deadline := startTime.Add(dur)

		// checking the clock is expensive relative to a simulated
		// instruction so only do so every PerformanceBrake instructions
		brake := 0

		err := sys.Run(func() error {
			brake++
			if brake >= hardware.PerformanceBrake {
				brake = 0
				if time.Now().After(deadline) {
					return timedOut
				}
			}
			return nil
		})

		elapsed = time.Since(startTime)

		if err != nil && !errors.Is(err, timedOut) {
			return err
		}
		return nil
	}

	err = RunProfiler(profile, "gopher11", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	execs := sys.CPU.Counters.InstExecs
	rate := float64(execs) / elapsed.Seconds()

	if sys.CPU.Halted {
		fmt.Fprintf(output, "program halted after %d instructions in %.2fs\n", execs, elapsed.Seconds())
	} else {
		fmt.Fprintf(output, "%d instructions in %.2fs (did not halt)\n", execs, elapsed.Seconds())
	}
	fmt.Fprintf(output, "%.0f instructions per second\n", rate)

	return nil
}
