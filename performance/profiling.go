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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profile is used to specify the type of profile to be generated by the
// RunProfiler() function.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfileString turns a command line profile specification into a
// Profile value.
func ParseProfileString(s string) (Profile, error) {
	switch s {
	case "NONE", "none":
		return ProfileNone, nil
	case "CPU", "cpu":
		return ProfileCPU, nil
	case "MEM", "mem":
		return ProfileMem, nil
	case "ALL", "all":
		return ProfileAll, nil
	}
	return ProfileNone, fmt.Errorf("profiling: unknown profile type (%s)", s)
}

// RunProfiler runs the supplied function, gathering the requested profiling
// information as it goes. Profiles are written to files named after the tag.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", tag))
		if err != nil {
			return fmt.Errorf("profiling: %w", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("profiling: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", tag))
		if err != nil {
			return fmt.Errorf("profiling: %w", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return fmt.Errorf("profiling: %w", err)
		}
	}

	return nil
}
