// This file is part of Smashpad.
//
// Smashpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Smashpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Smashpad.  If not, see <https://www.gnu.org/licenses/>.

// Package performance contains the profiling helpers. ProfileCPU() wraps a
// run function with CPU profile capture; ProfileMem() snapshots the heap
// once the run has finished. Both write standard pprof files.
package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/smashpad/smashpad/curated"
)

// Error pattern for the performance package.
const ProfilingError = "profiling: %v"

// ProfileCPU runs the supplied function with CPU profiling enabled, writing
// the profile to the named file.
func ProfileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a heap profile of the current moment to the named file.
// Call after the interesting work has been done.
func ProfileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return curated.Errorf(ProfilingError, err)
	}

	return nil
}
