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

package random

import (
	"math/rand"
	"time"
)

// Random is the single source of randomness for a Smashpad session. A fixed
// seed reproduces the exact sequence of selections, which is what the test
// suites rely on.
type Random struct {
	seed int64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
// The seed is taken from the clock.
func NewRandom() *Random {
	return NewSeededRandom(int64(time.Now().UnixNano()))
}

// NewSeededRandom creates a Random with an explicit seed. Two instances
// created with the same seed produce the same sequence.
func NewSeededRandom(seed int64) *Random {
	return &Random{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the Random was created with.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.Intn(n)
}
