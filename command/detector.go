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

package command

import (
	"strings"
	"unicode"
)

// Word is one of the recognised command words.
type Word string

// List of recognised command words.
const (
	Quit   Word = "quit"
	Mute   Word = "mute"
	Unmute Word = "unmute"
)

// the order words are checked in. unmute must be checked before mute because
// mute is a substring of unmute
var priority = [...]Word{Quit, Unmute, Mute}

// the maximum number of characters held in the rolling buffer. the buffer
// only needs to be long enough to hold the longest command word but a little
// extra means a word straddling a trim is never missed
const maxBuffer = 32

// Detector recognises command words typed through the normal keyboard input
// stream, without a dedicated command mode. Characters accumulate in a
// rolling buffer and every recognised word is searched for as a substring of
// that buffer.
type Detector struct {
	buffer []rune
}

// NewDetector is the preferred method of initialisation for the Detector
// type.
func NewDetector() *Detector {
	return &Detector{
		buffer: make([]rune, 0, maxBuffer),
	}
}

// Observe the next typed character. Non-alphabetic characters are ignored.
// If the accumulated buffer now contains a command word the buffer is
// emptied and the word returned, with the second return value true.
func (dt *Detector) Observe(char rune) (Word, bool) {
	if !unicode.IsLetter(char) {
		return "", false
	}

	dt.buffer = append(dt.buffer, unicode.ToLower(char))
	if len(dt.buffer) > maxBuffer {
		dt.buffer = dt.buffer[len(dt.buffer)-maxBuffer:]
	}

	s := string(dt.buffer)
	for _, w := range priority {
		if strings.Contains(s, string(w)) {
			dt.Reset()
			return w, true
		}
	}

	return "", false
}

// Reset empties the rolling buffer.
func (dt *Detector) Reset() {
	dt.buffer = dt.buffer[:0]
}
