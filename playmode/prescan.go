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

package playmode

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/smashpad/smashpad/curated"
)

// Error patterns for sound file prescanning.
const (
	BadSoundFile  = "not a valid %s file: %s"
	UnknownFormat = "unrecognised sound format: %s"
)

// prescan checks that a sound file really is what its extension claims,
// returning its playing time. The mixer's own loader accepts some corrupt
// files silently; this catches them by name first.
func prescan(path string) (time.Duration, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return prescanWAV(path)
	case ".mp3":
		return prescanMP3(path)
	}
	return 0, curated.Errorf(UnknownFormat, path)
}

func prescanWAV(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, curated.Errorf(BadSoundFile, "wav", path)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, curated.Errorf(BadSoundFile, "wav", path)
	}

	// decode the whole stream. a file with valid headers but no samples is
	// no use to the mixer
	var buf *audio.IntBuffer
	buf, err = dec.FullPCMBuffer()
	if err != nil || buf.NumFrames() == 0 {
		return 0, curated.Errorf(BadSoundFile, "wav", path)
	}

	d, err := dec.Duration()
	if err != nil {
		return 0, curated.Errorf(BadSoundFile, "wav", path)
	}

	return d, nil
}

func prescanMP3(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, curated.Errorf(BadSoundFile, "mp3", path)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, curated.Errorf(BadSoundFile, "mp3", path)
	}

	// decoded samples are stereo 16bit, four bytes a frame
	frames := dec.Length() / 4
	if dec.SampleRate() == 0 {
		return 0, curated.Errorf(BadSoundFile, "mp3", path)
	}

	return time.Duration(frames) * time.Second / time.Duration(dec.SampleRate()), nil
}
