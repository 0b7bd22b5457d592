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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/paths"
	"github.com/smashpad/smashpad/test"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte{}, 0600); err != nil {
		t.Fatal(err)
	}
}

func TestGlobData(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "pop.wav"))
	touch(t, filepath.Join(dir, "LOUD.WAV"))
	touch(t, filepath.Join(dir, "cat.gif"))
	touch(t, filepath.Join(dir, "animals", "moo.wav"))
	touch(t, filepath.Join(dir, "readme.txt"))

	files := paths.GlobData([]string{dir}, []string{"*.wav"})
	test.ExpectEquality(t, len(files), 3)

	files = paths.GlobData([]string{dir}, []string{"*.gif", "*.jpg"})
	test.ExpectEquality(t, len(files), 1)
}

// extension directories do not contribute to the base resource set
func TestGlobDataSkipsExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "pop.wav"))
	touch(t, filepath.Join(dir, "farmyard", "extension.yaml"))
	touch(t, filepath.Join(dir, "farmyard", "moo.wav"))

	files := paths.GlobData([]string{dir}, []string{"*.wav"})
	test.ExpectEquality(t, len(files), 1)

	// globbing the extension directory itself does find its sounds
	files = paths.GlobData([]string{filepath.Join(dir, "farmyard")}, []string{"*.wav"})
	test.ExpectEquality(t, len(files), 1)
}

func TestGlobDataMissingDir(t *testing.T) {
	files := paths.GlobData([]string{filepath.Join(t.TempDir(), "not-there")}, []string{"*.wav"})
	test.ExpectEquality(t, len(files), 0)
}

func TestExtensionDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "farmyard", "extension.yaml"))

	d, err := paths.ExtensionDir([]string{dir}, "farmyard")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, filepath.Join(dir, "farmyard"))

	_, err = paths.ExtensionDir([]string{dir}, "jungle")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, paths.ExtensionNotFound), true)
}
