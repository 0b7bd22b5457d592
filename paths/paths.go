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

package paths

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/logger"
)

// the data directory name, both next to the program binary and inside the
// per-user directory
const dataDirName = "data"

// the per-user directory name inside $XDG_DATA_HOME
const appDirName = "smashpad"

// the marker file that makes a subdirectory an extension directory. walk
// functions skip extension directories; their content is only used when the
// extension is activated by name
const extensionMarker = "extension.yaml"

// ExtensionNotFound is the error pattern for a named extension with no
// corresponding directory.
const ExtensionNotFound = "paths: no extension directory named: %s"

// DataDirs returns the directories that resource files are discovered in:
// the data directory next to the program binary and, if it exists, the data
// directory inside the user's XDG data home.
func DataDirs() []string {
	dirs := make([]string, 0, 2)

	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), dataDirName))
	}

	xdg := os.Getenv("XDG_DATA_HOME")
	if xdg == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdg = filepath.Join(home, ".local", "share")
		}
	}
	if xdg != "" {
		d := filepath.Join(xdg, appDirName, dataDirName)
		if fi, err := os.Stat(d); err == nil && fi.IsDir() {
			logger.Logf(logger.Allow, "paths", "extra data dir: %s", d)
			dirs = append(dirs, d)
		}
	}

	return dirs
}

// GlobData returns every file under the given directories whose name
// matches any of the glob patterns, searching subdirectories recursively.
// Matching is case-insensitive on the file name. Extension directories are
// skipped; their resources belong to the extension alone.
//
// A directory that does not exist is not an error, it simply contributes no
// files.
func GlobData(dirs []string, patterns []string) []string {
	files := make([]string, 0)

	for _, dir := range dirs {
		root := dir
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}

			if d.IsDir() {
				if path != root {
					if _, err := os.Stat(filepath.Join(path, extensionMarker)); err == nil {
						return fs.SkipDir
					}
				}
				return nil
			}

			name := strings.ToLower(d.Name())
			for _, pattern := range patterns {
				if m, _ := filepath.Match(pattern, name); m {
					files = append(files, path)
					break // pattern loop
				}
			}
			return nil
		})
	}

	return files
}

// ExtensionDir finds the directory of the named extension: the subdirectory
// of a data directory with that name, containing an extension rule file.
func ExtensionDir(dirs []string, name string) (string, error) {
	for _, dir := range dirs {
		d := filepath.Join(dir, name)
		if _, err := os.Stat(filepath.Join(d, extensionMarker)); err == nil {
			return d, nil
		}
	}
	return "", curated.Errorf(ExtensionNotFound, name)
}

// ExtensionFile returns the path of the rule file inside an extension
// directory.
func ExtensionFile(dir string) string {
	return filepath.Join(dir, extensionMarker)
}
