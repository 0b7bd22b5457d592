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

// Package extension loads the declarative rule files that reconfigure the
// engine at startup without code changes. An extension lives in its own
// subdirectory of the data directory, holding a rule file named
// extension.yaml and any sound files of its own. For example:
//
//	apiVersion: 0
//	image:
//	  - check:
//	      - type: KEYDOWN
//	      - unicode:
//	          isalpha: true
//	    policy: font
//	  - policy: random
//	sound:
//	  - policy: random
//
// Validation happens once at load, not per event. Unknown keys anywhere in
// the document, a missing or unsupported apiVersion, and a check with
// anything other than exactly one predicate are all fatal errors naming the
// offending file.
package extension
