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

// Package test contains helper functions for the testing of Smashpad.
//
// The comparison functions are convenient ways of comparing values and
// failing the test on inequality. The pattern throughout the project's tests
// is:
//
//	test.ExpectEquality(t, got, expected)
//
// ExpectSuccess() and ExpectFailure() are for bool and error values where
// only the success/failure of the value matters.
package test
