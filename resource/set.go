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

package resource

// Handle is an opaque loaded resource. The playmode package stores SDL
// textures and mixer chunks behind Handle values; the engine and the
// policies never look inside one.
type Handle interface{}

// Set is an immutable named collection of loaded resources. A Set is built
// once, by LoadItems(), and never mutated afterwards.
type Set struct {
	names []string
	items map[string]Handle
}

func newSet() *Set {
	return &Set{
		names: make([]string, 0),
		items: make(map[string]Handle),
	}
}

func (set *Set) add(name string, h Handle) {
	if _, ok := set.items[name]; !ok {
		set.names = append(set.names, name)
	}
	set.items[name] = h
}

// Len returns the number of resources in the set.
func (set *Set) Len() int {
	return len(set.names)
}

// At returns the resource at index i. Index order is the order the resources
// were loaded in, which is stable for a given set of resource files.
func (set *Set) At(i int) Handle {
	return set.items[set.names[i]]
}

// Get returns the resource with the named origin file.
func (set *Set) Get(name string) (Handle, bool) {
	h, ok := set.items[name]
	return h, ok
}

// Names returns the origin file names of every resource in the set, in index
// order.
func (set *Set) Names() []string {
	n := make([]string, len(set.names))
	copy(n, set.names)
	return n
}
