// Package tree implements a render-agnostic tree navigation engine: a
// hierarchical forest of nodes, an expand/collapse + selection state machine,
// a pure flattener that projects the forest into visible rows, and the scroll
// offset math needed to keep the selection on screen.
//
// The package performs no I/O and defines no key bindings; hosts supply the
// forest (see pkg/fstree for the filesystem provider) and translate input
// events into State operations.
package tree

import "strings"

// pathSep separates identifiers inside a Path map key. Unit Separator is not
// expected to appear in identifiers coming from real data sources.
const pathSep = "\x1f"

// Path addresses a node from the root as an ordered sequence of per-level
// identifiers. Paths are compared structurally and stay valid across
// reorderings of unrelated subtrees, unlike indices or node pointers.
//
// The empty path denotes the virtual root above all top-level nodes; it is
// never visible and never selectable.
type Path []string

// IsRoot reports whether p is the virtual root (empty path).
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path of the direct parent. The parent of a top-level
// path (or the virtual root) is the virtual root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1].Clone()
}

// Child returns a new path extending p with one more identifier.
func (p Path) Child(id string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = id
	return child
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports structural equality.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// IsAncestorOf reports whether p is a strict prefix of other. A path is not
// its own ancestor; the virtual root is an ancestor of every non-empty path.
func (p Path) IsAncestorOf(other Path) bool {
	if len(p) >= len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Key returns a value usable as a map key for this path.
func (p Path) Key() string {
	return strings.Join(p, pathSep)
}

// String renders the path for display and logging.
func (p Path) String() string {
	return strings.Join(p, "/")
}
