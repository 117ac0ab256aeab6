package tree

import (
	"errors"
	"sort"
)

// ErrNotFound is returned by Select when the given path does not resolve
// against the current forest. It is the only error the engine produces; all
// other operations are total and silently no-op on stale input.
var ErrNotFound = errors.New("tree: path not found")

// OpenSet tracks which interior nodes are expanded. Absence means collapsed.
// Entries for paths that no longer resolve against the forest are inert: they
// are never auto-pruned and never cause errors, so the forest can be replaced
// wholesale while expand state is preserved for the paths that survive.
type OpenSet struct {
	paths map[string]Path
}

// NewOpenSet returns an empty open set.
func NewOpenSet() *OpenSet {
	return &OpenSet{paths: make(map[string]Path)}
}

// Add records p as open. Adding the virtual root is a no-op.
func (s *OpenSet) Add(p Path) {
	if len(p) == 0 {
		return
	}
	s.paths[p.Key()] = p.Clone()
}

// Remove records p as collapsed. Removing an absent path is a no-op.
func (s *OpenSet) Remove(p Path) {
	delete(s.paths, p.Key())
}

// Has reports whether p is marked open. A nil set has nothing open.
func (s *OpenSet) Has(p Path) bool {
	if s == nil {
		return false
	}
	_, ok := s.paths[p.Key()]
	return ok
}

// Len returns the number of recorded open paths, stale entries included.
func (s *OpenSet) Len() int {
	return len(s.paths)
}

// Clear collapses everything.
func (s *OpenSet) Clear() {
	s.paths = make(map[string]Path)
}

// Paths returns the recorded open paths in a stable order, for persistence.
func (s *OpenSet) Paths() []Path {
	out := make([]Path, 0, len(s.paths))
	for _, p := range s.paths {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// State owns the open set and the current selection for one forest. It is
// mutated exclusively on the goroutine that owns the UI event loop; there is
// no internal locking. All operations are O(depth) or O(visible rows).
type State struct {
	roots    []*Node
	open     *OpenSet
	selected Path
}

// NewState creates a state over the given root nodes with everything
// collapsed and nothing selected.
func NewState(roots ...*Node) *State {
	return &State{roots: roots, open: NewOpenSet()}
}

// SetForest replaces the forest wholesale. Open and selection paths are kept
// as-is: entries that still resolve keep working, the rest become inert.
func (s *State) SetForest(roots []*Node) {
	s.roots = roots
}

// Roots returns the current forest.
func (s *State) Roots() []*Node {
	return s.roots
}

// Open returns the open set, mainly for persistence snapshots.
func (s *State) Open() *OpenSet {
	return s.open
}

// Rows returns the current visible-row sequence. It is recomputed on every
// call; cost is proportional to the visible node count, not the forest size.
func (s *State) Rows() []Row {
	return Flatten(s.roots, s.open)
}

// Selected returns the current selection path, or nil when nothing is
// selected. The selection may reference a node hidden inside a collapsed
// ancestor; navigation operations restore visibility before moving.
func (s *State) Selected() Path {
	return s.selected
}

// IsSelected reports whether p is the current selection.
func (s *State) IsSelected(p Path) bool {
	return len(s.selected) > 0 && s.selected.Equal(p)
}

// Select sets the selection to p if it resolves to an existing node and
// returns ErrNotFound otherwise. The open set is not touched: selecting a
// node hidden inside a collapsed ancestor succeeds, and the next navigation
// call reveals it (see revealSelection).
func (s *State) Select(p Path) error {
	if Find(s.roots, p) == nil {
		return ErrNotFound
	}
	s.selected = p.Clone()
	return nil
}

// OpenPath marks the interior node at p as expanded. Leaves, stale paths and
// the virtual root are silent no-ops: the forest may have changed underneath
// the caller and an expand on a vanished path should not surface an error.
func (s *State) OpenPath(p Path) {
	n := Find(s.roots, p)
	if n == nil || !n.Interior() {
		return
	}
	s.open.Add(p)
}

// ClosePath marks the node at p as collapsed. Closing an ancestor of the
// current selection re-parents the selection to the closed node, so the
// selection never ends up hidden inside a collapsed subtree. Stale paths are
// removed from the open set as a no-op.
func (s *State) ClosePath(p Path) {
	s.open.Remove(p)
	if p.IsAncestorOf(s.selected) {
		s.selected = p.Clone()
	}
}

// Toggle flips the open state of the node at p, with OpenPath/ClosePath
// semantics.
func (s *State) Toggle(p Path) {
	if s.open.Has(p) {
		s.ClosePath(p)
		return
	}
	s.OpenPath(p)
}

// Reveal opens every strict ancestor of p so that p becomes visible. It is
// idempotent and does not change the selection. Ancestors that no longer
// resolve are skipped.
func (s *State) Reveal(p Path) {
	for i := 1; i < len(p); i++ {
		s.OpenPath(p[:i])
	}
}

// ToggleSelected flips the open state of the selected node. No-op when
// nothing is selected, when the selection is stale, or when it is a leaf.
// The selection is revealed first so the visibility invariant holds after
// the call.
func (s *State) ToggleSelected() {
	n := Find(s.roots, s.selected)
	if n == nil || !n.Interior() {
		return
	}
	s.Reveal(s.selected)
	s.Toggle(s.selected)
}

// SelectNext moves the selection to the next visible row. At the last row it
// stays put rather than wrapping, so held-down key repeats stop at the
// boundary. With no usable selection it lands on the first row.
func (s *State) SelectNext() {
	rows := s.rowsRevealingSelection()
	if len(rows) == 0 {
		return
	}
	idx := rowIndex(rows, s.selected)
	switch {
	case idx < 0:
		idx = 0
	case idx < len(rows)-1:
		idx++
	}
	s.selected = rows[idx].Path.Clone()
}

// SelectPrev moves the selection to the previous visible row, stopping at the
// first row. With no usable selection it lands on the last row.
func (s *State) SelectPrev() {
	rows := s.rowsRevealingSelection()
	if len(rows) == 0 {
		return
	}
	idx := rowIndex(rows, s.selected)
	switch {
	case idx < 0:
		idx = len(rows) - 1
	case idx > 0:
		idx--
	}
	s.selected = rows[idx].Path.Clone()
}

// SelectParent moves the selection to its direct parent. No-op for top-level
// selections, for the empty selection, and when the parent no longer
// resolves. The parent's own ancestors are revealed to keep it visible.
func (s *State) SelectParent() {
	if len(s.selected) < 2 {
		return
	}
	parent := s.selected.Parent()
	if Find(s.roots, parent) == nil {
		return
	}
	s.Reveal(parent)
	s.selected = parent
}

// SelectFirstChild opens the selected interior node and moves the selection
// to its first child. No-op on leaves, stale selections and empty selection.
func (s *State) SelectFirstChild() {
	n := Find(s.roots, s.selected)
	if n == nil || !n.Interior() {
		return
	}
	s.Reveal(s.selected)
	s.OpenPath(s.selected)
	s.selected = s.selected.Child(n.Children[0].ID)
}

// SelectFirst jumps to the first visible row. No-op on an empty forest.
func (s *State) SelectFirst() {
	rows := s.Rows()
	if len(rows) == 0 {
		return
	}
	s.selected = rows[0].Path.Clone()
}

// SelectLast jumps to the last visible row. No-op on an empty forest.
func (s *State) SelectLast() {
	rows := s.Rows()
	if len(rows) == 0 {
		return
	}
	s.selected = rows[len(rows)-1].Path.Clone()
}

// ExpandAll opens every interior node in the forest.
func (s *State) ExpandAll() {
	var walk func(n *Node, p Path)
	walk = func(n *Node, p Path) {
		if !n.Interior() {
			return
		}
		s.open.Add(p)
		for _, child := range n.Children {
			walk(child, p.Child(child.ID))
		}
	}
	for _, root := range s.roots {
		walk(root, Path{root.ID})
	}
}

// CollapseAll closes everything. A selection below the top level is
// re-parented to its top-level ancestor, since only roots remain visible.
func (s *State) CollapseAll() {
	s.open.Clear()
	if len(s.selected) > 1 {
		s.selected = s.selected[:1].Clone()
	}
}

// rowsRevealingSelection returns the visible rows for relative navigation.
// A selection that resolves but is hidden inside a collapsed ancestor is
// revealed first (the deferred half of the select-on-hidden policy). A
// selection that no longer resolves is left alone; callers treat it as none.
func (s *State) rowsRevealingSelection() []Row {
	rows := Flatten(s.roots, s.open)
	if len(s.selected) == 0 || rowIndex(rows, s.selected) >= 0 {
		return rows
	}
	if Find(s.roots, s.selected) == nil {
		return rows
	}
	s.Reveal(s.selected)
	return Flatten(s.roots, s.open)
}
