package tree

import "fmt"

// Node is one cell of the hierarchical data set: an identifier unique among
// its siblings, display payload, and an ordered list of exclusively owned
// children. A node with children is interior (can be opened and closed);
// a node without children is a leaf.
//
// Nodes form a forest, not a graph: no cycles, no shared parents.
type Node struct {
	// ID identifies the node among its siblings. It must stay stable across
	// forest rebuilds for the same logical entity so that open/selection
	// paths keep resolving (see State.SetForest).
	ID string

	// Label is the display text for the node. Dir marks nodes that represent
	// containers (e.g. directories) for styling purposes; it does not affect
	// flattening — only the presence of children does.
	Label string
	Dir   bool

	Children []*Node
}

// NewLeaf creates a node without children.
func NewLeaf(id, label string) *Node {
	return &Node{ID: id, Label: label}
}

// NewNode creates a node with the given children. It fails when two children
// share an identifier, since duplicate sibling IDs would make paths ambiguous.
func NewNode(id, label string, children ...*Node) (*Node, error) {
	seen := make(map[string]bool, len(children))
	for _, child := range children {
		if seen[child.ID] {
			return nil, fmt.Errorf("duplicate child identifier %q under %q", child.ID, id)
		}
		seen[child.ID] = true
	}
	return &Node{ID: id, Label: label, Dir: true, Children: children}, nil
}

// AddChild appends a child, rejecting identifiers already present among the
// node's children.
func (n *Node) AddChild(child *Node) error {
	for _, existing := range n.Children {
		if existing.ID == child.ID {
			return fmt.Errorf("duplicate child identifier %q under %q", child.ID, n.ID)
		}
	}
	n.Children = append(n.Children, child)
	return nil
}

// Interior reports whether the node has children and can therefore be opened
// and closed. An empty directory is a leaf as far as the engine is concerned.
func (n *Node) Interior() bool {
	return len(n.Children) > 0
}

// Find resolves a path against a forest, returning nil when any step of the
// path does not match a node. The virtual root resolves to nil: it is not a
// node.
func Find(roots []*Node, p Path) *Node {
	if len(p) == 0 {
		return nil
	}
	nodes := roots
	var found *Node
	for _, id := range p {
		found = nil
		for _, n := range nodes {
			if n.ID == id {
				found = n
				break
			}
		}
		if found == nil {
			return nil
		}
		nodes = found.Children
	}
	return found
}
