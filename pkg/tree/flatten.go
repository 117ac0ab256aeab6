package tree

// Row is one line of the flattened projection: the path addressing the node,
// its depth (number of ancestors, 0 for top-level nodes), and a reference to
// the node itself. Rows are derived data, produced fresh on every Flatten
// call and never stored by the engine.
type Row struct {
	Path  Path
	Depth int
	Node  *Node
}

// Flatten projects the forest into the ordered sequence of visible rows:
// a depth-first pre-order walk that emits every node whose ancestors are all
// open and skips the children of closed interior nodes entirely. Closed
// subtrees therefore cost O(1) regardless of their size, bounding the whole
// walk to the visible node count.
//
// Sibling order follows the forest's stored child order; canonical sorting is
// the forest provider's responsibility. A nil open set means everything is
// collapsed. Open-set entries for leaves or for paths that no longer resolve
// have no effect.
func Flatten(roots []*Node, open *OpenSet) []Row {
	var rows []Row
	for _, root := range roots {
		rows = appendVisible(rows, root, Path{root.ID}, open)
	}
	return rows
}

func appendVisible(rows []Row, n *Node, p Path, open *OpenSet) []Row {
	rows = append(rows, Row{Path: p, Depth: len(p) - 1, Node: n})
	if !n.Interior() || !open.Has(p) {
		return rows
	}
	for _, child := range n.Children {
		rows = appendVisible(rows, child, p.Child(child.ID), open)
	}
	return rows
}

// rowIndex returns the position of the row addressed by p, or -1 when p is
// not part of the visible sequence.
func rowIndex(rows []Row, p Path) int {
	for i, row := range rows {
		if row.Path.Equal(p) {
			return i
		}
	}
	return -1
}
