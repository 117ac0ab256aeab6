// Package export renders the tree to shareable artifacts: a markdown
// outline of the full forest and an SVG snapshot of the currently visible
// rows.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/canopytui/canopy/pkg/tree"
)

// GenerateMarkdown creates a markdown outline of the whole forest, open or
// not, with a short summary block up top.
func GenerateMarkdown(roots []*tree.Node, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC1123)))

	dirs, files := 0, 0
	var count func(n *tree.Node)
	count = func(n *tree.Node) {
		if n.Dir {
			dirs++
		} else {
			files++
		}
		for _, child := range n.Children {
			count(child)
		}
	}
	for _, root := range roots {
		count(root)
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Directories**: %d\n", dirs))
	sb.WriteString(fmt.Sprintf("- **Files**: %d\n\n", files))

	sb.WriteString("## Contents\n\n")
	var walk func(n *tree.Node, depth int)
	walk = func(n *tree.Node, depth int) {
		label := n.Label
		if n.Dir {
			label += "/"
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("- " + label + "\n")
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	for _, root := range roots {
		walk(root, 0)
	}

	return sb.String()
}
