package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/canopytui/canopy/pkg/tree"
)

// newMarkdownRenderer builds the glamour renderer used by the preview pane.
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	if width <= 0 {
		width = 80
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	return r
}

// renderPreview produces the preview pane content for the selected entry.
// Markdown files go through glamour; everything else shows a plain head of
// the file. Directories get a one-line summary.
func renderPreview(root string, p tree.Path, n *tree.Node, renderer *glamour.TermRenderer, maxBytes int) string {
	if n == nil || len(p) == 0 {
		return "Nothing selected."
	}
	if n.Dir {
		return fmt.Sprintf("%s/\n\n%d entries", p.String(), len(n.Children))
	}

	abs := filepath.Join(root, filepath.Join([]string(p)...))
	head, truncated, err := readHead(abs, maxBytes)
	if err != nil {
		return fmt.Sprintf("Cannot preview %s: %v", p.String(), err)
	}
	if isBinary(head) {
		return fmt.Sprintf("%s\n\n(binary file)", p.String())
	}

	body := string(head)
	if isMarkdown(n.ID) && renderer != nil {
		if rendered, err := renderer.Render(body); err == nil {
			body = rendered
		}
	}
	if truncated {
		body += "\n… (truncated)"
	}
	return body
}

// readHead reads up to maxBytes from path and reports whether more remained.
func readHead(path string, maxBytes int) ([]byte, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	buf := make([]byte, maxBytes+1)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, false, err
	}
	if n > maxBytes {
		return buf[:maxBytes], true, nil
	}
	return buf[:n], false, nil
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// isBinary applies the classic NUL-byte heuristic to the file head.
func isBinary(head []byte) bool {
	for _, b := range head {
		if b == 0 {
			return true
		}
	}
	return false
}
