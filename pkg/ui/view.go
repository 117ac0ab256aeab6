package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.scanErr != nil {
		return m.theme.Footer.Render(fmt.Sprintf("scan failed: %v", m.scanErr)) + "\n"
	}

	treePane := m.renderTree()
	body := treePane
	if m.showPreview && m.isSplitView {
		previewPane := m.theme.Border.Render(m.preview.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, treePane, " ", previewPane)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// renderTree draws the visible window of flattened rows.
func (m Model) renderTree() string {
	rows := m.state.Rows()
	if len(rows) == 0 {
		return m.theme.Footer.Render("Empty directory.")
	}

	height := m.treeHeight()
	end := m.offset + height
	if end > len(rows) {
		end = len(rows)
	}

	width := m.treeWidth()
	var sb strings.Builder
	for i := m.offset; i < end; i++ {
		row := rows[i]

		indent := strings.Repeat("  ", row.Depth)
		marker := ExpandIndicator(row.Node.Interior(), m.state.Open().Has(row.Path))

		nameStyle := m.theme.FileName
		if row.Node.Dir {
			nameStyle = m.theme.DirName
		}

		label := truncateLabel(row.Node.Label, width-lipgloss.Width(indent)-4)
		line := indent + m.theme.Marker.Render(marker) + " " + nameStyle.Render(label)
		if m.state.IsSelected(row.Path) {
			line = m.theme.Selected.Render(indent + marker + " " + label)
		}

		sb.WriteString(line)
		if i < end-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m Model) renderHeader() string {
	title := m.theme.DirName.Render(m.root)
	return title
}

func (m Model) renderFooter() string {
	rows := m.state.Rows()
	pos := ""
	if sel := m.state.Selected(); len(sel) > 0 {
		if idx := rowIndexOf(rows, sel); idx >= 0 {
			pos = fmt.Sprintf("%d/%d  %s", idx+1, len(rows), sel.String())
		}
	}
	if pos == "" {
		pos = fmt.Sprintf("%d entries", len(rows))
	}
	if m.statusMsg != "" {
		pos += "  " + m.statusMsg
	}
	help := "j/k move  h/l fold  enter toggle  E/C all  p preview  y yank  r rescan  q quit"
	return m.theme.Footer.Render(pos + "  " + help)
}

// truncateLabel trims a label to the given display width, accounting for
// wide runes.
func truncateLabel(label string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if runewidth.StringWidth(label) <= maxWidth {
		return label
	}
	return runewidth.Truncate(label, maxWidth-1, "…")
}
