// Package ui is the terminal front end for the explorer: a bubbletea model
// that owns the navigation state, a renderer for the visible window, the
// preview pane, and JSON persistence of open/selection state across runs.
package ui

import (
	"log"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/canopytui/canopy/pkg/config"
	"github.com/canopytui/canopy/pkg/fstree"
	"github.com/canopytui/canopy/pkg/tree"
)

// SplitViewThreshold is the terminal width above which the preview pane is
// shown next to the tree.
const SplitViewThreshold = 100

// forestMsg carries the result of a filesystem scan.
type forestMsg struct {
	roots []*tree.Node
	err   error
}

// fsChangedMsg signals a debounced filesystem change under the root.
type fsChangedMsg struct{}

// Model is the top-level bubbletea model for the explorer.
type Model struct {
	root  string
	cfg   config.Config
	theme Theme

	state   *tree.State
	offset  int // index of the first visible row
	scanErr error

	width, height int
	ready         bool
	isSplitView   bool

	preview     viewport.Model
	renderer    *glamour.TermRenderer
	showPreview bool

	watcher *fstree.Watcher

	statusMsg string
}

// NewModel creates the explorer model anchored at root. The watcher may be
// nil when live reload is disabled.
func NewModel(root string, cfg config.Config, theme Theme, watcher *fstree.Watcher) Model {
	return Model{
		root:        root,
		cfg:         cfg,
		theme:       theme,
		state:       tree.NewState(),
		watcher:     watcher,
		showPreview: cfg.PreviewEnabled(),
	}
}

// State exposes the navigation state, mainly for persistence at shutdown.
func (m Model) State() *tree.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scanCmd()}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// scanCmd rebuilds the forest off the event loop.
func (m Model) scanCmd() tea.Cmd {
	root, cfg := m.root, m.cfg
	return func() tea.Msg {
		opts := fstree.Options{
			ShowHidden: cfg.ShowHidden,
			MaxDepth:   cfg.MaxDepth,
		}
		if cfg.GitignoreEnabled() {
			ig, err := fstree.LoadIgnore(root)
			if err != nil {
				log.Printf("warning: reading .gitignore: %v", err)
			} else {
				opts.Ignore = ig
			}
		}
		roots, err := fstree.Scan(root, opts)
		return forestMsg{roots: roots, err: err}
	}
}

// waitForChange blocks on the watcher and resurfaces as a message.
func waitForChange(w *fstree.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return fsChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case forestMsg:
		if msg.err != nil {
			m.scanErr = msg.err
			return m, nil
		}
		m.scanErr = nil
		m.state.SetForest(msg.roots)
		m.syncViewport()

	case fsChangedMsg:
		cmds = append(cmds, m.scanCmd())
		if m.watcher != nil {
			cmds = append(cmds, waitForChange(m.watcher))
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "j", "down":
			m.state.SelectNext()
			m.syncViewport()
		case "k", "up":
			m.state.SelectPrev()
			m.syncViewport()

		case "h", "left":
			m.collapseOrParent()
			m.syncViewport()
		case "l", "right":
			m.expandOrChild()
			m.syncViewport()

		case "enter", " ":
			m.state.ToggleSelected()
			m.syncViewport()

		case "g", "home":
			m.state.SelectFirst()
			m.syncViewport()
		case "G", "end":
			m.state.SelectLast()
			m.syncViewport()

		case "E":
			m.state.ExpandAll()
			m.syncViewport()
		case "C":
			m.state.CollapseAll()
			m.syncViewport()

		case "p":
			m.showPreview = !m.showPreview
			m.syncViewport()

		case "r":
			cmds = append(cmds, m.scanCmd())

		case "y":
			m.statusMsg = m.yankSelected()

		default:
			if m.showPreview && m.isSplitView {
				var cmd tea.Cmd
				m.preview, cmd = m.preview.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.isSplitView = msg.Width > SplitViewThreshold

		if m.isSplitView {
			previewWidth := m.width - m.treeWidth() - 4
			m.preview = viewport.New(previewWidth, m.treeHeight())
			m.renderer = newMarkdownRenderer(previewWidth)
		}
		m.syncViewport()
	}

	return m, tea.Batch(cmds...)
}

// collapseOrParent handles h/left: close an open selected directory,
// otherwise move to the parent.
func (m *Model) collapseOrParent() {
	sel := m.state.Selected()
	if len(sel) == 0 {
		return
	}
	n := tree.Find(m.state.Roots(), sel)
	if n != nil && n.Interior() && m.state.Open().Has(sel) {
		m.state.ClosePath(sel)
		return
	}
	m.state.SelectParent()
}

// expandOrChild handles l/right: open a closed selected directory,
// otherwise descend to the first child.
func (m *Model) expandOrChild() {
	sel := m.state.Selected()
	if len(sel) == 0 {
		return
	}
	n := tree.Find(m.state.Roots(), sel)
	if n == nil || !n.Interior() {
		return
	}
	if !m.state.Open().Has(sel) {
		m.state.OpenPath(sel)
		return
	}
	m.state.SelectFirstChild()
}

// yankSelected copies the selected entry's absolute path to the clipboard.
func (m *Model) yankSelected() string {
	sel := m.state.Selected()
	if len(sel) == 0 {
		return ""
	}
	abs := filepath.Join(m.root, filepath.Join([]string(sel)...))
	if err := clipboard.WriteAll(abs); err != nil {
		return "clipboard unavailable"
	}
	return "copied " + sel.String()
}

// syncViewport recomputes the scroll offset for the current selection and
// refreshes the preview pane.
func (m *Model) syncViewport() {
	rows := m.state.Rows()
	idx := -1
	if sel := m.state.Selected(); len(sel) > 0 {
		idx = rowIndexOf(rows, sel)
	}
	m.offset = tree.ScrollOffset(len(rows), idx, m.offset, m.treeHeight())

	if m.showPreview && m.isSplitView && m.renderer != nil {
		sel := m.state.Selected()
		n := tree.Find(m.state.Roots(), sel)
		m.preview.SetContent(renderPreview(m.root, sel, n, m.renderer, m.cfg.Preview.MaxBytes))
		m.preview.GotoTop()
	}
}

// treeHeight is the number of rows the tree pane can show.
func (m Model) treeHeight() int {
	h := m.height - 2 // status bar + footer
	if h < 1 {
		h = 1
	}
	return h
}

// treeWidth is the column budget of the tree pane.
func (m Model) treeWidth() int {
	if !m.isSplitView || !m.showPreview {
		return m.width
	}
	return int(float64(m.width) * 0.45)
}

func rowIndexOf(rows []tree.Row, p tree.Path) int {
	for i, row := range rows {
		if row.Path.Equal(p) {
			return i
		}
	}
	return -1
}
