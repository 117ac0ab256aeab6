package ui

import (
	"log"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/canopytui/canopy/pkg/tree"
)

// persistedState is the on-disk explorer state (.canopy/explorer-state.json).
//
// File format (JSON):
//
//	{
//	  "version": 1,
//	  "open": [["src"], ["src", "ui"]],
//	  "selected": ["src", "ui", "view.go"]
//	}
//
// Open paths that no longer resolve after a restart are dropped on load;
// a missing or corrupted file means a fresh default state.
type persistedState struct {
	Version  int        `json:"version"`
	Open     [][]string `json:"open"`
	Selected []string   `json:"selected,omitempty"`
}

// stateVersion is the current schema version for explorer persistence.
const stateVersion = 1

// SaveState persists the open set and selection to path. Errors are logged
// but never interrupt the user.
func SaveState(path string, st *tree.State) {
	ps := persistedState{Version: stateVersion}
	for _, p := range st.Open().Paths() {
		ps.Open = append(ps.Open, p)
	}
	if sel := st.Selected(); len(sel) > 0 {
		ps.Selected = sel
	}

	data, err := json.MarshalIndent(ps, "", "  ")
	if err != nil {
		log.Printf("warning: failed to marshal explorer state: %v", err)
		return
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("warning: failed to create state directory %s: %v", dir, err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("warning: failed to write explorer state to %s: %v", path, err)
	}
}

// LoadState restores open/selection state from path into st. A missing file
// is a first run; a corrupted file or unknown version is logged and skipped.
// Persisted paths that no longer resolve in the current forest are ignored.
func LoadState(path string, st *tree.State) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var ps persistedState
	if err := json.Unmarshal(data, &ps); err != nil {
		log.Printf("warning: invalid explorer state file, using defaults: %v", err)
		return
	}
	if ps.Version != stateVersion {
		log.Printf("warning: unsupported explorer state version %d, using defaults", ps.Version)
		return
	}

	for _, raw := range ps.Open {
		// OpenPath rejects paths that resolve to nothing or to leaves, so
		// stale entries from a reorganized project drop out here.
		st.OpenPath(tree.Path(raw))
	}
	if len(ps.Selected) > 0 {
		if err := st.Select(tree.Path(ps.Selected)); err == nil {
			st.Reveal(tree.Path(ps.Selected))
		}
	}
}
