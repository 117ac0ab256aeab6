package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/canopytui/canopy/pkg/tree"
)

func TestStateRoundTrip(t *testing.T) {
	forest := testForest(t)
	st := tree.NewState(forest...)
	st.OpenPath(tree.Path{"docs"})
	if err := st.Select(tree.Path{"docs", "guide.md"}); err != nil {
		t.Fatalf("Select: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".canopy", "explorer-state.json")
	SaveState(path, st)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("state file not written: %v", err)
	}

	restored := tree.NewState(testForest(t)...)
	LoadState(path, restored)

	if !restored.Open().Has(tree.Path{"docs"}) {
		t.Error("open set not restored")
	}
	if !restored.Selected().Equal(tree.Path{"docs", "guide.md"}) {
		t.Errorf("selection = %v, want docs/guide.md", restored.Selected())
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	st := tree.NewState(testForest(t)...)
	LoadState(filepath.Join(t.TempDir(), "nope.json"), st)
	if st.Open().Len() != 0 || len(st.Selected()) != 0 {
		t.Error("missing file must leave state untouched")
	}
}

func TestLoadStateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer-state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	st := tree.NewState(testForest(t)...)
	LoadState(path, st)
	if st.Open().Len() != 0 {
		t.Error("corrupt file must leave state untouched")
	}
}

func TestLoadStateDropsStalePaths(t *testing.T) {
	st := tree.NewState(testForest(t)...)
	st.OpenPath(tree.Path{"docs"})
	path := filepath.Join(t.TempDir(), "explorer-state.json")
	SaveState(path, st)

	// A forest that no longer contains docs.
	restored := tree.NewState(tree.NewLeaf("other.txt", "other.txt"))
	LoadState(path, restored)
	if restored.Open().Len() != 0 {
		t.Error("stale persisted path must not enter the open set")
	}
}
