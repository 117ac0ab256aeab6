package fstree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/canopytui/canopy/pkg/tree"
)

// writeFile creates a file with parent directories as needed.
func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func forestIDs(nodes []*tree.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

// TestScanOrdering verifies directories sort before files and names sort
// case-insensitively within each group.
func TestScanOrdering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "zebra.txt")
	writeFile(t, root, "Apple.txt")
	writeFile(t, root, "src/main.go")
	writeFile(t, root, "Build/out.bin")

	nodes, err := Scan(root, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"Build", "src", "Apple.txt", "zebra.txt"}
	got := forestIDs(nodes)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("roots = %v, want %v", got, want)
	}

	if !nodes[0].Dir || nodes[2].Dir {
		t.Error("Dir flags do not match entry kinds")
	}
}

// TestScanNesting verifies subdirectory contents become children and leaf
// files carry no children.
func TestScanNesting(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.go")
	writeFile(t, root, "src/sub/b.go")

	nodes, err := Scan(root, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(nodes) != 1 || nodes[0].ID != "src" {
		t.Fatalf("roots = %v, want [src]", forestIDs(nodes))
	}

	src := nodes[0]
	want := []string{"sub", "a.go"}
	if got := forestIDs(src.Children); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("src children = %v, want %v", got, want)
	}
	if n := tree.Find(nodes, tree.Path{"src", "sub", "b.go"}); n == nil || n.Interior() {
		t.Errorf("expected leaf at src/sub/b.go, got %v", n)
	}
}

// TestScanHidden verifies dot-entries are excluded by default and included
// with ShowHidden, while .git stays excluded either way.
func TestScanHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "visible.txt")
	writeFile(t, root, ".hidden")
	writeFile(t, root, ".git/config")

	nodes, err := Scan(root, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := forestIDs(nodes); strings.Join(got, ",") != "visible.txt" {
		t.Errorf("default roots = %v, want [visible.txt]", got)
	}

	nodes, err = Scan(root, Options{ShowHidden: true})
	if err != nil {
		t.Fatalf("Scan hidden: %v", err)
	}
	got := forestIDs(nodes)
	if strings.Join(got, ",") != ".hidden,visible.txt" {
		t.Errorf("hidden roots = %v, want [.hidden visible.txt]", got)
	}
}

// TestScanMaxDepth verifies directories at the cap appear childless.
func TestScanMaxDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/c/deep.txt")

	nodes, err := Scan(root, Options{MaxDepth: 2})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	b := tree.Find(nodes, tree.Path{"a", "b"})
	if b == nil {
		t.Fatal("a/b missing from capped scan")
	}
	if len(b.Children) != 0 {
		t.Errorf("a/b children = %v, want none at MaxDepth 2", forestIDs(b.Children))
	}
	if !b.Dir {
		t.Error("capped directory must keep its Dir flag")
	}
}

// TestScanIgnoreRules verifies scanner integration with .gitignore rules.
func TestScanIgnoreRules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.go")
	writeFile(t, root, "skip.log")
	writeFile(t, root, "node_modules/pkg/index.js")
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.log\nnode_modules/\n"), 0644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	ig, err := LoadIgnore(root)
	if err != nil {
		t.Fatalf("LoadIgnore: %v", err)
	}
	nodes, err := Scan(root, Options{Ignore: ig})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := forestIDs(nodes); strings.Join(got, ",") != "keep.go" {
		t.Errorf("roots = %v, want [keep.go]", got)
	}
}

// TestScanStableIDsAcrossRescans verifies the provider contract the engine
// depends on: paths held across a rescan keep resolving to the same logical
// entries.
func TestScanStableIDsAcrossRescans(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.go")

	first, err := Scan(root, Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	st := tree.NewState(first...)
	st.OpenPath(tree.Path{"src"})
	if err := st.Select(tree.Path{"src", "a.go"}); err != nil {
		t.Fatalf("Select: %v", err)
	}

	// Add an unrelated entry and rescan.
	writeFile(t, root, "src/b.go")
	second, err := Scan(root, Options{})
	if err != nil {
		t.Fatalf("rescan: %v", err)
	}
	st.SetForest(second)

	rows := st.Rows()
	if len(rows) != 3 {
		t.Fatalf("visible rows = %d, want 3", len(rows))
	}
	if !st.Selected().Equal(tree.Path{"src", "a.go"}) {
		t.Errorf("selection = %v, want src/a.go after rescan", st.Selected())
	}
	if idx := indexOfPath(rows, st.Selected()); idx < 0 {
		t.Error("selection not visible after rescan")
	}
}

func indexOfPath(rows []tree.Row, p tree.Path) int {
	for i, row := range rows {
		if row.Path.Equal(p) {
			return i
		}
	}
	return -1
}
