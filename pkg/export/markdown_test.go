package export

import (
	"strings"
	"testing"

	"github.com/canopytui/canopy/pkg/tree"
)

func exportForest(t *testing.T) []*tree.Node {
	t.Helper()
	src, err := tree.NewNode("src", "src",
		tree.NewLeaf("main.go", "main.go"),
		tree.NewLeaf("util.go", "util.go"),
	)
	if err != nil {
		t.Fatal(err)
	}
	src.Dir = true
	return []*tree.Node{src, tree.NewLeaf("README.md", "README.md")}
}

func TestGenerateMarkdown(t *testing.T) {
	out := GenerateMarkdown(exportForest(t), "My Project")

	if !strings.HasPrefix(out, "# My Project\n") {
		t.Errorf("missing title header:\n%s", out)
	}
	if !strings.Contains(out, "- **Directories**: 1") {
		t.Errorf("wrong directory count:\n%s", out)
	}
	if !strings.Contains(out, "- **Files**: 3") {
		t.Errorf("wrong file count:\n%s", out)
	}
	if !strings.Contains(out, "- src/\n  - main.go\n  - util.go\n- README.md\n") {
		t.Errorf("outline shape wrong:\n%s", out)
	}
}

func TestGenerateMarkdownEmpty(t *testing.T) {
	out := GenerateMarkdown(nil, "Empty")
	if !strings.Contains(out, "- **Files**: 0") {
		t.Errorf("empty forest summary wrong:\n%s", out)
	}
}
