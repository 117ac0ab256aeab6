package tree

import "testing"

// TestPathRelations verifies equality, parenthood and the strict-prefix
// ancestor relation.
func TestPathRelations(t *testing.T) {
	p := Path{"b", "d", "e"}

	if !p.Equal(Path{"b", "d", "e"}) {
		t.Error("structural equality failed")
	}
	if p.Equal(Path{"b", "d"}) {
		t.Error("different lengths must not compare equal")
	}
	if !p.Parent().Equal(Path{"b", "d"}) {
		t.Errorf("Parent = %v, want b/d", p.Parent())
	}
	if Path(nil).Parent() != nil {
		t.Error("parent of the virtual root must stay the virtual root")
	}

	if !Path([]string{"b"}).IsAncestorOf(p) {
		t.Error("b must be an ancestor of b/d/e")
	}
	if p.IsAncestorOf(p) {
		t.Error("a path is not its own ancestor")
	}
	if Path([]string{"b", "x"}).IsAncestorOf(p) {
		t.Error("b/x must not be an ancestor of b/d/e")
	}
	if !Path(nil).IsAncestorOf(p) {
		t.Error("the virtual root is an ancestor of every non-empty path")
	}
}

// TestPathChildDoesNotAlias verifies Child copies instead of sharing backing
// storage, so extending a path twice cannot corrupt the first extension.
func TestPathChildDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = "b"

	first := base.Child("d")
	second := base.Child("g")

	if !first.Equal(Path{"b", "d"}) {
		t.Errorf("first child path = %v, want b/d", first)
	}
	if !second.Equal(Path{"b", "g"}) {
		t.Errorf("second child path = %v, want b/g", second)
	}
}

// TestPathKey verifies distinct paths produce distinct map keys even when a
// naive join would collide.
func TestPathKey(t *testing.T) {
	a := Path{"ab", "c"}
	b := Path{"a", "bc"}
	if a.Key() == b.Key() {
		t.Errorf("Key collision between %v and %v", a, b)
	}
	if a.Key() != a.Clone().Key() {
		t.Error("clone must share the key")
	}
}
