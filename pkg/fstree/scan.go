// Package fstree supplies the filesystem forest for the tree engine: a
// scanner that builds tree.Node forests from a directory, .gitignore-derived
// exclusion rules, and a debounced change watcher that tells the host when a
// rescan is due.
//
// Node identifiers are entry names, which stay stable across rescans for
// unchanged entries, so open/selection paths held by the engine keep
// resolving after the forest is rebuilt.
package fstree

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/canopytui/canopy/pkg/tree"
)

// Options controls a scan.
type Options struct {
	// ShowHidden includes dot-entries. The .git directory is always skipped.
	ShowHidden bool
	// MaxDepth caps recursion; 0 means unlimited. Directories at the cap are
	// included as childless nodes.
	MaxDepth int
	// Ignore holds exclusion rules; nil ignores nothing.
	Ignore *Ignore
	// Concurrency bounds the parallel top-level subtree scans; 0 picks a
	// default based on the CPU count.
	Concurrency int
}

// Scan builds the forest for root. Children are ordered directories first,
// then case-insensitively by name, matching the canonical explorer ordering;
// the engine's flattener preserves whatever order the provider stores.
//
// Top-level subtrees are scanned concurrently; results land in
// index-addressed slots so the output is deterministic.
func Scan(root string, opts Options) ([]*tree.Node, error) {
	entries, err := readSorted(root, "", opts)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	nodes := make([]*tree.Node, len(entries))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, entry := range entries {
		g.Go(func() error {
			n, err := scanEntry(root, "", entry, 1, opts)
			if err != nil {
				return err
			}
			nodes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// scanEntry turns one directory entry into a node, recursing into
// directories below the depth cap.
func scanEntry(root, rel string, entry os.DirEntry, depth int, opts Options) (*tree.Node, error) {
	name := entry.Name()
	entryRel := filepath.Join(rel, name)
	n := &tree.Node{ID: name, Label: name, Dir: entry.IsDir()}
	if !entry.IsDir() {
		return n, nil
	}
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return n, nil
	}

	children, err := readSorted(root, entryRel, opts)
	if err != nil {
		// Unreadable directories (permissions, races with deletion) appear
		// as childless nodes instead of failing the whole scan.
		return n, nil
	}
	for _, child := range children {
		childNode, err := scanEntry(root, entryRel, child, depth+1, opts)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, childNode)
	}
	return n, nil
}

// readSorted lists one directory, applies the hidden/ignore filters and
// sorts directories first, then case-insensitively by name.
func readSorted(root, rel string, opts Options) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return nil, err
	}

	kept := entries[:0]
	for _, entry := range entries {
		name := entry.Name()
		if name == ".git" {
			continue
		}
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if opts.Ignore.Match(filepath.Join(rel, name), entry.IsDir()) {
			continue
		}
		kept = append(kept, entry)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		a, b := strings.ToLower(kept[i].Name()), strings.ToLower(kept[j].Name())
		if a != b {
			return a < b
		}
		return kept[i].Name() < kept[j].Name()
	})
	return kept, nil
}
