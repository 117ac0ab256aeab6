package fstree

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Ignore holds exclusion rules parsed from a .gitignore file. Only the
// common subset is supported: bare names, glob patterns, directory-only
// patterns (trailing slash) and root-anchored patterns (leading slash).
// Negation and ** are not; entries using them are skipped rather than
// misapplied.
type Ignore struct {
	rules []ignoreRule
}

type ignoreRule struct {
	pattern string
	dirOnly bool // trailing "/": matches directories only
	rooted  bool // leading "/" or embedded "/": match against the full relative path
}

// LoadIgnore reads <root>/.gitignore. A missing file yields an empty rule
// set; any other read error is returned.
func LoadIgnore(root string) (*Ignore, error) {
	file, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Ignore{}, nil
		}
		return nil, err
	}
	defer file.Close()
	return ParseIgnore(file), nil
}

// ParseIgnore reads gitignore-format rules from r. Blank lines, comments and
// unsupported constructs are dropped.
func ParseIgnore(r io.Reader) *Ignore {
	ig := &Ignore{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "!") || strings.Contains(line, "**") {
			continue
		}

		rule := ignoreRule{}
		if strings.HasSuffix(line, "/") {
			rule.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			rule.rooted = true
			line = strings.TrimPrefix(line, "/")
		} else if strings.Contains(line, "/") {
			rule.rooted = true
		}
		if line == "" {
			continue
		}
		rule.pattern = line
		ig.rules = append(ig.rules, rule)
	}
	return ig
}

// Match reports whether the entry at relPath (slash-separated, relative to
// the scan root) should be excluded. A nil Ignore matches nothing.
func (ig *Ignore) Match(relPath string, isDir bool) bool {
	if ig == nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	base := relPath
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		base = relPath[i+1:]
	}

	for _, rule := range ig.rules {
		if rule.dirOnly && !isDir {
			continue
		}
		subject := base
		if rule.rooted {
			subject = relPath
		}
		if ok, err := filepath.Match(rule.pattern, subject); err == nil && ok {
			return true
		}
	}
	return false
}

// Len returns the number of usable rules, mainly for diagnostics.
func (ig *Ignore) Len() int {
	if ig == nil {
		return 0
	}
	return len(ig.rules)
}
