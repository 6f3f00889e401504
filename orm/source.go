package orm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// Ambiguity records a role for which several files matched the naming convention.
type Ambiguity struct {
	Role     Role
	Chosen   string
	Rejected []string
}

// ResolveSources determines the source file of every role.
//
// An override is used verbatim. Otherwise the directory is scanned (not
// recursively) for files named "*<token><ext>", trying the extensions in
// priority order. Hidden files are skipped. When several files match the same
// extension the lexicographically first one is chosen and the rest are
// reported as an Ambiguity. A role without override or match stays absent.
func ResolveSources(dir string, overrides Sources, naming *Naming) (Sources, []Ambiguity, error) {
	n := naming.normalize()
	if err := n.validate(); err != nil {
		return Sources{}, nil, err
	}

	resolved := overrides
	if resolved.Complete() {
		return resolved, nil, nil
	}

	names, err := listFiles(dir)
	if err != nil {
		return Sources{}, nil, fmt.Errorf("cannot scan directory %q: %w", dir, err)
	}

	var ambiguities []Ambiguity
	for _, r := range Roles {
		if resolved.Has(r) {
			continue
		}

		matches := findCandidates(names, n, r)
		if len(matches) == 0 {
			continue
		}

		resolved[r] = filepath.Join(dir, matches[0])
		if len(matches) > 1 {
			rejected := make([]string, 0, len(matches)-1)
			for _, m := range matches[1:] {
				rejected = append(rejected, filepath.Join(dir, m))
			}
			ambiguities = append(ambiguities, Ambiguity{Role: r, Chosen: resolved[r], Rejected: rejected})
		}
	}

	return resolved, ambiguities, nil
}

// findCandidates returns the sorted matches of the highest priority extension
// that has any match at all.
func findCandidates(names []string, n Naming, r Role) []string {
	for _, ext := range n.Extensions {
		suffix := n.Pattern(r, ext)
		var matches []string
		for _, name := range names {
			if strings.HasSuffix(name, suffix) {
				matches = append(matches, name)
			}
		}
		if len(matches) > 0 {
			slices.Sort(matches)
			return matches
		}
	}
	return nil
}

// listFiles returns the names of the visible, non-directory entries of dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}

	return names, nil
}
