// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandInputs turns positional arguments into input paths. No arguments
// means stdin ("-"). Globs are expanded in lexical order and must match at
// least one file; a path named twice, stdin included, is read once.
func ExpandInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"-"}, nil
	}
	var (
		out  []string
		seen = make(map[string]bool, len(args))
	)
	add := func(p string) {
		if seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, a := range args {
		if a == "-" || !hasGlobMeta(a) {
			add(a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		for _, p := range m {
			add(p)
		}
	}
	return out, nil
}
