package file

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Expand turns a comma-separated list of paths and/or glob patterns
// into a concrete, de-duplicated path list. A pattern that matches
// nothing is an error; a literal path is passed through untouched so a
// missing file still fails later with a precise open error.
//
// Matches from a single pattern are sorted for deterministic run order.
func Expand(spec string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.ContainsAny(part, "*?[") {
			if !seen[part] {
				seen[part] = true
				out = append(out, part)
			}
			continue
		}
		matches, err := filepath.Glob(part)
		if err != nil {
			return nil, fmt.Errorf("bad input pattern %q: %w", part, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("input pattern %q matched no files", part)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	return out, nil
}
