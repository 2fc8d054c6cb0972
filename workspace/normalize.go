package workspace

import (
	"regexp"
	"strconv"
	"strings"
)

// nonWord matches runs of characters outside [0-9A-Za-z_].
var nonWord = regexp.MustCompile(`[^0-9A-Za-z_]+`)

// CanonicalName returns the name under which a sample is matched across
// methods. With strict it is name itself; otherwise name is lower-cased and
// each run of non-word characters is replaced by one underscore.
func CanonicalName(name string, strict bool) string {
	if strict {
		return name
	}
	return nonWord.ReplaceAllString(strings.ToLower(name), "_")
}

// resolveNames makes method names unique. Names used once are kept; each
// name used n > 1 times is replaced, in input order, by name_k with the
// smallest k (counting per name, from 1) that collides neither with a kept
// name nor with a suffix already handed out.
func resolveNames(names []string) []string {
	count := make(map[string]int, len(names))
	for _, n := range names {
		count[n]++
	}
	taken := make(map[string]bool, len(names))
	for _, n := range names {
		if count[n] == 1 {
			taken[n] = true
		}
	}

	next := make(map[string]int)
	out := make([]string, len(names))
	for i, n := range names {
		if count[n] == 1 {
			out[i] = n
			continue
		}
		for {
			next[n]++
			candidate := n + "_" + strconv.Itoa(next[n])
			if !taken[candidate] {
				taken[candidate] = true
				out[i] = candidate
				break
			}
		}
	}
	return out
}
