// Package reflog extracts recently checked-out branch names from git
// reflog output.
package reflog

import (
	"iter"
	"regexp"
	"strings"
)

// checkoutPattern matches reflog checkout entries, e.g.
//
//	abc1234 HEAD@{0}: checkout: moving from main to feature-a
//
// Only the destination branch is captured.
var checkoutPattern = regexp.MustCompile(`checkout: moving from \S+ to (\S+)`)

// Branches yields destination branch names from reflog text in the
// order they appear, which is most-recent-first, skipping names already
// yielded. The sequence is single-use.
func Branches(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]bool)
		for line := range strings.Lines(text) {
			m := checkoutPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			branch := m[1]
			if seen[branch] {
				continue
			}
			seen[branch] = true
			if !yield(branch) {
				return
			}
		}
	}
}

// Recent returns up to n of the most recently checked-out branches.
// A non-positive n returns nil; reflog text with no checkout entries
// returns an empty result, not an error.
func Recent(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	var branches []string
	for branch := range Branches(text) {
		branches = append(branches, branch)
		if len(branches) == n {
			break
		}
	}
	return branches
}
