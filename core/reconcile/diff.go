package reconcile

import "github.com/pmezard/go-difflib/difflib"

// RenderDiff produces a classic unified diff (---/+++ headers, @@ hunks)
// between two manifest serializations, used for dry-run output.
func RenderDiff(before, after []byte) string {
	u := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "manifest (current)",
		ToFile:   "manifest (planned)",
		Context:  3,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return ""
	}
	return s
}
