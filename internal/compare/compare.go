// Package compare diffs two name lists into the entries unique to
// each side and the entries they share.
package compare

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/novafiles/lister/internal/listfile"
	"github.com/novafiles/lister/internal/natsort"
	"github.com/novafiles/lister/internal/types"
)

// Result file names written by WriteResults.
const (
	OnlyAFile    = "only_in_a.txt"
	OnlyBFile    = "only_in_b.txt"
	BothFile     = "in_both.txt"
	CombinedFile = "compare_result.txt"
)

// Normalize turns raw multi-line text into a clean list: lines
// trimmed, blanks dropped, duplicates removed keeping the first
// occurrence, optionally folded to lower case, natural-sorted.
func Normalize(raw string, ignoreCase bool) []string {
	var items []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(raw, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		key := s
		if ignoreCase {
			key = strings.ToLower(s)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		if ignoreCase {
			items = append(items, key)
		} else {
			items = append(items, s)
		}
	}
	natsort.Sort(items, natsort.Natural)
	return items
}

// Diff compares two normalized lists and splits them into the names
// only in a, only in b, and in both. Each slice comes back
// natural-sorted.
func Diff(a, b []string) types.CompareResult {
	inA := make(map[string]bool, len(a))
	for _, s := range a {
		inA[s] = true
	}
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}

	var result types.CompareResult
	for _, s := range a {
		if inB[s] {
			result.Both = append(result.Both, s)
		} else {
			result.OnlyA = append(result.OnlyA, s)
		}
	}
	for _, s := range b {
		if !inA[s] {
			result.OnlyB = append(result.OnlyB, s)
		}
	}

	natsort.Sort(result.OnlyA, natsort.Natural)
	natsort.Sort(result.OnlyB, natsort.Natural)
	natsort.Sort(result.Both, natsort.Natural)
	return result
}

// Lists normalizes both raw inputs and diffs them in one step.
func Lists(rawA, rawB string, opts types.CompareOptions) types.CompareResult {
	a := Normalize(rawA, opts.IgnoreCase)
	b := Normalize(rawB, opts.IgnoreCase)
	return Diff(a, b)
}

// Render formats a result as titled count blocks:
//
//	Only in A (2)
//	...names...
func Render(r types.CompareResult) string {
	var b strings.Builder
	renderBlock(&b, "Only in A", r.OnlyA)
	renderBlock(&b, "Only in B", r.OnlyB)
	renderBlock(&b, "In both", r.Both)
	return b.String()
}

func renderBlock(b *strings.Builder, title string, names []string) {
	fmt.Fprintf(b, "%s (%d)\n", title, len(names))
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// WriteResults exports a result into dir as four text files: one per
// section plus the combined rendered report.
func WriteResults(dir string, r types.CompareResult) error {
	if err := listfile.Write(filepath.Join(dir, OnlyAFile), r.OnlyA); err != nil {
		return err
	}
	if err := listfile.Write(filepath.Join(dir, OnlyBFile), r.OnlyB); err != nil {
		return err
	}
	if err := listfile.Write(filepath.Join(dir, BothFile), r.Both); err != nil {
		return err
	}
	combined := strings.TrimRight(Render(r), "\n")
	return listfile.Write(filepath.Join(dir, CombinedFile), strings.Split(combined, "\n"))
}
