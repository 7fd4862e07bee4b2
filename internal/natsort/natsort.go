// Package natsort provides the two name comparators used for listings:
// case-insensitive lexicographic order and natural numeric order.
package natsort

import (
	"sort"
	"strings"
)

// Mode selects the comparator applied to a listing.
type Mode string

const (
	// Natural compares embedded digit runs by numeric value,
	// so "file9" sorts before "file10".
	Natural Mode = "natural"
	// Lexical compares names case-insensitively, byte order as tiebreak.
	Lexical Mode = "lexical"
)

// Valid reports whether m is a known sort mode.
func (m Mode) Valid() bool {
	return m == Natural || m == Lexical
}

// Sort stably sorts names in place using the comparator for mode.
// Unknown modes fall back to Natural.
func Sort(names []string, mode Mode) {
	cmp := Compare
	if mode == Lexical {
		cmp = CompareFold
	}
	sort.SliceStable(names, func(i, j int) bool {
		return cmp(names[i], names[j]) < 0
	})
}

// CompareFold compares a and b case-insensitively, returning
// -1, 0, or +1. Names equal under lowering fall back to byte order
// so the ordering stays total.
func CompareFold(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if c := strings.Compare(la, lb); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Compare compares a and b in natural numeric order: the names are
// split into alternating runs of digits and non-digits, digit runs
// compare by numeric value (leading-zero safe, any length), non-digit
// runs compare case-insensitively. A name whose runs are a strict
// prefix of the other's sorts first.
func Compare(a, b string) int {
	i, j := 0, 0
	tiebreak := 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			// Trim leading zeros, then compare the remaining digits
			// by length and value.
			za := i
			for i < len(a) && a[i] == '0' {
				i++
			}
			va := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}

			zb := j
			for j < len(b) && b[j] == '0' {
				j++
			}
			vb := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}

			numA, numB := a[va:i], b[vb:j]
			if len(numA) != len(numB) {
				if len(numA) < len(numB) {
					return -1
				}
				return 1
			}
			if c := strings.Compare(numA, numB); c != 0 {
				return c
			}
			// Same value: remember the leading-zero difference but keep
			// comparing, later runs take precedence over it.
			if lzA, lzB := va-za, vb-zb; lzA != lzB && tiebreak == 0 {
				if lzA < lzB {
					tiebreak = -1
				} else {
					tiebreak = 1
				}
			}
			continue
		}

		fa, fb := lower(ca), lower(cb)
		if fa != fb {
			if fa < fb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	if tiebreak != 0 {
		return tiebreak
	}
	// Equal under folding: byte order keeps the comparison total.
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
