// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// id_fn.go — vertex label schemes. A scheme maps a global vertex index to a
// label and reports indices outside its domain as ErrOptionViolation, so a
// fixture that outgrows a bounded scheme fails BuildGraph instead of the
// process.

package builder

import (
	"fmt"
	"strconv"
)

// symbolCount is the size of the single-letter alphabet used by SymbolIDFn.
const symbolCount = 26

// IDFn generates the label of the vertex with zero-based global index idx.
// It must be pure and injective over its domain.
type IDFn func(idx int) (string, error)

// outOfDomain builds the error returned by every scheme for a bad index.
func outOfDomain(scheme string, idx int, domain string) error {
	return fmt.Errorf("%s: index %d outside %s: %w", scheme, idx, domain, ErrOptionViolation)
}

// DefaultIDFn labels vertices "0", "1", "2", ...
func DefaultIDFn(idx int) (string, error) {
	if idx < 0 {
		return "", outOfDomain("DefaultIDFn", idx, "[0,∞)")
	}
	return strconv.Itoa(idx), nil
}

// SymbolIDFn labels at most 26 vertices "A".."Z". Small fixtures read best
// this way in examples and CLI output.
func SymbolIDFn(idx int) (string, error) {
	if idx < 0 || idx >= symbolCount {
		return "", outOfDomain("SymbolIDFn", idx, fmt.Sprintf("[0,%d]", symbolCount-1))
	}
	return string(rune('A' + idx)), nil
}

// ExcelColumnIDFn labels vertices like spreadsheet columns:
// A..Z, AA..AZ, BA, ... (0→"A", 26→"AA", 702→"AAA").
func ExcelColumnIDFn(idx int) (string, error) {
	if idx < 0 {
		return "", outOfDomain("ExcelColumnIDFn", idx, "[0,∞)")
	}
	var buf [16]byte
	i := len(buf)
	for n := idx; n >= 0; n = n/symbolCount - 1 {
		i--
		buf[i] = byte('A' + n%symbolCount)
	}
	return string(buf[i:]), nil
}

// AlphanumericIDFn labels vertices in base 36 (0..9 then a..z).
func AlphanumericIDFn(idx int) (string, error) {
	if idx < 0 {
		return "", outOfDomain("AlphanumericIDFn", idx, "[0,∞)")
	}
	return strconv.FormatInt(int64(idx), 36), nil
}

// HexIDFn labels vertices in lowercase hexadecimal.
func HexIDFn(idx int) (string, error) {
	if idx < 0 {
		return "", outOfDomain("HexIDFn", idx, "[0,∞)")
	}
	return strconv.FormatInt(int64(idx), 16), nil
}

// SymbolNumberIDFn labels vertices prefix+index, e.g. "v0", "v1".
// The prefix must not be empty or contain whitespace, otherwise the labels
// could not round-trip through an edge list.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) (string, error) {
		if idx < 0 {
			return "", outOfDomain("SymbolNumberIDFn", idx, "[0,∞)")
		}
		return prefix + strconv.Itoa(idx), nil
	}
}

// WithSymbolIDs labels vertices "A".."Z"; fixtures with more vertices fail
// with ErrOptionViolation.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithPrefixedIDs labels vertices prefix+index.
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
