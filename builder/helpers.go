// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// helpers.go — block allocation and label helpers used by constructors.

package builder

import (
	"fmt"
	"strconv"
)

// addBlock appends n vertices labelled cfg.idFn(global index) and returns
// the global index of the first one. A label the scheme cannot produce
// aborts the block with the scheme's error.
//
// Complexity: O(n) time.
func addBlock(bp *Blueprint, cfg builderConfig, method string, n int) (int, error) {
	base := bp.VertexCount()
	for i := 0; i < n; i++ {
		label, err := cfg.idFn(base + i)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", method, err)
		}
		if _, err := bp.addVertex(method, label); err != nil {
			return 0, err
		}
	}
	return base, nil
}

// addLabelled appends one vertex per label and returns the first index.
func addLabelled(bp *Blueprint, method string, labels []string) (int, error) {
	base := bp.VertexCount()
	for _, label := range labels {
		if _, err := bp.addVertex(method, label); err != nil {
			return 0, err
		}
	}
	return base, nil
}

// makeIDs generates n labels by concatenating prefix and index.
// Example: makeIDs("L",3) → {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = vertexID(prefix, i)
	}
	return ids
}

// vertexID returns prefix + decimal index, e.g. vertexID("R",2) → "R2".
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
