// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side labelled "{leftPrefix}{i}", right side "{rightPrefix}{j}"
//     (cfg.idFn is not used). Two bipartite blocks with the same prefixes
//     collide and yield ErrConstructFailed; set WithPartitionPrefix per build.
//   • Emits every cross pair L_i — R_j, i asc then j asc.
//
// Complexity: O(n1 + n2) vertices + O(n1·n2) edges.

package builder

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		left, err := addLabelled(bp, MethodCompleteBipartite, makeIDs(cfg.leftPrefix, n1))
		if err != nil {
			return err
		}
		right, err := addLabelled(bp, MethodCompleteBipartite, makeIDs(cfg.rightPrefix, n2))
		if err != nil {
			return err
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = bp.addEdge(MethodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
