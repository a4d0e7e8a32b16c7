// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// constants.go — method tags and parameter minima shared by constructors.

package builder

// Method name constants prefix every constructor error.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodPetersen          = "Petersen"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
)

// MinCycleNodes is the smallest ring without loops or parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with an edge.
const MinPathNodes = 2

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-cycle rim plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes allows K_1 (a single isolated vertex).
const MinCompleteNodes = 1

// MinPartition is the smallest side of K_{n1,n2}.
const MinPartition = 1

// MinGridDim is the smallest grid dimension; a 1×1 grid has no edges.
const MinGridDim = 1

// MinRandomNodes is the smallest order of a random graph.
const MinRandomNodes = 1

// MinProbability and MaxProbability bound p in RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 64
