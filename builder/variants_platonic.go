// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// variants_platonic.go — shells for the Platonic solids and the Petersen
// graph, assembled from rings, fans and spokes over local indices.
//
// Determinism:
//   • Each recipe emits its parts in a fixed order, so the edge list of a
//     shell never changes between runs.
//   • Every shell has an even order and a perfect matching.

package builder

// chord is an undirected edge between local block indices U < V.
type chord struct {
	U, V int
}

// link returns the chord u–v with its endpoints ordered.
func link(u, v int) chord {
	if u > v {
		u, v = v, u
	}
	return chord{U: u, V: v}
}

// ring returns the cycle base, base+1, ..., base+n-1, base.
func ring(base, n int) []chord {
	out := make([]chord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, link(base+i, base+(i+1)%n))
	}
	return out
}

// fan joins hub to every vertex of base..base+n-1.
func fan(hub, base, n int) []chord {
	out := make([]chord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, link(hub, base+i))
	}
	return out
}

// shell is a fixed graph over local indices 0..order-1.
type shell struct {
	order int
	edges []chord
}

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

var platonicNames = [...]string{"Tetrahedron", "Cube", "Octahedron", "Dodecahedron", "Icosahedron"}

func (p PlatonicName) String() string {
	if p < 0 || int(p) >= len(platonicNames) {
		return "Unknown"
	}
	return platonicNames[p]
}

var platonicShells = map[PlatonicName]shell{
	Tetrahedron:  tetrahedron(),
	Cube:         cube(),
	Octahedron:   octahedron(),
	Dodecahedron: dodecahedron(),
	Icosahedron:  icosahedron(),
}

var petersenShell = petersen()

// tetrahedron is K4.
func tetrahedron() shell {
	var edges []chord
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			edges = append(edges, link(u, v))
		}
	}
	return shell{order: 4, edges: edges}
}

// cube: faces 0-1-2-3 and 4-5-6-7 joined by verticals i–i+4.
func cube() shell {
	edges := append(ring(0, 4), ring(4, 4)...)
	for i := 0; i < 4; i++ {
		edges = append(edges, link(i, i+4))
	}
	return shell{order: 8, edges: edges}
}

// octahedron: poles 0 and 1 over the equator 2-3-4-5.
func octahedron() shell {
	edges := append(fan(0, 2, 4), fan(1, 2, 4)...)
	edges = append(edges, ring(2, 4)...)
	return shell{order: 6, edges: edges}
}

// dodecahedron: pentagons 0..4 and 5..9 around the 10-cycle 10..19; the top
// pentagon reaches the even ring vertices, the bottom one the odd ones.
func dodecahedron() shell {
	edges := append(ring(0, 5), ring(5, 5)...)
	edges = append(edges, ring(10, 10)...)
	for i := 0; i < 5; i++ {
		edges = append(edges, link(i, 10+2*i), link(5+i, 11+2*i))
	}
	return shell{order: 20, edges: edges}
}

// icosahedron: pole 0 over ring 1..5, pole 11 under ring 6..10, and every
// upper ring vertex i joined to lower vertices i+5 and i+6 (mod the ring).
func icosahedron() shell {
	edges := append(fan(0, 1, 5), ring(1, 5)...)
	for i := 0; i < 5; i++ {
		edges = append(edges, link(1+i, 6+i), link(1+i, 6+(i+1)%5))
	}
	edges = append(edges, ring(6, 5)...)
	edges = append(edges, fan(11, 6, 5)...)
	return shell{order: 12, edges: edges}
}

// petersen: outer pentagon 0..4, spokes i–i+5, inner pentagram over 5..9.
func petersen() shell {
	edges := ring(0, 5)
	for i := 0; i < 5; i++ {
		edges = append(edges, link(i, i+5))
	}
	for i := 0; i < 5; i++ {
		edges = append(edges, link(5+i, 5+(i+2)%5))
	}
	return shell{order: 10, edges: edges}
}
