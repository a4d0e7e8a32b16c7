// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// search.go — the per-search arena: base map, LCA finder, blossom
// contraction, alternating-tree BFS and the path flip.
//
// Vertex labels inside one search:
//   - outer: enqueued (the root, the mate of an inner vertex, or any vertex
//     absorbed into a blossom). Only outer vertices are scanned.
//   - inner: reached through a non-matching edge (parent set, not enqueued).
//   - free:  parent == Unmatched and not enqueued.
//
// Invariants:
//   - parent[x] is set for every visited vertex except the root.
//   - From an outer vertex b, parent[mate[b]] is an outer vertex strictly
//     closer to the root; the root is the only outer base with no parent.
//   - base[x] == base[y] iff x and y lie in the same contracted blossom.

package matching

import "context"

// walker encapsulates per-search mutable state. All slices are sized once
// and reset at the start of every search.
type walker struct {
	g     *Graph
	mate  []int // shared with the driver; flipped only by augment
	opts  *Options
	stats *Stats
	ctx   context.Context

	root      int
	parent    []int
	base      []int
	inQueue   []bool
	inBlossom []bool
	queue     []int

	// LCA scratch: mark[v] == stamp means v was seen on the current walk.
	mark  []int
	stamp int

	members []int // reused OnContract payload
	path    []int // reused OnAugment payload
}

func newWalker(g *Graph, mate []int, opts *Options, stats *Stats) *walker {
	n := g.n
	return &walker{
		g:         g,
		mate:      mate,
		opts:      opts,
		stats:     stats,
		ctx:       opts.Ctx,
		root:      Unmatched,
		parent:    make([]int, n),
		base:      make([]int, n),
		inQueue:   make([]bool, n),
		inBlossom: make([]bool, n),
		queue:     make([]int, 0, n),
		mark:      make([]int, n),
	}
}

// reset reinitializes the arena for a search rooted at root.
func (w *walker) reset(root int) {
	for v := range w.parent {
		w.parent[v] = Unmatched
		w.base[v] = v
		w.inQueue[v] = false
	}
	w.queue = w.queue[:0]
	w.root = root
	w.enqueue(root)
}

func (w *walker) enqueue(v int) {
	w.inQueue[v] = true
	w.queue = append(w.queue, v)
}

// lca returns the base of the lowest common ancestor of outer vertices u
// and v, or Unmatched if the walk from v reaches a root without meeting the
// walk from u.
//
// Complexity: O(depth) per call.
func (w *walker) lca(u, v int) int {
	w.stamp++
	for {
		u = w.base[u]
		w.mark[u] = w.stamp
		if w.parent[u] == Unmatched {
			break
		}
		u = w.parent[w.mate[u]]
	}
	for {
		v = w.base[v]
		if w.mark[v] == w.stamp {
			return v
		}
		if w.parent[v] == Unmatched {
			return Unmatched
		}
		v = w.parent[w.mate[v]]
	}
}

// markPath walks from v up to base b, flagging every blossom representative
// on the way and re-pointing parent of the outer vertices toward child, the
// vertex across the closing edge.
func (w *walker) markPath(v, b, child int) {
	for w.base[v] != b {
		m := w.mate[v]
		w.inBlossom[w.base[v]] = true
		w.inBlossom[w.base[m]] = true
		w.parent[v] = child
		child = m
		v = w.parent[m]
	}
}

// contract merges the odd cycle closed by edge (u, v) into base b and
// enqueues every absorbed vertex that was not outer yet.
//
// Complexity: O(n) for the re-scan.
func (w *walker) contract(u, v, b int) {
	for i := range w.inBlossom {
		w.inBlossom[i] = false
	}
	w.markPath(u, b, v)
	w.markPath(v, b, u)

	w.members = w.members[:0]
	for x := range w.base {
		if !w.inBlossom[w.base[x]] {
			continue
		}
		w.base[x] = b
		w.members = append(w.members, x)
		if !w.inQueue[x] {
			w.enqueue(x)
		}
	}
	w.stats.Contractions++
	w.opts.OnContract(b, w.members)
}

// search grows an alternating tree from the exposed vertex root.
// It returns the exposed endpoint of an augmenting path, or found == false
// once the queue is exhausted. The context is checked once per dequeue.
func (w *walker) search(root int) (end int, found bool, err error) {
	w.reset(root)
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return Unmatched, false, w.ctx.Err()
		default:
		}

		u := w.queue[head]
		for _, v := range w.g.adj[u] {
			if w.mate[u] == v || w.base[u] == w.base[v] {
				continue
			}
			switch {
			case w.inQueue[v]:
				// Two outer vertices: the branches close an odd cycle.
				if b := w.lca(u, v); b != Unmatched {
					w.contract(u, v, b)
				}
			case w.parent[v] == Unmatched:
				w.parent[v] = u
				if w.mate[v] == Unmatched {
					return v, true, nil
				}
				z := w.mate[v]
				w.parent[z] = v
				if !w.inQueue[z] {
					w.enqueue(z)
				}
			default:
				// v is inner: the cycle is even, nothing to gain.
			}
		}
	}
	return Unmatched, false, nil
}

// augment flips the augmenting path ending at end and returns it root
// first. Every edge on the path changes state exactly once, so the
// matching grows by one.
func (w *walker) augment(end int) []int {
	w.path = w.path[:0]
	for u := end; u != Unmatched; {
		v := w.parent[u]
		next := w.mate[v]
		w.mate[v] = u
		w.mate[u] = v
		w.path = append(w.path, u, v)
		u = next
	}
	for i, j := 0, len(w.path)-1; i < j; i, j = i+1, j-1 {
		w.path[i], w.path[j] = w.path[j], w.path[i]
	}
	return w.path
}
