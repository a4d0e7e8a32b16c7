package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/matching"
)

// ExampleBuildGraph composes a 5-cycle and a triangle into one fixture and
// matches it. Each odd cycle leaves exactly one vertex exposed.
func ExampleBuildGraph() {
	bp, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Cycle(5),
		builder.Cycle(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, _ := bp.Graph()
	res, _ := matching.Solve(g)

	var pairs, exposed []string
	for _, p := range res.Pairs {
		pairs = append(pairs, bp.Labels[p.A]+"-"+bp.Labels[p.B])
	}
	for _, v := range res.Unmatched() {
		exposed = append(exposed, bp.Labels[v])
	}
	fmt.Println(strings.Join(pairs, " "))
	fmt.Println(strings.Join(exposed, " "))
	// Output:
	// A-B C-D F-G
	// E H
}

// ExamplePetersen shows that the Petersen graph has a perfect matching.
func ExamplePetersen() {
	bp, _ := builder.BuildGraph(nil, builder.Petersen())
	g, _ := bp.Graph()
	res, _ := matching.Solve(g)
	fmt.Println(g.VertexCount(), g.EdgeCount(), res.Size(), res.IsPerfect())
	// Output:
	// 10 15 5 true
}
