// Package edgeweight solves edge-labelling puzzles on small undirected graphs.
//
// A puzzle asks for the weights 1..E on the E edges of a graph, each used
// once, so that marked vertices see a given sum on their incident edges or
// start a simple path of a given total weight. The shortest path between two
// chosen vertices under the resulting weights spells a message.
//
// The module is organized as:
//
//	core/       immutable graph with per-vertex sum and path targets
//	builder/    small topology constructors (path, cycle, star, wheel, complete)
//	bfs/        breadth-first traversal and connectivity
//	dfs/        simple-path enumeration and candidate edge sets
//	csp/        finite-domain solver: bitset domains, propagation, MRV search
//	dijkstra/   shortest paths with a deterministic tie-break
//	decoder/    weights along a shortest path read as letters
//	puzzle/     YAML puzzles compiled into solver models
//	cmd/bugbyte command-line front end
//
// Quick start:
//
//	p, err := puzzle.New(puzzle.BugByte())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for sol, err := range p.Solve(context.Background()) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(sol.Assignment, sol.Message.Text)
//	}
package edgeweight
