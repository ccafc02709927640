// Package assign implements L3 -> L4: liveness analysis, interference-graph
// construction, saturation-based graph coloring, and the assign-homes
// rewrite that maps virtual registers to physical registers or stack slots
// (spec.md §4.5). Graph representation follows spec.md §9: an undirected
// adjacency map keyed by VReg name, with saturation sets as parallel maps.
package assign

// Graph is an undirected interference graph over virtual register names.
type Graph struct {
	adj map[string]map[string]bool
}

// NewGraph returns an empty interference graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]bool)}
}

// AddNode ensures name has an (possibly empty) entry in the graph, so that
// virtuals with no interferences still get a home.
func (g *Graph) AddNode(name string) {
	if _, ok := g.adj[name]; !ok {
		g.adj[name] = make(map[string]bool)
	}
}

// AddEdge records that a and b interfere. A self-edge is a no-op.
func (g *Graph) AddEdge(a, b string) {
	if a == b {
		return
	}
	g.AddNode(a)
	g.AddNode(b)
	g.adj[a][b] = true
	g.adj[b][a] = true
}

// Neighbors returns the names that interfere with name.
func (g *Graph) Neighbors(name string) []string {
	ns := make([]string, 0, len(g.adj[name]))
	for n := range g.adj[name] {
		ns = append(ns, n)
	}
	return ns
}

// Nodes returns every virtual register name in the graph.
func (g *Graph) Nodes() []string {
	ns := make([]string, 0, len(g.adj))
	for n := range g.adj {
		ns = append(ns, n)
	}
	return ns
}
