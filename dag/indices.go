// File: indices.go
// Role: buildIndices constructs outgoing/incoming adjacency from an edge
// list, rejecting duplicate edges and self-loops per spec §3.
package dag

func buildIndices(nodes []string, edges []Edge) (outgoing, incoming map[string]map[string]struct{}, err error) {
	outgoing = make(map[string]map[string]struct{}, len(nodes))
	incoming = make(map[string]map[string]struct{}, len(nodes))
	for _, n := range nodes {
		outgoing[n] = make(map[string]struct{})
		incoming[n] = make(map[string]struct{})
	}

	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			return nil, nil, ErrSelfLoop
		}
		if _, dup := seen[e]; dup {
			return nil, nil, ErrDuplicateEdge
		}
		seen[e] = struct{}{}

		if outgoing[e.From] == nil {
			outgoing[e.From] = make(map[string]struct{})
		}
		if incoming[e.To] == nil {
			incoming[e.To] = make(map[string]struct{})
		}
		outgoing[e.From][e.To] = struct{}{}
		incoming[e.To][e.From] = struct{}{}
	}

	return outgoing, incoming, nil
}

// classify partitions nodes into source/fork/join sets from the adjacency
// built by buildIndices.
func classify(nodes []string, outgoing, incoming map[string]map[string]struct{}) (sources, forks, joins map[string]struct{}) {
	sources = make(map[string]struct{})
	forks = make(map[string]struct{})
	joins = make(map[string]struct{})
	for _, n := range nodes {
		if len(incoming[n]) == 0 {
			sources[n] = struct{}{}
		}
		if len(outgoing[n]) > 1 {
			forks[n] = struct{}{}
		}
		if len(incoming[n]) > 1 {
			joins[n] = struct{}{}
		}
	}
	return sources, forks, joins
}
