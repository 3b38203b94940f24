// File: topo.go
// Role: topologicalIterationSets computes the finest Kahn-style level
// partition of the graph, per spec §4.B. If the input is not a DAG, it
// reports ErrCycleDetected rather than a partial ordering.
//
// Complexity: O(V+E) time, O(V) space.
package dag

import "sort"

func topologicalIterationSets(nodes []string, outgoing, incoming map[string]map[string]struct{}) ([][]string, map[string]int, error) {
	indegree := make(map[string]int, len(nodes))
	for _, n := range nodes {
		indegree[n] = len(incoming[n])
	}

	var sets [][]string
	levelOf := make(map[string]int, len(nodes))
	remaining := len(nodes)

	// frontier holds nodes whose indegree has just reached zero.
	var frontier []string
	for _, n := range nodes {
		if indegree[n] == 0 {
			frontier = append(frontier, n)
		}
	}
	sort.Strings(frontier)

	level := 0
	for len(frontier) > 0 {
		sets = append(sets, frontier)
		for _, n := range frontier {
			levelOf[n] = level
		}
		remaining -= len(frontier)

		var next []string
		for _, n := range frontier {
			var children []string
			for c := range outgoing[n] {
				children = append(children, c)
			}
			sort.Strings(children)
			for _, c := range children {
				indegree[c]--
				if indegree[c] == 0 {
					next = append(next, c)
				}
			}
		}
		sort.Strings(next)
		frontier = next
		level++
	}

	if remaining != 0 {
		return nil, nil, ErrCycleDetected
	}

	return sets, levelOf, nil
}
