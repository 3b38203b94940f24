// File: storage.go
// Role: Storage deduplicates discovered diamonds by structural hash and
// precomputes each unique diamond's induced-subgraph artefacts, per spec
// §4.D.
package diamond

import (
	"sort"

	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/memo"
)

// auxCacheCapacity bounds Storage's internal set-intersection/edge-filter
// caches, per spec §4.D: "flush the auxiliary ... caches when they exceed
// ~10,000 entries".
const auxCacheCapacity = 10000

// Storage owns the deduplicated diamond_hash -> DiamondComputationData map
// built by BuildStorage. It belongs to a single top-level query (spec §5).
type Storage struct {
	byHash    map[uint64]*DiamondComputationData
	processed map[uint64]struct{}

	// joinSiblings supports the "hybrid lookup" optimization of spec §4.D:
	// candidates from sibling diamonds sharing an internal join node.
	joinSiblings map[string][]*Diamond

	inducedCache *memo.Cache[uint64, []dag.Edge]
}

// NewStorage returns an empty Storage ready for BuildStorage.
func NewStorage() *Storage {
	return &Storage{
		byHash:       make(map[uint64]*DiamondComputationData),
		processed:    make(map[uint64]struct{}),
		joinSiblings: make(map[string][]*Diamond),
		inducedCache: memo.New[uint64, []dag.Edge](auxCacheCapacity),
	}
}

// Get returns the stored DiamondComputationData for hash, if present.
func (s *Storage) Get(hash uint64) (*DiamondComputationData, bool) {
	d, ok := s.byHash[hash]
	return d, ok
}

// All returns every stored diamond's computation data, order unspecified.
func (s *Storage) All() []*DiamondComputationData {
	out := make([]*DiamondComputationData, 0, len(s.byHash))
	for _, v := range s.byHash {
		out = append(out, v)
	}
	return out
}

// BuildStorage processes rootDiamonds (the join-node diamonds discovered at
// the top level) in ascending join-node iteration-level order, so outer
// diamonds enter the pool before any nested sub-diamond that reuses them.
// For each not-yet-stored diamond it computes its DiamondComputationData,
// runs the detector over its induced join nodes (with excluded = the
// accumulated conditioning set), and pushes newly discovered sub-diamonds
// onto a work stack.
func BuildStorage(g *dag.Graph, rootDiamonds []*Diamond) (*Storage, error) {
	s := NewStorage()

	sort.Slice(rootDiamonds, func(i, j int) bool {
		return g.Level(rootDiamonds[i].JoinNode) < g.Level(rootDiamonds[j].JoinNode)
	})

	type work struct {
		d        *Diamond
		excluded map[string]struct{}
	}
	var stack []work
	// The stack pops its last element first, so push the roots in reverse
	// to pop them in ascending level order.
	for i := len(rootDiamonds) - 1; i >= 0; i-- {
		stack = append(stack, work{d: rootDiamonds[i], excluded: map[string]struct{}{}})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, done := s.processed[top.d.Hash]; done {
			continue
		}
		s.processed[top.d.Hash] = struct{}{}

		dcd, subDiamonds, err := computeData(g, top.d, top.excluded, s)
		if err != nil {
			return nil, err
		}
		s.byHash[top.d.Hash] = dcd
		s.joinSiblings[top.d.JoinNode] = append(s.joinSiblings[top.d.JoinNode], top.d)

		nextExcluded := make(map[string]struct{}, len(top.excluded)+len(top.d.ConditioningNodes))
		union(nextExcluded, top.excluded)
		union(nextExcluded, toSet(top.d.ConditioningNodes))

		for _, sub := range subDiamonds {
			if _, done := s.processed[sub.Hash]; !done {
				stack = append(stack, work{d: sub, excluded: nextExcluded})
			}
		}
	}

	return s, nil
}

// computeData builds a diamond's DiamondComputationData (induced adjacency,
// closures, iteration sets) and runs the detector over its internal join
// nodes, trying the hybrid sibling lookup first.
func computeData(g *dag.Graph, d *Diamond, excluded map[string]struct{}, s *Storage) (*DiamondComputationData, []*Diamond, error) {
	relevant := sortedKeys(d.RelevantNodes)
	outgoing, incoming, err := inducedAdjacency(relevant, d.Edgelist)
	if err != nil {
		return nil, nil, err
	}
	sources, forks, joins := classifyInduced(relevant, outgoing, incoming)
	sets, err := layerInduced(relevant, outgoing, incoming)
	if err != nil {
		return nil, nil, err
	}

	internal := make(map[string]*DiamondsAtNode, len(joins))
	var subDiamonds []*Diamond

	for j := range joins {
		var dn *DiamondsAtNode
		if cached := hybridLookup(s, j, d.Edgelist, excluded); cached != nil {
			dn = &DiamondsAtNode{JoinNode: j, Diamond: cached, NonDiamondParents: NonDiamondParents(g, j, cached)}
		} else {
			dn, err = DetectAtNode(g, j, excluded)
			if err != nil {
				return nil, nil, err
			}
		}
		if dn == nil {
			continue
		}
		// A join re-detecting d itself (same structural hash) is not a
		// nested sub-diamond: it is the fixpoint of re-running the
		// detector on d's own induced subgraph, already accounted for by
		// d's own conditioning. Recording it here would make the
		// conditioner recurse into an identical diamond forever.
		if dn.Diamond != nil && dn.Diamond.Hash == d.Hash {
			continue
		}
		internal[j] = dn
		if dn.Diamond != nil {
			subDiamonds = append(subDiamonds, dn.Diamond)
		}
	}

	dcd := &DiamondComputationData{
		Diamond:               d,
		Outgoing:              outgoing,
		Incoming:              incoming,
		Sources:               sources,
		Forks:                 forks,
		Joins:                 joins,
		IterationSets:         sets,
		InternalDiamonds:      internal,
		ExcludedAtComputation: excluded,
	}

	return dcd, subDiamonds, nil
}

// hybridLookup implements spec §4.D's optional optimization: for a
// non-root diamond's internal join j, consult the join -> []Diamond table
// built from previously-processed siblings before paying for a fresh
// detector run. A sibling candidate is accepted only if its edgelist is a
// subset of the currently available edges and its conditioning nodes don't
// intersect the accumulated excluded set.
func hybridLookup(s *Storage, join string, availableEdges []dag.Edge, excluded map[string]struct{}) *Diamond {
	candidates := s.joinSiblings[join]
	if len(candidates) == 0 {
		return nil
	}
	available := edgeSet(availableEdges)

	for _, cand := range candidates {
		subset := true
		for _, e := range cand.Edgelist {
			if !available[e] {
				subset = false
				break
			}
		}
		if !subset {
			continue
		}
		clashes := false
		for _, c := range cand.ConditioningNodes {
			if _, in := excluded[c]; in {
				clashes = true
				break
			}
		}
		if clashes {
			continue
		}
		return cand
	}
	return nil
}

func inducedAdjacency(nodes []string, edges []dag.Edge) (outgoing, incoming map[string]map[string]struct{}, err error) {
	outgoing = make(map[string]map[string]struct{}, len(nodes))
	incoming = make(map[string]map[string]struct{}, len(nodes))
	for _, n := range nodes {
		outgoing[n] = make(map[string]struct{})
		incoming[n] = make(map[string]struct{})
	}
	for _, e := range edges {
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

func classifyInduced(nodes []string, outgoing, incoming map[string]map[string]struct{}) (sources, forks, joins map[string]struct{}) {
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

func layerInduced(nodes []string, outgoing, incoming map[string]map[string]struct{}) ([][]string, error) {
	indegree := make(map[string]int, len(nodes))
	for _, n := range nodes {
		indegree[n] = len(incoming[n])
	}
	var sets [][]string
	var frontier []string
	for _, n := range nodes {
		if indegree[n] == 0 {
			frontier = append(frontier, n)
		}
	}
	sort.Strings(frontier)
	remaining := len(nodes)
	for len(frontier) > 0 {
		sets = append(sets, frontier)
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
	}
	if remaining != 0 {
		return nil, ErrRecursionBound
	}
	return sets, nil
}
