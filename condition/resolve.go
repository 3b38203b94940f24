// File: resolve.go
// Role: Resolver.Resolve implements the diamond-join conditioner of
// spec.md §4.F, steps 1-5.
package condition

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Temi-Tory/ipm/belief"
	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/diamond"
	"github.com/Temi-Tory/ipm/memo"
	"github.com/Temi-Tory/ipm/prob"
)

// Resolver owns one top-level query's diamond-conditioning cache and
// dedup group. It is not safe to share across concurrent queries (spec.md
// §5); each query constructs its own.
type Resolver struct {
	cache *memo.Cache[DiamondCacheKey, DiamondCacheEntry]
	group singleflight.Group
	opts  options
}

// NewResolver returns a Resolver backed by cache (see NewCache for a
// sensible default).
func NewResolver(cache *memo.Cache[DiamondCacheKey, DiamondCacheEntry], opts ...Option) *Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Resolver{cache: cache, opts: o}
}

// Resolve matches belief.Conditioner: it is the function a query passes
// into belief.Compute so that a join node carrying a DiamondsAtNode entry
// gets its contribution from exact total-probability conditioning rather
// than plain inclusion-exclusion.
func (r *Resolver) Resolve(ctx context.Context, g *dag.Graph, d *diamond.Diamond, storage *diamond.Storage, beliefs map[string]prob.Value) (prob.Value, error) {
	template, err := inducedPriorTemplate(g, d, beliefs)
	if err != nil {
		return prob.Value{}, err
	}

	conditioning := d.ConditioningNodes
	k := len(conditioning)
	stateCount := 1 << uint(k)

	if !r.opts.parallel {
		final := prob.Zero()
		for s := 0; s < stateCount; s++ {
			if err := ctx.Err(); err != nil {
				return prob.Value{}, err
			}
			contribution, err := r.resolveState(ctx, g, d, storage, template, conditioning, beliefs, s)
			if err != nil {
				return prob.Value{}, err
			}
			final = prob.Add(final, contribution)
		}
		return final, nil
	}

	contributions := make([]prob.Value, stateCount)
	group, gctx := errgroup.WithContext(ctx)
	for s := 0; s < stateCount; s++ {
		s := s
		group.Go(func() error {
			contribution, err := r.resolveState(gctx, g, d, storage, template, conditioning, beliefs, s)
			if err != nil {
				return err
			}
			contributions[s] = contribution
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return prob.Value{}, err
	}
	return prob.Sum(contributions), nil
}

// resolveState evaluates one joint Bernoulli state s (bit i = value of
// conditioning[i]): the state's prior probability times the induced belief
// of the diamond's join node under that state, consulting/populating the
// cross-call cache first.
func (r *Resolver) resolveState(
	ctx context.Context,
	g *dag.Graph,
	d *diamond.Diamond,
	storage *diamond.Storage,
	template map[string]prob.Value,
	conditioning []string,
	outerBeliefs map[string]prob.Value,
	s int,
) (prob.Value, error) {
	stateProb := prob.One()
	stateTemplate := make(map[string]prob.Value, len(template))
	for n, v := range template {
		stateTemplate[n] = v
	}

	for i, c := range conditioning {
		cb, ok := outerBeliefs[c]
		if !ok {
			return prob.Value{}, &ConditioningBeliefMissingError{Node: c}
		}
		if s&(1<<uint(i)) != 0 {
			stateProb = prob.Mul(stateProb, cb)
			stateTemplate[c] = prob.One()
		} else {
			stateProb = prob.Mul(stateProb, prob.Complement(cb))
			stateTemplate[c] = prob.Zero()
		}
	}

	key := DiamondCacheKey{DiamondHash: d.Hash, PriorHash: priorVectorHash(stateTemplate)}

	if entry, ok := r.cache.Get(key); ok {
		return prob.Mul(entry.Beliefs[d.JoinNode], stateProb), nil
	}

	dedupKey := strconv.FormatUint(key.DiamondHash, 16) + "/" + strconv.FormatUint(key.PriorHash, 16)
	v, err, _ := r.group.Do(dedupKey, func() (any, error) {
		if entry, ok := r.cache.Get(key); ok {
			return entry, nil
		}
		entry, err := r.computeState(ctx, g, d, storage, stateTemplate)
		if err != nil {
			return nil, err
		}
		r.cache.Put(key, entry)
		return entry, nil
	})
	if err != nil {
		return prob.Value{}, err
	}
	entry := v.(DiamondCacheEntry)

	return prob.Mul(entry.Beliefs[d.JoinNode], stateProb), nil
}

// computeState builds the diamond's induced sub-DAG under one conditioning
// assignment and recurses into belief.Compute, which may itself reach
// further diamond joins nested inside this one.
func (r *Resolver) computeState(
	ctx context.Context,
	g *dag.Graph,
	d *diamond.Diamond,
	storage *diamond.Storage,
	stateTemplate map[string]prob.Value,
) (DiamondCacheEntry, error) {
	edgeProbs := make(map[dag.Edge]prob.Value, len(d.Edgelist))
	for _, e := range d.Edgelist {
		ep, ok := g.EdgeProb(e)
		if !ok {
			return DiamondCacheEntry{}, &dag.MissingEdgeProbabilityError{From: e.From, To: e.To}
		}
		edgeProbs[e] = ep
	}

	sub, err := dag.Build(d.Edgelist, stateTemplate, edgeProbs, dag.WithKind(g.Kind()))
	if err != nil {
		return DiamondCacheEntry{}, err
	}

	var internal map[string]*diamond.DiamondsAtNode
	if dcd, ok := storage.Get(d.Hash); ok {
		internal = dcd.InternalDiamonds
	}

	subBeliefs, err := belief.Compute(ctx, sub, internal, storage, r.Resolve)
	if err != nil {
		return DiamondCacheEntry{}, err
	}

	return DiamondCacheEntry{Beliefs: subBeliefs}, nil
}

// inducedPriorTemplate implements spec.md §4.F step 2: the per-node prior
// assignment for the diamond's induced sub-DAG before any conditioning
// state is applied.
func inducedPriorTemplate(g *dag.Graph, d *diamond.Diamond, outerBeliefs map[string]prob.Value) (map[string]prob.Value, error) {
	hasIncoming := make(map[string]bool, len(d.RelevantNodes))
	for _, e := range d.Edgelist {
		hasIncoming[e.To] = true
	}
	conditioning := make(map[string]struct{}, len(d.ConditioningNodes))
	for _, c := range d.ConditioningNodes {
		conditioning[c] = struct{}{}
	}

	template := make(map[string]prob.Value, len(d.RelevantNodes))
	for n := range d.RelevantNodes {
		switch {
		case n == d.JoinNode:
			template[n] = prob.One()
		case !hasIncoming[n]:
			if _, isConditioning := conditioning[n]; isConditioning {
				template[n] = prob.One() // placeholder, overwritten per state
				continue
			}
			b, ok := outerBeliefs[n]
			if !ok {
				return nil, &ConditioningBeliefMissingError{Node: n}
			}
			template[n] = b
		default:
			prior, ok := g.NodePrior(n)
			if !ok {
				return nil, &dag.MissingPriorError{Node: n}
			}
			template[n] = prior
		}
	}
	return template, nil
}
