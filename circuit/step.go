package circuit

import "sync"

// Circuit is the immutable, scheduled dataflow topology produced by
// Builder.Build. Step is its single entry point: one call per batch of
// named input deltas, synchronous, sinks invoked exactly once each on
// success.
type Circuit struct {
	nodes      map[string]*nodeRecord
	order      []string
	inputNames map[string]string
	sinks      map[string][]func(any)
	logger     Logger

	mu        sync.Mutex
	cache     map[string]any // node id -> last computed value
	stepCount int
}

// Step evaluates every node once in topological order, given deltas: a
// mapping from input name to a delta value of that input's declared
// element type. Missing names default to that input's zero Z-set. All
// names are validated against registered inputs before any node
// executes; an operator-internal error aborts the step and is returned
// as *ErrStepAborted, with earlier mutations from this step left in
// place (the documented recovery is Reset()).
func (c *Circuit) Step(deltas map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Type/key validation pass happens before any node executes.
	for name, v := range deltas {
		id, ok := c.inputNames[name]
		if !ok {
			return wrapf("Step", ErrUnknownInput)
		}
		if err := c.nodes[id].checkType(v); err != nil {
			return wrapf("Step input "+name, err)
		}
	}

	values := make(map[string]any, len(c.nodes))
	type pendingSink struct {
		fn  func(any)
		out any
	}
	var pending []pendingSink

	for _, id := range c.order {
		rec := c.nodes[id]

		var out any
		var err error
		switch rec.kind {
		case kindInput:
			if v, present := deltas[rec.inputName]; present {
				out = v
			} else {
				out = rec.zero()
			}
		default:
			ins := make([]any, len(rec.producers))
			for i, p := range rec.producers {
				ins[i] = values[p]
			}
			out, err = rec.compute(ins)
		}

		if err != nil {
			aborted := &ErrStepAborted{Step: c.stepCount, Node: id, Err: err}
			c.logger.Error("circuit step aborted", map[string]any{
				"step": c.stepCount,
				"node": id,
				"err":  err.Error(),
			})
			return aborted
		}

		values[id] = out
		for _, sink := range c.sinks[id] {
			pending = append(pending, pendingSink{fn: sink, out: out})
		}
	}

	// Only once every node in the step has succeeded do sinks observe
	// output, so a later node's failure never leaks an earlier node's
	// result to the outside world.
	for _, p := range pending {
		p.fn(p.out)
	}

	for id, v := range values {
		c.cache[id] = v
	}
	c.stepCount++
	return nil
}

// Value returns the last value h's node produced, or the zero value of
// T if no step has run since construction or the last Reset.
func Value[T any](c *Circuit, h Handle[T]) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	v, ok := c.cache[h.id]
	if !ok {
		return zero
	}
	out, ok := v.(T)
	if !ok {
		return zero
	}
	return out
}

// Reset visits every stateful node's reset hook, clears the value
// cache, and resets the step counter to zero. StepCount is
// monotonically increasing only between resets, not across them.
func (c *Circuit) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range c.nodes {
		if rec.kind == kindStateful && rec.resetFn != nil {
			rec.resetFn()
		}
	}
	c.cache = make(map[string]any)
	c.stepCount = 0
}

// StepCount returns the number of successful Step calls since
// construction or the last Reset.
func (c *Circuit) StepCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepCount
}
