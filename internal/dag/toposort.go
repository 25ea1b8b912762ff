package dag

import "errors"

// ErrCycle indicates the graph contains a cycle. The graph has no delay
// edge type, so every cycle is rejected.
var ErrCycle = errors.New("dag: cycle detected")

// TopoSort returns a topological ordering of every node in g: for every
// edge producer->consumer, producer appears before consumer. Returns
// ErrCycle if g is not a DAG.
//
// Built on a recursive DFS with an exit hook: a node is appended to the
// order only after every descendant has been fully visited, so
// reversing the exit-order sequence yields a valid topological sort.
// Cycle detection tracks a "currently on this path" set during the
// walk.
func TopoSort(g *Graph) ([]string, error) {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	w := &topoWalker{
		g:         g,
		visited:   make(map[string]bool),
		onStack:   make(map[string]bool),
		postOrder: make([]string, 0, len(ids)),
	}

	for _, id := range ids {
		if !w.visited[id] {
			if err := w.visit(id); err != nil {
				return nil, err
			}
		}
	}

	// postOrder is exit-order (descendants before ancestors); reverse it
	// for a producer-before-consumer topological order.
	out := make([]string, len(w.postOrder))
	for i, id := range w.postOrder {
		out[len(out)-1-i] = id
	}
	return out, nil
}

type topoWalker struct {
	g         *Graph
	visited   map[string]bool
	onStack   map[string]bool
	postOrder []string
}

func (w *topoWalker) visit(id string) error {
	w.visited[id] = true
	w.onStack[id] = true

	for _, next := range w.g.Consumers(id) {
		if w.onStack[next] {
			return ErrCycle
		}
		if !w.visited[next] {
			if err := w.visit(next); err != nil {
				return err
			}
		}
	}

	w.onStack[id] = false
	w.postOrder = append(w.postOrder, id) // OnExit equivalent
	return nil
}
