package circuit

import (
	"fmt"

	"github.com/katalvlaran/lvldbsp/internal/dag"
	"github.com/katalvlaran/lvldbsp/zset"
)

// Builder accumulates input handles, operator nodes, and output sinks
// before producing an immutable Circuit via Build: Input, Op (here:
// Op1/Op2), StatefulOp (here: StatefulOp1/StatefulOp2), Output.
type Builder struct {
	cfg        *builderConfig
	graph      *dag.Graph
	nodes      map[string]*nodeRecord
	inputNames map[string]string // input name -> node id
	sinks      map[string][]func(any)
	seq        int
	built      bool
}

// NewBuilder constructs an empty Builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		cfg:        newBuilderConfig(opts...),
		graph:      dag.NewGraph(),
		nodes:      make(map[string]*nodeRecord),
		inputNames: make(map[string]string),
		sinks:      make(map[string][]func(any)),
	}
}

func (b *Builder) nextID(prefix string) string {
	b.seq++
	return fmt.Sprintf("%s#%d", prefix, b.seq)
}

func (b *Builder) addNode(rec *nodeRecord, producers ...string) error {
	if err := b.graph.AddNode(rec.id); err != nil {
		return err
	}
	for _, p := range producers {
		if _, ok := b.nodes[p]; !ok {
			return ErrDanglingHandle
		}
		if err := b.graph.AddEdge(p, rec.id); err != nil {
			return wrapf("addEdge", err)
		}
	}
	rec.producers = producers
	b.nodes[rec.id] = rec
	return nil
}

// Input registers a named entry point of element type T, identified by
// keyFn. Returns ErrDuplicateInput if name was already registered.
func Input[T any](b *Builder, name string, keyFn zset.KeyFunc[T]) (Handle[*zset.ZSet[T]], error) {
	var zero Handle[*zset.ZSet[T]]
	if _, ok := b.inputNames[name]; ok {
		return zero, wrapf(fmt.Sprintf("Input(%q)", name), ErrDuplicateInput)
	}

	id := "input:" + name
	rec := &nodeRecord{
		id:        id,
		kind:      kindInput,
		inputName: name,
		zero:      func() any { return zset.New[T](keyFn) },
		checkType: func(v any) error {
			if _, ok := v.(*zset.ZSet[T]); !ok {
				return ErrDeltaTypeMismatch
			}
			return nil
		},
	}
	if err := b.addNode(rec); err != nil {
		return zero, err
	}
	b.inputNames[name] = id
	return Handle[*zset.ZSet[T]]{id: id, origin: b}, nil
}

// Op1 adds a stateless node computing f(in): its output is a pure
// function of in's current value, recomputed fresh every step.
func Op1[A, B any](b *Builder, in Handle[A], f func(A) (B, error)) (Handle[B], error) {
	var zero Handle[B]
	if f == nil {
		return zero, ErrNilComputeFn
	}

	id := b.nextID("op")
	rec := &nodeRecord{
		id:   id,
		kind: kindStateless,
		compute: func(ins []any) (any, error) {
			a, ok := ins[0].(A)
			if !ok {
				return nil, ErrDeltaTypeMismatch
			}
			return f(a)
		},
	}
	if err := b.addNode(rec, in.id); err != nil {
		return zero, err
	}
	return Handle[B]{id: id, origin: b}, nil
}

// Op2 adds a stateless node computing f(in1, in2).
func Op2[A, B, C any](b *Builder, in1 Handle[A], in2 Handle[B], f func(A, B) (C, error)) (Handle[C], error) {
	var zero Handle[C]
	if f == nil {
		return zero, ErrNilComputeFn
	}

	id := b.nextID("op")
	rec := &nodeRecord{
		id:   id,
		kind: kindStateless,
		compute: func(ins []any) (any, error) {
			a, ok1 := ins[0].(A)
			c, ok2 := ins[1].(B)
			if !ok1 || !ok2 {
				return nil, ErrDeltaTypeMismatch
			}
			return f(a, c)
		},
	}
	if err := b.addNode(rec, in1.id, in2.id); err != nil {
		return zero, err
	}
	return Handle[C]{id: id, origin: b}, nil
}

// StatefulOp1 adds a stateful node: step(in) is called at most once per
// circuit step, and reset restores its private state.
func StatefulOp1[A, B any](b *Builder, in Handle[A], step func(A) (B, error), reset func()) (Handle[B], error) {
	var zero Handle[B]
	if step == nil {
		return zero, ErrNilComputeFn
	}

	id := b.nextID("stateful")
	rec := &nodeRecord{
		id:   id,
		kind: kindStateful,
		compute: func(ins []any) (any, error) {
			a, ok := ins[0].(A)
			if !ok {
				return nil, ErrDeltaTypeMismatch
			}
			return step(a)
		},
		resetFn: reset,
	}
	if err := b.addNode(rec, in.id); err != nil {
		return zero, err
	}
	return Handle[B]{id: id, origin: b}, nil
}

// StatefulOp2 adds a stateful node over two inputs, e.g. any member of
// the join family.
func StatefulOp2[A, B, C any](b *Builder, in1 Handle[A], in2 Handle[B], step func(A, B) (C, error), reset func()) (Handle[C], error) {
	var zero Handle[C]
	if step == nil {
		return zero, ErrNilComputeFn
	}

	id := b.nextID("stateful")
	rec := &nodeRecord{
		id:   id,
		kind: kindStateful,
		compute: func(ins []any) (any, error) {
			a, ok1 := ins[0].(A)
			c, ok2 := ins[1].(B)
			if !ok1 || !ok2 {
				return nil, ErrDeltaTypeMismatch
			}
			return step(a, c)
		},
		resetFn: reset,
	}
	if err := b.addNode(rec, in1.id, in2.id); err != nil {
		return zero, err
	}
	return Handle[C]{id: id, origin: b}, nil
}

// Output registers callback as a sink on h: after h's node computes
// during a step, callback is invoked with its output.
func Output[T any](b *Builder, h Handle[T], callback func(T)) error {
	if callback == nil {
		return ErrNilComputeFn
	}
	if _, ok := b.nodes[h.id]; !ok {
		return ErrDanglingHandle
	}
	b.sinks[h.id] = append(b.sinks[h.id], func(v any) {
		callback(v.(T))
	})
	return nil
}

// Build finalizes the topology: computes the topological execution
// order once, never recomputed during a step, and returns an immutable
// Circuit. Returns ErrCyclicTopology if the graph is not a DAG.
func (b *Builder) Build() (*Circuit, error) {
	if b.built {
		return nil, wrapf("Build", ErrAlreadyBuilt)
	}
	order, err := dag.TopoSort(b.graph)
	if err != nil {
		return nil, wrapf("Build", ErrCyclicTopology)
	}
	b.built = true

	return &Circuit{
		nodes:      b.nodes,
		order:      order,
		inputNames: b.inputNames,
		sinks:      b.sinks,
		logger:     b.cfg.logger,
		cache:      make(map[string]any),
	}, nil
}
