// Package dag is the circuit's internal topology type: a directed graph
// of node IDs with producer->consumer edges, plus a topological sort
// used to schedule a circuit's per-step execution order.
//
// The graph guards its node and edge maps with a single RWMutex so
// concurrent read-heavy callers don't serialize on each other, and the
// topological sort is built on a recursive DFS with an exit hook: a
// node is appended to the order only once every descendant has been
// fully visited.
package dag
