// Package search implements the engine that drives a frontier.Strategy over
// a core.State graph to either a Success (a path to a goal state, with
// search metrics) or a Failure (metrics only).
//
// Two closed-set disciplines are implemented, selected by the strategy's
// CacheCost:
//
//   - Plain (BFS/DFS/IDDFS/Greedy): a state is marked closed the moment it
//     is generated, so it can enter the frontier at most once. Goal is
//     tested when a node is popped.
//   - Cost-caching (A*): a best-known-g map replaces the plain closed set,
//     allowing a state to be re-opened and re-pushed if a cheaper path to
//     it is later discovered. Goal is tested on pop, since only a popped
//     node with minimal f is guaranteed optimal.
//
// Engine keeps the strategy it was built with for every call to Search and
// does not reset it between calls: nodes a previous search left in the
// frontier, and the strategy's own counters and limits (such as IDDFS's
// depth limit), carry over into the next call. An Engine is not safe for
// concurrent use (the frontier it wraps is not safe for concurrent use).
package search
