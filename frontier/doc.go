// Package frontier implements the five pending-node strategies the search
// engine can drive: BFS (FIFO), DFS (LIFO), IDDFS (depth-bounded LIFO with
// an overflow bucket and a growing depth limit), Greedy (priority by
// heuristic value alone), and A* (priority by g+h). Every strategy
// implements Strategy, so the engine is oblivious to which one it holds.
package frontier
