// Package heuristic implements five Sokoban distance estimators, all with
// the shape State -> float64 (using math.Inf(1) for the unrecoverable case
// instead of a sum-type, since every caller here is a floating-point
// frontier):
//
//   - Manhattan: sum of each box's L1 distance to its nearest goal.
//   - GreedyMatch: repeatedly pick the cheapest remaining box-goal pair.
//   - Hungarian: minimum-cost perfect bipartite matching under L1.
//   - SumOfDistance: Hungarian matching cost plus the L2 distance from the
//     player to its nearest unmatched box.
//   - DeadlockAmplified: Manhattan, but +Inf if any box is deadlocked.
//
// Manhattan, GreedyMatch, Hungarian and SumOfDistance are stateless value
// types. DeadlockAmplified is a pointer type owning a mutex-guarded
// deadlock.Detector cache; all five are safe for concurrent evaluation.
package heuristic
