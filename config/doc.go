// Package config loads and validates the JSON configuration file that
// selects a search algorithm, an optional heuristic, the map to solve, and
// output options.
package config
