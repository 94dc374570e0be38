// Package mapio parses the Sokoban map text format into a core.Board plus
// an initial core.State.
package mapio
