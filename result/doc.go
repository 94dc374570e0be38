// Package result turns a search.Result into the external artifacts callers
// actually want: a JSON metrics file, an optional CSV animation trace, and a
// human-readable console summary.
package result
