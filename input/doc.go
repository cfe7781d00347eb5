// Package input reads engine inputs from plain-text sources.
//
// Both readers are line oriented. Blank lines and lines starting with '#'
// are skipped; every error names the 1-based line it came from.
//
//	# points: one "x y" pair per line (commas also separate)
//	0 0
//	3,4
//
//	# integers: whitespace separated, any number per line
//	1234 5678
//	-42
//
// Validation beyond syntax (duplicates, fewer than two points) is left to
// the engines, which report it inside the trace.
package input
