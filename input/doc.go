// Package input is the I/O edge of the puzzle cores: it reads day
// files from the conventional <root>/day<N>/input.txt layout and
// pre-chops raw text into trimmed tokens. The cores themselves never
// touch the filesystem; they take strings and slices this package
// produced.
//
// Splitting trims every token and drops empties, so trailing newlines
// and CRLF endings die here instead of inside a parser.
package input
