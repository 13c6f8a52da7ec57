// Package token provides tokenization support for the parenthesized list
// notation.
//
// [Tokenize] splits bytes into parentheses, bare atoms, quoted strings and
// comments.  [Balance] checks that parentheses nest properly, reporting
// the unmatched token otherwise.
package token
