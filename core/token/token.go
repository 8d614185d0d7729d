// Package token splits raw input lines into argument vectors.
package token

import "strings"

// Delimiters are the characters that separate tokens: space, tab,
// carriage return, newline and bell. There is no quoting; a delimiter
// always splits.
const Delimiters = " \t\r\n\a"

func isDelimiter(r rune) bool {
	return strings.ContainsRune(Delimiters, r)
}

// Split breaks line into an ordered argument vector. Runs of
// consecutive delimiters collapse, so no empty tokens are produced. An
// empty or all-delimiter line yields a nil slice: the blank command.
func Split(line string) []string {
	tokens := strings.FieldsFunc(line, isDelimiter)
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
