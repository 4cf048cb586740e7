package cli

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnclosedQuote is returned when a line ends inside a quoted string.
var ErrUnclosedQuote = errors.New("unclosed quote")

// SplitLine tokenizes one shell input line. Tokens are separated by
// whitespace; double quotes group words into a single token, so
//
//	edit --title "Buy oat milk" 3
//
// yields [edit --title "Buy oat milk" 3] as four tokens. No escape
// sequences; a quote character inside a word starts a quoted run.
func SplitLine(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inToken := false
	inQuote := false

	for _, r := range line {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
				continue
			}
			current.WriteRune(r)
		case r == '"':
			inQuote = true
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			inToken = true
			current.WriteRune(r)
		}
	}

	if inQuote {
		return nil, ErrUnclosedQuote
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
