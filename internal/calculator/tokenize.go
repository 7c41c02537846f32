package calculator

import (
	"strconv"
	"strings"
)

// splitAll cuts section at every occurrence of any delimiter in a single
// left-to-right pass. When several delimiters match at the same position the
// earliest one in delims wins.
func splitAll(section string, delims []string) []string {
	var tokens []string
	last := 0
	for i := 0; i < len(section); {
		d := matchAt(section, i, delims)
		if d == "" {
			i++
			continue
		}
		tokens = append(tokens, section[last:i])
		i += len(d)
		last = i
	}
	return append(tokens, section[last:])
}

func matchAt(s string, i int, delims []string) string {
	for _, d := range delims {
		if d != "" && strings.HasPrefix(s[i:], d) {
			return d
		}
	}
	return ""
}

// tokenize parses every non-blank token of section as an integer.
func tokenize(section string, delims []string) ([]int, error) {
	var numbers []int
	for _, raw := range splitAll(section, delims) {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &MalformedTokenError{Token: tok, Err: err}
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
