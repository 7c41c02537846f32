package calculator

import "strings"

const headerPrefix = "//"

// DefaultDelimiters are used when the input carries no header.
var DefaultDelimiters = []string{",", "\n"}

// extractDelimiters splits input into the active delimiter set and the
// numeric section. custom reports whether a header was present.
func extractDelimiters(input string) (delims []string, section string, custom bool, err error) {
	if !strings.HasPrefix(input, headerPrefix) {
		return append([]string(nil), DefaultDelimiters...), input, false, nil
	}

	header, body, _ := strings.Cut(input, "\n")
	spec := strings.TrimPrefix(header, headerPrefix)
	if spec == "" {
		return nil, "", true, &MalformedHeaderError{Header: header}
	}

	if strings.HasPrefix(spec, "[") && strings.HasSuffix(spec, "]") {
		delims = scanBrackets(spec)
		if len(delims) == 0 {
			return nil, "", true, &MalformedHeaderError{Header: header}
		}
		return delims, body, true, nil
	}

	return []string{spec}, body, true, nil
}

// scanBrackets reads "[d1][d2]..." into its delimiters. Segments are
// separated by '[', whitespace and any trailing ']' are trimmed, and
// segments left empty are dropped.
func scanBrackets(spec string) []string {
	var delims []string
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		d := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(spec[start:end]), "]"))
		if d != "" {
			delims = append(delims, d)
		}
	}
	for i := 0; i < len(spec); i++ {
		if spec[i] != '[' {
			continue
		}
		flush(i)
		start = i + 1
	}
	flush(len(spec))
	return delims
}
