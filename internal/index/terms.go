package index

import "strings"

// ParseTerms splits the filter bar's query text into folded search terms.
// Terms are separated by whitespace; a double-quoted group keeps its spaces
// ("daft punk" is one term). An empty or blank query yields nil, which
// Search treats as "clear filter".
func ParseTerms(query string) []string {
	var terms []string
	pos := 0

	for pos < len(query) {
		switch query[pos] {
		case ' ', '\t':
			pos++
		case '"':
			pos++
			start := pos
			for pos < len(query) && query[pos] != '"' {
				pos++
			}
			if term := query[start:pos]; term != "" {
				terms = append(terms, strings.ToLower(term))
			}
			if pos < len(query) {
				pos++ // closing quote
			}
		default:
			start := pos
			for pos < len(query) && query[pos] != ' ' && query[pos] != '\t' {
				pos++
			}
			terms = append(terms, strings.ToLower(query[start:pos]))
		}
	}

	return terms
}
