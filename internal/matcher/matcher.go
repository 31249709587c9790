// Package matcher filters lines of a text containing the query - exact or case-insensitive
package matcher

import "strings"

// SearchFunc returns matching lines of text in their original order.
// Returned strings share memory with text, no line is copied.
type SearchFunc func(query, text string) []string

// Select picks the search policy according to the case-sensitivity flag.
func Select(caseSensitive bool) SearchFunc {
	if caseSensitive {
		return SearchExact
	}
	return SearchInsensitive
}

func SearchExact(query, text string) []string {
	return filter(text, LineMatcher(query, true))
}

func SearchInsensitive(query, text string) []string {
	return filter(text, LineMatcher(query, false))
}

// LineMatcher checks a single line for containing the query.
func LineMatcher(query string, caseSensitive bool) func(line string) bool {
	if caseSensitive {
		return func(line string) bool {
			return strings.Contains(line, query)
		}
	}

	// сравниваем в нижнем регистре, но в результат попадает исходная строка
	query = strings.ToLower(query)
	return func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	}
}

func filter(text string, match func(string) bool) []string {
	result := []string{}
	for _, line := range Lines(text) {
		if match(line) {
			result = append(result, line)
		}
	}
	return result
}

// Lines splits text by "\n" or "\r\n". A lone "\r" is kept as content.
// A final line without a break is kept, a trailing break gives no empty line.
func Lines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for text != "" {
		line, rest, found := strings.Cut(text, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, line)
		text = rest
	}
	return lines
}
