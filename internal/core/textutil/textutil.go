// Package textutil holds the pure text transforms the extraction pipeline
// is built on: whitespace normalization, the page-split heuristic, and
// prompt truncation.
package textutil

import "strings"

// CleanText collapses newlines, carriage returns, tabs, form feeds and
// vertical tabs together with any other whitespace runs into single spaces
// and trims the result. Total over all inputs and idempotent.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SplitTextByPages partitions cleaned text into totalPages segments using
// a word-distribution heuristic. The parser exposes no real page
// boundaries, so this is a deterministic approximation: rejoining the
// segments with single spaces reproduces the original word sequence.
// Pages past the available words come back empty.
func SplitTextByPages(text string, totalPages int) []string {
	if totalPages <= 0 {
		return []string{}
	}

	words := strings.Fields(text)
	wordsPerPage := (len(words) + totalPages - 1) / totalPages

	pages := make([]string, 0, totalPages)
	for i := 0; i < totalPages; i++ {
		start := i * wordsPerPage
		end := start + wordsPerPage
		if start > len(words) {
			start = len(words)
		}
		if end > len(words) {
			end = len(words)
		}
		pages = append(pages, strings.Join(words[start:end], " "))
	}
	return pages
}

// Truncate cuts text to at most limit characters, appending "..." when a
// cut happened. Limits are measured in runes so a multi-byte character is
// never split.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// WordCount counts whitespace-delimited non-empty tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
