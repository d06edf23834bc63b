// Package extract turns uploaded financial documents into calculator inputs:
// a heuristic text filter trims the document down to the lines that matter,
// and a chat-completion client asks the model to shape them into JSON.
package extract

import (
	"strings"
	"unicode"
)

// Bilingual financial-statement vocabulary. A segment survives filtering only
// if it mentions one of these and carries at least one numeral.
var financialKeywords = []string{
	"kas", "cash", "bank",
	"persediaan", "inventory",
	"piutang", "receivables",
	"utang", "liabilities", "hutang",
	"neraca", "balance sheet",
	"laba rugi", "income statement",
	"aset lancar", "current assets",
	"kewajiban lancar", "current liabilities",
}

// FilterFinancialText reduces raw document text to its financially relevant
// excerpts. It tries sentence-like segments first, then whole lines, and as a
// last resort returns the normalized input unchanged, so a non-empty input
// never filters down to an empty string.
func FilterFinancialText(raw string) string {
	normalized := normalizeWhitespace(raw)
	if normalized == "" {
		return ""
	}

	if kept := keepRelevant(splitSentences(normalized)); len(kept) > 0 {
		return strings.Join(kept, "\n")
	}
	if kept := keepRelevant(strings.Split(normalized, "\n")); len(kept) > 0 {
		return strings.Join(kept, "\n")
	}
	return normalized
}

func normalizeWhitespace(raw string) string {
	lines := strings.Split(raw, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

// splitSentences breaks the text at sentence punctuation and newlines. A dot
// followed by a digit is a thousands separator (Rp 150.000.000), not a
// sentence boundary.
func splitSentences(text string) []string {
	runes := []rune(text)
	var segments []string
	var current strings.Builder
	flush := func() {
		segment := strings.TrimSpace(current.String())
		if segment != "" {
			segments = append(segments, segment)
		}
		current.Reset()
	}
	for i, r := range runes {
		switch r {
		case ';', '!', '?', '\n':
			flush()
		case '.':
			if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				current.WriteRune(r)
			} else {
				flush()
			}
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return segments
}

func keepRelevant(segments []string) []string {
	var kept []string
	for _, segment := range segments {
		if hasKeyword(segment) && hasNumeral(segment) {
			kept = append(kept, segment)
		}
	}
	return kept
}

func hasKeyword(segment string) bool {
	lower := strings.ToLower(segment)
	for _, keyword := range financialKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func hasNumeral(segment string) bool {
	for _, r := range segment {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
