package image

import "strings"

// stop words dropped during keyword extraction, including filler terms
// that style enhancement appends to prompts
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

// ExtractKeywords reduces a free-text prompt to at most three search
// keywords: lowercase, punctuation stripped, stop words and short tokens
// dropped. Pure and idempotent; the constant fallback keeps the result
// non-empty for any input.
func ExtractKeywords(prompt string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ', r == '\t', r == '\n':
			return r
		default:
			return -1
		}
	}, strings.ToLower(prompt))

	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 3 {
			break
		}
	}
	if len(keywords) == 0 {
		return []string{"business"}
	}
	return keywords
}

// hashPrompt is a 32-bit string hash used to pick stable seeds and
// palette colors for a prompt
func hashPrompt(s string) int32 {
	var hash int32
	for _, r := range s {
		hash = (hash << 5) - hash + int32(r)
	}
	return hash
}
