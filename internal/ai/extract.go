package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls the JSON payload out of a model response. Models
// wrap JSON in markdown fences or surround it with prose, so the order
// is: fenced code block first, then the outermost balanced braces, then
// the text as-is.
func ExtractJSON(text string) string {
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}
	return strings.TrimSpace(text)
}

// decodeResponse extracts and unmarshals the JSON payload of a model
// response. Decode failures come back as *ParseError.
func decodeResponse(text string, v any) error {
	payload := ExtractJSON(text)
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return &ParseError{Reason: err.Error(), Raw: text}
	}
	return nil
}
