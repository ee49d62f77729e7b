package ai

import (
	"errors"
	"testing"
)

func TestExtractJSON_FencedBlock(t *testing.T) {
	text := "Here is your workflow:\n```json\n{\"name\": \"Test\"}\n```\nLet me know!"
	got := ExtractJSON(text)
	if got != `{"name": "Test"}` {
		t.Errorf("Expected fenced payload, got %q", got)
	}
}

func TestExtractJSON_FencedBlockWithoutLanguage(t *testing.T) {
	text := "```\n{\"name\": \"Test\"}\n```"
	got := ExtractJSON(text)
	if got != `{"name": "Test"}` {
		t.Errorf("Expected fenced payload, got %q", got)
	}
}

func TestExtractJSON_BalancedBraces(t *testing.T) {
	text := `Sure! {"name": "Test", "nested": {"a": 1}} Hope that helps.`
	got := ExtractJSON(text)
	if got != `{"name": "Test", "nested": {"a": 1}}` {
		t.Errorf("Expected outermost braces, got %q", got)
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	got := ExtractJSON("  just prose  ")
	if got != "just prose" {
		t.Errorf("Expected trimmed text, got %q", got)
	}
}

func TestDecodeResponse_InvalidJSONIsParseError(t *testing.T) {
	var out struct{ Name string }
	err := decodeResponse("not json at all", &out)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got %v", err)
	}
	if parseErr.Raw != "not json at all" {
		t.Errorf("Expected raw text preserved, got %q", parseErr.Raw)
	}
}

func TestDecodeResponse_FencedRoundTrip(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	if err := decodeResponse("```json\n{\"name\": \"Weekly digest\"}\n```", &out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.Name != "Weekly digest" {
		t.Errorf("Expected decoded name, got %q", out.Name)
	}
}
