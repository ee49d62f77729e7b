package image

import (
	"reflect"
	"testing"
)

func TestExtractKeywords_DropsStopWordsAndShortTokens(t *testing.T) {
	got := ExtractKeywords("A modern dashboard for the sales team")
	want := []string{"modern", "dashboard", "sales"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractKeywords_AtMostThree(t *testing.T) {
	got := ExtractKeywords("quarterly revenue growth analysis spanning multiple regions")
	if len(got) > 3 {
		t.Errorf("Expected at most 3 keywords, got %v", got)
	}
}

func TestExtractKeywords_StripsPunctuation(t *testing.T) {
	got := ExtractKeywords("growth, revenue & profit!!!")
	want := []string{"growth", "revenue", "profit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractKeywords_FallbackForEmptyInput(t *testing.T) {
	for _, prompt := range []string{"", "   ", "a an the", "cat dog", "!!!"} {
		got := ExtractKeywords(prompt)
		if !reflect.DeepEqual(got, []string{"business"}) {
			t.Errorf("Expected fallback keyword for %q, got %v", prompt, got)
		}
	}
}

func TestExtractKeywords_Idempotent(t *testing.T) {
	first := ExtractKeywords("Professional business illustration about growth")
	second := ExtractKeywords("Professional business illustration about growth")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %v and %v", first, second)
	}
}

func TestHashPrompt_StableAndDistinct(t *testing.T) {
	if hashPrompt("alpha") != hashPrompt("alpha") {
		t.Error("Expected stable hash for equal input")
	}
	if hashPrompt("alpha") == hashPrompt("beta") {
		t.Error("Expected distinct hashes for different inputs")
	}
}
