package image

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type stubGenerator struct {
	dataURL    string
	err        error
	configured bool
}

func (s *stubGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return s.dataURL, s.err
}

func (s *stubGenerator) Configured() bool {
	return s.configured
}

// roundTripFunc lets tests script HTTP outcomes per host
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func failingHTTPClient() *http.Client {
	return &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	})}
}

func okResponse(req *http.Request) *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("")), Request: req}
}

func TestAcquire_AITierWins(t *testing.T) {
	gen := &stubGenerator{dataURL: "data:image/png;base64,AAAA", configured: true}
	a := NewAcquirer(gen, failingHTTPClient())

	ref := a.Acquire(context.Background(), "team growth chart", StyleProfessional)
	if ref != "data:image/png;base64,AAAA" {
		t.Errorf("Expected AI data URL, got %q", ref)
	}
}

func TestAcquire_FallsThroughToUnsplash(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota"), configured: true}
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodHead {
			t.Errorf("Expected HEAD verification, got %s", req.Method)
		}
		return okResponse(req), nil
	})}
	a := NewAcquirer(gen, client)

	ref := a.Acquire(context.Background(), "team growth chart", StyleProfessional)
	if !strings.HasPrefix(ref, "https://source.unsplash.com/800x600/?") {
		t.Errorf("Expected unsplash reference, got %q", ref)
	}
	if !strings.Contains(ref, "sig=") {
		t.Errorf("Expected cache-busting token, got %q", ref)
	}
}

func TestAcquire_FallsThroughToPicsum(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Host, "unsplash") {
			return nil, errors.New("unsplash down")
		}
		return okResponse(req), nil
	})}
	a := NewAcquirer(nil, client)

	ref := a.Acquire(context.Background(), "team growth chart", StyleProfessional)
	if !strings.HasPrefix(ref, "https://picsum.photos/seed/") {
		t.Errorf("Expected picsum reference, got %q", ref)
	}
}

func TestAcquire_TotalUnderAllTierFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model down"), configured: true}
	a := NewAcquirer(gen, failingHTTPClient())

	ref := a.Acquire(context.Background(), "team growth chart", StyleCreative)
	if !strings.HasPrefix(ref, "https://placehold.co/800x600/") {
		t.Errorf("Expected placeholder reference, got %q", ref)
	}
}

func TestAcquire_PlaceholderIsStablePerPrompt(t *testing.T) {
	first := PlaceholderURL("quarterly revenue dashboard")
	second := PlaceholderURL("quarterly revenue dashboard")
	if first != second {
		t.Errorf("Expected stable placeholder, got %q and %q", first, second)
	}
}

func TestAcquireOptions_PairwiseDistinct(t *testing.T) {
	// All tiers down: even then the option set must be distinct
	a := NewAcquirer(nil, failingHTTPClient())

	refs := a.AcquireOptions(context.Background(), "product launch", StyleProfessional, 3)
	if len(refs) != 3 {
		t.Fatalf("Expected 3 options, got %d", len(refs))
	}
	seen := make(map[string]bool)
	for _, ref := range refs {
		if ref == "" {
			t.Error("Expected non-empty reference")
		}
		if seen[ref] {
			t.Errorf("Expected pairwise distinct references, got duplicate %q", ref)
		}
		seen[ref] = true
	}
}

func TestEnhancePrompt_AppendsStyleModifiers(t *testing.T) {
	got := EnhancePrompt("city skyline", StyleMinimal)
	if !strings.HasPrefix(got, "city skyline, ") {
		t.Errorf("Expected prompt preserved as prefix, got %q", got)
	}
	if !strings.Contains(got, "minimal") || !strings.Contains(got, "studio lighting") {
		t.Errorf("Expected minimal style modifiers, got %q", got)
	}
}
