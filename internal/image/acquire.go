package image

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Style selects the prompt-enhancement profile for generated images
type Style string

const (
	StyleProfessional Style = "professional"
	StyleCreative     Style = "creative"
	StyleMinimal      Style = "minimal"
)

var styleModifiers = map[Style]string{
	StyleProfessional: "professional, business, clean, modern, high quality",
	StyleCreative:     "creative, artistic, vibrant, dynamic, eye-catching",
	StyleMinimal:      "minimal, simple, clean lines, elegant, sophisticated",
}

// EnhancePrompt appends the style modifier list to a raw prompt.
// Unknown styles get the professional profile.
func EnhancePrompt(prompt string, style Style) string {
	modifier, ok := styleModifiers[style]
	if !ok {
		modifier = styleModifiers[StyleProfessional]
	}
	return prompt + ", " + modifier + ", detailed, sharp focus, studio lighting"
}

// placeholder palette, picked by prompt hash so the same prompt always
// gets the same color
var placeholderColors = []string{
	"4F46E5", // indigo
	"7C3AED", // purple
	"059669", // green
	"DC2626", // red
	"EA580C", // orange
	"0891B2", // cyan
	"DB2777", // pink
}

// Generator produces AI images as data URLs. Satisfied by ai.Client.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// Acquirer resolves image prompts through ordered tiers: AI generation,
// keyword stock photos, seeded random stock photos, and finally a
// computed placeholder. The placeholder tier cannot fail, so Acquire is
// total.
type Acquirer struct {
	gen        Generator
	httpClient *http.Client
	counter    atomic.Int64
}

// NewAcquirer creates an Acquirer. gen may be nil (tier 1 is skipped);
// httpClient may be nil (a default with a short timeout is used).
func NewAcquirer(gen Generator, httpClient *http.Client) *Acquirer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Acquirer{gen: gen, httpClient: httpClient}
}

// cacheBust returns a token distinct from every other token this
// Acquirer has issued, so repeated stock-photo URLs differ
func (a *Acquirer) cacheBust() string {
	return strconv.FormatInt(time.Now().UnixMilli()+a.counter.Add(1), 10)
}

// Acquire resolves one prompt to an image reference. It never fails:
// each tier's error falls through to the next, and the placeholder tier
// is pure computation.
func (a *Acquirer) Acquire(ctx context.Context, prompt string, style Style) string {
	if a.gen != nil && a.gen.Configured() {
		dataURL, err := a.gen.GenerateImage(ctx, EnhancePrompt(prompt, style))
		if err == nil {
			return dataURL
		}
		log.Warn().Err(err).Msg("AI image generation failed, trying stock tiers")
	}

	if ref, ok := a.tryUnsplash(ctx, prompt); ok {
		return ref
	}
	if ref, ok := a.tryPicsum(ctx, prompt); ok {
		return ref
	}
	return PlaceholderURL(prompt)
}

// AcquireOptions resolves a prompt to n distinct image references by
// rotating prompt variations and cache-busting tokens
func (a *Acquirer) AcquireOptions(ctx context.Context, prompt string, style Style, n int) []string {
	variations := []string{
		"professional style, high quality",
		"modern aesthetic, creative design",
		"business oriented, clean composition",
	}

	refs := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		varied := prompt + ", " + variations[i%len(variations)]
		ref := a.Acquire(ctx, varied, style)
		// Placeholder and data URLs can collide across variations;
		// a counter suffix keeps the option set pairwise distinct
		if seen[ref] {
			if strings.Contains(ref, "?") {
				ref = fmt.Sprintf("%s&option=%d", ref, i)
			} else {
				ref = fmt.Sprintf("%s#option=%d", ref, i)
			}
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs
}

// tryUnsplash builds a keyword-based stock photo URL and verifies the
// service answers
func (a *Acquirer) tryUnsplash(ctx context.Context, prompt string) (string, bool) {
	keywords := strings.Join(ExtractKeywords(prompt), "+")
	ref := fmt.Sprintf("https://source.unsplash.com/800x600/?%s&sig=%s", url.QueryEscape(keywords), a.cacheBust())

	if !a.headOK(ctx, ref) {
		return "", false
	}
	return ref, true
}

// tryPicsum builds a seeded random stock photo URL; the seed is the
// prompt hash so the same prompt maps to the same photo
func (a *Acquirer) tryPicsum(ctx context.Context, prompt string) (string, bool) {
	seed := hashPrompt(prompt)
	ref := fmt.Sprintf("https://picsum.photos/seed/%d/800/600", seed)

	if !a.headOK(ctx, ref) {
		return "", false
	}
	return ref, true
}

func (a *Acquirer) headOK(ctx context.Context, ref string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, ref, nil)
	if err != nil {
		return false
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

// PlaceholderURL computes a text placeholder image URL from the prompt
// keywords and a hash-picked palette color. Pure computation; this is
// the tier that makes acquisition total.
func PlaceholderURL(prompt string) string {
	keywords := strings.Join(ExtractKeywords(prompt), "+")
	color := placeholderColors[int(uint32(hashPrompt(prompt)))%len(placeholderColors)]
	return fmt.Sprintf("https://placehold.co/800x600/%s/FFFFFF?text=%s", color, url.QueryEscape(keywords))
}
