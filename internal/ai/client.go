package ai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const (
	// modelText handles generation requests that ask for the advanced model
	modelText = "gemini-2.0-flash"
	// modelLite is the default for routine structured generation
	modelLite = "gemini-2.0-flash-lite"
	// modelImage produces inline image data (see internal/image)
	modelImage = "gemini-2.5-flash-image"
)

// Client wraps the Gemini API for structured content generation. A nil
// inner client (no API key configured) is valid; every generator then
// takes its deterministic fallback path.
type Client struct {
	genai *genai.Client
}

// NewClient creates a Client. An empty apiKey yields an unconfigured
// client rather than an error so local setups work without a key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, generation will use fallback content")
		return &Client{}, nil
	}
	inner, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{genai: inner}, nil
}

// Configured reports whether requests will reach the model API
func (c *Client) Configured() bool {
	return c != nil && c.genai != nil
}

// generateText sends one prompt and returns the raw response text.
// Workspace instructions, when present, are prepended so they season
// every generation for that workspace.
func (c *Client) generateText(ctx context.Context, prompt, instructions string, useAdvancedModel bool) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	enhanced := prompt
	if instructions != "" {
		enhanced = instructions + "\n\n" + prompt
	}

	model := modelLite
	if useAdvancedModel {
		model = modelText
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopK:            genai.Ptr[float32](40),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: 2048,
	}

	resp, err := c.genai.Models.GenerateContent(ctx, model, genai.Text(enhanced), config)
	if err != nil {
		return "", classifyProviderError(model, err)
	}

	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Kind: KindTransport, Model: model, Err: fmt.Errorf("empty response")}
	}
	return text, nil
}

// GenerateImage asks the image model for a single inline image and
// returns it as a data URL. Used as the first tier of image acquisition.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	config := &genai.GenerateContentConfig{
		Temperature:        genai.Ptr[float32](1),
		TopP:               genai.Ptr[float32](0.95),
		MaxOutputTokens:    32768,
		ResponseModalities: []string{"IMAGE"},
	}

	resp, err := c.genai.Models.GenerateContent(ctx, modelImage, genai.Text(prompt), config)
	if err != nil {
		return "", classifyProviderError(modelImage, err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return encodeDataURL(mimeType, part.InlineData.Data), nil
			}
		}
	}
	return "", &ProviderError{Kind: KindTransport, Model: modelImage, Err: fmt.Errorf("no image data in response")}
}

func encodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
