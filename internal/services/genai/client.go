// Package genai wraps the Google Gemini API behind a small interface
// so workflows can be tested without network access.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogenai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Config holds the settings for the Gemini client
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
}

// GeminiClient implements Client against the Gemini API
type GeminiClient struct {
	client      *gogenai.Client
	model       string
	temperature float32
}

// NewGeminiClient creates a client; the caller owns Close
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("genai API key is not set")
	}
	client, err := gogenai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}, nil
}

// GenerateText runs a text-only prompt
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)

	resp, err := model.GenerateContent(ctx, gogenai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return firstText(resp)
}

// DescribeImage runs a prompt against inline image bytes
func (c *GeminiClient) DescribeImage(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	if len(imageData) == 0 {
		return "", errors.New("image data is empty")
	}
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)

	resp, err := model.GenerateContent(ctx,
		gogenai.Text(prompt),
		gogenai.ImageData(formatFromMIME(mimeType), imageData),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate image description: %w", err)
	}
	return firstText(resp)
}

// Close releases the underlying connection
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func firstText(resp *gogenai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates returned from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("empty content returned from Gemini")
	}
	if txt, ok := candidate.Content.Parts[0].(gogenai.Text); ok {
		return strings.TrimSpace(string(txt)), nil
	}
	return "", errors.New("unexpected response format from Gemini")
}

// formatFromMIME maps a MIME type to the short format name the
// Gemini SDK expects
func formatFromMIME(mimeType string) string {
	switch mimeType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "jpeg"
	}
}
