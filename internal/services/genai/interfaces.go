package genai

import "context"

// Client defines the generative AI operations the workflows need.
// Text-only calls carry a prompt; image calls carry the raw bytes
// plus their MIME type.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	DescribeImage(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
	Close() error
}
