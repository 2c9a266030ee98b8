// Package vision talks to the external face and element detection
// services over HTTP multipart uploads.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config holds the endpoints for the detection services
type Config struct {
	FaceDetectURL    string
	FaceIdentifyURL  string
	ElementDetectURL string
	Timeout          time.Duration
}

// HTTPClient implements Client against the detection services
type HTTPClient struct {
	client *resty.Client
	cfg    Config
}

// NewHTTPClient creates a vision client with the given endpoints
func NewHTTPClient(cfg Config) *HTTPClient {
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	} else {
		client.SetTimeout(60 * time.Second)
	}
	return &HTTPClient{client: client, cfg: cfg}
}

// wireFace is a detected face on the wire; the crop comes back as
// base64 alongside the box
type wireFace struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Confidence float64 `json:"confidence"`
	Crop       string  `json:"crop,omitempty"`
}

type detectResponse struct {
	Faces []wireFace `json:"faces"`
	Error string     `json:"error,omitempty"`
}

type identifyResponse struct {
	Identifications []Identification `json:"identifications"`
	Error           string           `json:"error,omitempty"`
}

type elementResponse struct {
	Elements       []Element `json:"elements"`
	AnnotatedImage string    `json:"annotated_image,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// DetectFaces uploads the image and returns the detected face boxes
// with their cropped face bytes
func (c *HTTPClient) DetectFaces(ctx context.Context, imageData []byte, filename string) ([]Face, error) {
	var result detectResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("image", filename, bytes.NewReader(imageData)).
		SetResult(&result).
		Post(c.cfg.FaceDetectURL)
	if err != nil {
		return nil, fmt.Errorf("failed to call face detection service: %w", err)
	}
	if err := checkStatus(resp, result.Error); err != nil {
		return nil, fmt.Errorf("face detection service: %w", err)
	}

	faces := make([]Face, 0, len(result.Faces))
	for _, wf := range result.Faces {
		face := Face{
			X:          wf.X,
			Y:          wf.Y,
			Width:      wf.Width,
			Height:     wf.Height,
			Confidence: wf.Confidence,
		}
		if wf.Crop != "" {
			crop, err := base64.StdEncoding.DecodeString(wf.Crop)
			if err != nil {
				return nil, fmt.Errorf("failed to decode face crop: %w", err)
			}
			face.Crop = crop
		}
		faces = append(faces, face)
	}
	return faces, nil
}

// IdentifyFaces uploads the face crops and returns one identification
// per crop, in upload order
func (c *HTTPClient) IdentifyFaces(ctx context.Context, crops [][]byte) ([]Identification, error) {
	req := c.client.R().SetContext(ctx)
	for i, crop := range crops {
		req.SetFileReader("faces", fmt.Sprintf("face_%d.jpg", i), bytes.NewReader(crop))
	}

	var result identifyResponse
	resp, err := req.SetResult(&result).Post(c.cfg.FaceIdentifyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to call face identification service: %w", err)
	}
	if err := checkStatus(resp, result.Error); err != nil {
		return nil, fmt.Errorf("face identification service: %w", err)
	}
	return result.Identifications, nil
}

// DetectElements uploads the image and returns labeled boxes plus the
// annotated rendition the detector drew
func (c *HTTPClient) DetectElements(ctx context.Context, imageData []byte, filename string) (*ElementResult, error) {
	var result elementResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("image", filename, bytes.NewReader(imageData)).
		SetResult(&result).
		Post(c.cfg.ElementDetectURL)
	if err != nil {
		return nil, fmt.Errorf("failed to call element detection service: %w", err)
	}
	if err := checkStatus(resp, result.Error); err != nil {
		return nil, fmt.Errorf("element detection service: %w", err)
	}

	out := &ElementResult{Elements: result.Elements}
	if result.AnnotatedImage != "" {
		decoded, err := base64.StdEncoding.DecodeString(result.AnnotatedImage)
		if err != nil {
			return nil, fmt.Errorf("failed to decode annotated image: %w", err)
		}
		out.AnnotatedImage = decoded
	}
	return out, nil
}

func checkStatus(resp *resty.Response, serviceError string) error {
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		if serviceError != "" {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode(), serviceError)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	if serviceError != "" {
		return fmt.Errorf("%s", serviceError)
	}
	return nil
}
