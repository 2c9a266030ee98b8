package vision

import "context"

// Face is one detected face: its location in the source image plus
// the cropped face bytes the detector cut out. The crop is what gets
// sent to identification, not the full image.
type Face struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Confidence float64 `json:"confidence"`
	Crop       []byte  `json:"-"`
}

// Identification is the match for one uploaded face crop, in upload
// order. Name is empty when the face matched nobody.
type Identification struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Element is one detected object with its label and location
type Element struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ElementResult is the detector output for one image: the boxes plus
// an annotated rendition of the image with the boxes drawn in
type ElementResult struct {
	Elements       []Element `json:"elements"`
	AnnotatedImage []byte    `json:"-"`
}

// Client defines the computer vision operations backed by the
// external detection services
type Client interface {
	DetectFaces(ctx context.Context, imageData []byte, filename string) ([]Face, error)
	// IdentifyFaces matches face crops from DetectFaces; results
	// come back in crop order
	IdentifyFaces(ctx context.Context, crops [][]byte) ([]Identification, error)
	DetectElements(ctx context.Context, imageData []byte, filename string) (*ElementResult, error)
}
