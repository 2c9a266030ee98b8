package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFaces_DecodesBoxesAndCrops(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "group.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"faces": []map[string]interface{}{
				{
					"x": 10, "y": 20, "width": 30, "height": 40,
					"confidence": 0.9,
					"crop":       base64.StdEncoding.EncodeToString([]byte("face-bytes")),
				},
				{"x": 50, "y": 20, "width": 28, "height": 38, "confidence": 0.7},
			},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(Config{FaceDetectURL: server.URL})
	faces, err := client.DetectFaces(context.Background(), []byte("image"), "group.jpg")
	require.NoError(t, err)

	require.Len(t, faces, 2)
	assert.Equal(t, Face{X: 10, Y: 20, Width: 30, Height: 40, Confidence: 0.9, Crop: []byte("face-bytes")}, faces[0])
	assert.Nil(t, faces[1].Crop)
}

func TestIdentifyFaces_UploadsEachCropInOrder(t *testing.T) {
	var received [][]byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for _, header := range r.MultipartForm.File["faces"] {
			f, err := header.Open()
			require.NoError(t, err)
			data, err := io.ReadAll(f)
			f.Close()
			require.NoError(t, err)
			received = append(received, data)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"identifications": []map[string]interface{}{
				{"name": "Maria Janssens", "confidence": 0.91},
				{"name": "", "confidence": 0.12},
			},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(Config{FaceIdentifyURL: server.URL})
	ids, err := client.IdentifyFaces(context.Background(), [][]byte{[]byte("crop-a"), []byte("crop-b")})
	require.NoError(t, err)

	assert.Equal(t, [][]byte{[]byte("crop-a"), []byte("crop-b")}, received)
	require.Len(t, ids, 2)
	assert.Equal(t, "Maria Janssens", ids[0].Name)
	assert.Empty(t, ids[1].Name)
}

func TestDetectFaces_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "model not loaded"})
	}))
	defer server.Close()

	client := NewHTTPClient(Config{FaceDetectURL: server.URL})
	_, err := client.DetectFaces(context.Background(), []byte("image"), "a.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}
