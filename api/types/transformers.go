package types

import (
	"github.com/artefakt/archive-api/internal/models"
	"github.com/artefakt/archive-api/internal/storage"
)

// ToMediaItem converts a media model to its wire form, resolving the
// stored object key to a URL
func ToMediaItem(item *models.MediaItem, objects storage.ObjectStorage) MediaItem {
	fileURL := ""
	if objects != nil && item.ObjectKey != "" {
		fileURL = objects.GetURL(item.ObjectKey)
	}
	return MediaItem{
		ID:             item.ID,
		Filename:       item.Filename,
		FileURL:        fileURL,
		MimeType:       item.MimeType,
		AlbumID:        item.AlbumID,
		Class:          item.Class,
		AICaption:      item.AICaption,
		OCRText:        item.OCRText,
		TranslatedText: item.TranslatedText,
		SummarizedText: item.SummarizedText,
		FaceProcessed:  item.FaceProcessed,
		RecognizedIDs:  []uint(item.RecognizedPeople),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

// ToMediaItems converts a slice of media models
func ToMediaItems(items []models.MediaItem, objects storage.ObjectStorage) []MediaItem {
	out := make([]MediaItem, 0, len(items))
	for i := range items {
		out = append(out, ToMediaItem(&items[i], objects))
	}
	return out
}

// ToAlbum converts an album model to its wire form
func ToAlbum(album *models.Album) Album {
	return Album{
		ID:        album.ID,
		Name:      album.Name,
		Type:      string(album.Type),
		CreatedAt: album.CreatedAt,
	}
}

// ToAlbums converts a slice of album models
func ToAlbums(albums []models.Album) []Album {
	out := make([]Album, 0, len(albums))
	for i := range albums {
		out = append(out, ToAlbum(&albums[i]))
	}
	return out
}

// ToPerson converts a person model to its wire form
func ToPerson(person *models.Person) Person {
	return Person{
		ID:        person.ID,
		Name:      person.Name,
		FaceCount: person.FaceCount,
	}
}

// ToPeople converts a slice of person models
func ToPeople(people []models.Person) []Person {
	out := make([]Person, 0, len(people))
	for i := range people {
		out = append(out, ToPerson(&people[i]))
	}
	return out
}

// ToPainting converts a painting model to its wire form
func ToPainting(painting *models.Painting) Painting {
	return Painting{
		ID:          painting.ID,
		MediaItemID: painting.MediaItemID,
		Description: painting.Description,
		Artist:      painting.Artist,
		Year:        painting.Year,
	}
}

// ToPaintings converts a slice of painting models
func ToPaintings(paintings []models.Painting) []Painting {
	out := make([]Painting, 0, len(paintings))
	for i := range paintings {
		out = append(out, ToPainting(&paintings[i]))
	}
	return out
}

// ToMinute converts a meeting minute model to its wire form
func ToMinute(minute *models.MeetingMinute) Minute {
	return Minute{
		ID:             minute.ID,
		MediaItemID:    minute.MediaItemID,
		Title:          minute.Title,
		OCRText:        minute.OCRText,
		TranslatedText: minute.TranslatedText,
		SummarizedText: minute.SummarizedText,
	}
}

// ToMinutes converts a slice of meeting minute models
func ToMinutes(minutes []models.MeetingMinute) []Minute {
	out := make([]Minute, 0, len(minutes))
	for i := range minutes {
		out = append(out, ToMinute(&minutes[i]))
	}
	return out
}

// ToDetection converts a detection model to its wire form, resolving
// the annotated image key to a URL
func ToDetection(detection *models.ElementDetection, objects storage.ObjectStorage) Detection {
	annotatedURL := ""
	if objects != nil && detection.AnnotatedKey != "" {
		annotatedURL = objects.GetURL(detection.AnnotatedKey)
	}
	return Detection{
		ID:           detection.ID,
		MediaItemID:  detection.MediaItemID,
		Boxes:        detection.Boxes,
		AnnotatedURL: annotatedURL,
		Status:       string(detection.Status),
	}
}

// ToDetections converts a slice of detection models
func ToDetections(detections []models.ElementDetection, objects storage.ObjectStorage) []Detection {
	out := make([]Detection, 0, len(detections))
	for i := range detections {
		out = append(out, ToDetection(&detections[i], objects))
	}
	return out
}
