package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	goimage "image"
	"image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/trigenthq/trigent/trigent-backend/internal/repository/storage"
)

const (
	// MaxImageSize limits decoded generated images
	MaxImageSize = 5 * 1024 * 1024 // 5MB

	ThumbnailWidth = 200
	DisplayWidth   = 800
	JPEGQuality    = 85

	// presignExpiry is how long image URLs stay valid
	presignExpiry = 24 * time.Hour
)

var (
	ErrImageTooLarge    = errors.New("image too large. Maximum size is 5MB")
	ErrInvalidImageData = errors.New("invalid image data")
)

// StoredImage contains the object paths of the persisted variants
type StoredImage struct {
	ID          string `json:"id"`
	ThumbPath   string `json:"thumb_path"`
	DisplayPath string `json:"display_path"`
}

// ImageService persists AI-generated images. Tier-1 acquisition yields
// inline data URLs; storing them in S3 keeps persisted entities small
// and gives clients stable references. Without configured storage the
// data URL is passed through untouched.
type ImageService struct {
	storage storage.ImageRepository
}

// NewImageService creates a new ImageService. storage may be nil.
func NewImageService(storage storage.ImageRepository) *ImageService {
	return &ImageService{storage: storage}
}

// IsEnabled indicates whether uploads are supported (storage configured)
func (s *ImageService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// StoreDataURL decodes a data URL, produces display and thumbnail JPEG
// variants, and uploads both. Returns the stored paths.
func (s *ImageService) StoreDataURL(ctx context.Context, ownerID, entityType, dataURL string) (*StoredImage, error) {
	if !s.IsEnabled() {
		return nil, errors.New("image storage not configured")
	}

	data, err := decodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	img, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImageData
	}

	imageID := uuid.New().String()
	stored := &StoredImage{ID: imageID}

	variants := []struct {
		name     string
		maxWidth int
		dest     *string
	}{
		{"thumb", ThumbnailWidth, &stored.ThumbPath},
		{"display", DisplayWidth, &stored.DisplayPath},
	}

	for _, variant := range variants {
		processed := img
		if img.Bounds().Dx() > variant.maxWidth {
			processed = imaging.Resize(img, variant.maxWidth, 0, imaging.Lanczos)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, processed, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return nil, fmt.Errorf("failed to encode image: %w", err)
		}

		objectPath := fmt.Sprintf("%s/%s/%s_%s.jpg", ownerID, entityType, imageID, variant.name)
		path, err := s.storage.Upload(ctx, objectPath, bytes.NewReader(buf.Bytes()), "image/jpeg", int64(buf.Len()))
		if err != nil {
			s.cleanup(ctx, stored)
			return nil, fmt.Errorf("failed to upload %s variant: %w", variant.name, err)
		}
		*variant.dest = path
	}

	return stored, nil
}

// ResolveReference turns an image reference into something a client can
// load: inline data URLs are stored and replaced by a presigned display
// URL, stored object paths are presigned, and external URLs pass
// through unchanged.
func (s *ImageService) ResolveReference(ctx context.Context, ownerID, entityType, ref string) string {
	switch {
	case strings.HasPrefix(ref, "data:"):
		if !s.IsEnabled() {
			return ref
		}
		stored, err := s.StoreDataURL(ctx, ownerID, entityType, ref)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to store generated image, passing data URL through")
			return ref
		}
		return s.PresignPath(ctx, stored.DisplayPath, ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	default:
		// A bare object path from earlier storage
		return s.PresignPath(ctx, ref, ref)
	}
}

// PresignPath generates a temporary GET URL for a stored object,
// falling back to the provided default on failure
func (s *ImageService) PresignPath(ctx context.Context, objectPath, fallback string) string {
	if !s.IsEnabled() || objectPath == "" {
		return fallback
	}
	url, err := s.storage.GeneratePresignedURL(ctx, objectPath, presignExpiry)
	if err != nil {
		log.Warn().Err(err).Str("path", objectPath).Msg("Failed to presign image URL")
		return fallback
	}
	return url
}

// Delete removes all stored variants of an image
func (s *ImageService) Delete(ctx context.Context, stored *StoredImage) error {
	if !s.IsEnabled() || stored == nil {
		return nil
	}
	s.cleanup(ctx, stored)
	return nil
}

func (s *ImageService) cleanup(ctx context.Context, stored *StoredImage) {
	for _, path := range []string{stored.ThumbPath, stored.DisplayPath} {
		if path == "" {
			continue
		}
		if err := s.storage.Delete(ctx, path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to delete image variant")
		}
	}
}

// decodeDataURL extracts the binary payload of a base64 data URL
func decodeDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, ErrInvalidImageData
	}
	idx := strings.Index(dataURL, ",")
	if idx < 0 || !strings.Contains(dataURL[:idx], ";base64") {
		return nil, ErrInvalidImageData
	}
	data, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		return nil, ErrInvalidImageData
	}
	return data, nil
}
