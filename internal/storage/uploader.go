package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bookvault/bookvault/internal/database/service"
)

// ImageUploader relays uploaded images to an ObjectStore under a folder prefix
// and returns their public URLs. It implements service.ImageUploader.
type ImageUploader struct {
	store  ObjectStore
	folder string
}

// NewImageUploader creates an uploader that stores objects under folder/.
func NewImageUploader(store ObjectStore, folder string) *ImageUploader {
	return &ImageUploader{store: store, folder: folder}
}

func (u *ImageUploader) Upload(ctx context.Context, file *service.ImageFile) (string, error) {
	key := u.objectKey(file.Name)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := u.store.Put(ctx, key, file.Reader, file.Size, contentType); err != nil {
		return "", err
	}

	return u.store.PublicURL(key), nil
}

// objectKey builds a collision-free key, keeping only the original extension.
func (u *ImageUploader) objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	return fmt.Sprintf("%s/%s%s", u.folder, uuid.New().String(), ext)
}
