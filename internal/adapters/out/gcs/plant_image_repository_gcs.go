// internal/adapters/out/gcs/plant_image_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

var (
	ErrImageNotFound = errors.New("plant_image_repository_gcs: not found")
)

const defaultPlantImageBucket = "sprout-plant-images"

// PlantImageRepositoryGCS streams product image objects out of the
// nursery bucket. Catalog documents may carry a bucket-relative
// imageUrl ("plants/monstera.jpg"); the assets handler resolves those
// through this repository. Absolute URLs bypass it entirely.
type PlantImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewPlantImageRepositoryGCS(client *storage.Client, bucket string) *PlantImageRepositoryGCS {
	b := strings.TrimSpace(bucket)
	if b == "" {
		b = defaultPlantImageBucket
	}
	return &PlantImageRepositoryGCS{Client: client, Bucket: b}
}

// Open returns a reader for the object plus its content type.
// The caller owns closing the reader.
func (r *PlantImageRepositoryGCS) Open(ctx context.Context, object string) (io.ReadCloser, string, error) {
	if r == nil || r.Client == nil {
		return nil, "", errors.New("plant_image_repository_gcs: storage client is nil")
	}

	obj := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if obj == "" || strings.Contains(obj, "..") {
		return nil, "", ErrImageNotFound
	}

	rd, err := r.Client.Bucket(r.Bucket).Object(obj).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, "", ErrImageNotFound
		}
		return nil, "", err
	}
	return rd, rd.Attrs.ContentType, nil
}
