package utils

import "context"

type StoredImage struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// ImageStore persists uploaded profile images. Save returns the reference
// stored on the user record; Delete accepts that same reference.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
	List(ctx context.Context) ([]StoredImage, error)
}
