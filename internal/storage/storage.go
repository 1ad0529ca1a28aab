// Package storage provides the image blob store backing menu pictures.
package storage

import (
	"context"
	"io"
)

// ImageStorage abstracts the object store that menu images live in.
// Upload returns the public URL of the stored object; Delete takes that
// same URL back and removes the underlying object.
type ImageStorage interface {
	Upload(ctx context.Context, r io.Reader, filename, contentType string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}
