// Package upload defines the logo file storage port used by the employer
// workflow. References returned by Save are opaque strings a client can
// resolve (a static-serving path for the local store, a public URL for S3);
// the same string is later passed back to Remove.
package upload

import (
	"context"
	"io"
)

// Store persists uploaded binaries under generated names.
type Store interface {
	// Save writes the content and returns a retrievable reference.
	// The original filename is used only for its extension.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)

	// Remove deletes the binary behind a previously returned reference.
	Remove(ctx context.Context, ref string) error
}
