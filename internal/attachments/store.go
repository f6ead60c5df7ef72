// Package attachments stores files uploaded alongside OD requests.
package attachments

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ErrUnknownRef is returned by Delete for references the store did not issue.
var ErrUnknownRef = errors.New("attachment reference not issued by this store")

// Store persists uploaded files and returns a reference clients can fetch.
type Store interface {
	Save(ctx context.Context, userID uuid.UUID, fh *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, ref string) error
}

// objectName returns a collision-free, URL-safe name that keeps a readable
// hint of the original filename: <uuid>-<slug><.ext>.
func objectName(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	name := slug.Make(strings.TrimSuffix(base, ext))
	if name == "" {
		name = "file"
	}

	obj := uuid.NewString() + "-" + name
	if e := slug.Make(ext); e != "" {
		obj += "." + e
	}
	return obj
}

// objectKey places a user's files under their own prefix.
func objectKey(userID uuid.UUID, filename string) string {
	return userID.String() + "/" + objectName(filename)
}
