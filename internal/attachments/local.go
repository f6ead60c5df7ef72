package attachments

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/logger"
)

// URLPrefix is where LocalStore files are served from.
const URLPrefix = "/uploads/"

// LocalStore keeps attachments on disk under dir.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the root directory, for serving files.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save copies the upload to disk and returns its /uploads/ path.
func (s *LocalStore) Save(ctx context.Context, userID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	key := objectKey(userID, fh.Filename)
	dst := filepath.Join(s.dir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}

	logger.Log.Infow("attachment stored", "key", key, "size", fh.Size)
	return URLPrefix + key, nil
}

// Delete removes a file previously returned by Save. Missing files are not an
// error.
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	if !strings.HasPrefix(ref, URLPrefix) {
		return ErrUnknownRef
	}
	key := path.Clean(strings.TrimPrefix(ref, URLPrefix))
	if key == "." || strings.HasPrefix(key, "../") || path.IsAbs(key) {
		return ErrUnknownRef
	}

	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
