// Package storage keeps uploaded article images on the local filesystem.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"blog-publisher/internal/domain"
)

var (
	// ErrImageNotFound is returned when a stored image does not exist.
	ErrImageNotFound = errors.New("image not found")
	// ErrUnsupportedImage is returned when an upload is not one of the accepted image formats
	// or its content does not match the declared type.
	ErrUnsupportedImage = errors.New("unsupported image")
)

// imageExtensions maps accepted image types to the extension stored files get.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

const sniffLen = 512

// ImageStore saves and resolves article images.
type ImageStore interface {
	Save(ctx context.Context, upload Upload) (domain.ImageRef, error)
	Path(filename string) (string, error)
	Delete(filename string) error
}

// Upload describes an incoming image file.
type Upload struct {
	OriginalName string
	MimeType     string
	Reader       io.Reader
}

// DiskImageStore stores images as flat files in a single directory.
type DiskImageStore struct {
	dir      string
	maxBytes int64
}

// NewDiskImageStore creates the directory if needed.
func NewDiskImageStore(dir string, maxBytes int64) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DiskImageStore{dir: dir, maxBytes: maxBytes}, nil
}

// Save writes the upload under a generated name and returns its reference.
func (s *DiskImageStore) Save(ctx context.Context, upload Upload) (domain.ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return domain.ImageRef{}, err
	}

	ext, ok := imageExtensions[upload.MimeType]
	if !ok {
		return domain.ImageRef{}, fmt.Errorf("%w: type %q", ErrUnsupportedImage, upload.MimeType)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Reader, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return domain.ImageRef{}, fmt.Errorf("read image: %w", err)
	}
	head = head[:n]
	if detected := http.DetectContentType(head); detected != upload.MimeType {
		return domain.ImageRef{}, fmt.Errorf("%w: declared %q but content is %q",
			ErrUnsupportedImage, upload.MimeType, detected)
	}

	filename := uuid.New().String() + ext
	filePath := filepath.Join(s.dir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return domain.ImageRef{}, fmt.Errorf("create image file: %w", err)
	}

	reader := io.MultiReader(bytes.NewReader(head), upload.Reader)
	if s.maxBytes > 0 {
		reader = io.LimitReader(reader, s.maxBytes+1)
	}
	size, err := io.Copy(file, reader)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil && s.maxBytes > 0 && size > s.maxBytes {
		err = fmt.Errorf("image exceeds %d bytes", s.maxBytes)
	}
	if err != nil {
		_ = os.Remove(filePath)
		return domain.ImageRef{}, fmt.Errorf("write image file: %w", err)
	}

	return domain.ImageRef{
		Filename:     filename,
		OriginalName: upload.OriginalName,
		MimeType:     upload.MimeType,
		Size:         size,
	}, nil
}

// Path resolves a stored filename to its location on disk.
func (s *DiskImageStore) Path(filename string) (string, error) {
	if !validFilename(filename) {
		return "", ErrImageNotFound
	}
	filePath := filepath.Join(s.dir, filename)
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return "", ErrImageNotFound
	}
	return filePath, nil
}

// Delete removes a stored image. Missing files are ignored.
func (s *DiskImageStore) Delete(filename string) error {
	if !validFilename(filename) {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete image file: %w", err)
	}
	return nil
}

// validFilename rejects anything that could escape the upload directory.
func validFilename(filename string) bool {
	return filename != "" &&
		filename != "." &&
		filename != ".." &&
		filename == filepath.Base(filename) &&
		!strings.ContainsAny(filename, `/\`)
}
