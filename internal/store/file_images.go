// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/utils"
)

// allowedImageExtensions is the allow-list for uploaded product images.
// Anything else is rejected before a single byte touches disk.
var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// unsafeFilenameChars matches every character stripped from a client-supplied
// filename. What survives is ASCII letters, digits, dot, underscore, hyphen.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// imageFileStorage is the local-filesystem implementation of
// [ImageFileStorage]. Stored names are prefixed with a UUID so two uploads of
// "ring.png" never collide, and every resolved path is checked to stay inside
// the upload directory.
type imageFileStorage struct {
	uploadDir string
	uuids     *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewImageFileStorage constructs an [ImageFileStorage] rooted at uploadDir,
// creating the directory if it does not yet exist.
func NewImageFileStorage(uploadDir string, logger *logger.Logger) (ImageFileStorage, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewImageFileStorage").Msg("error creating upload directory")
		return nil, fmt.Errorf("error creating upload directory %q: %w", uploadDir, err)
	}

	logger.Debug().Str("upload_dir", uploadDir).Msg("creating image file storage")
	return &imageFileStorage{
		uploadDir: uploadDir,
		uuids:     utils.NewUUIDGenerator(),
		logger:    logger,
	}, nil
}

// SaveImage validates, sanitizes, and persists one uploaded product image.
//
// Validation order matters: the extension check runs before any disk write so
// a rejected upload leaves no partial state behind. On success the returned
// string is the relative URL ("/uploads/<name>") recorded on the product row.
func (s *imageFileStorage) SaveImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	sanitized, err := sanitizeFilename(filename)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(sanitized))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", ErrInvalidImageFormat
	}

	storedName := s.uuids.Generate() + "_" + sanitized
	destPath := filepath.Join(s.uploadDir, storedName)

	dest, err := os.Create(destPath)
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error creating image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}

	if _, err := io.Copy(dest, content); err != nil {
		dest.Close()
		os.Remove(destPath) // no partial writes
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error writing image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}

	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("error closing image file: %w", err)
	}

	return "/uploads/" + storedName, nil
}

// Remove deletes a stored image given the relative URL returned by SaveImage.
// Removing an already-absent file is not an error.
func (s *imageFileStorage) Remove(ctx context.Context, imageURL string) error {
	log := logger.FromContext(ctx)

	name := filepath.Base(imageURL)
	if name == "." || name == "/" {
		return nil
	}

	if err := os.Remove(filepath.Join(s.uploadDir, name)); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("func", "*imageFileStorage.Remove").Msg("error removing image file")
		return fmt.Errorf("error removing image file: %w", err)
	}

	return nil
}

// Resolve maps a bare stored filename onto its absolute path inside the
// upload directory. Traversal attempts and unknown files both come back as
// [ErrImageNotFound] — the caller has no business learning which it was.
func (s *imageFileStorage) Resolve(filename string) (string, error) {
	if filepath.Base(filename) != filename {
		return "", ErrImageNotFound
	}

	path := filepath.Join(s.uploadDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrImageNotFound
	}

	return path, nil
}

// sanitizeFilename strips path components and unsafe characters from a
// client-supplied filename. An empty remainder is rejected.
func sanitizeFilename(filename string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	sanitized := unsafeFilenameChars.ReplaceAllString(base, "")
	sanitized = strings.Trim(sanitized, ".")

	if sanitized == "" {
		return "", ErrEmptyImageFilename
	}

	return sanitized, nil
}
