package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlevkova/bijoux-shop/internal/logger"
)

func newTestImageStorage(t *testing.T) (ImageFileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := NewImageFileStorage(dir, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create image storage: %v", err)
	}
	return storage, dir
}

func TestSaveImage_Success(t *testing.T) {
	storage, dir := newTestImageStorage(t)

	url, err := storage.SaveImage(context.Background(), "ring.png", strings.NewReader("fake png bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("expected relative /uploads/ url, got %q", url)
	}
	if !strings.HasSuffix(url, "_ring.png") {
		t.Errorf("expected stored name to keep the sanitized original, got %q", url)
	}

	stored := filepath.Join(dir, filepath.Base(url))
	content, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(content) != "fake png bytes" {
		t.Errorf("stored content mismatch: %q", content)
	}
}

func TestSaveImage_UniquePerUpload(t *testing.T) {
	storage, _ := newTestImageStorage(t)

	first, err := storage.SaveImage(context.Background(), "ring.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := storage.SaveImage(context.Background(), "ring.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Fatalf("two uploads of the same filename must not collide: %q", first)
	}
}

func TestSaveImage_RejectsDisallowedExtension(t *testing.T) {
	storage, dir := newTestImageStorage(t)

	_, err := storage.SaveImage(context.Background(), "malware.exe", strings.NewReader("MZ"))
	if !errors.Is(err, ErrInvalidImageFormat) {
		t.Fatalf("expected ErrInvalidImageFormat, got %v", err)
	}

	// nothing may touch disk on rejection
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("reading upload dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty upload dir after rejection, found %d entries", len(entries))
	}
}

func TestSaveImage_SanitizesTraversal(t *testing.T) {
	storage, _ := newTestImageStorage(t)

	// path components are stripped; what remains has no allowed extension
	_, err := storage.SaveImage(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	if !errors.Is(err, ErrInvalidImageFormat) {
		t.Fatalf("expected ErrInvalidImageFormat, got %v", err)
	}

	url, err := storage.SaveImage(context.Background(), `..\..\evil name!.PNG`, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	name := filepath.Base(url)
	if strings.ContainsAny(name, `/\! `) {
		t.Errorf("unsafe characters survived sanitization: %q", name)
	}
}

func TestRemove_DeletesStoredImage(t *testing.T) {
	storage, dir := newTestImageStorage(t)

	url, err := storage.SaveImage(context.Background(), "ring.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := storage.Remove(context.Background(), url); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, filepath.Base(url))); !os.IsNotExist(err) {
		t.Fatal("expected stored file to be removed")
	}
}

func TestRemove_MissingFileIsNoOp(t *testing.T) {
	storage, _ := newTestImageStorage(t)

	if err := storage.Remove(context.Background(), "/uploads/never-existed.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolve_KnownFile(t *testing.T) {
	storage, dir := newTestImageStorage(t)

	url, err := storage.SaveImage(context.Background(), "ring.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := storage.Resolve(filepath.Base(url))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("resolved path %q escapes upload dir %q", path, dir)
	}
}

func TestResolve_RejectsTraversalAndUnknown(t *testing.T) {
	storage, _ := newTestImageStorage(t)

	if _, err := storage.Resolve("../secret.txt"); !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound for traversal, got %v", err)
	}
	if _, err := storage.Resolve("missing.png"); !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound for unknown file, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"ring.png":           "ring.png",
		"../../etc/shadow":   "shadow",
		`..\..\photo.jpg`:    "photo.jpg",
		"my photo (1).jpeg":  "myphoto1.jpeg",
		"...":                "",
		"ないしょ.png":           "png",
	}

	for input, want := range cases {
		got, err := sanitizeFilename(input)
		if want == "" {
			if !errors.Is(err, ErrEmptyImageFilename) {
				t.Errorf("sanitize(%q): expected ErrEmptyImageFilename, got %q/%v", input, got, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("sanitize(%q): unexpected error %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("sanitize(%q) = %q, want %q", input, got, want)
		}
	}
}
