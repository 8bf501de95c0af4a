package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkova/bijoux-shop/internal/store"
)

func TestServeUpload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, mocks := newTestHandler(t, ctrl)

	dir := t.TempDir()
	path := filepath.Join(dir, "ring.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	mocks.products.EXPECT().ResolveImage("ring.png").Return(path, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/uploads/ring.png", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestServeUpload_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, mocks := newTestHandler(t, ctrl)

	mocks.products.EXPECT().ResolveImage("ghost.png").Return("", store.ErrImageNotFound)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/uploads/ghost.png", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image not found")
}
