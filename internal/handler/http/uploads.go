package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlevkova/bijoux-shop/internal/logger"
)

// serveUpload serves a stored product image by its bare filename. Resolution
// happens through the image storage so traversal outside the upload
// directory is rejected before any file is opened.
func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	filename := chi.URLParam(r, "filename")

	path, err := h.services.ProductService.ResolveImage(filename)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("image resolution failed")
		writeError(w, r, err)
		return
	}

	http.ServeFile(w, r, path)
}
