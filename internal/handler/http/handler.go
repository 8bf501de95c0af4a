package http

import (
	"bytes"
	"encoding/json"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadBytes caps the size of multipart product-creation requests.
	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, maxUploadBytes int64, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// emptyJSONPayload reports whether raw is a payload the API treats as
// absent: no body at all, a JSON null, or an object without a single key.
// Such requests are rejected before field-level validation runs.
func emptyJSONPayload(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}
