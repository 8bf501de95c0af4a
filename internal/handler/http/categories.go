package http

import (
	"net/http"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/utils"
	"github.com/mlevkova/bijoux-shop/models"
)

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	categories, err := h.services.CategoryService.GetAllCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.CategoriesResponse{Categories: categories}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing category listing response failed")
	}
}
