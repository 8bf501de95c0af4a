// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/utils"
	"github.com/mlevkova/bijoux-shop/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	raw, err := io.ReadAll(r.Body)
	if err != nil || emptyJSONPayload(raw) {
		log.Error().Msg("empty user creation body")
		h.writeMessage(w, r, "No input data provided", http.StatusBadRequest)
		return
	}

	var req models.CreateUserRequest
	if err = json.Unmarshal(raw, &req); err != nil {
		log.Err(err).Msg("invalid user creation body")
		h.writeMessage(w, r, "No input data provided", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := models.CreateUserResponse{
		UserID:  user.UserID,
		Message: fmt.Sprintf("User %q created successfully", user.Username),
	}
	if _, err = utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing user creation response failed")
	}
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing user listing response failed")
	}
}

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	username := chi.URLParam(r, "username")

	user, err := h.services.UserService.GetUserByUsername(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("writing user response failed")
	}
}

// writeMessage renders an ad-hoc {"message": ...} body with the given status.
func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing message response failed")
	}
}
