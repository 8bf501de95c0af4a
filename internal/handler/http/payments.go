// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mlevkova/bijoux-shop/internal/adapter"
	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/utils"
	"github.com/mlevkova/bijoux-shop/models"
)

// createPaymentIntent brokers a payment intent with the configured provider
// and hands the client secret to the storefront. Provider failures surface
// as 500 carrying the provider's message so checkout problems are visible
// during integration.
func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreatePaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid payment intent body")
		h.writeMessage(w, r, "No input data provided", http.StatusBadRequest)
		return
	}

	intent, err := h.services.PaymentService.CreatePaymentIntent(ctx, req)
	if err != nil {
		var provErr *adapter.ProviderError
		if errors.As(err, &provErr) {
			log.Err(err).Msg("payment provider rejected the intent")
			h.writeMessage(w, r, provErr.Message, http.StatusInternalServerError)
			return
		}
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing payment intent response failed")
	}
}
