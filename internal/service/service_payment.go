// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package service

import (
	"context"
	"fmt"

	"github.com/mlevkova/bijoux-shop/internal/adapter"
	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/models"
)

// paymentService is the concrete implementation of PaymentService. It is a
// thin pass-through to the configured payment provider: no order state is
// kept on this side, the storefront confirms the intent directly with the
// provider using the returned client secret.
type paymentService struct {
	provider  adapter.PaymentProvider
	validator validatorContract

	logger *logger.Logger
}

func NewPaymentService(provider adapter.PaymentProvider, validator validatorContract, logger *logger.Logger) PaymentService {
	return &paymentService{
		provider:  provider,
		validator: validator,
		logger:    logger,
	}
}

func (p *paymentService) CreatePaymentIntent(ctx context.Context, req models.CreatePaymentIntentRequest) (models.PaymentIntent, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Int64("amount", req.Amount).Msg("invalid payment intent payload")
		return models.PaymentIntent{}, err
	}

	intent, err := p.provider.CreatePaymentIntent(ctx, req.Amount, req.Email)
	if err != nil {
		log.Err(err).Int64("amount", req.Amount).Msg("payment intent creation ended with error")
		return models.PaymentIntent{}, fmt.Errorf("payment intent creation ended with error: %w", err)
	}

	return intent, nil
}
