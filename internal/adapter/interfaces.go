// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

// Package adapter provides clients for third-party services the shop depends
// on. The primary abstraction is [PaymentProvider], which decouples the
// service layer from the payment processor's wire protocol. The package ships
// a Stripe implementation ([NewStripeProvider]) that talks to the
// PaymentIntents API over HTTPS.
//
// Error values defined in errors.go are mapped from provider responses so
// callers can use [errors.Is] without knowing the transport.
package adapter

import (
	"context"

	"github.com/mlevkova/bijoux-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/payment_provider_mock.go -package=mock

// PaymentProvider creates payment intents with an external payment processor.
// Implementations are responsible for authentication, serialisation, and
// mapping provider-level failures to the sentinel errors of this package.
type PaymentProvider interface {
	// CreatePaymentIntent registers a pending charge of amount (in the
	// currency's smallest unit, e.g. cents) with the provider and returns
	// the resulting intent. The receipt email is optional; when set the
	// provider sends a receipt once the payment settles.
	CreatePaymentIntent(ctx context.Context, amount int64, receiptEmail string) (models.PaymentIntent, error)
}
