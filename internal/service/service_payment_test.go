// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkova/bijoux-shop/internal/adapter"
	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/mock"
	"github.com/mlevkova/bijoux-shop/internal/validators"
	"github.com/mlevkova/bijoux-shop/models"
)

func newTestPaymentService(t *testing.T, ctrl *gomock.Controller) (PaymentService, *mock.MockPaymentProvider) {
	t.Helper()
	provider := mock.NewMockPaymentProvider(ctrl)
	svc := NewPaymentService(provider, validators.NewRequestValidator(), logger.Nop())
	return svc, provider
}

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc, provider := newTestPaymentService(t, ctrl)

		want := models.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 1999}
		provider.EXPECT().
			CreatePaymentIntent(gomock.Any(), int64(1999), "buyer@example.com").
			Return(want, nil)

		got, err := svc.CreatePaymentIntent(context.Background(), models.CreatePaymentIntentRequest{
			Amount: 1999,
			Email:  "buyer@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("invalid amount never reaches the provider", func(t *testing.T) {
		svc, _ := newTestPaymentService(t, ctrl)

		_, err := svc.CreatePaymentIntent(context.Background(), models.CreatePaymentIntentRequest{Amount: 0})

		require.ErrorIs(t, err, validators.ErrInvalidAmount)
	})

	t.Run("provider failure passes through", func(t *testing.T) {
		svc, provider := newTestPaymentService(t, ctrl)

		provider.EXPECT().
			CreatePaymentIntent(gomock.Any(), int64(500), "").
			Return(models.PaymentIntent{}, adapter.ErrProviderFailure)

		_, err := svc.CreatePaymentIntent(context.Background(), models.CreatePaymentIntentRequest{Amount: 500})

		require.ErrorIs(t, err, adapter.ErrProviderFailure)
	})
}
