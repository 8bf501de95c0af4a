package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/models"
)

const (
	defaultStripeBaseURL = "https://api.stripe.com"
	defaultStripeTimeout = 15 * time.Second

	// Stripe settles the storefront's charges in US dollars only.
	paymentCurrency = "usd"
)

// StripeConfig configures the Stripe PaymentIntents client. BaseURL is
// overridable so tests can point the client at a local httptest server.
type StripeConfig struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

type stripeProvider struct {
	client    *resty.Client
	secretKey string
	logger    *logger.Logger
}

// NewStripeProvider returns a [PaymentProvider] backed by Stripe's
// PaymentIntents API. The secret key is attached as a bearer token on every
// request; requests are form-encoded as Stripe requires.
func NewStripeProvider(cfg StripeConfig, log *logger.Logger) PaymentProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultStripeBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultStripeTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &stripeProvider{
		client:    cli,
		secretKey: cfg.SecretKey,
		logger:    &logger.Logger{Logger: log.With().Str("adapter", "stripe").Logger()},
	}
}

// stripeErrorEnvelope mirrors the error body Stripe wraps around every
// non-2xx response.
type stripeErrorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *stripeProvider) CreatePaymentIntent(ctx context.Context, amount int64, receiptEmail string) (models.PaymentIntent, error) {
	log := s.logger.With().Str("func", "CreatePaymentIntent").Logger()

	if s.secretKey == "" {
		log.Error().Msg("stripe secret key is empty")
		return models.PaymentIntent{}, ErrMissingSecretKey
	}

	form := map[string]string{
		"amount":                             strconv.FormatInt(amount, 10),
		"currency":                           paymentCurrency,
		"automatic_payment_methods[enabled]": "true",
	}
	if receiptEmail != "" {
		form["receipt_email"] = receiptEmail
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.secretKey).
		SetFormData(form).
		Post("/v1/payment_intents")
	if err != nil {
		log.Error().Err(err).Msg("payment intent request failed")
		return models.PaymentIntent{}, fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}
	if err = mapStripeError(resp); err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode()).Msg("payment intent rejected")
		return models.PaymentIntent{}, err
	}

	var intent models.PaymentIntent
	if err = json.Unmarshal(resp.Body(), &intent); err != nil {
		return models.PaymentIntent{}, fmt.Errorf("decode payment intent response: %w", err)
	}
	if intent.ClientSecret == "" {
		return models.PaymentIntent{}, fmt.Errorf("%w: response carries no client secret", ErrProviderFailure)
	}

	log.Debug().Str("intent_id", intent.ID).Int64("amount", intent.Amount).Msg("payment intent created")
	return intent, nil
}

func mapStripeError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var envelope stripeErrorEnvelope
	message := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusPaymentRequired || envelope.Error.Type == "card_error" {
		return &ProviderError{Kind: ErrPaymentDeclined, Status: resp.StatusCode(), Message: message}
	}
	return &ProviderError{Kind: ErrProviderFailure, Status: resp.StatusCode(), Message: message}
}
