// Package payment implements the acquiring provider integration against the
// YooKassa v3 API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"darkstore/config"
	"darkstore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const yookassaAPIURL = "https://api.yookassa.ru/v3/payments"

// yookassaService implements PaymentService against the YooKassa REST API.
// Every create call carries a fresh Idempotence-Key so provider-side retries
// cannot double-charge.
type yookassaService struct {
	shopID     string
	secretKey  string
	returnURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewYooKassaService creates a PaymentService from configuration. Missing
// credentials disable the payment leg; Enabled reports the outcome.
func NewYooKassaService(cfg *config.Config, logger *slog.Logger) service.PaymentService {
	svc := &yookassaService{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	if cfg.Payment != nil {
		svc.shopID = cfg.Payment.ShopID
		svc.secretKey = cfg.Payment.SecretKey
		svc.returnURL = cfg.Payment.ReturnURL
	}

	if !svc.Enabled() {
		logger.Info("Payment provider not configured, checkout will skip the payment leg")
	}

	return svc
}

// Enabled reports whether the provider credentials are configured.
func (s *yookassaService) Enabled() bool {
	return s.shopID != "" && s.secretKey != ""
}

type createPaymentRequest struct {
	Amount struct {
		Value    string `json:"value"`
		Currency string `json:"currency"`
	} `json:"amount"`
	Confirmation struct {
		Type      string `json:"type"`
		ReturnURL string `json:"return_url"`
	} `json:"confirmation"`
	Capture     bool              `json:"capture"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type createPaymentResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Confirmation struct {
		ConfirmationURL string `json:"confirmation_url"`
	} `json:"confirmation"`
}

// CreatePayment registers a payment for the given order and amount in rubles.
func (s *yookassaService) CreatePayment(ctx context.Context, orderID int64, amount int64, description string) (*service.Payment, error) {
	if !s.Enabled() {
		return nil, errors.New("payment provider is not configured")
	}

	reqBody := createPaymentRequest{
		Capture:     true,
		Description: description,
		Metadata: map[string]string{
			"order_id": fmt.Sprintf("%d", orderID),
		},
	}
	// Prices are whole rubles; the API wants a decimal string.
	reqBody.Amount.Value = fmt.Sprintf("%d.00", amount)
	reqBody.Amount.Currency = "RUB"
	reqBody.Confirmation.Type = "redirect"
	reqBody.Confirmation.ReturnURL = fmt.Sprintf("%s?order_id=%d", s.returnURL, orderID)

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, yookassaAPIURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.SetBasicAuth(s.shopID, s.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", uuid.NewString())

	s.logger.Info("[YooKassa] Creating payment",
		slog.Int64("order_id", orderID),
		slog.Int64("amount", amount),
	)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

		return nil, errors.Errorf("yookassa returned non-success status %d: %s", resp.StatusCode, string(respBody))
	}

	var paymentResp createPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&paymentResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode payment response")
	}

	if paymentResp.Confirmation.ConfirmationURL == "" {
		return nil, errors.New("payment response is missing a confirmation URL")
	}

	s.logger.Info("[YooKassa] Payment created",
		slog.Int64("order_id", orderID),
		slog.String("payment_id", paymentResp.ID),
		slog.String("status", paymentResp.Status),
	)

	return &service.Payment{
		ID:              paymentResp.ID,
		ConfirmationURL: paymentResp.Confirmation.ConfirmationURL,
		Status:          paymentResp.Status,
	}, nil
}
