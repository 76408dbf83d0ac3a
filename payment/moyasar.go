package payment

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrGatewayUnavailable marks a transport failure or non-2xx reply from
// the gateway, as opposed to a gateway-reported decline.
var ErrGatewayUnavailable = errors.New("payment gateway request failed")

const (
	StatusPaid      = "paid"
	StatusFailed    = "failed"
	StatusInitiated = "initiated"
)

type Card struct {
	Name   string `json:"name" binding:"required"`
	Number string `json:"number" binding:"required"`
	CVC    string `json:"cvc" binding:"required"`
	Month  int    `json:"month" binding:"required"`
	Year   int    `json:"year" binding:"required"`
}

type ChargeRequest struct {
	Amount      int64
	Currency    string
	Description string
	CallbackURL string
	Reference   string
	Card        Card
}

type ChargeResult struct {
	InvoiceID string
	Status    string
	RawStatus string
}

type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient() *Client {
	baseURL := os.Getenv("MOYASAR_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.moyasar.com"
	}

	return &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
		apiKey: os.Getenv("MOYASAR_API_KEY"),
	}
}

// CreatePayment submits a card charge and returns the gateway's invoice
// reference together with the mapped local payment status.
func (c *Client) CreatePayment(req ChargeRequest) (ChargeResult, error) {
	body := map[string]any{
		"amount":       req.Amount,
		"currency":     req.Currency,
		"description":  req.Description,
		"callback_url": req.CallbackURL,
		"metadata":     map[string]string{"reference": req.Reference},
		"source": map[string]any{
			"type":   "creditcard",
			"name":   req.Card.Name,
			"number": req.Card.Number,
			"cvc":    req.Card.CVC,
			"month":  req.Card.Month,
			"year":   req.Card.Year,
		},
	}

	resp, err := c.http.R().
		SetBasicAuth(c.apiKey, "").
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post("/v1/payments")

	if err != nil {
		return ChargeResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if resp.IsError() {
		return ChargeResult{}, fmt.Errorf("%w: status %d: %s", ErrGatewayUnavailable, resp.StatusCode(), resp.Body())
	}

	var payload struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return ChargeResult{}, fmt.Errorf("%w: invalid response body", ErrGatewayUnavailable)
	}
	if payload.ID == "" {
		return ChargeResult{}, fmt.Errorf("%w: missing payment id in response", ErrGatewayUnavailable)
	}

	return ChargeResult{
		InvoiceID: payload.ID,
		Status:    MapStatus(payload.Status),
		RawStatus: payload.Status,
	}, nil
}

// MapStatus translates a gateway status into the local payment status
// enum. Anything the gateway reports besides a definite outcome stays
// "initiated".
func MapStatus(gatewayStatus string) string {
	switch gatewayStatus {
	case "paid", "succeeded":
		return StatusPaid
	case "failed":
		return StatusFailed
	default:
		return StatusInitiated
	}
}

// VerifyWebhookToken compares the token presented by a webhook call with
// the shared secret in constant time.
func VerifyWebhookToken(got string) bool {
	secret := os.Getenv("MOYASAR_WEBHOOK_SECRET")
	if secret == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(secret)) == 1
}
