package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/shubik-shop/auction/internal/config"
	"github.com/shubik-shop/auction/pkg/clients"
	"go.uber.org/zap"
)

const transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

type CommitStatus string

const (
	StatusAuthorized CommitStatus = "AUTHORIZED"
	StatusRejected   CommitStatus = "REJECTED"
)

// ErrUnavailable covers every transport failure and non-2xx answer; the
// caller treats it as retryable.
var ErrUnavailable = errors.New("payment gateway unavailable")

type CreateResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type commitResponse struct {
	Status string `json:"status"`
}

type createRequest struct {
	BuyOrder  string          `json:"buy_order"`
	SessionID string          `json:"session_id"`
	Amount    decimal.Decimal `json:"amount"`
	ReturnURL string          `json:"return_url"`
}

type Client struct {
	url          string
	apiKey       string
	commerceCode string
	client       clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:          cfg.GatewayAddress,
		apiKey:       cfg.GatewayAPIKey,
		commerceCode: cfg.CommerceCode,
		client:       client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Tbk-Api-Key-Id", c.commerceCode)
	h.Set("Tbk-Api-Key-Secret", c.apiKey)
	return h
}

// Create registers a transaction at the gateway and returns the token with
// the payer redirect URL.
func (c *Client) Create(ctx context.Context, buyOrder, sessionID string, amount decimal.Decimal, returnURL string) (*CreateResponse, error) {
	body := createRequest{
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    amount,
		ReturnURL: returnURL,
	}

	statusCode, respBody, err := c.client.DoJSON(ctx, http.MethodPost, c.url+transactionsPath, c.headers(), body)
	if err != nil {
		zap.L().Error("gateway create request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("gateway create returned unexpected status", zap.Int("status", statusCode))
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, statusCode)
	}

	var resp CreateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: can't parse create response: %w", ErrUnavailable, err)
	}
	if resp.Token == "" || resp.URL == "" {
		return nil, fmt.Errorf("%w: incomplete create response", ErrUnavailable)
	}
	return &resp, nil
}

// Commit asks the gateway to capture the transaction behind the token.
func (c *Client) Commit(ctx context.Context, token string) (CommitStatus, error) {
	url := c.url + transactionsPath + "/" + token

	statusCode, respBody, err := c.client.DoJSON(ctx, http.MethodPut, url, c.headers(), nil)
	if err != nil {
		zap.L().Error("gateway commit request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("gateway commit returned unexpected status", zap.Int("status", statusCode))
		return "", fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, statusCode)
	}

	var resp commitResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("%w: can't parse commit response: %w", ErrUnavailable, err)
	}

	if resp.Status == string(StatusAuthorized) {
		return StatusAuthorized, nil
	}
	return StatusRejected, nil
}
