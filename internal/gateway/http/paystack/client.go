package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/payment"
)

const (
	providerName = "paystack"

	opInitialize = "initialize"
	opVerify     = "verify"

	outcomeOK          = "ok"
	outcomeUnavailable = "unavailable"
	outcomeRejected    = "rejected"

	maxResponseBody = 1 << 20
)

// Client HTTP-клиент платёжного провайдера. Запросы не ретраятся: повтор
// решает вызывающая сторона (клиент, вебхук провайдера или reconcile).
type Client struct {
	baseURL   string
	secretKey string
	timeout   time.Duration
	http      httpDoer
}

func New(baseURL, secretKey string, timeout time.Duration) *Client {
	return NewWithDoer(baseURL, secretKey, timeout, &http.Client{})
}

func NewWithDoer(baseURL, secretKey string, timeout time.Duration, doer httpDoer) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		timeout:   timeout,
		http:      doer,
	}
}

func (c *Client) InitializeTransaction(ctx context.Context, init entities.TransactionInit) (*entities.TransactionInitResult, error) {
	body, err := json.Marshal(toInitializeRequest(init))
	if err != nil {
		return nil, fmt.Errorf("marshal initialize request: %w", err)
	}

	var data initializeData
	if err := c.call(ctx, opInitialize, http.MethodPost, "/transaction/initialize", body, &data); err != nil {
		return nil, fmt.Errorf("paystack initialize %s: %w", init.Reference, err)
	}
	return toInitResult(data), nil
}

func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*entities.TransactionVerification, error) {
	var data transactionData
	path := "/transaction/verify/" + url.PathEscape(reference)
	if err := c.call(ctx, opVerify, http.MethodGet, path, nil, &data); err != nil {
		return nil, fmt.Errorf("paystack verify %s: %w", reference, err)
	}
	return toVerification(data), nil
}

func (c *Client) call(ctx context.Context, operation, method, path string, body []byte, out any) (err error) {
	start := time.Now()
	defer func() {
		GatewayRequestDuration.WithLabelValues(providerName, operation, outcome(err)).
			Observe(time.Since(start).Seconds())
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", payment.ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", payment.ErrProviderUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: status %d", payment.ErrProviderUnavailable, resp.StatusCode)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", payment.ErrProviderRejected, resp.StatusCode, env.Message)
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: decode response: %w", payment.ErrProviderUnavailable, decodeErr)
	}
	if !env.Status {
		return fmt.Errorf("%w: %s", payment.ErrProviderRejected, env.Message)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %w", payment.ErrProviderUnavailable, err)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, payment.ErrProviderRejected):
		return outcomeRejected
	default:
		return outcomeUnavailable
	}
}
