// Package paypal is a thin relay to the PayPal REST checkout API. It holds
// the processor credentials server-side; clients only ever see approval URLs
// and capture outcomes.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rescue365/rescue_dispatch_system/internal/config"
	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/sirupsen/logrus"
)

type Client struct {
	apiBase    string
	clientID   string
	secret     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		apiBase:  cfg.PayPalAPIBase,
		clientID: cfg.PayPalClientID,
		secret:   cfg.PayPalSecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type orderLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type orderResponse struct {
	ID     string      `json:"id"`
	Status string      `json:"status"`
	Links  []orderLink `json:"links"`
}

// accessToken exchanges the client credentials for a bearer token
func (c *Client) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, "POST",
		c.apiBase+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: paypal token request failed: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.WithField("status", resp.StatusCode).WithField("body", string(body)).
			Error("PayPal token request rejected")
		return "", fmt.Errorf("%w: paypal token request returned %d", errs.ErrUpstream, resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: failed to decode paypal token response: %v", errs.ErrUpstream, err)
	}
	return token.AccessToken, nil
}

// CreateOrder creates a capture-intent USD order and returns the approval
// URL the client opens in a browser session
func (c *Client) CreateOrder(ctx context.Context, amount string) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	orderBody := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         amount,
				},
			},
		},
		"application_context": map[string]string{
			"return_url": "rescue365://donation-callback",
			"cancel_url": "rescue365://donation-callback",
		},
	}
	payload, err := json.Marshal(orderBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		c.apiBase+"/v2/checkout/orders", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: paypal order request failed: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.WithField("status", resp.StatusCode).WithField("body", string(body)).
			Error("PayPal order creation rejected")
		return "", fmt.Errorf("%w: paypal order creation returned %d", errs.ErrUpstream, resp.StatusCode)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("%w: failed to decode paypal order response: %v", errs.ErrUpstream, err)
	}

	for _, link := range order.Links {
		if link.Rel == "approve" {
			return link.Href, nil
		}
	}
	return "", fmt.Errorf("%w: paypal order response has no approval link", errs.ErrUpstream)
}

// CaptureOrder captures an approved order and returns its final status
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	captureURL := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.apiBase, url.PathEscape(orderID))
	req, err := http.NewRequestWithContext(ctx, "POST", captureURL, bytes.NewReader([]byte("{}")))
	if err != nil {
		return "", fmt.Errorf("failed to create capture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: paypal capture request failed: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.WithField("status", resp.StatusCode).WithField("body", string(body)).
			Error("PayPal capture rejected")
		return "", fmt.Errorf("%w: paypal capture returned %d", errs.ErrUpstream, resp.StatusCode)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("%w: failed to decode paypal capture response: %v", errs.ErrUpstream, err)
	}
	return order.Status, nil
}
