package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ChargeStatus is what the payment collaborator reports for a charge
// reference. The community workflow treats the gateway as a black box and
// only acts on this summary.
type ChargeStatus struct {
	Verified bool
	Amount   float64
	Method   string
}

// Verifier is the narrow contract the submission gate needs from the gateway.
type Verifier interface {
	VerifyCharge(ctx context.Context, reference string) (ChargeStatus, error)
}

// Client talks to the payment gateway's charge-inquiry endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClientFromEnv() (*Client, error) {
	baseURL := os.Getenv("PAYMENT_API_BASE_URL")
	apiKey := os.Getenv("PAYMENT_API_KEY")
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("PAYMENT_API_BASE_URL and PAYMENT_API_KEY must be set")
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type chargeResponse struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
}

// VerifyCharge inquires the gateway for the given charge/intent reference.
// Transport failures and non-2xx responses are returned as errors; a reachable
// gateway that reports a non-success status yields Verified=false.
func (c *Client) VerifyCharge(ctx context.Context, reference string) (ChargeStatus, error) {
	url := fmt.Sprintf("%s/v1/charges/%s", c.baseURL, reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ChargeStatus{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ChargeStatus{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ChargeStatus{Verified: false}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return ChargeStatus{}, fmt.Errorf("charge inquiry failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var cr chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return ChargeStatus{}, fmt.Errorf("decode charge response: %w", err)
	}

	return ChargeStatus{
		Verified: IsSuccessStatus(cr.Status),
		Amount:   cr.Amount,
		Method:   cr.PaymentMethod,
	}, nil
}

// IsSuccessStatus maps the gateway's charge states onto a settled/not-settled
// answer.
func IsSuccessStatus(status string) bool {
	switch status {
	case "succeeded", "paid", "settled":
		return true
	}
	return false
}
