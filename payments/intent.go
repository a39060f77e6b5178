// Package payments wraps the external payment provider behind a small
// capability: create a payment intent for an amount, get back a client secret.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intent is an authorized charge-in-progress at the payment provider.
// The client secret is handed back to the caller to complete the charge.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// IntentCreator creates a payment intent for an amount in the smallest
// currency unit (cents).
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (*Intent, error)
}

// StripeProvider creates intents against the Stripe REST API
type StripeProvider struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewStripeProvider(secretKey string) *StripeProvider {
	return &StripeProvider{
		secretKey: secretKey,
		baseURL:   "https://api.stripe.com",
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(p.secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}
	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}
	if intent.ClientSecret == "" {
		return nil, errors.New("payment provider returned no client secret")
	}
	return &intent, nil
}

// LocalProvider mints intents locally, for development and tests where no
// provider secret key is configured
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (p *LocalProvider) CreateIntent(ctx context.Context, amountCents int64) (*Intent, error) {
	id := "pi_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return &Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Amount:       amountCents,
		Currency:     "usd",
	}, nil
}
