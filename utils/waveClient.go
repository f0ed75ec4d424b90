package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"iapt/config"

	"github.com/go-resty/resty/v2"
)

// ErrWaveNotConfigured signals an operational misconfiguration (no API key),
// which callers must distinguish from a runtime provider failure.
var ErrWaveNotConfigured = errors.New("wave api key not configured")

// WaveCheckoutSession is the provider's view of one checkout session
type WaveCheckoutSession struct {
	ID             string `json:"id"`
	WaveLaunchURL  string `json:"wave_launch_url"`
	CheckoutStatus string `json:"checkout_status"`
	PaymentStatus  string `json:"payment_status"`
	RawBody        []byte `json:"-"` // unparsed response, persisted for audit
}

// CreateWaveCheckout opens a checkout session with the Wave API. Amount is a
// plain integer, the currency is fixed to XOF which has no subunits.
// clientReference carries the local payment id so the webhook can correlate.
func CreateWaveCheckout(amount int, clientReference, successURL, errorURL string) (*WaveCheckoutSession, error) {
	if config.AppConfig.WaveApiKey == "" {
		return nil, ErrWaveNotConfigured
	}

	client := resty.New().SetTimeout(20 * time.Second)
	resp, err := client.R().
		SetAuthToken(config.AppConfig.WaveApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"amount":           fmt.Sprintf("%d", amount),
			"currency":         "XOF",
			"success_url":      successURL,
			"error_url":        errorURL,
			"client_reference": clientReference,
		}).
		Post(config.AppConfig.WaveApiURL + "checkout/sessions")
	if err != nil {
		log.Printf("Wave checkout request failed: %v", err)
		return nil, fmt.Errorf("wave checkout request failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		log.Printf("Wave API error %d: %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("wave api error %d: %s", resp.StatusCode(), resp.String())
	}

	var session WaveCheckoutSession
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, fmt.Errorf("invalid wave response: %w", err)
	}
	if session.ID == "" || session.WaveLaunchURL == "" {
		return nil, fmt.Errorf("incomplete wave response: %s", resp.String())
	}
	session.RawBody = resp.Body()

	return &session, nil
}
