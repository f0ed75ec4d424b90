package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"iapt/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWaveCheckout(t *testing.T) {
	t.Run("NotConfigured", func(t *testing.T) {
		config.AppConfig.WaveApiKey = ""

		_, err := CreateWaveCheckout(5000, "42", "https://app/success", "https://app/error")
		assert.ErrorIs(t, err, ErrWaveNotConfigured)
	})

	t.Run("Success", func(t *testing.T) {
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "Bearer wave_test_key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"cos-18qq25rgr100a","wave_launch_url":"https://pay.wave.com/c/cos-18qq25rgr100a","checkout_status":"open","payment_status":"processing"}`))
		}))
		defer server.Close()

		config.AppConfig.WaveApiKey = "wave_test_key"
		config.AppConfig.WaveApiURL = server.URL + "/v1/"

		session, err := CreateWaveCheckout(5000, "42", "https://app/success", "https://app/error")
		require.NoError(t, err)
		assert.Equal(t, "cos-18qq25rgr100a", session.ID)
		assert.Equal(t, "https://pay.wave.com/c/cos-18qq25rgr100a", session.WaveLaunchURL)
		assert.Equal(t, "open", session.CheckoutStatus)
		assert.NotEmpty(t, session.RawBody)

		// Amount crosses the wire as a string, currency is always XOF
		assert.Equal(t, "5000", gotBody["amount"])
		assert.Equal(t, "XOF", gotBody["currency"])
		assert.Equal(t, "42", gotBody["client_reference"])
	})

	t.Run("ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":"invalid-auth"}`))
		}))
		defer server.Close()

		config.AppConfig.WaveApiKey = "wave_test_key"
		config.AppConfig.WaveApiURL = server.URL + "/v1/"

		_, err := CreateWaveCheckout(5000, "42", "https://app/success", "https://app/error")
		assert.Error(t, err)
	})

	t.Run("IncompleteResponse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"checkout_status":"open"}`))
		}))
		defer server.Close()

		config.AppConfig.WaveApiKey = "wave_test_key"
		config.AppConfig.WaveApiURL = server.URL + "/v1/"

		_, err := CreateWaveCheckout(5000, "42", "https://app/success", "https://app/error")
		assert.Error(t, err)
	})
}
