package paymentController

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"iapt/config"
	"iapt/database"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutApp(t *testing.T, userID uint) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Post("/payment/checkout", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		c.Locals("validatedCheckout", &struct {
			Amount     int    `json:"amount"`
			Plan       string `json:"plan"`
			SuccessURL string `json:"successUrl"`
			ErrorURL   string `json:"errorUrl"`
		}{Amount: 5000, Plan: "premium"})
		return CreateCheckout(c)
	})
	return app
}

func TestCreateCheckout(t *testing.T) {
	t.Run("ProviderFailureMarksPaymentFailed", func(t *testing.T) {
		db := setupTestDB(t)
		database.Database = database.DbInstance{Db: db}

		user := models.User{FullName: "Ibrahima Fall", Email: "ibrahima@example.sn", Password: "x"}
		require.NoError(t, db.Create(&user).Error)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"code":"internal-error"}`))
		}))
		defer server.Close()

		config.AppConfig = &config.Config{
			WaveApiKey:      "wave_test_key",
			WaveApiURL:      server.URL + "/v1/",
			FrontendBaseURL: "http://localhost:5173",
		}

		app := checkoutApp(t, user.ID)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/payment/checkout", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

		// The pending row must not stay pending after the provider refusal
		var payment models.Payment
		require.NoError(t, db.Where("user_id = ?", user.ID).First(&payment).Error)
		assert.Equal(t, models.PaymentStatusFailed, payment.Status)
		assert.Empty(t, payment.TransactionID)

		// No entitlement is granted on failure
		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.False(t, stored.PlanActive)
		assert.Empty(t, stored.Plan)
	})

	t.Run("UnconfiguredProviderWritesNothing", func(t *testing.T) {
		db := setupTestDB(t)
		database.Database = database.DbInstance{Db: db}

		user := models.User{FullName: "Ibrahima Fall", Email: "ibrahima@example.sn", Password: "x"}
		require.NoError(t, db.Create(&user).Error)

		config.AppConfig = &config.Config{WaveApiKey: ""}

		app := checkoutApp(t, user.ID)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/payment/checkout", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}
