package paymentController

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"iapt/config"
	"iapt/database"
	"iapt/middleware"
	"iapt/models"
	"iapt/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateCheckout inserts a pending payment and opens a Wave checkout session.
// The local payment id travels as the provider's client_reference so the
// webhook can find the row again.
func CreateCheckout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := c.Locals("validatedCheckout").(*struct {
		Amount     int    `json:"amount"`
		Plan       string `json:"plan"`
		SuccessURL string `json:"successUrl"`
		ErrorURL   string `json:"errorUrl"`
	})

	// Misconfiguration is not a request failure: answer with a
	// distinguishable unconfigured response and write nothing.
	if config.AppConfig.WaveApiKey == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Le système de paiement Wave est en cours de configuration. Veuillez contacter l'administrateur.", fiber.Map{
			"configured": false,
		})
	}

	db := database.Database.Db

	payment := models.Payment{
		UserID:        userID,
		Amount:        reqData.Amount,
		Currency:      "XOF",
		Plan:          models.PlanType(reqData.Plan),
		Status:        models.PaymentStatusPending,
		PaymentMethod: "wave",
	}
	if err := db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	successURL := reqData.SuccessURL
	if successURL == "" {
		successURL = fmt.Sprintf("%s/payment/success?payment_id=%d", config.AppConfig.FrontendBaseURL, payment.ID)
	}
	errorURL := reqData.ErrorURL
	if errorURL == "" {
		errorURL = fmt.Sprintf("%s/payment/error?payment_id=%d", config.AppConfig.FrontendBaseURL, payment.ID)
	}

	session, err := utils.CreateWaveCheckout(payment.Amount, strconv.FormatUint(uint64(payment.ID), 10), successURL, errorURL)
	if err != nil {
		// Never leave the payment stuck in pending after a provider refusal
		db.Model(&payment).Update("status", models.PaymentStatusFailed)
		log.Printf("Wave checkout failed for payment %d: %v", payment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Le paiement n'a pas pu être initié. Veuillez réessayer.", fiber.Map{
			"payment_id": payment.ID,
		})
	}

	db.Model(&payment).Updates(map[string]interface{}{
		"transaction_id": session.ID,
		"provider_data":  datatypes.JSON(session.RawBody),
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created!", fiber.Map{
		"payment_id":      payment.ID,
		"session_id":      session.ID,
		"wave_launch_url": session.WaveLaunchURL,
		"checkout_status": session.CheckoutStatus,
	})
}

// WaveWebhook handles provider push notifications. It always answers 200:
// reconciliation problems are logged, never surfaced, so the provider does not
// retry-storm us.
func WaveWebhook(c *fiber.Ctx) error {
	var body struct {
		Type string `json:"type"`
		Data struct {
			ID              string `json:"id"`
			ClientReference string `json:"client_reference"`
		} `json:"data"`
	}

	if err := c.BodyParser(&body); err != nil {
		log.Printf("Wave webhook: unreadable body: %v", err)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
	}

	log.Printf("Wave webhook received: type=%s session=%s ref=%s", body.Type, body.Data.ID, body.Data.ClientReference)

	if body.Type == "checkout.session.completed" && body.Data.ClientReference != "" {
		paymentID, err := strconv.ParseUint(body.Data.ClientReference, 10, 64)
		if err != nil {
			log.Printf("Wave webhook: invalid client_reference %q", body.Data.ClientReference)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
		}

		payment, applied, err := ReconcilePayment(database.Database.Db, uint(paymentID), body.Data.ID, datatypes.JSON(c.Body()))
		if err != nil && !errors.Is(err, ErrPaymentTerminal) {
			log.Printf("Wave webhook: reconciliation of payment %d failed: %v", paymentID, err)
		}
		if applied {
			log.Printf("Payment %d completed and plan %s activated for user %d", payment.ID, payment.Plan, payment.UserID)
			sendReceipt(payment)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}

// VerifyPayment is called by the success page after the provider redirect. If
// the webhook already completed the payment this is a pure read; otherwise it
// is the second participant of the reconciliation race.
func VerifyPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	paymentID := c.Locals("paymentID").(int)

	db := database.Database.Db

	var payment models.Payment
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false", paymentID, userID).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	if payment.Status == models.PaymentStatusPending {
		reconciled, applied, err := ReconcilePayment(db, payment.ID, "", nil)
		if err != nil && !errors.Is(err, ErrPaymentTerminal) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify payment!", nil)
		}
		payment = *reconciled
		if applied {
			sendReceipt(&payment)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified!", fiber.Map{
		"payment_id": payment.ID,
		"status":     payment.Status,
		"plan":       payment.Plan,
		"amount":     payment.Amount,
	})
}

// GetPaymentHistory lists the user's payments, most recent first
func GetPaymentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.Payment{}).Where("user_id = ? AND is_deleted = false", userID)

	var total int64
	query.Count(&total)

	var payments []models.Payment
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func sendReceipt(payment *models.Payment) {
	var user models.User
	if err := database.Database.Db.Where("id = ?", payment.UserID).First(&user).Error; err != nil {
		return
	}
	go utils.SendPaymentReceiptEmail(user.Email, user.FullName, string(payment.Plan), payment.Amount)
}
