package paymentValidator

import (
	"strconv"
	"strings"

	"iapt/middleware"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
)

func CreateCheckout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount     int    `json:"amount"`
			Plan       string `json:"plan"`
			SuccessURL string `json:"successUrl"`
			ErrorURL   string `json:"errorUrl"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be a positive integer!"
		}
		if reqData.Plan == "" {
			errors["plan"] = "Plan is required!"
		} else if !models.IsValidPlan(reqData.Plan) {
			errors["plan"] = "Unknown plan!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}

func PaymentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment ID is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Payment ID!", nil)
		}

		c.Locals("paymentID", id)
		return c.Next()
	}
}
