package authValidator

import (
	"strings"

	"iapt/middleware"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
)

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName string `json:"full_name"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Sector   string `json:"sector"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.FullName = strings.TrimSpace(reqData.FullName)

		if reqData.FullName == "" {
			errors["full_name"] = "Full name is required!"
		}
		if reqData.Email == "" || !strings.Contains(reqData.Email, "@") {
			errors["email"] = "A valid email is required!"
		}
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters!"
		}
		if reqData.Sector != "" && !models.IsValidSector(reqData.Sector) {
			errors["sector"] = "Unknown sector!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
