package authController

import (
	"log"
	"time"

	"iapt/config"
	"iapt/database"
	"iapt/middleware"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new learner account
func Signup(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSignup").(*struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Sector   string `json:"sector"`
		Password string `json:"password"`
	})

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FullName: reqData.FullName,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		Sector:   reqData.Sector,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.FullName, newUser.Role, newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Signup successful!", fiber.Map{
		"token": token,
		"user":  newUser,
	})
}

// Login authenticates an existing user and hands back a JWT
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	now := time.Now()
	db.Model(&user).Update("last_login", &now)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
