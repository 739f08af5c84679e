package authController

import (
	"log"

	"tchadskills/config"
	"tchadskills/database"
	"tchadskills/middleware"
	"tchadskills/models"
	"tchadskills/utils"
	authValidator "tchadskills/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a student or instructor account.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		Password: string(hashedPassword),
		Role:     reqData.Role,
		IsActive: true,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Token exchanges credentials for an access/refresh token pair.
func Token(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedToken").(*authValidator.TokenRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_active = ?", reqData.Email, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	accessToken, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	refreshToken, err := middleware.GenerateRefreshJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating refresh token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"access":  accessToken,
		"refresh": refreshToken,
	})
}

// RefreshToken exchanges a valid refresh token for a new access token.
func RefreshToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRefresh").(*authValidator.RefreshRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	claims, err := middleware.ParseToken(reqData.Refresh)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired refresh token!", nil)
	}

	if tokenType, _ := claims["type"].(string); tokenType != middleware.TokenTypeRefresh {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token type!", nil)
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_active = ?", uint(userID), true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	accessToken, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed!", fiber.Map{
		"access": accessToken,
	})
}
