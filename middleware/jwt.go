package middleware

import (
	"fmt"
	"strings"
	"tchadskills/config"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Token types carried in the "type" claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// GenerateJWT generates a short-lived access token for the user
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	return signToken(userID, name, role, email, TokenTypeAccess, 24*time.Hour)
}

// GenerateRefreshJWT generates a long-lived refresh token for the user
func GenerateRefreshJWT(userID uint, name, role, email string) (string, error) {
	return signToken(userID, name, role, email, TokenTypeRefresh, 7*24*time.Hour)
}

func signToken(userID uint, name, role, email, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"type":   tokenType,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// ParseToken parses and validates a signed token string
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

// JWTMiddleware is a middleware to check for a valid access token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	claims, err := ParseToken(tokenString)
	if err != nil || claims["userId"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	// Refresh tokens are only good for the refresh endpoint
	if tokenType, _ := claims["type"].(string); tokenType != TokenTypeAccess {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token type", nil)
	}

	// JWT claims are stored as float64, cast back to uint
	userID := claims["userId"].(float64)
	c.Locals("userId", uint(userID))

	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
