package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"lenslink/config"

	"github.com/golang-jwt/jwt"
)

// GenerateAccessToken creates a signed JWT with the given subject (user ID).
func GenerateAccessToken(subject, email string) (string, error) {
	duration := time.Duration(config.AppConfig.AccessTokenTTLMin) * time.Minute
	return signToken(subject, email, duration, config.AppConfig.AccessTokenSecret)
}

// GenerateRefreshToken creates a signed long-lived refresh JWT.
func GenerateRefreshToken(subject, email string) (string, error) {
	duration := time.Duration(config.AppConfig.RefreshTokenTTLHrs) * time.Hour
	return signToken(subject, email, duration, config.AppConfig.RefreshTokenSecret)
}

func signToken(subject, email string, duration time.Duration, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateAccessToken parses and validates an access token string.
func ValidateAccessToken(tokenString string) (*jwt.Token, error) {
	return validateToken(tokenString, config.AppConfig.AccessTokenSecret)
}

// ValidateRefreshToken parses and validates a refresh token string.
func ValidateRefreshToken(tokenString string) (*jwt.Token, error) {
	return validateToken(tokenString, config.AppConfig.RefreshTokenSecret)
}

func validateToken(tokenString, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
}

// ExtractIDFromToken extracts the ID (subject) from a valid access token.
func ExtractIDFromToken(tokenString string) (string, error) {
	token, err := ValidateAccessToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}
