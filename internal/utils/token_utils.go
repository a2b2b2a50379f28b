package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nunsahui/cafeledger/internal/core/domain"
)

// AppClaims are the JWT claims carried by access tokens. Role and email ride
// along so request authorization does not need a user lookup per call.
type AppClaims struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken creates a signed JWT for the user.
func GenerateAccessToken(user domain.User, secret, issuer string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := AppClaims{
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}
