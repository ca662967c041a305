package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jengzang/borough-records-go/pkg/response"
)

const subjectKey = "subject"

// Auth requires an HS256 bearer token signed with secret
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			response.Unauthorized(c, "Missing bearer token")
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expired"
			}
			response.Unauthorized(c, msg)
			return
		}

		c.Set(subjectKey, claims.Subject)
		c.Next()
	}
}

// GetSubject returns the authenticated token subject, or ""
func GetSubject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

// IssueToken signs an HS256 token for subject valid for ttl
func IssueToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
