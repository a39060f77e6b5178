package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a subject email
func GenerateToken(email string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired verifies the bearer token and injects the subject email
// into the request context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access!"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid || claims.Email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access!"})
			c.Abort()
			return
		}
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetEmail extracts the verified caller email from context
func GetEmail(c *gin.Context) string {
	val, _ := c.Get("email")
	email, _ := val.(string)
	return email
}
