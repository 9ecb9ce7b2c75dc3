package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/models"
)

// POST /auth/guest
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "guest_" + uuid.NewString()

		session := models.GuestSession{
			ID:        sessionID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}

		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
			return
		}

		// Issue JWT for the guest session
		token, err := IssueSessionToken(sessionID, "guest", "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

// IssueSessionToken signs a JWT carrying the session identity. Authenticated
// users get a user_id claim on top of the session claims.
func IssueSessionToken(sessionID, role, userID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       role,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	if userID != "" {
		claims["user_id"] = userID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
