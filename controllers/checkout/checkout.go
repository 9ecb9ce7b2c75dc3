package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/cart"
	"github.com/OnurOzayyy/ecommerce/models"
)

type GuestCheckoutInput struct {
	Email  string `json:"email" binding:"required,email"`
	Email2 string `json:"email2" binding:"required,email"`
}

// GET /checkout
//
// Returns the cart snapshot plus whether checkout may proceed. Only
// authenticated users can continue; guests get the snapshot and a false
// flag so the storefront can show a login/guest-checkout choice.
func CheckoutView(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		userID := c.GetString("user_id")

		resolved, err := svc.ResolveOrCreateCart(sessionID, userID)
		if err != nil {
			if errors.Is(err, cart.ErrMissingSession) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is required"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			}
			return
		}

		view, err := svc.View(resolved)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":              view,
			"user_can_continue": userID != "",
		})
	}
}

// POST /checkout/guest
//
// Captures a guest's email for checkout. The two email fields must match,
// and an email already belonging to a registered user is rejected so the
// user logs in instead of checking out anonymously.
func GuestCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GuestCheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Email != input.Email2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please confirm emails are the same"})
			return
		}

		var existingUsers int64
		if err := db.Model(&models.User{}).Where("email = ?", input.Email).Count(&existingUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate email"})
			return
		}
		if existingUsers != 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Existing user, please login!"})
			return
		}

		var checkout models.UserCheckout
		err := db.Where("email = ?", input.Email).First(&checkout).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout"})
				return
			}
			checkout = models.UserCheckout{Email: input.Email}
			if err := db.Create(&checkout).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout"})
				return
			}
		}

		c.JSON(http.StatusOK, checkout)
	}
}
