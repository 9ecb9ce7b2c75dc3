package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/cart"
	"github.com/OnurOzayyy/ecommerce/catalog"
	"github.com/OnurOzayyy/ecommerce/models"
)

// sessionCart resolves the caller's cart from the identity the middleware
// put on the context.
func sessionCart(c *gin.Context, svc *cart.Service) (*models.Cart, bool) {
	sessionID := c.GetString("session_id")
	userID := c.GetString("user_id")

	resolved, err := svc.ResolveOrCreateCart(sessionID, userID)
	if err != nil {
		if errors.Is(err, cart.ErrMissingSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is required"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
		}
		return nil, false
	}
	return resolved, true
}

// GET /cart
//
// With no query params this returns the cart projection. With ?item=<id> it
// mutates first: qty sets the quantity (default 1), delete=1 or qty <= 0
// removes the item. The response mirrors what the storefront's AJAX layer
// expects; line_total and subtotal are null after a delete.
func CartView(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolved, ok := sessionCart(c, svc)
		if !ok {
			return
		}

		itemParam := c.Query("item")
		if itemParam == "" {
			view, err := svc.View(resolved)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
			c.JSON(http.StatusOK, view)
			return
		}

		variationID, err := strconv.ParseUint(itemParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		qty, err := cart.ParseQuantity(c.DefaultQuery("qty", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}
		if c.Query("delete") != "" {
			qty = 0
		}

		item, created, deleted, err := svc.SetItemQuantity(resolved, uint(variationID), qty)
		if err != nil {
			if errors.Is(err, catalog.ErrVariationNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			}
			return
		}

		flashMessage := "Quantity has been updated successfully."
		if created {
			flashMessage = "Successfully added to the cart"
		}
		if deleted {
			flashMessage = "Item removed successfully."
		}

		var lineTotal, subtotal *decimal.Decimal
		if item != nil {
			lineTotal = &item.LineItemTotal
			subtotal = &resolved.Subtotal
		}

		count, err := svc.ItemCount(resolved.SessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart items"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"deleted":       deleted,
			"item_added":    created,
			"subtotal":      subtotal,
			"line_total":    lineTotal,
			"flash_message": flashMessage,
			"total_items":   count,
		})
	}
}

// GET /cart/count
func ItemCount(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.ItemCount(c.GetString("session_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// DELETE /cart/:variation_id
func RemoveItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolved, ok := sessionCart(c, svc)
		if !ok {
			return
		}

		variationID, err := strconv.ParseUint(c.Param("variation_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variation_id"})
			return
		}

		if err := svc.RemoveItem(resolved, uint(variationID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /cart
func ClearCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolved, ok := sessionCart(c, svc)
		if !ok {
			return
		}

		if err := svc.ClearCart(resolved); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/carts/:session_id
func GetSessionCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}

		var found models.Cart
		if err := db.Preload("Items.Variation").Where("session_id = ?", sessionID).First(&found).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		c.JSON(http.StatusOK, found)
	}
}
