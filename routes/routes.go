package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/cart"
	"github.com/OnurOzayyy/ecommerce/catalog"
)

// SetupRoutes is the single entry point that wires up Auth, Catalog, Cart,
// Checkout, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	store := catalog.NewStore(db)
	cartService := cart.NewService(db, store)

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog browsing
	SetupCatalogRoutes(r, db, store)

	// Cart + checkout (session-JWT protected)
	SetupCartRoutes(r, db, cartService)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, db, store)
}
