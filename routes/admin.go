package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/catalog"
	cartControllers "github.com/OnurOzayyy/ecommerce/controllers/cart"
	productcontroller "github.com/OnurOzayyy/ecommerce/controllers/product"
	"github.com/OnurOzayyy/ecommerce/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store *catalog.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Products ────────────────
		adminGroup.POST("/products", productcontroller.CreateProduct(db, store))
		adminGroup.PUT("/products/:id", productcontroller.UpdateProduct(db, store))
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		adminGroup.POST("/products/:id/variations", productcontroller.CreateVariation(db))

		// ──────────────── Categories ────────────────
		adminGroup.POST("/categories", productcontroller.CreateCategory(db))

		// ──────────────── Cart inspection ────────────────
		adminGroup.GET("/carts/:session_id", cartControllers.GetSessionCart(db))
	}
}
