package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/catalog"
	productcontroller "github.com/OnurOzayyy/ecommerce/controllers/product"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB, store *catalog.Store) {
	r.GET("/products", productcontroller.GetProducts(store))            // GET /products?q=
	r.GET("/products/:id", productcontroller.GetProductByID(db, store)) // GET /products/:id

	r.GET("/categories", productcontroller.GetAllCategories(store))       // GET /categories
	r.GET("/categories/:slug", productcontroller.GetCategoryBySlug(store)) // GET /categories/:slug
}
