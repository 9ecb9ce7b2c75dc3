package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OnurOzayyy/ecommerce/catalog"
)

// GetProducts lists active products, optionally filtered by the q search
// param (title/description substring, or exact price).
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")

		if query != "" {
			products, err := store.SearchActive(query)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"query": query, "products": products})
			return
		}

		products, err := store.ListActive()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
