package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/catalog"
	"github.com/OnurOzayyy/ecommerce/models"
)

type CategoryInput struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

// GetAllCategories returns every category.
func GetAllCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.ListCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryBySlug returns one category plus the distinct union of its
// assigned products and products that default to it.
// URL param: /categories/:slug
func GetCategoryBySlug(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := store.GetCategoryBySlug(c.Param("slug"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}

		products, err := store.CategoryProducts(category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"products": products,
		})
	}
}

// CreateCategory creates a new category (admin only).
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			Title:       input.Title,
			Slug:        input.Slug,
			Description: input.Description,
			Active:      true,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}
