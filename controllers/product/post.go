package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/catalog"
	"github.com/OnurOzayyy/ecommerce/models"
)

type ProductInput struct {
	Title             string          `json:"title" binding:"required"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	Active            *bool           `json:"active"`
	CategoryIDs       []uint          `json:"category_ids"`
	DefaultCategoryID *uint           `json:"default_category_id"`
}

type VariationInput struct {
	Title     string           `json:"title" binding:"required"`
	Price     decimal.Decimal  `json:"price" binding:"required"`
	SalePrice *decimal.Decimal `json:"sale_price"`
	Inventory *int             `json:"inventory"`
}

// CreateProduct creates a new product with its categories. A "Default"
// variation is materialized right after the save when none is supplied.
func CreateProduct(db *gorm.DB, store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var categories []models.Category
		if len(input.CategoryIDs) > 0 {
			if err := db.Where("id IN ?", input.CategoryIDs).Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
		}

		active := true
		if input.Active != nil {
			active = *input.Active
		}

		newProduct := models.Product{
			Title:             input.Title,
			Description:       input.Description,
			Price:             input.Price,
			Active:            active,
			Categories:        categories,
			DefaultCategoryID: input.DefaultCategoryID,
		}

		if err := store.CreateProduct(&newProduct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		if err := db.Preload("Variations").Preload("Categories").First(&newProduct, newProduct.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}

// CreateVariation adds a variation to an existing product.
// URL param: /admin/products/:id/variations
func CreateVariation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input VariationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		variation := models.Variation{
			ProductID: product.ID,
			Title:     input.Title,
			Price:     input.Price,
			SalePrice: input.SalePrice,
			Inventory: input.Inventory,
			Active:    true,
		}
		if err := db.Create(&variation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create variation"})
			return
		}

		c.JSON(http.StatusCreated, variation)
	}
}
