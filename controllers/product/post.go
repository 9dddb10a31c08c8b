package productController

import (
	"errors"
	"net/http"

	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	CategoryID  uint            `json:"category_id" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Brand       string          `json:"brand"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	InStock     *bool           `json:"in_stock"`
}

// POST /products/
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
			return
		}

		var existing models.Product
		if err := db.Where("title = ?", input.Title).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product title already registered"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check product title"})
			return
		}

		inStock := true
		if input.InStock != nil {
			inStock = *input.InStock
		}

		product := models.Product{
			CategoryID:  input.CategoryID,
			Title:       input.Title,
			Brand:       input.Brand,
			Description: input.Description,
			Price:       input.Price,
			ImageURL:    input.ImageURL,
			InStock:     inStock,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
