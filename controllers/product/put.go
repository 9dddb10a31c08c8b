package productController

import (
	"net/http"
	"strconv"

	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	CategoryID  *uint            `json:"category_id"`
	Title       *string          `json:"title"`
	Brand       *string          `json:"brand"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	InStock     *bool            `json:"in_stock"`
}

// PUT /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.CategoryID != nil {
			updates["category_id"] = *input.CategoryID
		}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Brand != nil {
			updates["brand"] = *input.Brand
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			if input.Price.LessThanOrEqual(decimal.Zero) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.InStock != nil {
			updates["in_stock"] = *input.InStock
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
