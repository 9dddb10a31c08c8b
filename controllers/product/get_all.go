package productController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /products/?skip=&limit=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
		if err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}

		var products []models.Product
		if err := db.Offset(skip).Limit(limit).Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/search/?q=
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
			return
		}

		pattern := "%" + strings.ToLower(q) + "%"
		var products []models.Product
		if err := db.
			Where("LOWER(title) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(description) LIKE ?",
				pattern, pattern, pattern).
			Order("id asc").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/filter/?category_id=&min_price=&max_price=&in_stock=
func FilterProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if categoryID := c.Query("category_id"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}
		if minPrice := c.Query("min_price"); minPrice != "" {
			mp, err := strconv.ParseFloat(minPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPrice := c.Query("max_price"); maxPrice != "" {
			mp, err := strconv.ParseFloat(maxPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}
		if inStock := c.Query("in_stock"); inStock != "" {
			v, err := strconv.ParseBool(inStock)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid in_stock"})
				return
			}
			query = query.Where("in_stock = ?", v)
		}

		var products []models.Product
		if err := query.Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
