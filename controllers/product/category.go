package productController

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// GET /catgory/
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("id asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /catgory/
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.Category
		if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name already registered"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category name"})
			return
		}

		slug := input.Slug
		if slug == "" {
			slug = strings.ReplaceAll(strings.ToLower(input.Name), " ", "-")
		}

		category := models.Category{Name: input.Name, Slug: slug}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GET /catgory/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// GET /catgory/:id/products/
func GetProductsInCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var products []models.Product
		if err := db.Where("category_id = ?", id).Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category or products not found"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
