package routes

import (
	productController "github.com/bilalhossainshah/ecommerce-api/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCategoryRoutes registers all "/catgory/*" endpoints. The group name
// keeps the original API's spelling; clients depend on it.
func SetupCategoryRoutes(r *gin.Engine, db *gorm.DB) {
	categories := r.Group("/catgory")
	{
		categories.GET("/", productController.GetAllCategories(db))
		categories.POST("/", productController.CreateCategory(db))
		categories.GET("/:id", productController.GetCategoryByID(db))
		categories.GET("/:id/products/", productController.GetProductsInCategory(db))
	}
}
