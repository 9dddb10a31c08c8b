package routes

import (
	productController "github.com/bilalhossainshah/ecommerce-api/controllers/product"
	"github.com/bilalhossainshah/ecommerce-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, uploader services.Uploader) {
	products := r.Group("/products")
	{
		products.GET("/", productController.GetProducts(db))
		products.POST("/", productController.CreateProduct(db))
		products.GET("/search/", productController.SearchProducts(db))
		products.GET("/filter/", productController.FilterProducts(db))
		products.POST("/upload-image/", productController.UploadProductImage(uploader))
		products.GET("/:id", productController.GetProductByID(db))
		products.PUT("/:id", productController.UpdateProduct(db))
		products.DELETE("/:id", productController.DeleteProduct(db))
	}
}
