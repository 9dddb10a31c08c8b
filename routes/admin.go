package routes

import (
	orderControllers "github.com/bilalhossainshah/ecommerce-api/controllers/order"
	productController "github.com/bilalhossainshah/ecommerce-api/controllers/product"
	userControllers "github.com/bilalhossainshah/ecommerce-api/controllers/user"
	"github.com/bilalhossainshah/ecommerce-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/users", userControllers.GetAllUsers(db))

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrdersHandler(db))
			orders.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		products := admin.Group("/products")
		{
			products.GET("/export-excel", productController.ExportProductsToExcel(db))
			products.POST("/import-excel", productController.ImportProductsFromExcel(db))
		}
	}
}
