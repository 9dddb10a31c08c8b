package routes

import (
	cartControllers "github.com/bilalhossainshah/ecommerce-api/controllers/cart"
	"github.com/bilalhossainshah/ecommerce-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.POST("/add-item/", cartControllers.AddItemToCart(db))
		cart.PUT("/update-item/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/remove-item/:id", cartControllers.RemoveCartItem(db))
		cart.GET("/:order_id/", cartControllers.GetCart(db))
		cart.POST("/:order_id/checkout/", cartControllers.Checkout(db))
	}
}
