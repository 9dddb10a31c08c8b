package routes

import (
	wishlistControllers "github.com/bilalhossainshah/ecommerce-api/controllers/wishlist"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupWishlistRoutes registers all "/wishlist/*" endpoints, backed by the
// MongoDB wishlist collection.
func SetupWishlistRoutes(r *gin.Engine, coll *mongo.Collection) {
	wishlist := r.Group("/wishlist")
	{
		wishlist.POST("/", wishlistControllers.CreateWishlistItem(coll))
		wishlist.GET("/", wishlistControllers.ListWishlistItems(coll))
		wishlist.DELETE("/:id", wishlistControllers.DeleteWishlistItem(coll))
	}
}
