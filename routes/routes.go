package routes

import (
	"github.com/bilalhossainshah/ecommerce-api/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
// wishlist may be nil when MongoDB is not configured; the wishlist routes are
// simply not mounted then.
func SetupRoutes(r *gin.Engine, db *gorm.DB, wishlist *mongo.Collection, uploader services.Uploader) {
	SetupUserRoutes(r, db)
	SetupProductRoutes(r, db, uploader)
	SetupCategoryRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupAdminRoutes(r, db)

	if wishlist != nil {
		SetupWishlistRoutes(r, wishlist)
	}
}
