package routes

import (
	userControllers "github.com/bilalhossainshah/ecommerce-api/controllers/user"
	"github.com/bilalhossainshah/ecommerce-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/users/*" endpoints. The credential
// endpoints sit behind the per-IP rate limiter.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		limited := users.Group("")
		limited.Use(middleware.RateLimit(10, 20))
		{
			limited.POST("/register/", userControllers.RegisterUser(db))
			limited.POST("/login/", userControllers.LoginUser(db))
			limited.POST("/verify-email/", userControllers.VerifyEmail(db))
			limited.POST("/forgot-password/", userControllers.ForgotPassword(db))
			limited.POST("/reset-password/", userControllers.ResetPassword(db))
		}

		users.GET("/:id", userControllers.GetUserByID(db))
	}
}
