package wishlistControllers

import (
	"context"
	"net/http"
	"time"

	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const mongoTimeout = 5 * time.Second

type CreateWishlistInput struct {
	UserID      uint   `json:"user_id" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
	Priority    int    `json:"priority"`
}

// POST /wishlist/
func CreateWishlistItem(coll *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Priority == 0 {
			input.Priority = 1
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), mongoTimeout)
		defer cancel()

		item := models.WishlistItem{
			ID:          primitive.NewObjectID(),
			UserID:      input.UserID,
			ProductName: input.ProductName,
			Priority:    input.Priority,
		}
		if _, err := coll.InsertOne(ctx, item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wishlist item"})
			return
		}

		var created models.WishlistItem
		if err := coll.FindOne(ctx, bson.M{"_id": item.ID}).Decode(&created); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read back wishlist item"})
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

// GET /wishlist/
func ListWishlistItems(coll *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), mongoTimeout)
		defer cancel()

		cursor, err := coll.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		defer cursor.Close(ctx)

		items := []models.WishlistItem{}
		if err := cursor.All(ctx, &items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode wishlist"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// DELETE /wishlist/:id
func DeleteWishlistItem(coll *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist item ID"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), mongoTimeout)
		defer cancel()

		result, err := coll.DeleteOne(ctx, bson.M{"_id": objectID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wishlist item"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Wishlist item deleted"})
	}
}
