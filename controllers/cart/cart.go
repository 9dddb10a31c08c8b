package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	orderControllers "github.com/bilalhossainshah/ecommerce-api/controllers/order"
	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// getOrCreatePendingOrder looks up the user's Pending order and creates one
// when absent. Look-up-or-create, no locking: the one-pending-order-per-user
// invariant can race under concurrent requests.
func getOrCreatePendingOrder(db *gorm.DB, userID uint) (*models.Order, error) {
	var order models.Order
	err := db.Where("user_id = ? AND status = ?", userID, models.OrderStatusPending).First(&order).Error
	if err == nil {
		return &order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	fullName := user.FullName
	if fullName == "" {
		fullName = "Anonymous user"
	}
	order = models.Order{
		UserID:   userID,
		FullName: fullName,
		Email:    user.Email,
		Status:   models.OrderStatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /cart/add-item/
func AddItemToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if !product.InStock {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is out of stock"})
			return
		}

		order, err := getOrCreatePendingOrder(db, currentUserID(c))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found when creating order"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		item := models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
			Price:     product.Price, // captured now, never re-read
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// GET /cart/:order_id/
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order (Cart) not found"})
			return
		}
		if order.UserID != currentUserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /cart/update-item/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		var item models.OrderItem
		if err := db.First(&item, itemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		var order models.Order
		if err := db.First(&order, item.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order (Cart) not found"})
			return
		}
		if order.UserID != currentUserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to modify this order"})
			return
		}

		if err := db.Model(&item).Update("quantity", input.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/remove-item/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var item models.OrderItem
		if err := db.First(&item, itemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		var order models.Order
		if err := db.First(&order, item.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order (Cart) not found"})
			return
		}
		if order.UserID != currentUserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to modify this order"})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// POST /cart/:order_id/checkout/
//
// No payment capture happens here: the order status flips to Processing and a
// synthetic confirmation is returned.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order (Cart) not found"})
			return
		}
		if order.UserID != currentUserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to checkout this order"})
			return
		}
		if order.Status != models.OrderStatusPending || len(order.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not process checkout"})
			return
		}

		if err := db.Model(&order).Update("status", models.OrderStatusProcessing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process checkout"})
			return
		}
		order.Status = models.OrderStatusProcessing

		orderControllers.BroadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{
			"order_id":           order.ID,
			"status":             order.Status,
			"tracking_number":    generateTrackingNumber(),
			"estimated_delivery": "5-7 business days",
		})
	}
}

func generateTrackingNumber() string {
	return "TRK-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}
