package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WishlistItem lives in the MongoDB "wishlist" collection, not in the
// relational schema. UserID references the relational user id; there is no
// transactional link between the two stores.
type WishlistItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      uint               `bson:"user_id" json:"user_id"`
	ProductName string             `bson:"product_name" json:"product_name"`
	Priority    int                `bson:"priority" json:"priority"`
}
