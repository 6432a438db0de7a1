package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Coupon is a discount code for premium placement, managed by admins.
type Coupon struct {
	ID             bson.ObjectID `bson:"_id,omitempty"            json:"_id,omitempty"`
	Code           string        `bson:"code"                     json:"code"`
	ExpiryDate     string        `bson:"expiryDate,omitempty"     json:"expiryDate,omitempty"`
	Description    string        `bson:"description,omitempty"    json:"description,omitempty"`
	DiscountAmount float64       `bson:"discountAmount,omitempty" json:"discountAmount,omitempty"`
}
