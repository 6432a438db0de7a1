package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Vote records one user's up- or down-vote on a product. Up- and down-votes
// live in separate collections; both carry a unique (email, product_id)
// index so a user can cast at most one vote of each kind per product.
type Vote struct {
	ID          bson.ObjectID `bson:"_id,omitempty"          json:"_id,omitempty"`
	Email       string        `bson:"email"                  json:"email"`
	ProductID   string        `bson:"product_id"             json:"product_id"`
	ProductName string        `bson:"product_name,omitempty" json:"product_name,omitempty"`
	Time        string        `bson:"time,omitempty"         json:"time,omitempty"`
}
