package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feature is a product promoted to the featured list by a moderator. It is a
// denormalized copy of the product document at promotion time, not a
// reference to it.
type Feature struct {
	ID          bson.ObjectID `bson:"_id,omitempty"          json:"_id,omitempty"`
	ProductID   string        `bson:"product_id,omitempty"   json:"product_id,omitempty"`
	ProductName string        `bson:"product_name"           json:"product_name"`
	PhotoURL    string        `bson:"photoURL,omitempty"     json:"photoURL,omitempty"`
	Description string        `bson:"description,omitempty"  json:"description,omitempty"`
	Tags        []ProductTag  `bson:"tags,omitempty"         json:"tags,omitempty"`
	OwnerEmail  string        `bson:"OwnerEmail,omitempty"   json:"OwnerEmail,omitempty"`
	Time        string        `bson:"time,omitempty"         json:"time,omitempty"`
}
