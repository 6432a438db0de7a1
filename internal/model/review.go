package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Review is a user's review of a product.
type Review struct {
	ID            bson.ObjectID `bson:"_id,omitempty"           json:"_id,omitempty"`
	ProductID     string        `bson:"product_id,omitempty"    json:"product_id,omitempty"`
	ReviewerName  string        `bson:"reviewerName,omitempty"  json:"reviewerName,omitempty"`
	ReviewerEmail string        `bson:"reviewerEmail,omitempty" json:"reviewerEmail,omitempty"`
	ReviewerImage string        `bson:"reviewerImage,omitempty" json:"reviewerImage,omitempty"`
	Description   string        `bson:"description,omitempty"   json:"description,omitempty"`
	Rating        float64       `bson:"rating,omitempty"        json:"rating,omitempty"`
	Time          string        `bson:"time,omitempty"          json:"time,omitempty"`
}
