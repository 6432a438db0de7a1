package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Report flags a product for moderator attention.
type Report struct {
	ID            bson.ObjectID `bson:"_id,omitempty"           json:"_id,omitempty"`
	ProductID     string        `bson:"product_id,omitempty"    json:"product_id,omitempty"`
	ProductName   string        `bson:"product_name,omitempty"  json:"product_name,omitempty"`
	ReporterEmail string        `bson:"reporterEmail,omitempty" json:"reporterEmail,omitempty"`
	Reason        string        `bson:"reason,omitempty"        json:"reason,omitempty"`
	Time          string        `bson:"time,omitempty"          json:"time,omitempty"`
}
