package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Payment records a completed premium-placement charge. The transaction ID
// comes back from the payment provider; the document itself is the only
// record this service keeps.
type Payment struct {
	ID            bson.ObjectID `bson:"_id,omitempty"           json:"_id,omitempty"`
	Email         string        `bson:"email"                   json:"email"`
	Price         float64       `bson:"price"                   json:"price"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string        `bson:"date,omitempty"          json:"date,omitempty"`
	Status        string        `bson:"status,omitempty"        json:"status,omitempty"`
}
