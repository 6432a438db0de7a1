package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ProductStatus tracks a submission through moderation.
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusAccepted ProductStatus = "accepted"
	ProductStatusRejected ProductStatus = "rejected"
	ProductStatusFeatured ProductStatus = "featured"
)

// ProductTag is a single tag attached to a product. The text field is what
// the public search endpoint matches against.
type ProductTag struct {
	ID   string `bson:"id,omitempty" json:"id,omitempty"`
	Text string `bson:"text"         json:"text"`
}

// Product is a showcased submission. Owner fields are plain strings with no
// referential link to the users collection. The field casing mirrors the
// stored documents, which predate this service.
type Product struct {
	ID           bson.ObjectID `bson:"_id,omitempty"          json:"_id,omitempty"`
	ProductName  string        `bson:"product_name"           json:"product_name"`
	PhotoURL     string        `bson:"photoURL,omitempty"     json:"photoURL,omitempty"`
	Description  string        `bson:"description,omitempty"  json:"description,omitempty"`
	ExternalLink string        `bson:"externalLink,omitempty" json:"externalLink,omitempty"`
	Tags         []ProductTag  `bson:"tags,omitempty"         json:"tags,omitempty"`
	Status       ProductStatus `bson:"status,omitempty"       json:"status,omitempty"`
	OwnerEmail   string        `bson:"OwnerEmail,omitempty"   json:"OwnerEmail,omitempty"`
	OwnerName    string        `bson:"OwnerName,omitempty"    json:"OwnerName,omitempty"`
	OwnerImage   string        `bson:"OwnerImage,omitempty"   json:"OwnerImage,omitempty"`
	Time         string        `bson:"time,omitempty"         json:"time,omitempty"`
	UpVotes      int32         `bson:"upVote,omitempty"       json:"upVote,omitempty"`
	DownVotes    int32         `bson:"downVote,omitempty"     json:"downVote,omitempty"`
}
