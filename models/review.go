package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Review struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Location  string         `bson:"location" json:"location"`
	Rating    int            `bson:"rating" json:"rating"`
	Text      string         `bson:"text" json:"text"`
	Product   *bson.ObjectID `bson:"product,omitempty" json:"product,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`

	ProductInfo *ProductRef `bson:"-" json:"productInfo,omitempty"`
}

// ProductRef is the summary attached to reviews and enquiries that reference
// a product.
type ProductRef struct {
	ID     bson.ObjectID `bson:"_id" json:"id"`
	Name   string        `bson:"name" json:"name"`
	Slug   string        `bson:"slug" json:"slug"`
	Images []string      `bson:"images,omitempty" json:"images,omitempty"`
}
