package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ProductCategory string

const (
	CategoryJewelry ProductCategory = "jewelry"
	CategoryBroche  ProductCategory = "broche"
)

type Product struct {
	ID               bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name             string          `bson:"name" json:"name"`
	Slug             string          `bson:"slug" json:"slug"`
	CollectionID     bson.ObjectID   `bson:"collectionId" json:"collectionId"`
	Description      string          `bson:"description" json:"description"`
	Materials        []string        `bson:"materials" json:"materials"`
	CareInstructions string          `bson:"careInstructions" json:"careInstructions"`
	Images           []string        `bson:"images" json:"images"`
	Featured         bool            `bson:"featured" json:"featured"`
	Tags             []string        `bson:"tags" json:"tags"`
	Category         ProductCategory `bson:"category" json:"category"`
	Price            float64         `bson:"price" json:"price"`
	IsNewArrival     bool            `bson:"isNewArrival" json:"isNewArrival"`
	CreatedAt        time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time       `bson:"updatedAt" json:"updatedAt"`

	// Collection is filled by handlers that resolve the reference; it is
	// never written to the products collection itself.
	Collection *CollectionRef `bson:"-" json:"collection,omitempty"`
}
