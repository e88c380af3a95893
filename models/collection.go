package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Collection struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Slug        string        `bson:"slug" json:"slug"`
	Description string        `bson:"description" json:"description"`
	HeroImage   string        `bson:"heroImage" json:"heroImage"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// CollectionRef is the summary embedded in product responses in place of the
// raw collection id.
type CollectionRef struct {
	ID   bson.ObjectID `bson:"_id" json:"id"`
	Name string        `bson:"name" json:"name"`
	Slug string        `bson:"slug" json:"slug"`
}
