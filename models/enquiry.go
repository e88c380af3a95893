package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Enquiry struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Message   string        `bson:"message" json:"message"`
	ProductID bson.ObjectID `bson:"productId" json:"productId"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`

	ProductInfo *ProductRef `bson:"-" json:"productInfo,omitempty"`
}
