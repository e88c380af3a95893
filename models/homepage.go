package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// HomepageContent is a singleton document: at most one record exists.
type HomepageContent struct {
	ID                       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	HeroTitle                string        `bson:"heroTitle" json:"heroTitle"`
	HeroSubtitle             string        `bson:"heroSubtitle" json:"heroSubtitle"`
	HeroImage                string        `bson:"heroImage" json:"heroImage"`
	BrandStoryShort          string        `bson:"brandStoryShort" json:"brandStoryShort"`
	CraftsmanshipTitle       string        `bson:"craftsmanshipTitle" json:"craftsmanshipTitle"`
	CraftsmanshipDescription string        `bson:"craftsmanshipDescription" json:"craftsmanshipDescription"`
	CraftsmanshipImage       string        `bson:"craftsmanshipImage" json:"craftsmanshipImage"`
	CreatedAt                time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt                time.Time     `bson:"updatedAt" json:"updatedAt"`
}
