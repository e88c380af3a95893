package dto

type CreateHomepageDTO struct {
	HeroTitle                string `json:"heroTitle" binding:"required"`
	HeroSubtitle             string `json:"heroSubtitle" binding:"required"`
	HeroImage                string `json:"heroImage" binding:"required"`
	BrandStoryShort          string `json:"brandStoryShort" binding:"required"`
	CraftsmanshipTitle       string `json:"craftsmanshipTitle" binding:"required"`
	CraftsmanshipDescription string `json:"craftsmanshipDescription" binding:"required"`
	CraftsmanshipImage       string `json:"craftsmanshipImage" binding:"required"`
}

type UpdateHomepageDTO struct {
	HeroTitle                *string `json:"heroTitle"`
	HeroSubtitle             *string `json:"heroSubtitle"`
	HeroImage                *string `json:"heroImage"`
	BrandStoryShort          *string `json:"brandStoryShort"`
	CraftsmanshipTitle       *string `json:"craftsmanshipTitle"`
	CraftsmanshipDescription *string `json:"craftsmanshipDescription"`
	CraftsmanshipImage       *string `json:"craftsmanshipImage"`
}
