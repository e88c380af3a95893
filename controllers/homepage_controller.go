package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/amanatbackend/dto"
	"github.com/princinho/amanatbackend/models"
	"github.com/princinho/amanatbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetHomepage(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("homepage_content")

		var homepage models.HomepageContent
		if err := col.FindOne(ctx, bson.M{}).Decode(&homepage); err != nil {
			utils.RespondError(c, utils.NotFound("Homepage content not found"))
			return
		}

		utils.Respond(c, http.StatusOK, "homepage", homepage)
	}
}

// CreateHomepage enforces the singleton: creation fails once a document
// exists.
func CreateHomepage(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("homepage_content")

		if err := col.FindOne(ctx, bson.M{}).Err(); err == nil {
			utils.RespondError(c, utils.BadRequest("Homepage content already exists. Use update instead."))
			return
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondError(c, err)
			return
		}

		var body dto.CreateHomepageDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		now := time.Now().UTC()
		homepage := models.HomepageContent{
			HeroTitle:                body.HeroTitle,
			HeroSubtitle:             body.HeroSubtitle,
			HeroImage:                body.HeroImage,
			BrandStoryShort:          body.BrandStoryShort,
			CraftsmanshipTitle:       body.CraftsmanshipTitle,
			CraftsmanshipDescription: body.CraftsmanshipDescription,
			CraftsmanshipImage:       body.CraftsmanshipImage,
			CreatedAt:                now,
			UpdatedAt:                now,
		}

		res, err := col.InsertOne(ctx, homepage)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		homepage.ID = res.InsertedID.(bson.ObjectID)

		utils.Respond(c, http.StatusCreated, "homepage", homepage)
	}
}

func UpdateHomepageByID(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid homepage content id"))
			return
		}
		updateHomepageDoc(c, app, bson.M{"_id": id})
	}
}

// UpdateHomepage is the no-id variant: it updates the first (and only)
// document.
func UpdateHomepage(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		updateHomepageDoc(c, app, bson.M{})
	}
}

func updateHomepageDoc(c *gin.Context, app *App, filter bson.M) {
	ctx := c.Request.Context()
	col := app.DB.Collection("homepage_content")

	var body dto.UpdateHomepageDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	set := bson.M{}
	if body.HeroTitle != nil {
		set["heroTitle"] = *body.HeroTitle
	}
	if body.HeroSubtitle != nil {
		set["heroSubtitle"] = *body.HeroSubtitle
	}
	if body.HeroImage != nil {
		set["heroImage"] = *body.HeroImage
	}
	if body.BrandStoryShort != nil {
		set["brandStoryShort"] = *body.BrandStoryShort
	}
	if body.CraftsmanshipTitle != nil {
		set["craftsmanshipTitle"] = *body.CraftsmanshipTitle
	}
	if body.CraftsmanshipDescription != nil {
		set["craftsmanshipDescription"] = *body.CraftsmanshipDescription
	}
	if body.CraftsmanshipImage != nil {
		set["craftsmanshipImage"] = *body.CraftsmanshipImage
	}

	if len(set) == 0 {
		utils.RespondError(c, utils.BadRequest("No updates provided"))
		return
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var homepage models.HomepageContent
	err := col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&homepage)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondError(c, utils.NotFound("Homepage content not found. Create it first."))
			return
		}
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "homepage", homepage)
}
