package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/amanatbackend/dto"
	"github.com/princinho/amanatbackend/models"
	"github.com/princinho/amanatbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetCollections(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("collections")

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		defer cursor.Close(ctx)

		collections := make([]models.Collection, 0)
		if err := cursor.All(ctx, &collections); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.RespondList(c, http.StatusOK, "collections", collections, len(collections))
	}
}

func GetCollectionBySlug(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("collections")

		slug := strings.TrimSpace(c.Param("slug"))

		var collection models.Collection
		if err := col.FindOne(ctx, bson.M{"slug": slug}).Decode(&collection); err != nil {
			utils.RespondError(c, utils.NotFound("Collection not found"))
			return
		}

		utils.Respond(c, http.StatusOK, "collection", collection)
	}
}

func GetCollectionByID(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("collections")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid collection id"))
			return
		}

		var collection models.Collection
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&collection); err != nil {
			utils.RespondError(c, utils.NotFound("Collection not found"))
			return
		}

		utils.Respond(c, http.StatusOK, "collection", collection)
	}
}

func CreateCollection(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("collections")

		var body dto.CreateCollectionDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		now := time.Now().UTC()
		collection := models.Collection{
			Name:        strings.TrimSpace(body.Name),
			Slug:        utils.GenerateSlug(body.Name),
			Description: body.Description,
			HeroImage:   body.HeroImage,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		res, err := col.InsertOne(ctx, collection)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				utils.RespondError(c, utils.Conflict("A collection with this name already exists"))
				return
			}
			utils.RespondError(c, err)
			return
		}
		collection.ID = res.InsertedID.(bson.ObjectID)

		utils.Respond(c, http.StatusCreated, "collection", collection)
	}
}

func UpdateCollection(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("collections")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid collection id"))
			return
		}

		var body dto.UpdateCollectionDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		set := bson.M{}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				utils.RespondError(c, utils.BadRequest("Name cannot be empty"))
				return
			}
			set["name"] = name
			set["slug"] = utils.GenerateSlug(name)
		}
		if body.Description != nil {
			set["description"] = *body.Description
		}
		if body.HeroImage != nil {
			set["heroImage"] = *body.HeroImage
		}

		if len(set) == 0 {
			utils.RespondError(c, utils.BadRequest("No updates provided"))
			return
		}
		set["updatedAt"] = time.Now().UTC()

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var collection models.Collection
		err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&collection)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				utils.RespondError(c, utils.NotFound("Collection not found"))
				return
			}
			if utils.IsDuplicateKey(err) {
				utils.RespondError(c, utils.Conflict("A collection with this name already exists"))
				return
			}
			utils.RespondError(c, err)
			return
		}

		utils.Respond(c, http.StatusOK, "collection", collection)
	}
}

func DeleteCollection(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("collections")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid collection id"))
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if res.DeletedCount == 0 {
			utils.RespondError(c, utils.NotFound("Collection not found"))
			return
		}

		utils.RespondNoContent(c)
	}
}
