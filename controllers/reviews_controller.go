package controllers

import (
	"context"
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

func GetReviews(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("reviews")

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		defer cursor.Close(ctx)

		reviews := make([]models.Review, 0)
		if err := cursor.All(ctx, &reviews); err != nil {
			utils.RespondError(c, err)
			return
		}

		if err := attachReviewProducts(ctx, app, reviews); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.RespondList(c, http.StatusOK, "reviews", reviews, len(reviews))
	}
}

func GetReviewsByProduct(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("reviews")

		productID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid product id"))
			return
		}

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, bson.M{"product": productID}, opts)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		defer cursor.Close(ctx)

		reviews := make([]models.Review, 0)
		if err := cursor.All(ctx, &reviews); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.RespondList(c, http.StatusOK, "reviews", reviews, len(reviews))
	}
}

func GetReviewByID(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("reviews")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid review id"))
			return
		}

		var review models.Review
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
			utils.RespondError(c, utils.NotFound("Review not found"))
			return
		}

		reviews := []models.Review{review}
		if err := attachReviewProducts(ctx, app, reviews); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.Respond(c, http.StatusOK, "review", reviews[0])
	}
}

func CreateReview(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("reviews")

		var body dto.CreateReviewDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		now := time.Now().UTC()
		review := models.Review{
			Name:      strings.TrimSpace(body.Name),
			Location:  strings.TrimSpace(body.Location),
			Rating:    body.Rating,
			Text:      body.Text,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if body.Product != "" {
			productID, err := bson.ObjectIDFromHex(body.Product)
			if err != nil {
				utils.RespondError(c, utils.BadRequest("Invalid product id"))
				return
			}
			review.Product = &productID
		}

		res, err := col.InsertOne(ctx, review)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		review.ID = res.InsertedID.(bson.ObjectID)

		utils.Respond(c, http.StatusCreated, "review", review)
	}
}

func UpdateReview(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("reviews")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid review id"))
			return
		}

		var body dto.UpdateReviewDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		set := bson.M{}
		if body.Name != nil {
			set["name"] = strings.TrimSpace(*body.Name)
		}
		if body.Location != nil {
			set["location"] = strings.TrimSpace(*body.Location)
		}
		if body.Rating != nil {
			set["rating"] = *body.Rating
		}
		if body.Text != nil {
			set["text"] = *body.Text
		}

		if len(set) == 0 {
			utils.RespondError(c, utils.BadRequest("No updates provided"))
			return
		}
		set["updatedAt"] = time.Now().UTC()

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var review models.Review
		err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&review)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				utils.RespondError(c, utils.NotFound("Review not found"))
				return
			}
			utils.RespondError(c, err)
			return
		}

		utils.Respond(c, http.StatusOK, "review", review)
	}
}

func DeleteReview(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("reviews")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid review id"))
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if res.DeletedCount == 0 {
			utils.RespondError(c, utils.NotFound("Review not found"))
			return
		}

		utils.RespondNoContent(c)
	}
}

func attachReviewProducts(ctx context.Context, app *App, reviews []models.Review) error {
	ids := make([]bson.ObjectID, 0, len(reviews))
	seen := make(map[bson.ObjectID]struct{}, len(reviews))
	for _, r := range reviews {
		if r.Product == nil {
			continue
		}
		if _, ok := seen[*r.Product]; !ok {
			seen[*r.Product] = struct{}{}
			ids = append(ids, *r.Product)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	refs, err := loadProductRefs(ctx, app, ids)
	if err != nil {
		return err
	}

	for i := range reviews {
		if reviews[i].Product != nil {
			reviews[i].ProductInfo = refs[*reviews[i].Product]
		}
	}
	return nil
}

// loadProductRefs fetches the name/slug/images summaries for the given ids.
func loadProductRefs(ctx context.Context, app *App, ids []bson.ObjectID) (map[bson.ObjectID]*models.ProductRef, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1, "slug": 1, "images": 1})

	cursor, err := app.DB.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	refs := make(map[bson.ObjectID]*models.ProductRef, len(ids))
	var ref models.ProductRef
	for cursor.Next(ctx) {
		if err := cursor.Decode(&ref); err != nil {
			return nil, err
		}
		r := ref
		refs[r.ID] = &r
	}
	return refs, cursor.Err()
}
