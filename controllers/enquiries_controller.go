package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princinho/amanatbackend/dto"
	"github.com/princinho/amanatbackend/models"
	"github.com/princinho/amanatbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateEnquiry is the only public enquiry endpoint. All four fields are
// required; the first missing one is named in the 400.
func CreateEnquiry(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("enquiries")

		var body dto.CreateEnquiryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		productID, err := bson.ObjectIDFromHex(body.ProductID)
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid product id"))
			return
		}

		now := time.Now().UTC()
		enquiry := models.Enquiry{
			Name:      strings.TrimSpace(body.Name),
			Email:     strings.ToLower(strings.TrimSpace(body.Email)),
			Message:   body.Message,
			ProductID: productID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		res, err := col.InsertOne(ctx, enquiry)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		enquiry.ID = res.InsertedID.(bson.ObjectID)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Enquiry submitted successfully",
			"data":    gin.H{"enquiry": enquiry},
		})
	}
}

func GetEnquiries(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("enquiries")

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		defer cursor.Close(ctx)

		enquiries := make([]models.Enquiry, 0)
		if err := cursor.All(ctx, &enquiries); err != nil {
			utils.RespondError(c, err)
			return
		}

		if err := attachEnquiryProducts(ctx, app, enquiries); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.RespondList(c, http.StatusOK, "enquiries", enquiries, len(enquiries))
	}
}

func GetEnquiryByID(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("enquiries")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid enquiry id"))
			return
		}

		var enquiry models.Enquiry
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&enquiry); err != nil {
			utils.RespondError(c, utils.NotFound("Enquiry not found"))
			return
		}

		enquiries := []models.Enquiry{enquiry}
		if err := attachEnquiryProducts(ctx, app, enquiries); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.Respond(c, http.StatusOK, "enquiry", enquiries[0])
	}
}

func DeleteEnquiry(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("enquiries")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid enquiry id"))
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if res.DeletedCount == 0 {
			utils.RespondError(c, utils.NotFound("Enquiry not found"))
			return
		}

		utils.RespondNoContent(c)
	}
}

func attachEnquiryProducts(ctx context.Context, app *App, enquiries []models.Enquiry) error {
	ids := make([]bson.ObjectID, 0, len(enquiries))
	seen := make(map[bson.ObjectID]struct{}, len(enquiries))
	for _, e := range enquiries {
		if _, ok := seen[e.ProductID]; !ok {
			seen[e.ProductID] = struct{}{}
			ids = append(ids, e.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	refs, err := loadProductRefs(ctx, app, ids)
	if err != nil {
		return err
	}

	for i := range enquiries {
		enquiries[i].ProductInfo = refs[enquiries[i].ProductID]
	}
	return nil
}
