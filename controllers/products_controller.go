package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/princinho/amanatbackend/dto"
	"github.com/princinho/amanatbackend/models"
	"github.com/princinho/amanatbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const newArrivalsLimit = 10

func GetProducts(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.RespondList(c, http.StatusOK, "products", products, len(products))
	}
}

func GetProductsByCollection(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		productsCol := app.DB.Collection("products")
		collectionsCol := app.DB.Collection("collections")

		slug := strings.TrimSpace(c.Param("slug"))

		products := make([]models.Product, 0)

		// An unknown collection slug yields an empty 200 list: every product
		// fails the slug match, none survives.
		var collection models.Collection
		if err := collectionsCol.FindOne(ctx, bson.M{"slug": slug}).Decode(&collection); err != nil {
			utils.RespondList(c, http.StatusOK, "products", products, 0)
			return
		}

		cursor, err := productsCol.Find(ctx, bson.M{"collectionId": collection.ID})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		defer cursor.Close(ctx)

		if err := cursor.All(ctx, &products); err != nil {
			utils.RespondError(c, err)
			return
		}

		ref := &models.CollectionRef{ID: collection.ID, Name: collection.Name, Slug: collection.Slug}
		for i := range products {
			products[i].Collection = ref
		}

		utils.RespondList(c, http.StatusOK, "products", products, len(products))
	}
}

func GetFeaturedProducts(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		cursor, err := col.Find(ctx, bson.M{"featured": true})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			utils.RespondError(c, err)
			return
		}

		if err := attachCollectionRefs(ctx, app, products); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.RespondList(c, http.StatusOK, "products", products, len(products))
	}
}

func GetNewArrivals(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(newArrivalsLimit)

		cursor, err := col.Find(ctx, bson.M{"isNewArrival": true}, opts)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			utils.RespondError(c, err)
			return
		}

		if err := attachCollectionRefs(ctx, app, products); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.RespondList(c, http.StatusOK, "products", products, len(products))
	}
}

func GetProductBySlug(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		slug := strings.TrimSpace(c.Param("slug"))

		var product models.Product
		if err := col.FindOne(ctx, bson.M{"slug": slug}).Decode(&product); err != nil {
			utils.RespondError(c, utils.NotFound("Product not found"))
			return
		}

		products := []models.Product{product}
		if err := attachCollectionRefs(ctx, app, products); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.Respond(c, http.StatusOK, "product", products[0])
	}
}

func GetProductByID(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid product id"))
			return
		}

		var product models.Product
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
			utils.RespondError(c, utils.NotFound("Product not found"))
			return
		}

		products := []models.Product{product}
		if err := attachCollectionRefs(ctx, app, products); err != nil {
			utils.RespondError(c, err)
			return
		}

		utils.Respond(c, http.StatusOK, "product", products[0])
	}
}

// CreateProduct handles the admin multipart create: a "data" JSON field plus
// one to ten "images" files. Validation happens before any upload or insert.
func CreateProduct(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		dataStr := c.PostForm("data")
		if dataStr == "" {
			utils.RespondError(c, utils.BadRequest("Missing data field"))
			return
		}

		var body dto.CreateProductDTO
		if err := binding.JSON.BindBody([]byte(dataStr), &body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		collectionID, err := bson.ObjectIDFromHex(body.CollectionID)
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid collection id"))
			return
		}
		collectionsCol := app.DB.Collection("collections")
		if err := collectionsCol.FindOne(ctx, bson.M{"_id": collectionID}).Err(); err != nil {
			utils.RespondError(c, utils.BadRequest("Collection does not exist"))
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid multipart form"))
			return
		}
		files := form.File["images"]
		if err := utils.ValidateImages(files); err != nil {
			utils.RespondError(c, utils.BadRequest(err.Error()))
			return
		}

		imageURLs, err := app.Media.UploadImages(ctx, files)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		now := time.Now().UTC()
		product := models.Product{
			Name:             strings.TrimSpace(body.Name),
			Slug:             utils.GenerateSlug(body.Name),
			CollectionID:     collectionID,
			Description:      body.Description,
			Materials:        orEmpty(body.Materials),
			CareInstructions: body.CareInstructions,
			Images:           imageURLs,
			Featured:         body.Featured,
			Tags:             orEmpty(body.Tags),
			Category:         models.ProductCategory(body.Category),
			Price:            body.Price,
			IsNewArrival:     body.IsNewArrival,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		res, err := col.InsertOne(ctx, product)
		if err != nil {
			// best-effort cleanup of the just-uploaded images
			app.Media.DestroyImages(ctx, imageURLs)
			if utils.IsDuplicateKey(err) {
				utils.RespondError(c, utils.Conflict("A product with this name already exists"))
				return
			}
			utils.RespondError(c, err)
			return
		}
		product.ID = res.InsertedID.(bson.ObjectID)

		utils.Respond(c, http.StatusCreated, "product", product)
	}
}

// UpdateProduct merges a partial "data" payload and optionally swaps images:
// new files are uploaded, URLs listed in removedImages are detached and then
// destroyed best effort after the document write commits.
func UpdateProduct(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid product id"))
			return
		}

		dataStr := c.PostForm("data")
		if dataStr == "" {
			utils.RespondError(c, utils.BadRequest("Missing data field"))
			return
		}

		var body dto.UpdateProductDTO
		if err := binding.JSON.BindBody([]byte(dataStr), &body); err != nil {
			utils.RespondError(c, utils.BindingError(err))
			return
		}

		var product models.Product
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
			utils.RespondError(c, utils.NotFound("Product not found"))
			return
		}

		// Only URLs that actually belong to the product may be removed.
		imagesToDelete := utils.IntersectStrings(body.RemovedImages, product.Images)

		var uploads []string
		if form, ferr := c.MultipartForm(); ferr == nil && form != nil && len(form.File["images"]) > 0 {
			files := form.File["images"]
			if len(product.Images)-len(imagesToDelete)+len(files) > utils.MaxImagesPerUpload {
				utils.RespondError(c, utils.BadRequest(utils.ErrTooManyImages.Error()))
				return
			}
			if err := utils.ValidateImages(files); err != nil {
				utils.RespondError(c, utils.BadRequest(err.Error()))
				return
			}
			uploads, err = app.Media.UploadImages(ctx, files)
			if err != nil {
				utils.RespondError(c, err)
				return
			}
		}

		mergedImages := utils.MergeImageURLs(product.Images, imagesToDelete, uploads)
		if len(mergedImages) == 0 {
			app.Media.DestroyImages(ctx, uploads)
			utils.RespondError(c, utils.BadRequest("At least one image is required"))
			return
		}

		set := bson.M{}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				app.Media.DestroyImages(ctx, uploads)
				utils.RespondError(c, utils.BadRequest("Name cannot be empty"))
				return
			}
			set["name"] = name
			set["slug"] = utils.GenerateSlug(name)
		}
		if body.CollectionID != nil {
			collectionID, cerr := bson.ObjectIDFromHex(*body.CollectionID)
			if cerr != nil {
				app.Media.DestroyImages(ctx, uploads)
				utils.RespondError(c, utils.BadRequest("Invalid collection id"))
				return
			}
			set["collectionId"] = collectionID
		}
		if body.Description != nil {
			set["description"] = *body.Description
		}
		if body.Materials != nil {
			set["materials"] = *body.Materials
		}
		if body.CareInstructions != nil {
			set["careInstructions"] = *body.CareInstructions
		}
		if body.Featured != nil {
			set["featured"] = *body.Featured
		}
		if body.Tags != nil {
			set["tags"] = *body.Tags
		}
		if body.Category != nil {
			set["category"] = *body.Category
		}
		if body.Price != nil {
			set["price"] = *body.Price
		}
		if body.IsNewArrival != nil {
			set["isNewArrival"] = *body.IsNewArrival
		}
		if len(imagesToDelete) > 0 || len(uploads) > 0 {
			set["images"] = mergedImages
		}

		if len(set) == 0 {
			utils.RespondError(c, utils.BadRequest("No updates provided"))
			return
		}
		set["updatedAt"] = time.Now().UTC()

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var updated models.Product
		err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
		if err != nil {
			app.Media.DestroyImages(ctx, uploads)
			if errors.Is(err, mongo.ErrNoDocuments) {
				utils.RespondError(c, utils.NotFound("Product not found"))
				return
			}
			if utils.IsDuplicateKey(err) {
				utils.RespondError(c, utils.Conflict("A product with this name already exists"))
				return
			}
			utils.RespondError(c, err)
			return
		}

		// Document write committed; detached images are cleaned up best
		// effort only.
		if len(imagesToDelete) > 0 {
			app.Media.DestroyImages(ctx, imagesToDelete)
		}

		utils.Respond(c, http.StatusOK, "product", updated)
	}
}

func AddToNewArrivals(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid product id"))
			return
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		update := bson.M{"$set": bson.M{"isNewArrival": true, "updatedAt": time.Now().UTC()}}

		var product models.Product
		if err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&product); err != nil {
			utils.RespondError(c, utils.NotFound("Product not found"))
			return
		}

		utils.Respond(c, http.StatusOK, "product", product)
	}
}

// DeleteProduct removes the document and then cleans its images off the
// media store. The deletion succeeds even when the remote cleanup fails.
func DeleteProduct(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := app.DB.Collection("products")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid product id"))
			return
		}

		var product models.Product
		if err := col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
			utils.RespondError(c, utils.NotFound("Product not found"))
			return
		}

		if len(product.Images) > 0 {
			app.Media.DestroyImages(ctx, product.Images)
		}

		utils.RespondNoContent(c)
	}
}

// attachCollectionRefs resolves the referenced collections in one query and
// fills the embedded summary on each product. Dangling references are left
// nil rather than treated as errors.
func attachCollectionRefs(ctx context.Context, app *App, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	seen := make(map[bson.ObjectID]struct{}, len(products))
	ids := make([]bson.ObjectID, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.CollectionID]; !ok {
			seen[p.CollectionID] = struct{}{}
			ids = append(ids, p.CollectionID)
		}
	}

	cursor, err := app.DB.Collection("collections").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	refs := make(map[bson.ObjectID]*models.CollectionRef)
	var collection models.Collection
	for cursor.Next(ctx) {
		if err := cursor.Decode(&collection); err != nil {
			return err
		}
		refs[collection.ID] = &models.CollectionRef{
			ID:   collection.ID,
			Name: collection.Name,
			Slug: collection.Slug,
		}
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	for i := range products {
		products[i].Collection = refs[products[i].CollectionID]
	}
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
