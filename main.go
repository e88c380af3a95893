package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/princinho/amanatbackend/config"
	"github.com/princinho/amanatbackend/controllers"
	"github.com/princinho/amanatbackend/database"
	"github.com/princinho/amanatbackend/middleware"
	"github.com/princinho/amanatbackend/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.Connect(ctx, cfg.DatabaseURI, cfg.DatabaseName)
	if err != nil {
		cancel()
		log.Fatal(err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()
	log.Println("Connected to AMANAT database")

	media, err := utils.NewMediaStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatal(err)
	}

	app := &controllers.App{DB: db, Media: media, Cfg: cfg}

	r := buildRouter(app)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop, stopCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopCancel()
	<-stop.Done()

	log.Println("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("server shutdown:", err)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		log.Println("mongo disconnect:", err)
	}
}

func buildRouter(app *controllers.App) *gin.Engine {
	r := gin.New()

	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if app.Cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, app.Cfg.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, utils.NotFound("Route not found"))
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from Amanat backend"})
	})

	api := r.Group("/api/v1/amanat")

	collections := api.Group("/collections")
	{
		collections.GET("", controllers.GetCollections(app))
		collections.GET("/slug/:slug", controllers.GetCollectionBySlug(app))
		collections.GET("/id/:id", controllers.GetCollectionByID(app))
	}

	products := api.Group("/products")
	{
		products.GET("", controllers.GetProducts(app))
		products.GET("/collection/:slug", controllers.GetProductsByCollection(app))
		products.GET("/featured", controllers.GetFeaturedProducts(app))
		products.GET("/new-arrivals", controllers.GetNewArrivals(app))
		products.GET("/slug/:slug", controllers.GetProductBySlug(app))
		products.GET("/:id", controllers.GetProductByID(app))
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", controllers.GetReviews(app))
		reviews.GET("/product/:id", controllers.GetReviewsByProduct(app))
		reviews.GET("/:id", controllers.GetReviewByID(app))
		reviews.POST("", controllers.CreateReview(app))
	}

	api.POST("/enquiries", controllers.CreateEnquiry(app))
	api.GET("/homepage", controllers.GetHomepage(app))

	api.POST("/realSilver/login", controllers.AdminLogin(app))

	admin := api.Group("/realSilver")
	admin.Use(middleware.AdminAuth(app.Cfg.JWTSecret))
	{
		admin.POST("/collections", controllers.CreateCollection(app))
		admin.PATCH("/collections/:id", controllers.UpdateCollection(app))
		admin.DELETE("/collections/:id", controllers.DeleteCollection(app))

		admin.POST("/products", controllers.CreateProduct(app))
		admin.PATCH("/products/add-to-new-arrivals/:id", controllers.AddToNewArrivals(app))
		admin.PATCH("/products/:id", controllers.UpdateProduct(app))
		admin.DELETE("/products/:id", controllers.DeleteProduct(app))

		admin.PATCH("/reviews/:id", controllers.UpdateReview(app))
		admin.DELETE("/reviews/:id", controllers.DeleteReview(app))

		admin.GET("/enquiries", controllers.GetEnquiries(app))
		admin.GET("/enquiries/:id", controllers.GetEnquiryByID(app))
		admin.DELETE("/enquiries/:id", controllers.DeleteEnquiry(app))

		admin.POST("/homepage", controllers.CreateHomepage(app))
		admin.PATCH("/homepage/:id", controllers.UpdateHomepageByID(app))
		admin.PATCH("/homepage", controllers.UpdateHomepage(app))
	}

	return r
}
