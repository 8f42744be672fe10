package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/maheshrc27/engagement-api/internal/api/handlers"
	"github.com/maheshrc27/engagement-api/internal/api/middleware"
	"github.com/maheshrc27/engagement-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Posts       service.PostService
	Products    service.ProductService
	Collections service.CollectionService
	Analytics   service.AnalyticsService
	Assets      service.AssetService
	DB          handlers.Pinger
	Registry    *prometheus.Registry
	CorsOrigins string
	// DisableLogger silences the per-request access log.
	DisableLogger bool
}

func NewServer(d Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    10 * 1024 * 1024, // 10 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				slog.Error(err.Error())
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	if !d.DisableLogger {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.CorsOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	if d.Registry != nil {
		metrics := middleware.NewMetricsMiddleware(d.Registry)
		app.Use(metrics.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	v := handlers.NewValidator()

	if d.DB != nil {
		health := handlers.NewHealthHandler(d.DB)
		app.Get("/health", health.Health)
	}

	post := handlers.NewPostHandler(d.Posts, v)
	app.Get("/posts/:tenant_id", post.GetPosts)
	app.Post("/posts/", post.CreatePost)
	app.Post("/posts/:post_id/products", post.MapProducts)
	app.Post("/post-contents/", post.CreatePostContent)
	app.Get("/post-contents/:story_id", post.ListStoryContent)

	product := handlers.NewProductHandler(d.Products, d.Assets, v)
	app.Post("/products/images", product.UploadProductImage)
	app.Post("/products/", product.CreateProduct)

	collection := handlers.NewCollectionHandler(d.Collections)
	app.Post("/collections/", collection.CreateCollection)

	analytics := handlers.NewAnalyticsHandler(d.Analytics)
	app.Get("/top-viewed-posts/:tenant_id", analytics.TopViewedPosts)
	app.Get("/top-viewed-products/:tenant_id", analytics.TopViewedProducts)

	return app
}
