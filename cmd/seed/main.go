package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/engagement-api/configs"
	"github.com/maheshrc27/engagement-api/internal/models"
	"github.com/maheshrc27/engagement-api/internal/repository"
)

func main() {
	tenantID := flag.Int64("tenant", 1, "tenant the posts belong to")
	posts := flag.Int("posts", 20, "number of posts to create")
	products := flag.Int("products", 10, "number of products to create")
	collection := flag.String("collection", "", "optional collection grouping every seeded post")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}
	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	productIDs, err := seedProducts(ctx, repository.NewProductRepository(db), *products)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	postIDs, err := seedPosts(ctx, repository.NewEngagementPostRepository(db), repository.NewProductMappingRepository(db), *tenantID, *posts, productIDs)
	if err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}

	if *collection != "" {
		cr := repository.NewCollectionRepository(db)
		if err := cr.CreateWithPosts(ctx, &models.Collection{CollectionName: *collection}, postIDs); err != nil {
			log.Fatalf("Failed to seed collection: %v", err)
		}
	}

	slog.Info("seed complete", "tenant_id", *tenantID, "posts", len(postIDs), "products", len(productIDs))
}

func seedProducts(ctx context.Context, pr repository.ProductRepository, n int) ([]int64, error) {
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		image := gofakeit.ImageURL(640, 640)
		shopping := gofakeit.URL()
		duration := int64(gofakeit.Number(15, 600))

		id, err := pr.Create(ctx, nil, &models.Product{
			ProductName:   gofakeit.ProductName(),
			ProductImage:  &image,
			SKUNumber:     fmt.Sprintf("SKU-%s", gofakeit.LetterN(10)),
			ShoppingURL:   &shopping,
			VideoDuration: &duration,
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedPosts(ctx context.Context, pr repository.EngagementPostRepository, pm repository.ProductMappingRepository, tenantID int64, n int, productIDs []int64) ([]int64, error) {
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		description := gofakeit.Sentence(12)
		title := gofakeit.Sentence(4)
		thumbnail := gofakeit.ImageURL(320, 568)
		shopping := gofakeit.URL()
		duration := int64(gofakeit.Number(10, 180))

		id, err := pr.Create(ctx, nil, &models.EngagementPost{
			TenantID:       tenantID,
			NumberOfLikes:  int64(gofakeit.Number(0, 5000)),
			NumberOfShares: int64(gofakeit.Number(0, 1000)),
			Description:    &description,
			CreatedBy:      gofakeit.Username(),
			ShoppingURL:    &shopping,
			ContentType:    gofakeit.RandomString([]string{"video", "image", "carousel"}),
			InfluencerID:   int64(gofakeit.Number(1, 50)),
			ThumbnailURL:   &thumbnail,
			ThumbnailTitle: &title,
			VideoDuration:  &duration,
			IsMultihost:    gofakeit.Bool(),
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)

		if len(productIDs) == 0 {
			continue
		}
		mapped := make([]int64, gofakeit.Number(1, 3))
		for j := range mapped {
			mapped[j] = productIDs[gofakeit.Number(0, len(productIDs)-1)]
		}
		if _, err := pm.MapProducts(ctx, id, mapped); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
