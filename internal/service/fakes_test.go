package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/maheshrc27/engagement-api/internal/models"
	"github.com/maheshrc27/engagement-api/internal/repository"
)

// memStore backs every fake repository so that joins see the same rows.
type memStore struct {
	posts       []*models.EngagementPost
	products    []*models.Product
	mappings    []*models.ProductMapping
	collections []*models.Collection
	postColls   []*models.PostCollection
	contents    []*models.EngagementPostContent
	failWith    error
}

func (m *memStore) postExists(id int64) bool {
	for _, p := range m.posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (m *memStore) productExists(id int64) bool {
	for _, p := range m.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

type fakePostRepo struct{ m *memStore }

func (r *fakePostRepo) Create(_ context.Context, _ *sql.Tx, post *models.EngagementPost) (int64, error) {
	if r.m.failWith != nil {
		return 0, r.m.failWith
	}
	post.ID = int64(len(r.m.posts) + 1)
	if post.CreatedOn.IsZero() {
		post.CreatedOn = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	r.m.posts = append(r.m.posts, post)
	return post.ID, nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*models.EngagementPost, error) {
	for _, p := range r.m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePostRepo) ListByTenant(_ context.Context, tenantID int64) ([]*models.EngagementPost, error) {
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}
	out := []*models.EngagementPost{}
	for _, p := range r.m.posts {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListByTenantOrderedByShares(ctx context.Context, tenantID int64) ([]*models.EngagementPost, error) {
	out, err := r.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NumberOfShares > out[j].NumberOfShares })
	return out, nil
}

type fakeProductRepo struct{ m *memStore }

func (r *fakeProductRepo) Create(_ context.Context, _ *sql.Tx, product *models.Product) (int64, error) {
	if r.m.failWith != nil {
		return 0, r.m.failWith
	}
	for _, p := range r.m.products {
		if p.SKUNumber == product.SKUNumber {
			return 0, repository.ErrUniqueViolation
		}
	}
	product.ID = int64(len(r.m.products) + 1)
	r.m.products = append(r.m.products, product)
	return product.ID, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
	for _, p := range r.m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListByPostID(ctx context.Context, postID int64) ([]*models.Product, error) {
	out := []*models.Product{}
	for _, m := range r.m.mappings {
		if m.EngagementPostID != postID {
			continue
		}
		p, _ := r.GetByID(ctx, m.ProductID)
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountBySKU(_ context.Context, sku string) (int, error) {
	n := 0
	for _, p := range r.m.products {
		if p.SKUNumber == sku {
			n++
		}
	}
	return n, nil
}

type fakeMappingRepo struct {
	m *memStore
	// counts overrides CountByTenant when set
	counts []*models.ProductAssociationCount
}

func (r *fakeMappingRepo) Create(_ context.Context, _ *sql.Tx, m *models.ProductMapping) (int64, error) {
	if !r.m.postExists(m.EngagementPostID) || !r.m.productExists(m.ProductID) {
		return 0, repository.ErrForeignKeyViolation
	}
	m.ID = int64(len(r.m.mappings) + 1)
	r.m.mappings = append(r.m.mappings, m)
	return m.ID, nil
}

func (r *fakeMappingRepo) MapProducts(ctx context.Context, postID int64, productIDs []int64) ([]*models.ProductMapping, error) {
	snapshot := len(r.m.mappings)
	out := []*models.ProductMapping{}
	for _, id := range productIDs {
		m := &models.ProductMapping{EngagementPostID: postID, ProductID: id}
		if _, err := r.Create(ctx, nil, m); err != nil {
			r.m.mappings = r.m.mappings[:snapshot]
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMappingRepo) CountByTenant(_ context.Context, tenantID int64, limit int) ([]*models.ProductAssociationCount, error) {
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}
	if r.counts != nil {
		if len(r.counts) > limit {
			return r.counts[:limit], nil
		}
		return r.counts, nil
	}
	byProduct := map[int64]int64{}
	for _, m := range r.m.mappings {
		for _, p := range r.m.posts {
			if p.ID == m.EngagementPostID && p.TenantID == tenantID {
				byProduct[m.ProductID]++
			}
		}
	}
	out := []*models.ProductAssociationCount{}
	for id, n := range byProduct {
		out = append(out, &models.ProductAssociationCount{ProductID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCollectionRepo struct{ m *memStore }

func (r *fakeCollectionRepo) Create(_ context.Context, _ *sql.Tx, c *models.Collection) (int64, error) {
	c.ID = int64(len(r.m.collections) + 1)
	r.m.collections = append(r.m.collections, c)
	return c.ID, nil
}

func (r *fakeCollectionRepo) AddPost(_ context.Context, _ *sql.Tx, pc *models.PostCollection) (int64, error) {
	if pc.EngagementPostID != nil && !r.m.postExists(*pc.EngagementPostID) {
		return 0, repository.ErrForeignKeyViolation
	}
	pc.ID = int64(len(r.m.postColls) + 1)
	r.m.postColls = append(r.m.postColls, pc)
	return pc.ID, nil
}

func (r *fakeCollectionRepo) CreateWithPosts(ctx context.Context, c *models.Collection, postIDs []int64) error {
	if r.m.failWith != nil {
		return r.m.failWith
	}
	collSnap, mapSnap := len(r.m.collections), len(r.m.postColls)
	rollback := func() {
		r.m.collections = r.m.collections[:collSnap]
		r.m.postColls = r.m.postColls[:mapSnap]
	}
	if _, err := r.Create(ctx, nil, c); err != nil {
		rollback()
		return err
	}
	for _, id := range postIDs {
		postID := id
		if _, err := r.AddPost(ctx, nil, &models.PostCollection{EngagementPostID: &postID, CollectionID: &c.ID}); err != nil {
			rollback()
			return err
		}
	}
	return nil
}

func (r *fakeCollectionRepo) ListPostCollections(_ context.Context, collectionID int64) ([]*models.PostCollection, error) {
	out := []*models.PostCollection{}
	for _, pc := range r.m.postColls {
		if pc.CollectionID != nil && *pc.CollectionID == collectionID {
			out = append(out, pc)
		}
	}
	return out, nil
}

type fakeContentRepo struct{ m *memStore }

func (r *fakeContentRepo) Create(_ context.Context, _ *sql.Tx, pc *models.EngagementPostContent) (int64, error) {
	pc.ID = int64(len(r.m.contents) + 1)
	r.m.contents = append(r.m.contents, pc)
	return pc.ID, nil
}

func (r *fakeContentRepo) ListByStoryID(_ context.Context, storyID int64) ([]*models.EngagementPostContent, error) {
	out := []*models.EngagementPostContent{}
	for _, c := range r.m.contents {
		if c.StoryID == storyID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

var errConnLost = errors.New("connection lost")

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func addPost(m *memStore, tenantID, shares int64, title string) *models.EngagementPost {
	p := &models.EngagementPost{
		TenantID:       tenantID,
		NumberOfShares: shares,
		CreatedBy:      "tester",
		ContentType:    "video",
		InfluencerID:   1,
		ThumbnailTitle: strPtr(title),
		ShoppingURL:    strPtr("https://shop.example/" + title),
	}
	(&fakePostRepo{m}).Create(context.Background(), nil, p)
	return p
}

func addProduct(m *memStore, sku string, videoDuration *int64) *models.Product {
	p := &models.Product{ProductName: "Product " + sku, SKUNumber: sku, VideoDuration: videoDuration}
	(&fakeProductRepo{m}).Create(context.Background(), nil, p)
	return p
}

var (
	_ repository.EngagementPostRepository = (*fakePostRepo)(nil)
	_ repository.ProductRepository        = (*fakeProductRepo)(nil)
	_ repository.ProductMappingRepository = (*fakeMappingRepo)(nil)
	_ repository.CollectionRepository     = (*fakeCollectionRepo)(nil)
	_ repository.PostContentRepository    = (*fakeContentRepo)(nil)
)
