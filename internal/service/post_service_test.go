package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maheshrc27/engagement-api/internal/transfer"
)

func newPostService(m *memStore) PostService {
	return NewPostService(&fakePostRepo{m}, &fakeProductRepo{m}, &fakeMappingRepo{m: m}, &fakeContentRepo{m})
}

func TestGetPostsScenario(t *testing.T) {
	m := &memStore{}
	ctx := context.Background()
	post := addPost(m, 2, 0, "only")
	a := addProduct(m, "A", nil)
	b := addProduct(m, "B", nil)
	s := newPostService(m)

	if _, err := s.MapProducts(ctx, post.ID, []int64{a.ID, b.ID}); err != nil {
		t.Fatalf("map: %v", err)
	}

	empty, err := s.GetPosts(ctx, 1)
	if err != nil {
		t.Fatalf("tenant 1: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}

	views, err := s.GetPosts(ctx, 2)
	if err != nil {
		t.Fatalf("tenant 2: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected one post, got %d", len(views))
	}
	v := views[0]
	if v.EngagementPostID != post.ID || v.TenantID != 2 || v.CreatedBy != "tester" || *v.ThumbnailTitle != "only" {
		t.Fatalf("unexpected view: %+v", v)
	}
	if len(v.Products) != 2 || v.Products[0].SKUNumber != "A" || v.Products[1].SKUNumber != "B" {
		t.Fatalf("unexpected products: %+v", v.Products)
	}
}

func TestGetPostsWithoutProductsHasEmptyList(t *testing.T) {
	m := &memStore{}
	addPost(m, 5, 0, "bare")

	views, err := newPostService(m).GetPosts(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if views[0].Products == nil || len(views[0].Products) != 0 {
		t.Fatalf("expected empty product list, got %#v", views[0].Products)
	}
}

func TestGetPostsPropagatesStorageErrors(t *testing.T) {
	m := &memStore{failWith: errConnLost}
	_, err := newPostService(m).GetPosts(context.Background(), 1)
	if !errors.Is(err, errConnLost) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestMapProductsKeepsDuplicatesAndRejectsUnknown(t *testing.T) {
	m := &memStore{}
	ctx := context.Background()
	post := addPost(m, 1, 0, "p")
	a := addProduct(m, "A", nil)
	s := newPostService(m)

	mappings, err := s.MapProducts(ctx, post.ID, []int64{a.ID, a.ID})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(mappings))
	}

	if _, err := s.MapProducts(ctx, post.ID, []int64{a.ID, 99}); !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected unknown reference, got %v", err)
	}
	if len(m.mappings) != 2 {
		t.Fatalf("failed mapping should not persist rows, have %d", len(m.mappings))
	}

	if _, err := s.MapProducts(ctx, post.ID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCreatePost(t *testing.T) {
	m := &memStore{}
	s := newPostService(m)

	post, err := s.CreatePost(context.Background(), &transfer.PostCreation{
		TenantID:     3,
		CreatedBy:    "ops",
		ContentType:  "image",
		InfluencerID: 9,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.ID == 0 || post.TenantID != 3 || post.InfluencerID != 9 {
		t.Fatalf("unexpected post: %+v", post)
	}

	if _, err := s.CreatePost(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestPostContent(t *testing.T) {
	m := &memStore{}
	ctx := context.Background()
	s := newPostService(m)

	for _, seq := range []int{2, 1} {
		seq := seq
		if _, err := s.CreatePostContent(ctx, &transfer.PostContentCreation{FileType: "image", StoryID: 4, URL: "u", Sequence: &seq}); err != nil {
			t.Fatalf("create content: %v", err)
		}
	}
	if _, err := s.CreatePostContent(ctx, &transfer.PostContentCreation{FileType: "image", StoryID: 4, URL: "u"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	contents, err := s.ListStoryContent(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 2 || contents[0].Sequence != 1 {
		t.Fatalf("unexpected contents: %+v", contents)
	}
}
