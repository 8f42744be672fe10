package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateCollectionKeepsDuplicates(t *testing.T) {
	m := &memStore{}
	ctx := context.Background()
	p1 := addPost(m, 1, 0, "one")
	p2 := addPost(m, 1, 0, "two")
	repo := &fakeCollectionRepo{m}

	c, err := NewCollectionService(repo).CreateCollection(ctx, "picks", []int64{p1.ID, p2.ID, p2.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == 0 || c.CollectionName != "picks" {
		t.Fatalf("unexpected collection: %+v", c)
	}

	rows, _ := repo.ListPostCollections(ctx, c.ID)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []int64{p1.ID, p2.ID, p2.ID}
	for i, r := range rows {
		if *r.EngagementPostID != want[i] || r.DurationInSeconds != nil {
			t.Fatalf("row %d unexpected: %+v", i, r)
		}
	}
}

func TestCreateCollectionUnknownPostLeavesNothing(t *testing.T) {
	m := &memStore{}
	p1 := addPost(m, 1, 0, "one")

	_, err := NewCollectionService(&fakeCollectionRepo{m}).CreateCollection(context.Background(), "bad", []int64{p1.ID, 42})
	if !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected unknown reference, got %v", err)
	}
	if len(m.collections) != 0 || len(m.postColls) != 0 {
		t.Fatalf("nothing should persist, have %d collections and %d rows", len(m.collections), len(m.postColls))
	}
}

func TestCreateCollectionValidation(t *testing.T) {
	s := NewCollectionService(&fakeCollectionRepo{&memStore{}})
	if _, err := s.CreateCollection(context.Background(), " ", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	c, err := s.CreateCollection(context.Background(), "empty", nil)
	if err != nil || c.ID == 0 {
		t.Fatalf("a collection without posts is allowed: %v", err)
	}
}

func TestCreateCollectionStorageError(t *testing.T) {
	s := NewCollectionService(&fakeCollectionRepo{&memStore{failWith: errConnLost}})
	if _, err := s.CreateCollection(context.Background(), "x", nil); !errors.Is(err, errConnLost) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
