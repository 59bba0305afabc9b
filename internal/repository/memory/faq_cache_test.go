package memory

import (
	"context"
	"testing"
	"time"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/repository/contract"
	"crafty-marketplace-be/internal/repository/specification"
	"crafty-marketplace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type stubFaqRepo struct {
	entries []*entity.FaqEntry
	loads   int
}

func (r *stubFaqRepo) Create(context.Context, *entity.FaqEntry) error { return nil }

func (r *stubFaqRepo) Update(context.Context, *entity.FaqEntry) error { return nil }

func (r *stubFaqRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *stubFaqRepo) FindOne(context.Context, ...specification.Specification) (*entity.FaqEntry, error) {
	return nil, nil
}

func (r *stubFaqRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.FaqEntry, error) {
	r.loads++
	return r.entries, nil
}

type stubUowFactory struct{ faqs *stubFaqRepo }

func (f *stubUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &stubUow{faqs: f.faqs}
}

type stubUow struct{ faqs *stubFaqRepo }

func (u *stubUow) Begin(context.Context) error { return nil }
func (u *stubUow) Commit() error               { return nil }
func (u *stubUow) Rollback() error             { return nil }

func (u *stubUow) UserRepository() contract.UserRepository { return nil }

func (u *stubUow) ChatSessionRepository() contract.ChatSessionRepository { return nil }

func (u *stubUow) ChatMessageRepository() contract.ChatMessageRepository { return nil }

func (u *stubUow) FaqRepository() contract.FaqRepository { return u.faqs }

func (u *stubUow) ProductRepository() contract.ProductRepository { return nil }

func (u *stubUow) ArtistRepository() contract.ArtistRepository { return nil }

func (u *stubUow) UnansweredQueryRepository() contract.UnansweredQueryRepository { return nil }

func TestFaqCacheLoadsOnceAndNormalizesKeywords(t *testing.T) {
	repo := &stubFaqRepo{
		entries: []*entity.FaqEntry{
			{
				Id:       uuid.New(),
				Question: "What is your return policy?",
				Answer:   "7-day returns.",
				Keywords: "Return, REFUND, , policy",
				IsActive: true,
			},
		},
	}
	cache := NewFaqCache(&stubUowFactory{faqs: repo}, time.Minute)

	entries, err := cache.ActiveEntries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	want := []string{"return", "refund", "policy"}
	if len(entries[0].Keywords) != len(want) {
		t.Fatalf("keywords = %v, want %v", entries[0].Keywords, want)
	}
	for i, k := range want {
		if entries[0].Keywords[i] != k {
			t.Errorf("keyword[%d] = %q, want %q", i, entries[0].Keywords[i], k)
		}
	}

	if _, err := cache.ActiveEntries(context.Background()); err != nil {
		t.Fatal(err)
	}
	if repo.loads != 1 {
		t.Errorf("repo loads = %d, want 1 (second read must hit the cache)", repo.loads)
	}
}

func TestFaqCacheInvalidateForcesReload(t *testing.T) {
	repo := &stubFaqRepo{
		entries: []*entity.FaqEntry{
			{Id: uuid.New(), Question: "old", Answer: "a", Keywords: "old", IsActive: true},
		},
	}
	cache := NewFaqCache(&stubUowFactory{faqs: repo}, time.Minute)

	if _, err := cache.ActiveEntries(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Simulate an admin write: new row appears, cache is invalidated.
	repo.entries = append(repo.entries, &entity.FaqEntry{
		Id: uuid.New(), Question: "new", Answer: "b", Keywords: "new", IsActive: true,
	})
	cache.Invalidate()

	entries, err := cache.ActiveEntries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries after invalidation, want 2", len(entries))
	}
	if repo.loads != 2 {
		t.Errorf("repo loads = %d, want 2", repo.loads)
	}
	if entries[1].Question != "new" {
		t.Errorf("reload missed the new entry: %+v", entries)
	}
}
