package memory

import (
	"context"
	"time"

	"crafty-marketplace-be/internal/repository/specification"
	"crafty-marketplace-be/internal/repository/unitofwork"
	"crafty-marketplace-be/pkg/bot/faq"

	"github.com/patrickmn/go-cache"
)

const activeEntriesKey = "faq:active"

// FaqCache fronts the FAQ table for the router's fallback matcher. The
// matcher runs on every message that reaches the fallback, so active
// entries are held in memory with a TTL and invalidated on admin writes.
type FaqCache struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewFaqCache(uowFactory unitofwork.RepositoryFactory, ttl time.Duration) *FaqCache {
	return &FaqCache{
		uowFactory: uowFactory,
		cache:      cache.New(ttl, 2*ttl),
	}
}

// ActiveEntries returns the active FAQ entries with keywords already
// normalized, cached between admin writes. Entry order matches the
// insertion order (created_at ascending), which the matcher's
// first-seen tie-break depends on.
func (c *FaqCache) ActiveEntries(ctx context.Context) ([]faq.Entry, error) {
	if x, found := c.cache.Get(activeEntriesKey); found {
		return x.([]faq.Entry), nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	faqs, err := uow.FaqRepository().FindAll(ctx,
		specification.ActiveFaqs{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	entries := make([]faq.Entry, len(faqs))
	for i, f := range faqs {
		entries[i] = faq.Entry{
			Question: f.Question,
			Answer:   f.Answer,
			Keywords: faq.KeywordList(f.Keywords),
		}
	}

	c.cache.Set(activeEntriesKey, entries, cache.DefaultExpiration)
	return entries, nil
}

// Invalidate drops the cached entries. Called after any FAQ admin write.
func (c *FaqCache) Invalidate() {
	c.cache.Delete(activeEntriesKey)
}
