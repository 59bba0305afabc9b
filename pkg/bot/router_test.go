package bot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"crafty-marketplace-be/pkg/bot/faq"

	"github.com/google/uuid"
)

type fakeCatalog struct {
	products     []ProductHit
	artists      []ArtistHit
	productQuery string
	artistQuery  string
	err          error
}

func (f *fakeCatalog) SearchProducts(_ context.Context, query string, _ int) ([]ProductHit, error) {
	f.productQuery = query
	return f.products, f.err
}

func (f *fakeCatalog) SearchArtists(_ context.Context, query string, _ int) ([]ArtistHit, error) {
	f.artistQuery = query
	return f.artists, f.err
}

type fakeFAQSource struct {
	entries []faq.Entry
	err     error
}

func (f *fakeFAQSource) ActiveEntries(context.Context) ([]faq.Entry, error) {
	return f.entries, f.err
}

type fixedSelector struct{ idx int }

func (s fixedSelector) Pick(int) int { return s.idx }

func newTestRouter(catalog *fakeCatalog, faqs *fakeFAQSource) *Router {
	if catalog == nil {
		catalog = &fakeCatalog{}
	}
	if faqs == nil {
		faqs = &fakeFAQSource{}
	}
	return NewRouter(catalog, faqs, fixedSelector{idx: 0})
}

func TestRouteIntents(t *testing.T) {
	tests := []struct {
		name       string
		utterance  string
		wantIntent Intent
	}{
		{"greeting", "Hello there", IntentGreeting},
		{"greeting case folded", "HEY", IntentGreeting},
		{"help", "what can you do", IntentHelp},
		{"artist contact phrase", "how to contact artist", IntentArtistContact},
		{"reach artist phrase", "can I reach artist directly", IntentArtistContact},
		{"artist search", "who made that vase", IntentArtist},
		{"product search", "show me jewelry products", IntentProduct},
		{"category listing", "what categories do you have", IntentCategory},
		{"order info", "where is my delivery", IntentOrder},
		{"site contact", "what is your email address", IntentContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(nil, nil)
			res, err := r.Route(context.Background(), tt.utterance, nil)
			if err != nil {
				t.Fatalf("Route(%q) error: %v", tt.utterance, err)
			}
			if res.Intent != tt.wantIntent {
				t.Errorf("Route(%q) intent = %s, want %s", tt.utterance, res.Intent, tt.wantIntent)
			}
			if res.Reply == "" {
				t.Errorf("Route(%q) returned empty reply", tt.utterance)
			}
		})
	}
}

func TestRoutePrecedence(t *testing.T) {
	t.Run("contact plus artist is artist contact, not site contact", func(t *testing.T) {
		r := newTestRouter(nil, nil)
		res, err := r.Route(context.Background(), "how do I contact artists on the site", nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.Intent != IntentArtistContact {
			t.Errorf("intent = %s, want %s", res.Intent, IntentArtistContact)
		}
	})

	t.Run("artist with message keyword skips the artist search rule", func(t *testing.T) {
		// "message artist" is an artist-contact phrase; the generic
		// artist rule's negative guard must not shadow it.
		r := newTestRouter(nil, nil)
		res, err := r.Route(context.Background(), "I want to message artist Amina", nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.Intent != IntentArtistContact {
			t.Errorf("intent = %s, want %s", res.Intent, IntentArtistContact)
		}
	})

	t.Run("guards match substrings inside longer words", func(t *testing.T) {
		// "this" carries an embedded "hi", so the greeting rule fires
		// before the artist rule is ever consulted. Guard matching is
		// substring containment, not word-boundary.
		r := newTestRouter(nil, nil)
		res, err := r.Route(context.Background(), "who made this vase", nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.Intent != IntentGreeting {
			t.Errorf("intent = %s, want %s", res.Intent, IntentGreeting)
		}
	})

	t.Run("greeting wins over later rules", func(t *testing.T) {
		r := newTestRouter(nil, nil)
		res, err := r.Route(context.Background(), "hi, can you help me find products", nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.Intent != IntentGreeting {
			t.Errorf("intent = %s, want %s", res.Intent, IntentGreeting)
		}
	})
}

func TestRouteGreetingPersonalization(t *testing.T) {
	r := newTestRouter(nil, nil)

	res, err := r.Route(context.Background(), "hello", &Principal{
		UserId:      uuid.New(),
		DisplayName: "Amina",
		IsArtist:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Reply, "Hello Amina!") {
		t.Errorf("greeting not personalized: %q", res.Reply)
	}
	if !strings.Contains(res.Reply, "As an artist") {
		t.Errorf("artist extra line missing: %q", res.Reply)
	}

	anon, err := r.Route(context.Background(), "hello", nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(anon.Reply, "Hello Amina!") {
		t.Errorf("anonymous greeting should be generic: %q", anon.Reply)
	}
}

func TestRouteProductDelegation(t *testing.T) {
	discount := 500.0
	catalog := &fakeCatalog{
		products: []ProductHit{
			{Name: "Berber Rug", Price: 1200, DiscountPrice: &discount, ArtistName: "Amina", Description: "Hand-woven wool rug"},
		},
	}
	r := newTestRouter(catalog, nil)

	res, err := r.Route(context.Background(), "show me rugs to buy", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != IntentProduct {
		t.Fatalf("intent = %s, want %s", res.Intent, IntentProduct)
	}
	if catalog.productQuery != "show me rugs to buy" {
		t.Errorf("catalog received query %q, want the raw utterance", catalog.productQuery)
	}
	if !strings.Contains(res.Reply, "Berber Rug") {
		t.Errorf("reply missing product name: %q", res.Reply)
	}
	if !strings.Contains(res.Reply, "500.00 DZD") {
		t.Errorf("reply should use the discount price: %q", res.Reply)
	}
	if !strings.Contains(res.Reply, "By Amina") {
		t.Errorf("reply missing artist attribution: %q", res.Reply)
	}
}

func TestRouteProductEmptyFallback(t *testing.T) {
	r := newTestRouter(&fakeCatalog{}, nil)

	res, err := r.Route(context.Background(), "buy a unicorn saddle", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != IntentProduct {
		t.Fatalf("intent = %s, want %s", res.Intent, IntentProduct)
	}
	if !strings.Contains(res.Reply, "popular categories") {
		t.Errorf("empty result should list categories: %q", res.Reply)
	}
}

func TestRouteArtistDelegation(t *testing.T) {
	catalog := &fakeCatalog{
		artists: []ArtistHit{
			{Name: "Karim", Bio: "Ceramicist from Oran", Commissions: true},
			{Name: "Lina", Bio: "", Commissions: false},
		},
	}
	r := newTestRouter(catalog, nil)

	res, err := r.Route(context.Background(), "tell me about the creator of these bowls", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != IntentArtist {
		t.Fatalf("intent = %s, want %s", res.Intent, IntentArtist)
	}
	if !strings.Contains(res.Reply, "Karim") || !strings.Contains(res.Reply, "Lina") {
		t.Errorf("reply missing artist names: %q", res.Reply)
	}
	if !strings.Contains(res.Reply, "Available for commissions: Yes") {
		t.Errorf("reply missing commission availability: %q", res.Reply)
	}
}

func TestRouteCatalogErrorPropagates(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("db down")}
	r := newTestRouter(catalog, nil)

	if _, err := r.Route(context.Background(), "show me products", nil); err == nil {
		t.Error("Route should propagate catalog errors")
	}
}

func TestRouteFAQFallback(t *testing.T) {
	faqs := &fakeFAQSource{
		entries: []faq.Entry{
			{
				Question: "What is your return policy?",
				Answer:   "7-day returns for unused items.",
				Keywords: []string{"return", "refund", "exchange"},
			},
		},
	}
	r := newTestRouter(nil, faqs)

	res, err := r.Route(context.Background(), "can I get a refund", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != IntentFAQ {
		t.Fatalf("intent = %s, want %s", res.Intent, IntentFAQ)
	}
	want := "Q: What is your return policy?\n\nA: 7-day returns for unused items."
	if res.Reply != want {
		t.Errorf("FAQ reply = %q, want %q", res.Reply, want)
	}
}

func TestRouteDefaultFallback(t *testing.T) {
	for idx := range defaultReplies {
		r := NewRouter(&fakeCatalog{}, &fakeFAQSource{}, fixedSelector{idx: idx})
		res, err := r.Route(context.Background(), "xyzzy plugh", nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.Intent != IntentDefault {
			t.Fatalf("intent = %s, want %s", res.Intent, IntentDefault)
		}
		if res.Reply != defaultReplies[idx] {
			t.Errorf("reply = %q, want pool entry %d", res.Reply, idx)
		}
	}
}

func TestRouteFAQSourceErrorPropagates(t *testing.T) {
	r := newTestRouter(nil, &fakeFAQSource{err: errors.New("cache load failed")})

	if _, err := r.Route(context.Background(), "xyzzy plugh", nil); err == nil {
		t.Error("Route should propagate FAQ source errors")
	}
}
