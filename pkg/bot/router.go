package bot

import (
	"context"
	"fmt"
	"strings"

	"crafty-marketplace-be/pkg/bot/faq"
)

// FAQSource supplies the active FAQ entries the fallback matcher scans.
type FAQSource interface {
	ActiveEntries(ctx context.Context) ([]faq.Entry, error)
}

// guard decides whether a rule matches the case-folded utterance.
type guard func(utterance string) bool

// handler produces the reply for a matched rule.
type handler func(ctx context.Context, utterance string, principal *Principal) (string, error)

type rule struct {
	intent Intent
	match  guard
	handle handler
}

// Router classifies an utterance against an ordered rule list and
// dispatches to the matching handler. The first matching rule wins;
// ordering is load-bearing (later rules are unreachable once an earlier
// one matches), so the rule slice is built once and never reordered.
//
// Routing is pure with respect to the utterance: the router only reads
// its collaborators and keeps no per-request state, so a single Router
// is safe for concurrent use.
type Router struct {
	catalog  Catalog
	faqs     FAQSource
	selector ReplySelector
	rules    []rule
}

func NewRouter(catalog Catalog, faqs FAQSource, selector ReplySelector) *Router {
	r := &Router{
		catalog:  catalog,
		faqs:     faqs,
		selector: selector,
	}

	r.rules = []rule{
		{
			intent: IntentGreeting,
			match:  containsAny("hello", "hi", "hey", "good morning", "good afternoon", "good evening"),
			handle: func(_ context.Context, _ string, principal *Principal) (string, error) {
				return greetingReply(principal), nil
			},
		},
		{
			intent: IntentHelp,
			match:  containsAny("help", "what can you do", "commands", "options"),
			handle: staticReply(helpReply),
		},
		{
			// Checked before the generic artist rule so contact-flavored
			// queries are not swallowed by it.
			intent: IntentArtistContact,
			match:  containsAny("contact artist", "contact artists", "how to contact artist", "reach artist", "message artist"),
			handle: staticReply(artistContactReply),
		},
		{
			intent: IntentArtist,
			match: allOf(
				containsAny("artist", "creator", "maker", "who made"),
				not(containsAny("contact", "reach", "message")),
			),
			handle: r.searchArtists,
		},
		{
			intent: IntentProduct,
			match:  containsAny("product", "item", "buy", "purchase", "shop", "store", "show me", "find"),
			handle: r.searchProducts,
		},
		{
			intent: IntentCategory,
			match:  containsAny("category", "type", "kind", "style", "categories"),
			handle: staticReply(categoriesReply()),
		},
		{
			intent: IntentOrder,
			match:  containsAny("order", "track", "delivery", "shipping", "status"),
			handle: staticReply(orderInfoReply),
		},
		{
			intent: IntentContact,
			match: allOf(
				containsAny("contact", "email", "phone", "address", "location"),
				not(containsAny("artist")),
			),
			handle: staticReply(contactReply),
		},
	}

	return r
}

// Route evaluates the rule list in order against the case-folded
// utterance. When no rule matches it falls back to FAQ keyword matching,
// then to the default reply pool. Route itself never fails for any
// non-empty utterance; only collaborator errors propagate.
func (r *Router) Route(ctx context.Context, utterance string, principal *Principal) (*Result, error) {
	folded := strings.ToLower(utterance)

	for _, rl := range r.rules {
		if rl.match(folded) {
			reply, err := rl.handle(ctx, utterance, principal)
			if err != nil {
				return nil, err
			}
			return &Result{Intent: rl.intent, Reply: reply}, nil
		}
	}

	entries, err := r.faqs.ActiveEntries(ctx)
	if err != nil {
		return nil, err
	}
	if hit := faq.Match(utterance, entries); hit != nil {
		return &Result{
			Intent: IntentFAQ,
			Reply:  fmt.Sprintf("Q: %s\n\nA: %s", hit.Question, hit.Answer),
		}, nil
	}

	return &Result{Intent: IntentDefault, Reply: r.defaultReply()}, nil
}

func (r *Router) defaultReply() string {
	return defaultReplies[r.selector.Pick(len(defaultReplies))]
}

func (r *Router) searchProducts(ctx context.Context, utterance string, _ *Principal) (string, error) {
	hits, err := r.catalog.SearchProducts(ctx, utterance, searchResultLimit)
	if err != nil {
		return "", err
	}
	return productListReply(hits), nil
}

func (r *Router) searchArtists(ctx context.Context, utterance string, _ *Principal) (string, error) {
	hits, err := r.catalog.SearchArtists(ctx, utterance, searchResultLimit)
	if err != nil {
		return "", err
	}
	return artistListReply(hits), nil
}

// Guard combinators. Matching is substring containment on the folded
// utterance, not word-boundary matching, mirroring the shipped behavior.

func containsAny(phrases ...string) guard {
	return func(utterance string) bool {
		for _, p := range phrases {
			if strings.Contains(utterance, p) {
				return true
			}
		}
		return false
	}
}

func allOf(guards ...guard) guard {
	return func(utterance string) bool {
		for _, g := range guards {
			if !g(utterance) {
				return false
			}
		}
		return true
	}
}

func not(g guard) guard {
	return func(utterance string) bool {
		return !g(utterance)
	}
}

func staticReply(text string) handler {
	return func(context.Context, string, *Principal) (string, error) {
		return text, nil
	}
}
