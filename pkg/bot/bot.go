package bot

import (
	"context"

	"github.com/google/uuid"
)

// Intent is a category of user request the router recognizes.
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentHelp          Intent = "help"
	IntentArtistContact Intent = "artist_contact"
	IntentArtist        Intent = "artist"
	IntentProduct       Intent = "product"
	IntentCategory      Intent = "category"
	IntentOrder         Intent = "order"
	IntentContact       Intent = "contact"
	IntentFAQ           Intent = "faq"
	IntentDefault       Intent = "default"
)

// Principal identifies the authenticated caller, when there is one.
// Anonymous chat is allowed, so routing code receives a nil *Principal.
type Principal struct {
	UserId      uuid.UUID
	DisplayName string
	IsArtist    bool
}

// ProductHit is one product row rendered into a bot reply.
type ProductHit struct {
	Name          string
	Price         float64
	DiscountPrice *float64
	ArtistName    string
	Description   string
}

// EffectivePrice returns the discount price when one is set.
func (p ProductHit) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// ArtistHit is one artist row rendered into a bot reply.
type ArtistHit struct {
	Name        string
	Bio         string
	Commissions bool
}

// Catalog is the read-only product/artist lookup the router delegates to.
// The router never mutates catalog data.
type Catalog interface {
	SearchProducts(ctx context.Context, query string, limit int) ([]ProductHit, error)
	SearchArtists(ctx context.Context, query string, limit int) ([]ArtistHit, error)
}

// Result carries the routed reply and which intent produced it.
type Result struct {
	Intent Intent
	Reply  string
}
