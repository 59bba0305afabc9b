package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. The chatbot only reads products; all
// mutation happens through the storefront, outside this service.
type Product struct {
	Id            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Price         float64
	DiscountPrice *float64
	CraftCategory string
	Stock         int
	Available     bool
	Featured      bool
	ArtistId      uuid.UUID
	ArtistName    string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
