package service

import (
	"context"

	"crafty-marketplace-be/internal/repository/specification"
	"crafty-marketplace-be/internal/repository/unitofwork"
	"crafty-marketplace-be/pkg/bot"
)

// catalogService is the read side of the marketplace catalog the bot
// delegates searches to. It satisfies bot.Catalog.
type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) bot.Catalog {
	return &catalogService{uowFactory: uowFactory}
}

// SearchProducts matches the query against product name, description
// and craft category, returning only purchasable items, newest first.
func (cs *catalogService) SearchProducts(ctx context.Context, query string, limit int) ([]bot.ProductHit, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.ProductRepository().FindAll(ctx,
		specification.ProductSearchQuery{Query: query},
		specification.AvailableOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: limit},
	)
	if err != nil {
		return nil, err
	}

	hits := make([]bot.ProductHit, 0, len(products))
	for _, p := range products {
		hits = append(hits, bot.ProductHit{
			Name:          p.Name,
			Price:         p.Price,
			DiscountPrice: p.DiscountPrice,
			ArtistName:    p.ArtistName,
			Description:   p.Description,
		})
	}

	return hits, nil
}

// SearchArtists matches the query against artist name and bio. Only
// featured artists surface in chat.
func (cs *catalogService) SearchArtists(ctx context.Context, query string, limit int) ([]bot.ArtistHit, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	artists, err := uow.ArtistRepository().FindAll(ctx,
		specification.ArtistSearchQuery{Query: query},
		specification.FeaturedOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: limit},
	)
	if err != nil {
		return nil, err
	}

	hits := make([]bot.ArtistHit, 0, len(artists))
	for _, a := range artists {
		hits = append(hits, bot.ArtistHit{
			Name:        a.Name,
			Bio:         a.Bio,
			Commissions: a.Availability,
		})
	}

	return hits, nil
}
