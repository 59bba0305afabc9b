package unitofwork

import (
	"context"

	"crafty-marketplace-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	FaqRepository() contract.FaqRepository
	ProductRepository() contract.ProductRepository
	ArtistRepository() contract.ArtistRepository
	UnansweredQueryRepository() contract.UnansweredQueryRepository
}
