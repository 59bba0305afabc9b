package service

import (
	"context"
	"time"

	"crafty-marketplace-be/internal/dto"
	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/pkg/serverutils"
	"crafty-marketplace-be/internal/repository/memory"
	"crafty-marketplace-be/internal/repository/specification"
	"crafty-marketplace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IFaqService manages the curated FAQ catalog behind the bot's fallback
// matcher. Every write invalidates the matcher's cache.
type IFaqService interface {
	Create(ctx context.Context, request *dto.CreateFaqRequest) (*dto.FaqResponse, error)
	Update(ctx context.Context, request *dto.UpdateFaqRequest) (*dto.FaqResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetOne(ctx context.Context, id uuid.UUID) (*dto.FaqResponse, error)
	GetAll(ctx context.Context, category string) ([]*dto.FaqResponse, error)
}

type faqService struct {
	uowFactory unitofwork.RepositoryFactory
	faqCache   *memory.FaqCache
}

func NewFaqService(uowFactory unitofwork.RepositoryFactory, faqCache *memory.FaqCache) IFaqService {
	return &faqService{
		uowFactory: uowFactory,
		faqCache:   faqCache,
	}
}

func (fs *faqService) Create(ctx context.Context, request *dto.CreateFaqRequest) (*dto.FaqResponse, error) {
	uow := fs.uowFactory.NewUnitOfWork(ctx)

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	faqEntry := entity.FaqEntry{
		Id:        uuid.New(),
		Question:  request.Question,
		Answer:    request.Answer,
		Keywords:  request.Keywords,
		Category:  request.Category,
		IsActive:  isActive,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.FaqRepository().Create(ctx, &faqEntry); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	fs.faqCache.Invalidate()

	return toFaqResponse(&faqEntry), nil
}

func (fs *faqService) Update(ctx context.Context, request *dto.UpdateFaqRequest) (*dto.FaqResponse, error) {
	uow := fs.uowFactory.NewUnitOfWork(ctx)

	faqEntry, err := uow.FaqRepository().FindOne(ctx, specification.ByID{ID: request.Id})
	if err != nil {
		return nil, err
	}
	if faqEntry == nil {
		return nil, serverutils.NewNotFoundError("FAQ entry not found")
	}

	now := time.Now()
	faqEntry.Question = request.Question
	faqEntry.Answer = request.Answer
	faqEntry.Keywords = request.Keywords
	faqEntry.Category = request.Category
	faqEntry.IsActive = request.IsActive
	faqEntry.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.FaqRepository().Update(ctx, faqEntry); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	fs.faqCache.Invalidate()

	return toFaqResponse(faqEntry), nil
}

func (fs *faqService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := fs.uowFactory.NewUnitOfWork(ctx)

	faqEntry, err := uow.FaqRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if faqEntry == nil {
		return serverutils.NewNotFoundError("FAQ entry not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.FaqRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	fs.faqCache.Invalidate()

	return nil
}

func (fs *faqService) GetOne(ctx context.Context, id uuid.UUID) (*dto.FaqResponse, error) {
	uow := fs.uowFactory.NewUnitOfWork(ctx)

	faqEntry, err := uow.FaqRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if faqEntry == nil {
		return nil, serverutils.NewNotFoundError("FAQ entry not found")
	}

	return toFaqResponse(faqEntry), nil
}

func (fs *faqService) GetAll(ctx context.Context, category string) ([]*dto.FaqResponse, error) {
	uow := fs.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if category != "" {
		specs = append(specs, specification.ByFaqCategory{Category: category})
	}

	faqs, err := uow.FaqRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.FaqResponse, 0, len(faqs))
	for _, f := range faqs {
		response = append(response, toFaqResponse(f))
	}

	return response, nil
}

func toFaqResponse(f *entity.FaqEntry) *dto.FaqResponse {
	return &dto.FaqResponse{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		Keywords:  f.Keywords,
		Category:  f.Category,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
