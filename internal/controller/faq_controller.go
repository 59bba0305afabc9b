package controller

import (
	"crafty-marketplace-be/internal/dto"
	"crafty-marketplace-be/internal/pkg/serverutils"
	"crafty-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFaqController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type faqController struct {
	service service.IFaqService
}

func NewFaqController(service service.IFaqService) IFaqController {
	return &faqController{service: service}
}

func (c *faqController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/faq/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *faqController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context(), ctx.Query("category"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all FAQ entries", res))
}

func (c *faqController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create FAQ entry", res))
}

func (c *faqController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError("FAQ entry not found")
	}

	res, err := c.service.GetOne(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show FAQ entry", res))
}

func (c *faqController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError("FAQ entry not found")
	}

	var req dto.UpdateFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update FAQ entry", res))
}

func (c *faqController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError("FAQ entry not found")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete FAQ entry", nil))
}
