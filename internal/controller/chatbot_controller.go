package controller

import (
	"crafty-marketplace-be/internal/dto"
	"crafty-marketplace-be/internal/pkg/serverutils"
	"crafty-marketplace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	ChatPage(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

// RegisterRoutes mounts the public chat surface. Anonymous access is
// allowed everywhere; a valid token only personalizes replies.
func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Get("", c.ChatPage)
	h.Post("", c.SendMessage)
	h.Get("/history/:session_id", c.GetHistory)
	h.Post("/clear", c.ClearHistory)
}

func (c *chatbotController) ChatPage(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(chatPageHTML)
}

func (c *chatbotController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) GetHistory(ctx *fiber.Ctx) error {
	res, err := c.service.GetHistory(ctx.Context(), ctx.Params("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) ClearHistory(ctx *fiber.Ctx) error {
	var req dto.ClearHistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ClearHistory(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status":  "success",
		"message": "Chat history cleared",
	})
}

// currentUserId reads the optional authenticated user set by the JWT
// middleware. Nil for anonymous visitors.
func currentUserId(ctx *fiber.Ctx) *uuid.UUID {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}
	return &userId
}
