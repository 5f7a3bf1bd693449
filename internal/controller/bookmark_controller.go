package controller

import (
	"bookmarkhub-be/internal/dto"
	"bookmarkhub-be/internal/pkg/serverutils"
	"bookmarkhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookmarkController interface {
	RegisterRoutes(r fiber.Router)
	Insert(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Collect(ctx *fiber.Ctx) error
	Uncollect(ctx *fiber.Ctx) error
	ListWithSpaces(ctx *fiber.Ctx) error
}

type bookmarkController struct {
	service          service.IBookmarkService
	aggregateService service.IAggregateService
}

func NewBookmarkController(svc service.IBookmarkService, aggregateSvc service.IAggregateService) IBookmarkController {
	return &bookmarkController{
		service:          svc,
		aggregateService: aggregateSvc,
	}
}

func (c *bookmarkController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bookmark/v1")
	h.Use(serverutils.CallerMiddleware)
	h.Get("", c.ListWithSpaces)
	h.Post("", c.Insert)
	h.Get(":id", c.Show)
	h.Post(":id/collect", c.Collect)
	h.Delete(":id/collect", c.Uncollect)
}

func (c *bookmarkController) Insert(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)

	var req dto.InsertBookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Insert(ctx.Context(), callerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success insert bookmark", res))
}

func (c *bookmarkController) Show(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid bookmark id")
	}

	res, err := c.service.Show(ctx.Context(), callerId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show bookmark", res))
}

func (c *bookmarkController) Collect(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid bookmark id")
	}

	if err := c.service.AddToCollection(ctx.Context(), callerId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add bookmark to collection", nil))
}

func (c *bookmarkController) Uncollect(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid bookmark id")
	}

	if err := c.service.RemoveFromCollection(ctx.Context(), callerId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove bookmark from collection", nil))
}

func (c *bookmarkController) ListWithSpaces(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)

	res, err := c.aggregateService.GetActiveBookmarksWithSpaces(ctx.Context(), callerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get bookmarks with spaces", res))
}
