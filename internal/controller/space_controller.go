package controller

import (
	"bookmarkhub-be/internal/dto"
	"bookmarkhub-be/internal/pkg/serverutils"
	"bookmarkhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISpaceController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	UpdateDescription(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	AddBookmark(ctx *fiber.Ctx) error
	RemoveBookmark(ctx *fiber.Ctx) error
}

type spaceController struct {
	service service.ISpaceService
}

func NewSpaceController(svc service.ISpaceService) ISpaceController {
	return &spaceController{service: svc}
}

func (c *spaceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/space/v1")
	h.Use(serverutils.CallerMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put(":id", c.Rename)
	h.Patch(":id/description", c.UpdateDescription)
	h.Delete(":id", c.Delete)
	h.Post(":id/bookmark/:bookmarkId", c.AddBookmark)
	h.Delete(":id/bookmark/:bookmarkId", c.RemoveBookmark)
}

func (c *spaceController) Create(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)

	var req dto.CreateSpaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), callerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create space", res))
}

func (c *spaceController) Rename(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid space id")
	}

	var req dto.RenameSpaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Rename(ctx.Context(), callerId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success rename space", nil))
}

func (c *spaceController) UpdateDescription(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid space id")
	}

	var req dto.UpdateSpaceDescriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := c.service.UpdateDescription(ctx.Context(), callerId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update space description", nil))
}

func (c *spaceController) Delete(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid space id")
	}

	if err := c.service.Delete(ctx.Context(), callerId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete space", nil))
}

func (c *spaceController) GetAll(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)

	res, err := c.service.GetAll(ctx.Context(), callerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all spaces", res))
}

func (c *spaceController) AddBookmark(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)
	spaceId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid space id")
	}
	bookmarkId, err := uuid.Parse(ctx.Params("bookmarkId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid bookmark id")
	}

	if err := c.service.AddBookmark(ctx.Context(), callerId, spaceId, bookmarkId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add bookmark to space", nil))
}

func (c *spaceController) RemoveBookmark(ctx *fiber.Ctx) error {
	callerId := serverutils.CallerID(ctx)
	spaceId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid space id")
	}
	bookmarkId, err := uuid.Parse(ctx.Params("bookmarkId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid bookmark id")
	}

	if err := c.service.RemoveBookmark(ctx.Context(), callerId, spaceId, bookmarkId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove bookmark from space", nil))
}
