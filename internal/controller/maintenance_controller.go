package controller

import (
	"bookmarkhub-be/internal/pkg/serverutils"
	"bookmarkhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// MaintenanceController exposes the scheduled-maintenance trigger. The
// scheduler lives outside this service; this is just the hook it calls.
type IMaintenanceController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
}

type maintenanceController struct {
	service service.IMaintenanceService
}

func NewMaintenanceController(svc service.IMaintenanceService) IMaintenanceController {
	return &maintenanceController{service: svc}
}

func (c *maintenanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/maintenance/v1")
	h.Post("/run", c.Run)
}

func (c *maintenanceController) Run(ctx *fiber.Ctx) error {
	res, err := c.service.Run(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Maintenance completed", res))
}
