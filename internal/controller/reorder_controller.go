package controller

import (
	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReorderController interface {
	RegisterRoutes(r fiber.Router)
	Reorder(ctx *fiber.Ctx) error
}

type reorderController struct {
	reorderService service.IReorderService
}

func NewReorderController(reorderService service.IReorderService) IReorderController {
	return &reorderController{
		reorderService: reorderService,
	}
}

func (c *reorderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reorder/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Reorder)
}

func (c *reorderController) Reorder(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.ReorderRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reorderService.Reorder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reorder", res))
}
