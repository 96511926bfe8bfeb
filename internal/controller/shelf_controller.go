package controller

import (
	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IShelfController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type shelfController struct {
	shelfService service.IShelfService
}

func NewShelfController(shelfService service.IShelfService) IShelfController {
	return &shelfController{
		shelfService: shelfService,
	}
}

func (c *shelfController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/shelf/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get(":slug", c.Show)
	h.Put(":slug", c.Update)
	h.Delete(":slug", c.Delete)
}

func (c *shelfController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateShelfRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.shelfService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create shelf", res))
}

func (c *shelfController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.shelfService.Show(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show shelf", res))
}

func (c *shelfController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateShelfRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Slug = ctx.Params("slug")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.shelfService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update shelf", res))
}

func (c *shelfController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := c.shelfService.Delete(ctx.Context(), userId, ctx.Params("slug")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete shelf", nil))
}
