package controller

import (
	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChapterController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chapterController struct {
	chapterService service.IChapterService
}

func NewChapterController(chapterService service.IChapterService) IChapterController {
	return &chapterController{
		chapterService: chapterService,
	}
}

func (c *chapterController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chapter/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get(":slug", c.Show)
	h.Put(":slug", c.Update)
	h.Delete(":slug", c.Delete)
}

func (c *chapterController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateChapterRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chapterService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create chapter", res))
}

func (c *chapterController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.chapterService.Show(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chapter", res))
}

func (c *chapterController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateChapterRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Slug = ctx.Params("slug")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chapterService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update chapter", res))
}

func (c *chapterController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := c.chapterService.Delete(ctx.Context(), userId, ctx.Params("slug")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete chapter", nil))
}
