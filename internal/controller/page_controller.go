package controller

import (
	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListRevisions(ctx *fiber.Ctx) error
	ShowRevision(ctx *fiber.Ctx) error
	RestoreRevision(ctx *fiber.Ctx) error
}

type pageController struct {
	pageService     service.IPageService
	revisionService service.IRevisionService
}

func NewPageController(pageService service.IPageService, revisionService service.IRevisionService) IPageController {
	return &pageController{
		pageService:     pageService,
		revisionService: revisionService,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/page/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get(":slug", c.Show)
	h.Put(":slug", c.Update)
	h.Put(":slug/move", c.Move)
	h.Delete(":slug", c.Delete)
	h.Get(":slug/revisions", c.ListRevisions)
	h.Get(":slug/revisions/:revisionId", c.ShowRevision)
	h.Post(":slug/revisions/:revisionId/restore", c.RestoreRevision)
}

func (c *pageController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePageRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.pageService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create page", res))
}

func (c *pageController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.pageService.Show(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show page", res))
}

func (c *pageController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePageRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Slug = ctx.Params("slug")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.pageService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update page", res))
}

func (c *pageController) Move(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.MovePageRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Slug = ctx.Params("slug")

	res, err := c.pageService.Move(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move page", res))
}

func (c *pageController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := c.pageService.Delete(ctx.Context(), userId, ctx.Params("slug")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete page", nil))
}

func (c *pageController) ListRevisions(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.revisionService.ListRevisions(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list revisions", res))
}

func (c *pageController) ShowRevision(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	revisionId, err := uuid.Parse(ctx.Params("revisionId"))
	if err != nil {
		return apperr.InvalidRequest("invalid revision id")
	}

	res, err := c.revisionService.ShowRevision(ctx.Context(), userId, ctx.Params("slug"), revisionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show revision", res))
}

func (c *pageController) RestoreRevision(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	revisionId, err := uuid.Parse(ctx.Params("revisionId"))
	if err != nil {
		return apperr.InvalidRequest("invalid revision id")
	}

	if err := c.revisionService.Restore(ctx.Context(), userId, ctx.Params("slug"), revisionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success restore revision", nil))
}
