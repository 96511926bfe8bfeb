package controller

import (
	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBookController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type bookController struct {
	bookService service.IBookService
}

func NewBookController(bookService service.IBookService) IBookController {
	return &bookController{
		bookService: bookService,
	}
}

func (c *bookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/book/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get(":slug", c.Show)
	h.Put(":slug", c.Update)
	h.Delete(":slug", c.Delete)
}

func (c *bookController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateBookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create book", res))
}

func (c *bookController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.bookService.Show(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show book", res))
}

func (c *bookController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateBookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Slug = ctx.Params("slug")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update book", res))
}

func (c *bookController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := c.bookService.Delete(ctx.Context(), userId, ctx.Params("slug")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete book", nil))
}
