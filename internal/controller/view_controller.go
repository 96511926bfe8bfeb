package controller

import (
	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IViewController interface {
	RegisterRoutes(r fiber.Router)
	ShowBook(ctx *fiber.Ctx) error
}

// viewController exposes the public reading view. It deliberately registers
// no auth middleware: anyone with a book URL may read it.
type viewController struct {
	viewService service.IViewService
}

func NewViewController(viewService service.IViewService) IViewController {
	return &viewController{
		viewService: viewService,
	}
}

func (c *viewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/view/v1")
	h.Get("book/:slug", c.ShowBook)
}

func (c *viewController) ShowBook(ctx *fiber.Ctx) error {
	res, err := c.viewService.ShowBook(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show book", res))
}
