package controller

import (
	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IImportController interface {
	RegisterRoutes(r fiber.Router)
	ImportFromURL(ctx *fiber.Ctx) error
}

type importController struct {
	importService service.IImportService
}

func NewImportController(importService service.IImportService) IImportController {
	return &importController{
		importService: importService,
	}
}

func (c *importController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/import/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("url", c.ImportFromURL)
}

func (c *importController) ImportFromURL(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.ImportURLRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.importService.ImportFromURL(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success import book", res))
}
