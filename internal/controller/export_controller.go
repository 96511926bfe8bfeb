package controller

import (
	"fmt"

	"bookhive-be/internal/pkg/serverutils"
	"bookhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	ExportPage(ctx *fiber.Ctx) error
}

type exportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) IExportController {
	return &exportController{
		exportService: exportService,
	}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":book/:slug", c.ExportPage)
}

func (c *exportController) ExportPage(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	result, err := c.exportService.ExportPage(
		ctx.Context(),
		userId,
		ctx.Params("book"),
		ctx.Params("slug"),
		ctx.Query("format"),
	)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, result.MimeType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	return ctx.Send(result.Data)
}
