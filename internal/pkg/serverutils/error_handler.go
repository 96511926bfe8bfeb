package serverutils

import (
	"errors"

	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into the response taxonomy.
// Upstream failures reply with a generic message; the cause is only logged.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperr.As(err); ok {
			switch appErr.Kind {
			case apperr.KindUnauthenticated:
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, appErr.Message))
			case apperr.KindAccessDenied:
				return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, appErr.Message))
			case apperr.KindNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, appErr.Message))
			case apperr.KindInvalidRequest:
				return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, appErr.Message))
			case apperr.KindUpstream:
				log.Error("http", "upstream failure", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
				return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, appErr.Message))
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
