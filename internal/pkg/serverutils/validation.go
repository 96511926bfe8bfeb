package serverutils

import (
	"fmt"
	"strings"

	"bookhive-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseBody decodes the request body into a DTO. A body that does not
// unmarshal is the caller's fault and maps to a 400, never a 500.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperr.InvalidRequest("malformed request body")
	}
	return nil
}

// ValidateRequest checks the `validate` struct tags on a request DTO and
// converts failures into an InvalidRequest error for the boundary middleware.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.InvalidRequest("invalid request body")
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return apperr.InvalidRequest("validation failed: " + strings.Join(fields, ", "))
}
