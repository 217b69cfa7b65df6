package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/apperrors"
)

// validationError turns validator failures into a BadRequest error naming the
// offending fields.
func validationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(apperrors.KindBadRequest, "validation failed", err)
	}
	details := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
	}
	return apperrors.New(apperrors.KindBadRequest, "validation failed: "+strings.Join(details, "; "))
}

// parseID reads the :id route parameter as an unsigned integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.New(apperrors.KindBadRequest, "invalid id parameter")
	}
	return uint(id), nil
}

// bodyError reports an unparseable request body.
func bodyError(err error) error {
	return apperrors.Wrap(apperrors.KindBadRequest, "invalid request body", err)
}
