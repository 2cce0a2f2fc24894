package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument),
		errors.Is(err, entities.ErrUnsupportedFile),
		errors.Is(err, entities.ErrMissingColumns),
		errors.Is(err, entities.ErrNoRecords),
		errors.Is(err, entities.ErrUnsafeContent),
		errors.Is(err, entities.ErrNoTeams),
		errors.Is(err, entities.ErrTooManyGroups):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		msg = "unauthorized"
	case errors.Is(err, entities.ErrAnalyzerUnavailable):
		status = http.StatusBadGateway
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
