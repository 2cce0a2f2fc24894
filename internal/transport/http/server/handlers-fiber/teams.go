package handlers_fiber

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/al-redowan/freefire-group-maker/internal/mapper"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
)

// PostManualTeams merges manually entered teams into the roster.
func (h *Handler) PostManualTeams(c *fiber.Ctx) error {
	var body dto.ManualTeamsRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	teams := mapper.FromDTOTeams(body.Teams)
	nonEmpty := teams[:0]
	for _, t := range teams {
		if strings.TrimSpace(t.TeamName) != "" || strings.TrimSpace(t.Email) != "" || strings.TrimSpace(t.Username) != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	if len(nonEmpty) == 0 {
		return badRequest(c, "at least one team with a name, email or username is required")
	}

	result, err := h.uc.AddManualTeams(c.Context(), nonEmpty)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	msg := fmt.Sprintf("Added %d team(s), %d duplicate(s) merged", result.NewRecords, result.DuplicatesRemoved)
	return c.Status(http.StatusOK).JSON(mapper.ToDTOUploadResponse(result, msg))
}

// GetTeams returns the current roster snapshot.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	snapshot, err := h.uc.Snapshot(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamsResponse(snapshot))
}
