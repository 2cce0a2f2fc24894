package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/mapper"
	"github.com/al-redowan/freefire-group-maker/internal/output"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
)

// GetOutputBlocks renders the four canonical output blocks. Without a
// teamsPerGroup parameter the ungrouped rendering is produced.
func (h *Handler) GetOutputBlocks(c *fiber.Ctx) error {
	teamsPerGroup := 0
	if raw := c.Query("teamsPerGroup"); raw != "" {
		var err error
		teamsPerGroup, err = strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "teamsPerGroup must be an integer")
		}
	}
	algorithm := entities.ParseAlgorithm(c.Query("algorithm"))

	blocks, totalTeams, err := h.uc.OutputBlocks(c.Context(), teamsPerGroup, algorithm)
	if err != nil {
		return writeError(c, err)
	}

	if c.Query("format") == "text" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(http.StatusOK).SendString(output.FormatBlocksText(blocks))
	}

	return c.Status(http.StatusOK).JSON(dto.OutputBlocksResponse{
		Blocks:     mapper.ToDTOBlocks(blocks),
		TotalTeams: totalTeams,
	})
}
