package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/al-redowan/freefire-group-maker/internal/mapper"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
)

// PostAnalysis runs the AI team-name analysis. With no names in the body
// the current roster is analyzed; structured=true requests the
// schema-constrained response shape.
func (h *Handler) PostAnalysis(c *fiber.Ctx) error {
	var body dto.AnalysisRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if body.Structured {
		analysis, err := h.uc.AnalyzeTeamNamesStructured(c.Context(), body.Names, body.Instruction)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(http.StatusOK).JSON(mapper.ToDTOStructuredAnalysis(analysis))
	}

	text, err := h.uc.AnalyzeTeamNames(c.Context(), body.Names, body.Instruction)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.AnalysisResponse{Analysis: text})
}
