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

const defaultTeamsPerGroup = 4

// GetTournamentGroups partitions the stored roster per query parameters.
// groupCount takes precedence over teamsPerGroup; format=text returns the
// plain-text summary instead of JSON.
func (h *Handler) GetTournamentGroups(c *fiber.Ctx) error {
	algorithm := entities.ParseAlgorithm(c.Query("algorithm"))

	var (
		grouping entities.Grouping
		err      error
	)
	if raw := c.Query("groupCount"); raw != "" {
		groupCount, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return badRequest(c, "groupCount must be an integer")
		}
		grouping, err = h.uc.GroupsByCount(c.Context(), groupCount, algorithm)
	} else {
		teamsPerGroup := defaultTeamsPerGroup
		if raw := c.Query("teamsPerGroup"); raw != "" {
			teamsPerGroup, err = strconv.Atoi(raw)
			if err != nil {
				return badRequest(c, "teamsPerGroup must be an integer")
			}
		}
		grouping, err = h.uc.GroupsBySize(c.Context(), teamsPerGroup)
	}
	if err != nil {
		return writeError(c, err)
	}

	return respondGrouping(c, grouping)
}

// PostTournamentGroups groups either the submitted name list or, when no
// names are given, the stored roster. An empty roster is rejected.
func (h *Handler) PostTournamentGroups(c *fiber.Ctx) error {
	var body dto.GroupsRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	algorithm := entities.ParseAlgorithm(body.Algorithm)
	teamsPerGroup := body.TeamsPerGroup
	if teamsPerGroup < 1 {
		teamsPerGroup = defaultTeamsPerGroup
	}

	var (
		grouping entities.Grouping
		err      error
	)
	switch {
	case len(body.Names) > 0:
		grouping, err = h.uc.GroupNameList(c.Context(), body.Names, teamsPerGroup)
	case body.GroupCount > 0:
		grouping, err = h.uc.GroupsByCount(c.Context(), body.GroupCount, algorithm)
	default:
		grouping, err = h.uc.GroupsBySize(c.Context(), teamsPerGroup)
	}
	if err != nil {
		return writeError(c, err)
	}
	if grouping.TotalTeams == 0 {
		return writeError(c, entities.ErrNoTeams)
	}

	return respondGrouping(c, grouping)
}

func respondGrouping(c *fiber.Ctx, grouping entities.Grouping) error {
	if c.Query("format") == "text" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(http.StatusOK).SendString(output.FormatGroupsText(grouping))
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOGroupsResponse(grouping))
}
