package handlers_fiber

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/middleware"
)

// PostAdminToken exchanges admin credentials for an ephemeral token.
func (h *Handler) PostAdminToken(c *fiber.Ctx) error {
	var body dto.TokenRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if !middleware.CheckCredentials(body.Username, body.Password, h.cfg.Admin.User, h.cfg.Admin.Password) {
		h.log.Infow("admin token request rejected", "ip", c.IP())
		return writeError(c, entities.ErrUnauthorized)
	}

	token, expiresAt := h.tokens.Issue()
	return c.Status(http.StatusOK).JSON(dto.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// GetAdminDownload streams the raw roster document as an attachment.
// Authorized by ephemeral token (query or header) or basic credentials.
func (h *Handler) GetAdminDownload(c *fiber.Ctx) error {
	if !h.authorized(c) {
		return writeError(c, entities.ErrUnauthorized)
	}

	data, err := h.uc.ExportData(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	filename := fmt.Sprintf("teams-export-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Status(http.StatusOK).Send(data)
}

// DeleteAdminData resets the roster to an empty document.
func (h *Handler) DeleteAdminData(c *fiber.Ctx) error {
	if !h.authorized(c) {
		return writeError(c, entities.ErrUnauthorized)
	}

	if _, err := h.uc.ClearData(c.Context()); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.ClearResponse{
		Success: true,
		Message: "all team data deleted",
	})
}

// authorized accepts a valid ephemeral token via the token query parameter
// or X-Admin-Token header, or basic auth with the configured credentials.
func (h *Handler) authorized(c *fiber.Ctx) bool {
	token := c.Query("token")
	if token == "" {
		token = c.Get("X-Admin-Token")
	}
	if token != "" && h.tokens.Verify(token) {
		return true
	}

	user, password, ok := basicCredentials(c.Get(fiber.HeaderAuthorization))
	return ok && middleware.CheckCredentials(user, password, h.cfg.Admin.User, h.cfg.Admin.Password)
}

func basicCredentials(header string) (string, string, bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		return "", "", false
	}
	user, password, found := strings.Cut(string(decoded), ":")
	return user, password, found
}
