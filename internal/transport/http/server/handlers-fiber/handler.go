// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/al-redowan/freefire-group-maker/config"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/middleware"
	"github.com/al-redowan/freefire-group-maker/internal/usecase"
)

// Handler serves the roster HTTP API using service layer interfaces.
type Handler struct {
	log    *zap.SugaredLogger
	uc     usecase.InterfaceUsecase
	cfg    *config.Config
	tokens *middleware.TokenStore
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, cfg *config.Config, tokens *middleware.TokenStore) *Handler {
	return &Handler{
		log:    log,
		uc:     uc,
		cfg:    cfg,
		tokens: tokens,
	}
}

// RegisterRoutes mounts all API routes. Ingestion routes carry their own
// rate limit middlewares.
func (h *Handler) RegisterRoutes(app *fiber.App, uploadLimit, manualLimit fiber.Handler) {
	api := app.Group("/api")

	api.Post("/upload", uploadLimit, h.PostUpload)
	api.Post("/manual-teams", manualLimit, h.PostManualTeams)
	api.Get("/teams", h.GetTeams)

	api.Get("/tournament/groups", h.GetTournamentGroups)
	api.Post("/tournament/groups", h.PostTournamentGroups)

	api.Get("/output/blocks", h.GetOutputBlocks)
	api.Post("/analysis", h.PostAnalysis)

	admin := api.Group("/admin")
	admin.Post("/token", h.PostAdminToken)
	admin.Get("/download", h.GetAdminDownload)
	admin.Delete("/delete", h.DeleteAdminData)
}
