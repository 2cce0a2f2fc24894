package handlers_fiber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
)

func errorStatus(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteErrorBadRequestFamily(t *testing.T) {
	for _, err := range []error{
		entities.ErrInvalidArgument,
		entities.ErrUnsupportedFile,
		entities.ErrMissingColumns,
		entities.ErrNoRecords,
		entities.ErrUnsafeContent,
		entities.ErrNoTeams,
		entities.ErrTooManyGroups,
	} {
		status, body := errorStatus(t, err)
		require.Equal(t, http.StatusBadRequest, status, err.Error())
		require.Equal(t, err.Error(), body.Error)
	}
}

func TestWriteErrorFileTooLarge(t *testing.T) {
	status, _ := errorStatus(t, entities.ErrFileTooLarge)
	require.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func TestWriteErrorUnauthorized(t *testing.T) {
	status, body := errorStatus(t, entities.ErrUnauthorized)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "unauthorized", body.Error)
}

func TestWriteErrorAnalyzerUnavailable(t *testing.T) {
	status, _ := errorStatus(t, entities.ErrAnalyzerUnavailable)
	require.Equal(t, http.StatusBadGateway, status)
}

func TestWriteErrorDefaultsToInternal(t *testing.T) {
	status, body := errorStatus(t, fiber.ErrTeapot)
	require.Equal(t, http.StatusInternalServerError, status)
	require.NotEmpty(t, body.Error)
}
