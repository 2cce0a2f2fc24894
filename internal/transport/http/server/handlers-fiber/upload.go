package handlers_fiber

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/al-redowan/freefire-group-maker/internal/entities"
	"github.com/al-redowan/freefire-group-maker/internal/mapper"
)

// PostUpload ingests a multipart batch of CSV/TXT files into the roster.
func (h *Handler) PostUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "multipart form expected")
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return badRequest(c, "no files uploaded")
	}

	files := make([]entities.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return badRequest(c, fmt.Sprintf("cannot read file %s", fh.Filename))
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return badRequest(c, fmt.Sprintf("cannot read file %s", fh.Filename))
		}
		files = append(files, entities.UploadFile{
			Name:    fh.Filename,
			Content: string(content),
		})
	}

	result, err := h.uc.UploadFiles(c.Context(), files)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	msg := fmt.Sprintf("Processed %d file(s): %d new team(s), %d duplicate(s) merged",
		len(files), result.NewRecords, result.DuplicatesRemoved)
	return c.Status(http.StatusOK).JSON(mapper.ToDTOUploadResponse(result, msg))
}
