package http

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"digiwork-hub.com/digiwork-hub/internal/constants"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
)

func (h *Handler) UploadAttachment(c echo.Context) error {
	actor, taskID, err := actorAndID(c)
	if err != nil {
		return err
	}
	upload, closeFile, err := formFile(c, "file")
	if err != nil {
		return err
	}
	defer closeFile()

	ctx := c.Request().Context()
	attachment, err := h.svc.Attachments.Upload(ctx, actor, taskID, upload)
	if err != nil {
		return err
	}
	resp, err := h.projector.Attachment(ctx, attachment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) DownloadAttachment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	attachment, f, err := h.svc.Attachments.Open(c.Request().Context(), id)
	if err != nil {
		return err
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": attachment.FileName}))
	return c.Stream(http.StatusOK, contentType(attachment.Path), f)
}

func (h *Handler) DeleteAttachment(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Attachments.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

// ServeFile serves a stored path such as "attachments/<uuid>.pdf" as
// returned in attachmentPaths and image fields.
func (h *Handler) ServeFile(c echo.Context) error {
	dir := c.Param("dir")
	if dir != constants.AttachmentsDir && dir != constants.ImagesDir {
		return apperrors.NotFound("file not found")
	}
	name := filepath.Base(c.Param("name"))
	if name == "." || name == "/" {
		return apperrors.NotFound("file not found")
	}

	p := dir + "/" + name
	f, err := h.files.Open(p)
	if err != nil {
		return apperrors.NotFound("file not found")
	}
	defer f.Close()

	return c.Stream(http.StatusOK, contentType(p), f)
}

func contentType(p string) string {
	if t := mime.TypeByExtension(filepath.Ext(p)); t != "" {
		return t
	}
	return echo.MIMEOctetStream
}
