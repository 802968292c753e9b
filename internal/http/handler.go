package http

import (
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	middleware "digiwork-hub.com/digiwork-hub/internal/http/middlewares"
	"digiwork-hub.com/digiwork-hub/internal/http/validators"
	"digiwork-hub.com/digiwork-hub/internal/projection"
	"digiwork-hub.com/digiwork-hub/internal/services"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

type Handler struct {
	svc       *services.Services
	projector *projection.Projector
	files     *storage.FileStore
}

func NewHandler(svc *services.Services, projector *projection.Projector, files *storage.FileStore) *Handler {
	return &Handler{svc: svc, projector: projector, files: files}
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidPayload
	}
	return nil
}

func pathID(c echo.Context) (uint, error) {
	return validators.ParseID(c.Param("id"))
}

// actorAndID is the common prelude of handlers addressing one entity.
func actorAndID(c echo.Context) (auth.Actor, uint, error) {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return auth.Actor{}, 0, err
	}
	id, err := pathID(c)
	if err != nil {
		return auth.Actor{}, 0, err
	}
	return actor, id, nil
}

// formFiles opens every file sent under field. The returned function closes them.
func formFiles(c echo.Context, field string) ([]storage.Upload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, apperrors.ErrInvalidPayload
	}

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	uploads := make([]storage.Upload, 0, len(form.File[field]))
	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, apperrors.ErrInvalidPayload
		}
		opened = append(opened, f)
		uploads = append(uploads, storage.Upload{Name: fh.Filename, Content: f})
	}
	return uploads, closeAll, nil
}

// formFile opens the single file sent under field.
func formFile(c echo.Context, field string) (storage.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return storage.Upload{}, func() {}, apperrors.ErrFileMissing
	}
	f, err := fh.Open()
	if err != nil {
		return storage.Upload{}, func() {}, apperrors.ErrInvalidPayload
	}
	return storage.Upload{Name: fh.Filename, Content: f}, func() { _ = f.Close() }, nil
}
