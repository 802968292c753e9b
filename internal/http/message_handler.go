package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	middleware "digiwork-hub.com/digiwork-hub/internal/http/middlewares"
	"digiwork-hub.com/digiwork-hub/internal/http/validators"
)

// Messages and replies arrive as multipart forms: a JSON document in one
// field plus any number of "files" parts.
const filesField = "files"

func (h *Handler) SendMessage(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	var body dto.MessageBody
	if err := validators.DecodeField(c.FormValue("messageBody"), &body); err != nil {
		return err
	}
	uploads, closeAll, err := formFiles(c, filesField)
	if err != nil {
		return err
	}
	defer closeAll()

	ctx := c.Request().Context()
	message, err := h.svc.Messages.Send(ctx, actor, body, uploads)
	if err != nil {
		return err
	}
	resp, err := h.projector.MessageSummary(ctx, message, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ReplyMessage(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	var body dto.ReplyBody
	if err := validators.DecodeField(c.FormValue("replyBody"), &body); err != nil {
		return err
	}
	uploads, closeAll, err := formFiles(c, filesField)
	if err != nil {
		return err
	}
	defer closeAll()

	ctx := c.Request().Context()
	reply, err := h.svc.Messages.Reply(ctx, actor, id, body, uploads)
	if err != nil {
		return err
	}
	resp, err := h.projector.Reply(ctx, reply)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListSentMessages(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	messages, err := h.svc.Messages.ListSent(ctx, actor)
	if err != nil {
		return err
	}
	resp, err := h.projector.MessageSummaries(ctx, messages, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListReceivedMessages(c echo.Context) error {
	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	messages, err := h.svc.Messages.ListReceived(ctx, actor)
	if err != nil {
		return err
	}
	resp, err := h.projector.MessageSummaries(ctx, messages, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMessage(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	message, replies, err := h.svc.Messages.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	resp, err := h.projector.MessageDetail(ctx, message, replies)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) HideMessage(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Messages.Hide(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

func (h *Handler) DeleteMessage(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Messages.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}

func (h *Handler) DeleteReply(c echo.Context) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Messages.DeleteReply(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Success())
}
