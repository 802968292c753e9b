package projection

import (
	"context"

	"digiwork-hub.com/digiwork-hub/internal/codec"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	model "digiwork-hub.com/digiwork-hub/internal/models"
)

// MessageSummary renders m from viewer's side of the conversation.
func (p *Projector) MessageSummary(ctx context.Context, m *model.Message, viewer uint) (dto.MessageSummary, error) {
	r := p.resolver(ctx)
	resp := r.messageSummary(m, viewer)
	return resp, r.err
}

func (p *Projector) MessageSummaries(ctx context.Context, messages []model.Message, viewer uint) ([]dto.MessageSummary, error) {
	r := p.resolver(ctx)
	out := make([]dto.MessageSummary, 0, len(messages))
	for i := range messages {
		out = append(out, r.messageSummary(&messages[i], viewer))
	}
	return out, r.err
}

func (p *Projector) MessageDetail(ctx context.Context, m *model.Message, replies []model.MessageReply) (dto.MessageDetailResponse, error) {
	r := p.resolver(ctx)
	resp := dto.MessageDetailResponse{
		MessageID:       m.ID,
		Title:           m.Title,
		Description:     m.Description,
		SentDate:        codec.FormatDate(m.CreatedAt),
		Sender:          r.user(m.SenderID),
		Receiver:        r.user(m.ReceiverID),
		AttachmentPaths: strs(m.AttachmentPaths),
		FileNames:       strs(m.FileNames),
		Replies:         make([]dto.ReplyResponse, 0, len(replies)),
	}
	for i := range replies {
		resp.Replies = append(resp.Replies, r.reply(&replies[i]))
	}
	return resp, r.err
}

func (p *Projector) Reply(ctx context.Context, reply *model.MessageReply) (dto.ReplyResponse, error) {
	r := p.resolver(ctx)
	resp := r.reply(reply)
	return resp, r.err
}

func (r *resolver) messageSummary(m *model.Message, viewer uint) dto.MessageSummary {
	return dto.MessageSummary{
		MessageID: m.ID,
		SentDate:  codec.FormatDate(m.CreatedAt),
		Other:     r.user(m.Counterpart(viewer)),
		Title:     m.Title,
	}
}

func (r *resolver) reply(reply *model.MessageReply) dto.ReplyResponse {
	return dto.ReplyResponse{
		MessageReplyID:  reply.ID,
		MessageID:       reply.MessageID,
		SentDate:        codec.FormatDate(reply.CreatedAt),
		Description:     reply.Description,
		FromID:          reply.FromID,
		From:            r.user(reply.FromID),
		AttachmentPaths: strs(reply.AttachmentPaths),
		FileNames:       strs(reply.FileNames),
	}
}
