package queue

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/rueidis"

	"digiwork-hub.com/digiwork-hub/internal/notify"
)

// RedisPushQueue hands notifications to an external pusher by appending
// them to a Redis list.
type RedisPushQueue struct {
	client rueidis.Client
	key    string
}

type pushEnvelope struct {
	Token    string `json:"token"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
}

func NewRedisPushQueue(client rueidis.Client, key string) *RedisPushQueue {
	return &RedisPushQueue{
		client: client,
		key:    key,
	}
}

func encode(token string, msg notify.Message) (string, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(pushEnvelope{
		Token:    token,
		Title:    msg.Title,
		Body:     msg.Body,
		Priority: msg.Priority,
	})
}

func (q *RedisPushQueue) Send(ctx context.Context, token string, msg notify.Message) error {
	payload, err := encode(token, msg)
	if err != nil {
		return err
	}

	cmd := q.client.B().Rpush().Key(q.key).Element(payload).Build()
	return q.client.Do(ctx, cmd).Error()
}
