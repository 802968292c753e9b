package notify

import (
	"context"

	"go.uber.org/zap"
)

const PriorityHigh = "high"

// Message is the payload delivered to one device.
type Message struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
}

// Transport delivers a message to a device token. Implementations must
// honour ctx cancellation.
type Transport interface {
	Send(ctx context.Context, token string, msg Message) error
}

// LogTransport only records deliveries. It is the default for local runs.
type LogTransport struct{}

func (LogTransport) Send(_ context.Context, token string, msg Message) error {
	zap.L().Info("push notification",
		zap.String("token", token),
		zap.String("title", msg.Title),
		zap.String("body", msg.Body),
	)
	return nil
}
