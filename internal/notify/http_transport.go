package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPTransport posts legacy FCM style payloads to a push gateway.
type HTTPTransport struct {
	client *resty.Client
	url    string
}

type pushRequest struct {
	To       string            `json:"to"`
	Priority string            `json:"priority"`
	Data     map[string]string `json:"data"`
}

func NewHTTPTransport(url, serverKey string, timeout time.Duration) *HTTPTransport {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Authorization", "key="+serverKey).
		SetHeader("Content-Type", "application/json")

	return &HTTPTransport{client: client, url: url}
}

func (t *HTTPTransport) Send(ctx context.Context, token string, msg Message) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(pushRequest{
			To:       token,
			Priority: msg.Priority,
			Data:     map[string]string{"title": msg.Title, "body": msg.Body},
		}).
		Post(t.url)
	if err != nil {
		return fmt.Errorf("push gateway request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("push gateway responded %d", resp.StatusCode())
	}
	return nil
}
