package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const resendEndpoint = "https://api.resend.com/emails"

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type ResendMailer struct {
	client *resty.Client
	from   string
	url    string
}

func NewResendMailer(apiKey, from string, timeout time.Duration) *ResendMailer {
	return &ResendMailer{
		client: resty.New().SetTimeout(timeout).SetAuthToken(apiKey),
		from:   from,
		url:    resendEndpoint,
	}
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(resendRequest{From: m.from, To: []string{to}, Subject: subject, HTML: html}).
		Post(m.url)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("resend API error: status %d", resp.StatusCode())
	}
	return nil
}
