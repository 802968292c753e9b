package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ResetCodeEmail renders the password reset mail body.
func ResetCodeEmail(code string) (subject, html string) {
	return "DigiWork Hub Forgot Password",
		fmt.Sprintf(`<p>Use this code to change your password: </p><h3 style="color:blue;">%s</h3>`, code)
}

type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, _ string) error {
	zap.L().Info("mail", zap.String("to", to), zap.String("subject", subject))
	return nil
}
