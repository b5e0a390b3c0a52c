package notification

import (
	"context"
	"fmt"

	"golf-lesson-booking/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer sends plain-text mail over SMTP.
type Mailer struct {
	config *utils.Config
	log    *zap.Logger
}

func NewMailer(config *utils.Config, log *zap.Logger) *Mailer {
	return &Mailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(m.config.Email.FromName, m.config.Email.From); err != nil {
		return fmt.Errorf("set mail sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set mail recipient %s: %w", to, err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.config.Email.Host,
		mail.WithPort(m.config.Email.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.Email.User),
		mail.WithPassword(m.config.Email.Password),
	)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.log.Debug("Mail sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	return nil
}
