// internal/app/system/mailer/mailer.go
package mailer

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Email is a fully built message ready for delivery.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Config holds SMTP settings. User/Pass may be blank for dev relays
// (Mailpit) that accept unauthenticated mail.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// Mailer delivers email over SMTP. Notification sends are fire-and-forget
// from the caller's perspective; failures are logged, never propagated into
// request handling.
type Mailer struct {
	cfg Config
	log *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: logger}
}

// Send delivers the email synchronously.
func (m *Mailer) Send(ctx context.Context, e Email) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return fmt.Errorf("mailer: from address: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return fmt.Errorf("mailer: to address: %w", err)
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, e.TextBody)
	if e.HTMLBody != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, e.HTMLBody)
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.User),
			gomail.WithPassword(m.cfg.Pass),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mailer: client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// SendAsync delivers the email on its own goroutine and logs the outcome.
// Used for notifications where the request must not wait on SMTP.
func (m *Mailer) SendAsync(e Email) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := m.Send(ctx, e); err != nil {
			m.log.Error("notification email failed",
				zap.String("to", e.To),
				zap.String("subject", e.Subject),
				zap.Error(err))
			return
		}
		m.log.Info("notification email sent",
			zap.String("to", e.To),
			zap.String("subject", e.Subject))
	}()
}
