package external_services

import (
	"context"
	"fmt"

	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"gopkg.in/gomail.v2"
)

// SMTPEmailService sends HTML mail through an SMTP relay.
type SMTPEmailService struct {
	dialer *gomail.Dialer
	from   string
}

// make sure SMTPEmailService implements contract.IEmailService
var _ contract.IEmailService = (*SMTPEmailService)(nil)

func NewSMTPEmailService(host string, port int, username, password, from string) *SMTPEmailService {
	return &SMTPEmailService{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPEmailService) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	// gomail has no context support, so the caller's deadline is enforced here
	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email via SMTP: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send email via SMTP: %w", ctx.Err())
	}
}

// LogEmailService only logs outgoing mail. It is wired when SMTP is not configured.
type LogEmailService struct {
	logger usecasecontract.IAppLogger
}

var _ contract.IEmailService = (*LogEmailService)(nil)

func NewLogEmailService(logger usecasecontract.IAppLogger) *LogEmailService {
	return &LogEmailService{logger: logger}
}

func (s *LogEmailService) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	s.logger.Infof("email not sent (SMTP disabled): to=%s subject=%q", to, subject)
	return nil
}
