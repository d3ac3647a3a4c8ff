package mailer

import (
	"context"
	"crypto/tls"
	"net"
	"net/mail"
	"net/smtp"
	"time"

	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/errs"

	"github.com/jordan-wright/email"
)

type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendEmail sends an HTML message. The connection carries a deadline from ctx
// and the configured mail timeout, so a stuck server cannot hold it open.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	e := email.NewEmail()
	e.From = s.cfg.From
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	if err := s.send(ctx, e); err != nil {
		if ctx.Err() != nil {
			return errs.Wrap(ctx.Err(), "email send aborted")
		}
		return errs.Wrapf(err, "failed to send email to %s", to)
	}
	return nil
}

func (s *SMTPSender) send(ctx context.Context, e *email.Email) error {
	sender, err := mail.ParseAddress(e.From)
	if err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	msg, err := e.Bytes()
	if err != nil {
		return errs.Wrap(err, "failed to build message")
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", s.cfg.Addr())
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return err
		}
	}
	if s.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
				return err
			}
		}
	}

	if err := client.Mail(sender.Address); err != nil {
		return err
	}
	for _, rcpt := range e.To {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
