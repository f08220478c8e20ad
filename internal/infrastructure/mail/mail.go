package mail

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"pim-api/config"
)

var ErrNotConfigured = errors.New("mail transport is not configured")

type (
	dialer interface {
		DialAndSend(m ...*gomail.Message) error
	}

	Sender struct {
		logger *zap.Logger
		dialer dialer
		from   string
		to     string
		cfgErr error
	}

	Attachment struct {
		Name        string
		ContentType string
		Data        []byte
	}

	// Message goes to the configured support mailbox. ReplyTo is the requester.
	Message struct {
		ReplyTo     string
		Subject     string
		Body        string
		Headers     map[string]string
		Attachments []Attachment
	}
)

func New(logger *zap.Logger, cfg config.Mail) *Sender {
	s := &Sender{
		logger: logger,
		from:   cfg.From,
		to:     cfg.SupportTo,
	}

	if !cfg.Complete() {
		s.cfgErr = ErrNotConfigured
		logger.Warn("smtp is not configured, support tickets will fail")
		return s
	}

	s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return s
}

func (s *Sender) Send(ctx context.Context, msg Message) error {
	if s.cfgErr != nil {
		return s.cfgErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(s.build(msg)); err != nil {
		return err
	}

	s.logger.Info("support mail sent", zap.String("subject", msg.Subject), zap.Int("attachments", len(msg.Attachments)))

	return nil
}

func (s *Sender) build(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	for k, v := range msg.Headers {
		m.SetHeader(k, v)
	}
	m.SetBody("text/plain", msg.Body)

	for _, a := range msg.Attachments {
		data := a.Data
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		m.Attach(a.Name, settings...)
	}

	return m
}
