package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer dispatches certificate emails with the rendered document
// attached. An unconfigured mailer refuses to send with a typed error
// instead of pretending delivery happened, so sent_email flags stay
// honest.
type SMTPMailer struct {
	cfg SMTPConfig
	log logger.Logger
}

func NewSMTPMailer(cfg SMTPConfig, log logger.Logger) *SMTPMailer {
	if cfg.Host == "" {
		log.Warn("smtp host is empty, certificate email delivery disabled")
	}
	return &SMTPMailer{cfg: cfg, log: log}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string, attachment *domain.Artifact) error {
	if m.cfg.Host == "" {
		return fmt.Errorf("%w: smtp is not configured", domain.ErrConfiguration)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := m.buildMessage(to, subject, body, attachment)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.log.Info("certificate email sent",
		logger.String("to", to),
		logger.String("subject", subject),
	)

	return nil
}

const mimeBoundary = "bookable-mail-boundary"

func (m *SMTPMailer) buildMessage(to, subject, body string, attachment *domain.Artifact) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if attachment == nil {
		buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		buf.WriteString(body)
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", mimeBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
	fmt.Fprintf(&buf, "Content-Type: %s\r\n", attachment.ContentType)
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n", attachment.Name)
	buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	buf.WriteString(base64.StdEncoding.EncodeToString(attachment.Data))
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s--\r\n", mimeBoundary)

	return buf.Bytes()
}
