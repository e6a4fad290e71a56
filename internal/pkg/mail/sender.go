package mail

import (
	"Inkwell/internal/api/config"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"
)

var ErrInvalidRecipient = errors.New("invalid recipient")

// Sender 发送纯文本邮件
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewSender Host 为空时返回只写日志的实现
func NewSender(cfg config.MailConfig) Sender {
	if cfg.Host == "" {
		return &LogSender{From: cfg.From}
	}
	return &SMTPSender{cfg: cfg, timeout: 30 * time.Second}
}

type SMTPSender struct {
	cfg     config.MailConfig
	timeout time.Duration
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if !strings.Contains(to, "@") || strings.ContainsAny(to, "\r\n") {
		return ErrInvalidRecipient
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	dialer := &net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if s.cfg.UseTLS {
		if err = client.StartTLS(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err = client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err = w.Write([]byte(BuildMessage(s.cfg.From, to, subject, body))); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

// LogSender 未配置 SMTP 时把邮件写入日志
type LogSender struct {
	From string
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	log.InfoContext(ctx, "mail", "from", s.From, "to", to, "subject", subject, "body", body)
	return nil
}

// BuildMessage 拼接带头部的邮件正文
func BuildMessage(from, to, subject, body string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return msg.String()
}
