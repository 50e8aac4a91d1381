package email

import (
	"context"
	"strings"
	"testing"

	"hrms/internal/platform/config"
)

func TestNewWithoutSMTPLogsOnly(t *testing.T) {
	mailer := New(config.Config{EmailEnabled: true})
	if _, ok := mailer.(logMailer); !ok {
		t.Fatalf("expected log mailer without an SMTP host, got %T", mailer)
	}
	if err := mailer.Send(context.Background(), "ada@example.com", "Reset", "code"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if _, ok := New(config.Config{EmailEnabled: true, SMTPHost: "smtp.example.com"}).(*smtpMailer); !ok {
		t.Fatal("expected smtp mailer when enabled with a host")
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(BuildMessage("no-reply@example.com", "ada@example.com", "Password reset", "token"))
	if !strings.HasPrefix(msg, "From: no-reply@example.com\r\nTo: ada@example.com\r\nSubject: Password reset\r\n") {
		t.Fatalf("unexpected headers: %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\ntoken") {
		t.Fatalf("expected blank line before body: %q", msg)
	}
}
