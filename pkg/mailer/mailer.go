package mailer

import (
	"context"

	"go.uber.org/zap"

	"ecomus.backend/pkg/logger"
)

// Mailer delivers account emails out-of-band. Implementations receive a
// recipient address and a fully-formed link.
type Mailer interface {
	SendActivationEmail(ctx context.Context, to, link string) error
	SendPasswordResetEmail(ctx context.Context, to, link string) error
}

// Email kinds carried in the queued payload.
const (
	KindActivation    = "account_activation"
	KindPasswordReset = "password_reset"
)

// Message is the payload published for the mail worker.
type Message struct {
	Kind string `json:"kind"`
	To   string `json:"to"`
	Link string `json:"link"`
}

// LogMailer logs emails instead of delivering them. Used in development and
// when the message queue is disabled.
type LogMailer struct{}

// NewLogMailer creates a log-only mailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendActivationEmail(ctx context.Context, to, link string) error {
	logger.Info(ctx, "activation email (log only)", zap.String("to", to), zap.String("link", link))
	return nil
}

func (m *LogMailer) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	logger.Info(ctx, "password reset email (log only)", zap.String("to", to), zap.String("link", link))
	return nil
}
