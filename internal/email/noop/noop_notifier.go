package noop

import (
	"context"

	"github.com/sirupsen/logrus"

	"mrtrack/internal/email"
	"mrtrack/internal/port"
)

type noopNotifier struct {
	log         *logrus.Logger
	frontendURL string
}

// NewNoopNotifier creates a Notifier that only logs what would be sent.
func NewNoopNotifier(log *logrus.Logger, frontendURL string) port.Notifier {
	return &noopNotifier{log: log, frontendURL: frontendURL}
}

func (n *noopNotifier) SendApprovalDecision(_ context.Context, notice port.ApprovalNotice) error {
	msg := email.ApprovalDecision(notice, n.frontendURL)
	n.log.WithFields(logrus.Fields{
		"to":          notice.ToEmail,
		"approval_id": notice.Approval.ID,
		"status":      notice.Approval.Status,
	}).Info("[NOOP EMAIL] " + msg.Subject)
	return nil
}

// SendPasswordReset never logs the password itself.
func (n *noopNotifier) SendPasswordReset(_ context.Context, notice port.PasswordResetNotice) error {
	msg := email.PasswordReset(notice, n.frontendURL)
	n.log.WithFields(logrus.Fields{
		"to":       notice.ToEmail,
		"username": notice.Username,
	}).Info("[NOOP EMAIL] " + msg.Subject)
	return nil
}
