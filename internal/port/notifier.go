package port

import (
	"context"

	"mrtrack/internal/domain"
)

// ApprovalNotice is sent to a rep when their daily report is decided.
type ApprovalNotice struct {
	ToEmail  string
	ToName   string
	Approval domain.DailyApproval
}

// PasswordResetNotice carries a freshly issued temporary password.
type PasswordResetNotice struct {
	ToEmail  string
	ToName   string
	Username string
	Password string
}

// Notifier delivers approval decisions and credentials to field reps.
type Notifier interface {
	SendApprovalDecision(ctx context.Context, notice ApprovalNotice) error
	SendPasswordReset(ctx context.Context, notice PasswordResetNotice) error
}
