package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mrtrack/internal/port"
)

// MockNotifier is a mock implementation of port.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendApprovalDecision(ctx context.Context, notice port.ApprovalNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNotifier) SendPasswordReset(ctx context.Context, notice port.PasswordResetNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}
