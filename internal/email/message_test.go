package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mrtrack/internal/domain"
	"mrtrack/internal/email"
	"mrtrack/internal/port"
)

func TestApprovalDecision_Approved(t *testing.T) {
	msg := email.ApprovalDecision(port.ApprovalNotice{
		ToName: "Rahul Kumar",
		Approval: domain.DailyApproval{
			Date: "2024-01-10", VisitCount: 3, Status: domain.ApprovalStatusApproved, ApprovedBy: "Admin",
			Expense: &domain.DailyExpense{TotalExpense: 820},
		},
	}, "http://localhost:5173/")

	assert.Equal(t, "Your report for 2024-01-10 was approved", msg.Subject)
	assert.Contains(t, msg.Text, "approved by Admin")
	assert.Contains(t, msg.Text, "Rs. 820")
	assert.Contains(t, msg.Text, "http://localhost:5173/mr/expenses?date=2024-01-10")
	assert.Contains(t, msg.HTML, "Rahul Kumar")
}

func TestApprovalDecision_RejectedEscapesReason(t *testing.T) {
	msg := email.ApprovalDecision(port.ApprovalNotice{
		ToName: "Sneha",
		Approval: domain.DailyApproval{
			Date: "2024-01-04", Status: domain.ApprovalStatusRejected, RejectionReason: "<missing> receipts",
		},
	}, "http://x")

	assert.Contains(t, msg.Subject, "rejected")
	assert.Contains(t, msg.Text, "Reason: <missing> receipts")
	assert.Contains(t, msg.HTML, "&lt;missing&gt; receipts")
	assert.Contains(t, msg.Text, "Rs. 0")
}

func TestPasswordReset(t *testing.T) {
	msg := email.PasswordReset(port.PasswordResetNotice{
		ToName:   "Rahul <Kumar>",
		Username: "rahul.kumar",
		Password: "Xk7pQ2mZ",
	}, "http://localhost:5173/")

	assert.Equal(t, "Your MR Track password was reset", msg.Subject)
	assert.Contains(t, msg.Text, "Username: rahul.kumar")
	assert.Contains(t, msg.Text, "Temporary password: Xk7pQ2mZ")
	assert.Contains(t, msg.Text, "http://localhost:5173/login")
	assert.Contains(t, msg.HTML, "Rahul &lt;Kumar&gt;")
}
