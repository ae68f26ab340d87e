// Package email renders the messages sent to field reps.
package email

import (
	"fmt"
	"html"
	"strings"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

// Message is a rendered email.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// ApprovalDecision renders the notice for an approved or rejected day.
func ApprovalDecision(notice port.ApprovalNotice, frontendURL string) Message {
	a := notice.Approval
	link := strings.TrimRight(frontendURL, "/") + "/mr/expenses?date=" + a.Date

	var total int64
	if a.Expense != nil {
		total = a.Expense.TotalExpense
	}

	var subject, verdict string
	switch a.Status {
	case domain.ApprovalStatusApproved:
		subject = fmt.Sprintf("Your report for %s was approved", a.Date)
		verdict = fmt.Sprintf("was approved by %s", a.ApprovedBy)
	case domain.ApprovalStatusRejected:
		subject = fmt.Sprintf("Your report for %s was rejected", a.Date)
		verdict = fmt.Sprintf("was rejected. Reason: %s", a.RejectionReason)
	default:
		subject = fmt.Sprintf("Your report for %s is pending", a.Date)
		verdict = "is awaiting review"
	}

	text := fmt.Sprintf("Hi %s,\n\nYour daily report for %s (%d doctor visits, %d shop visits, expense Rs. %d) %s.\n\nDetails: %s\n\nMR Track",
		notice.ToName, a.Date, a.VisitCount, a.ShopVisitCount, total, verdict, link)

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s</h2>
  <p>Hi %s,</p>
  <p>Your daily report for <strong>%s</strong> %s.</p>
  <table style="border-collapse: collapse; margin: 16px 0;">
    <tr><td style="padding: 4px 12px 4px 0;">Doctor visits</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Shop visits</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Total expense</td><td>Rs. %d</td></tr>
  </table>
  <p><a href="%s" style="color: #4F46E5;">View report</a></p>
</body>
</html>`,
		html.EscapeString(subject), html.EscapeString(notice.ToName), a.Date, html.EscapeString(verdict),
		a.VisitCount, a.ShopVisitCount, total, html.EscapeString(link))

	return Message{Subject: subject, Text: text, HTML: body}
}

// PasswordReset renders the notice carrying a temporary password.
func PasswordReset(notice port.PasswordResetNotice, frontendURL string) Message {
	link := strings.TrimRight(frontendURL, "/") + "/login"
	subject := "Your MR Track password was reset"

	text := fmt.Sprintf("Hi %s,\n\nAn administrator reset your password.\n\nUsername: %s\nTemporary password: %s\n\nSign in at %s\n\nMR Track",
		notice.ToName, notice.Username, notice.Password, link)

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s</h2>
  <p>Hi %s,</p>
  <p>An administrator reset your password.</p>
  <table style="border-collapse: collapse; margin: 16px 0;">
    <tr><td style="padding: 4px 12px 4px 0;">Username</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Temporary password</td><td><code>%s</code></td></tr>
  </table>
  <p><a href="%s" style="color: #4F46E5;">Sign in</a></p>
</body>
</html>`,
		html.EscapeString(subject), html.EscapeString(notice.ToName), html.EscapeString(notice.Username),
		html.EscapeString(notice.Password), html.EscapeString(link))

	return Message{Subject: subject, Text: text, HTML: body}
}
