package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"mrtrack/internal/config"
	"mrtrack/internal/email"
	"mrtrack/internal/port"
)

type sesNotifier struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESNotifier creates an SES-backed Notifier.
func NewSESNotifier(cfg *config.EmailConfig) (port.Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesNotifier{
		client:      sesv2.NewFromConfig(awsCfg),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		frontendURL: cfg.FrontendURL,
	}, nil
}

func (s *sesNotifier) SendApprovalDecision(ctx context.Context, notice port.ApprovalNotice) error {
	return s.send(ctx, notice.ToEmail, email.ApprovalDecision(notice, s.frontendURL))
}

func (s *sesNotifier) SendPasswordReset(ctx context.Context, notice port.PasswordResetNotice) error {
	return s.send(ctx, notice.ToEmail, email.PasswordReset(notice, s.frontendURL))
}

func (s *sesNotifier) send(ctx context.Context, to string, msg email.Message) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &msg.Subject},
				Body: &types.Body{
					Html: &types.Content{Data: &msg.HTML},
					Text: &types.Content{Data: &msg.Text},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}
