package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	appconfig "github.com/arina-sh/contact-api/internal/config"
	"github.com/arina-sh/contact-api/internal/contact"
	"github.com/arina-sh/contact-api/internal/pkg/logger"
)

// SESNotifier sends notifications through the AWS SES v2 API. Used when
// mail.provider is "ses"; the mail section still supplies sender,
// recipient, site name and timeout.
type SESNotifier struct {
	client *sesv2.Client
	mail   appconfig.MailConfig
}

// NewSES creates an SES-backed notifier with static credentials. When
// the access key is empty, the default AWS credential chain is used
// (IAM role on ECS).
func NewSES(ctx context.Context, mailCfg appconfig.MailConfig, sesCfg appconfig.SESConfig) (*SESNotifier, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(sesCfg.Region),
	}
	if sesCfg.AccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(sesCfg.AccessKey, sesCfg.SecretKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &SESNotifier{
		client: sesv2.NewFromConfig(awsCfg),
		mail:   mailCfg,
	}, nil
}

// Notify delivers one notification via SES. The call runs under the
// configured mail timeout.
func (n *SESNotifier) Notify(ctx context.Context, s contact.Sanitized) error {
	subject, body := buildMessage(n.mail.SiteName, s)

	ctx, cancel := context.WithTimeout(ctx, n.mail.Timeout())
	defer cancel()

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.mail.Sender),
		Destination: &types.Destination{
			ToAddresses: []string{n.mail.Recipient},
		},
		ReplyToAddresses: []string{s.Email},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	out, err := n.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}

	logger.Info("notification sent", "transport", "ses", "message_id", aws.ToString(out.MessageId), "reply_to", s.Email)
	return nil
}
