package email

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESV2Sender implements Sender using AWS SES v2, for deployments that
// route through SES instead of the corporate SMTP relay.
type SESV2Sender struct {
	client    *sesv2.Client
	fromEmail string
}

// NewSESV2Sender creates a new sender for Amazon SES.
// It automatically loads credentials from the environment.
func NewSESV2Sender(ctx context.Context, region, fromEmail string) (*SESV2Sender, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &SESV2Sender{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
	}, nil
}

// Send sends one email to the whole recipient list via the SES v2 API.
func (s *SESV2Sender) Send(ctx context.Context, to []string, subject, plainTextContent, htmlContent string) error {
	body := &types.Body{
		Text: &types.Content{
			Data:    &plainTextContent,
			Charset: aws.String("UTF-8"),
		},
	}
	if htmlContent != "" {
		body.Html = &types.Content{
			Data:    &htmlContent,
			Charset: aws.String("UTF-8"),
		}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: &s.fromEmail,
		Destination: &types.Destination{
			ToAddresses: to,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    &subject,
					Charset: aws.String("UTF-8"),
				},
				Body: body,
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		log.Printf("Failed to send email via SES: %v", err)
		return err
	}
	return nil
}
