package notify

import (
	"context"
	"fmt"
	"log"

	"commute-notice/internal/models"
	emailSvc "commute-notice/pkg/email"
)

// ServiceInterface composes and sends one notification email.
type ServiceInterface interface {
	Send(ctx context.Context, username string, req models.NotificationRequest) (*models.NotificationResponse, error)
}

type Service struct {
	sender          emailSvc.Sender
	templateManager *emailSvc.TemplateManager
	audit           AuditRepositoryInterface // nil when no database is configured
}

func NewService(sender emailSvc.Sender, tm *emailSvc.TemplateManager, audit AuditRepositoryInterface) *Service {
	return &Service{
		sender:          sender,
		templateManager: tm,
		audit:           audit,
	}
}

// Send delivers the pre-filled notification in a single synchronous
// attempt. A duplicate click sends a duplicate email; that is accepted.
func (s *Service) Send(ctx context.Context, username string, req models.NotificationRequest) (*models.NotificationResponse, error) {
	if s.sender == nil {
		return nil, models.ErrCredentialsUnavailable
	}

	subject := Subject(req)
	plainText := PlainBody(username, req)

	htmlContent, err := s.templateManager.GenerateNotificationHTML(TemplateData(username, req))
	if err != nil {
		// Fall back to plain text only; the notification still goes out.
		log.Printf("Failed to generate notification HTML: %v", err)
		htmlContent = ""
	}

	if err := s.sender.Send(ctx, req.Recipients, subject, plainText, htmlContent); err != nil {
		return nil, fmt.Errorf("service.Send: %w", err)
	}

	if s.audit != nil {
		rec := &models.NotificationRecord{
			Sender:       username,
			Recipients:   req.Recipients,
			Subject:      subject,
			TotalMinutes: req.Assessment.TotalMinutes,
			Flags:        req.Assessment.Flags,
		}
		if err := s.audit.Record(ctx, rec); err != nil {
			// The email already went out; a failed audit write must not
			// turn a delivered notification into a user-facing error.
			log.Printf("Failed to record notification audit row: %v", err)
		}
	}

	return &models.NotificationResponse{
		Recipients: len(req.Recipients),
		Message:    "Notification sent",
	}, nil
}
