package push

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/option"

	"touristar-consumer/internal/domain/repository"
	"touristar-consumer/pkg/logger"
)

const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// FCMMessagingRepository implements the MessagingRepository interface using
// Firebase Cloud Messaging (HTTP v1)
type FCMMessagingRepository struct {
	service   *fcm.Service
	projectID string
	logger    logger.Logger
}

// NewFCMMessagingRepository creates a messaging client authenticated with a
// service account credentials file
func NewFCMMessagingRepository(ctx context.Context, credentialsFile, projectID string, log logger.Logger) (*FCMMessagingRepository, error) {
	credentials, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read messaging credentials: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, messagingScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse messaging credentials: %w", err)
	}

	service, err := fcm.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &FCMMessagingRepository{
		service:   service,
		projectID: projectID,
		logger:    log,
	}, nil
}

// SendPushNotification delivers one notification to a device
func (r *FCMMessagingRepository) SendPushNotification(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	request := &fcm.SendMessageRequest{
		Message: &fcm.Message{
			Token: deviceToken,
			Notification: &fcm.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		},
	}

	parent := fmt.Sprintf("projects/%s", r.projectID)
	message, err := r.service.Projects.Messages.Send(parent, request).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}

	r.logger.Info("Push notification sent", "messageName", message.Name)
	return nil
}

var _ repository.MessagingRepository = (*FCMMessagingRepository)(nil)
