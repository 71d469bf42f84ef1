package repository

import "context"

// MessagingRepository sends push notifications to a device
type MessagingRepository interface {
	SendPushNotification(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}
