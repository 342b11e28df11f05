// Package service defines interfaces for infrastructure collaborators.
package service

import (
	"context"

	"glovia/internal/domain/entity"
)

// NotificationSender delivers a templated message over one channel.
// Calls are fire-and-forget from the caller's point of view: the lifecycle
// services log delivery failures but never roll back state because of them.
type NotificationSender interface {
	// Send renders the named template with params and delivers it to the
	// recipient (phone number or email address, depending on the channel).
	Send(ctx context.Context, channel entity.CommunicationChannel, recipient, template string, params map[string]string) error
}
