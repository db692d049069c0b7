package ports

import (
	"context"

	"chanager/internal/core/domain"
)

// ChannelGateway is the slice of the chat platform the core depends on.
type ChannelGateway interface {
	GetChannel(ctx context.Context, channelID string) (*domain.Channel, error)
	// ListCategories returns the guild's categories in display order.
	ListCategories(ctx context.Context, guildID string) ([]domain.Category, error)
	EditChannel(ctx context.Context, channelID string, patch domain.ChannelPatch) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}
