package services

import (
	"context"

	"chanager/internal/core/domain"
)

type mockGateway struct {
	getChannelFunc     func(ctx context.Context, channelID string) (*domain.Channel, error)
	listCategoriesFunc func(ctx context.Context, guildID string) ([]domain.Category, error)
	editChannelFunc    func(ctx context.Context, channelID string, patch domain.ChannelPatch) error
	deleteMessageFunc  func(ctx context.Context, channelID, messageID string) error

	edits []domain.ChannelPatch
}

func (m *mockGateway) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	if m.getChannelFunc != nil {
		return m.getChannelFunc(ctx, channelID)
	}
	return &domain.Channel{ID: channelID}, nil
}

func (m *mockGateway) ListCategories(ctx context.Context, guildID string) ([]domain.Category, error) {
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *mockGateway) EditChannel(ctx context.Context, channelID string, patch domain.ChannelPatch) error {
	m.edits = append(m.edits, patch)
	if m.editChannelFunc != nil {
		return m.editChannelFunc(ctx, channelID, patch)
	}
	return nil
}

func (m *mockGateway) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if m.deleteMessageFunc != nil {
		return m.deleteMessageFunc(ctx, channelID, messageID)
	}
	return nil
}

func gatewayWithCategories(categories ...domain.Category) *mockGateway {
	return &mockGateway{
		listCategoriesFunc: func(ctx context.Context, guildID string) ([]domain.Category, error) {
			return categories, nil
		},
	}
}
