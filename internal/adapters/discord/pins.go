package discord

import (
	"context"
	"log/slog"

	"chanager/internal/adapters/metrics"

	"github.com/bwmarrin/discordgo"
)

type MessageDeleter interface {
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// PinNoticeFilter removes the system messages Discord posts when something is pinned.
type PinNoticeFilter struct {
	deleter MessageDeleter
}

func NewPinNoticeFilter(deleter MessageDeleter) *PinNoticeFilter {
	return &PinNoticeFilter{deleter: deleter}
}

func (f *PinNoticeFilter) Handle(m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Type != discordgo.MessageTypeChannelPinnedMessage {
		return
	}

	err := f.deleter.DeleteMessage(context.Background(), m.ChannelID, m.ID)
	metrics.PinNoticesDeleted.WithLabelValues(metrics.Status(err)).Inc()
	if err != nil {
		slog.Error("Failed to delete pin notice", "channel_id", m.ChannelID, "message_id", m.ID, "error", err)
		return
	}

	slog.Debug("Deleted pin notice", "channel_id", m.ChannelID, "message_id", m.ID)
}

func (f *PinNoticeFilter) HandleFunc() func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		f.Handle(m)
	}
}
