package discord

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"chanager/internal/adapters/metrics"
	"chanager/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	ChannelEdit(channelID string, data *discordgo.ChannelEdit, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// Gateway implements ports.ChannelGateway on top of a discordgo session.
type Gateway struct {
	session DiscordSession
}

func NewGateway(session DiscordSession) *Gateway {
	return &Gateway{session: session}
}

func (g *Gateway) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	start := time.Now()
	ch, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	observe("channel", start, err)
	if err != nil {
		slog.Error("Failed to fetch channel", "channel_id", channelID, "error", err)
		return nil, err
	}

	c := toDomainChannel(ch)
	return &c, nil
}

func (g *Gateway) ListCategories(ctx context.Context, guildID string) ([]domain.Category, error) {
	start := time.Now()
	channels, err := g.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	observe("guild_channels", start, err)
	if err != nil {
		slog.Error("Failed to fetch guild channels", "guild_id", guildID, "error", err)
		return nil, err
	}

	var categories []*discordgo.Channel
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory {
			categories = append(categories, ch)
		}
	}

	slices.SortStableFunc(categories, func(a, b *discordgo.Channel) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return compareSnowflakes(a.ID, b.ID)
	})

	result := make([]domain.Category, 0, len(categories))
	for _, ch := range categories {
		result = append(result, domain.Category{ID: ch.ID, Name: ch.Name, Position: ch.Position})
	}
	return result, nil
}

func (g *Gateway) EditChannel(ctx context.Context, channelID string, patch domain.ChannelPatch) error {
	data := &discordgo.ChannelEdit{
		Name:     patch.Name,
		Topic:    patch.Topic,
		ParentID: patch.ParentID,
	}

	start := time.Now()
	_, err := g.session.ChannelEdit(channelID, data, discordgo.WithContext(ctx))
	observe("channel_edit", start, err)
	if err != nil {
		slog.Error("Failed to edit channel", "channel_id", channelID, "error", err)
		return err
	}
	return nil
}

func (g *Gateway) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	start := time.Now()
	err := g.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
	observe("message_delete", start, err)
	return err
}

func toDomainChannel(ch *discordgo.Channel) domain.Channel {
	return domain.Channel{
		ID:       ch.ID,
		GuildID:  ch.GuildID,
		Kind:     channelKind(ch.Type),
		Name:     ch.Name,
		Topic:    ch.Topic,
		ParentID: ch.ParentID,
	}
}

func channelKind(t discordgo.ChannelType) domain.ChannelKind {
	switch t {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews, discordgo.ChannelTypeGuildForum:
		return domain.ChannelKindText
	case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
		return domain.ChannelKindVoice
	default:
		return domain.ChannelKindOther
	}
}

// compareSnowflakes orders numeric IDs without parsing them.
func compareSnowflakes(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func observe(endpoint string, start time.Time, err error) {
	status := metrics.Status(err)
	metrics.DiscordRequests.WithLabelValues(endpoint, status).Inc()
	metrics.DiscordRequestDuration.WithLabelValues(endpoint, status).Observe(time.Since(start).Seconds())
}
