package commands

import (
	"context"
	"log/slog"

	"chanager/internal/adapters/discord/formatting"
	"chanager/internal/adapters/metrics"
	"chanager/internal/core/domain"
	"chanager/internal/core/ports"
	"chanager/internal/core/services"

	"github.com/bwmarrin/discordgo"
)

type BotHandler struct {
	Gateway    ports.ChannelGateway
	Channels   *services.ChannelService
	Selections *services.SelectRegistry
}

func NewBotHandler(gateway ports.ChannelGateway) *BotHandler {
	channels := services.NewChannelService(gateway)
	return &BotHandler{
		Gateway:    gateway,
		Channels:   channels,
		Selections: services.NewSelectRegistry(gateway, channels),
	}
}

func ReadyHandler(_ *discordgo.Session, ready *discordgo.Ready) {
	if ready == nil || ready.User == nil {
		slog.Info("Chanager is online!")
		return
	}
	slog.Info("Chanager is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

func (h *BotHandler) Move(s DiscordSession, i *discordgo.InteractionCreate) {
	ictx := interactionContext(i)
	slog.Info("Received channel move request", "user", ictx.UserName, "channel_id", ictx.ChannelID, "guild_id", ictx.GuildID)

	binding := domain.SelectBinding{ChannelID: ictx.ChannelID, GuildID: ictx.GuildID}
	picker := services.NewCategorySelect(binding, h.Gateway, h.Channels)

	options, err := picker.Options(context.Background())
	if err != nil {
		slog.Error("Failed to list categories", "guild_id", ictx.GuildID, "error", err)
		metrics.CommandsHandled.WithLabelValues("move", "failure").Inc()
		respond(s, i, formatting.MsgCategoriesError, true)
		return
	}

	metrics.CommandsHandled.WithLabelValues("move", "success").Inc()
	respondWithComponents(s, i, formatting.MsgSelectCategory, categoryMenus(picker.Binding(), options))
}

func (h *BotHandler) Edit(s DiscordSession, i *discordgo.InteractionCreate) {
	ictx := interactionContext(i)
	slog.Info("Received channel edit request", "user", ictx.UserName, "channel_id", ictx.ChannelID, "guild_id", ictx.GuildID)

	opts := i.ApplicationCommandData().Options
	req := domain.ChannelEditRequest{
		Name:  getStringOption(opts, "name"),
		Topic: getStringOption(opts, "topic"),
	}

	result, err := h.Channels.Edit(context.Background(), ictx.ChannelID, req)
	if err != nil {
		slog.Warn("Channel edit rejected", "channel_id", ictx.ChannelID, "error", err)
		metrics.CommandsHandled.WithLabelValues("edit", "failure").Inc()
		respond(s, i, editFailureMessage(err), true)
		return
	}

	slog.Info("Channel edited", "channel_id", ictx.ChannelID, "name_changed", result.NameChanged, "topic_changed", result.TopicChanged)
	metrics.CommandsHandled.WithLabelValues("edit", "success").Inc()
	respond(s, i, formatting.MsgEditSuccess(result.NameChanged, result.TopicChanged), true)
}
