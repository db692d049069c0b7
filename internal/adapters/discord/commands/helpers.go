package commands

import (
	"errors"
	"log/slog"

	"chanager/internal/adapters/discord/formatting"
	"chanager/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

func respond(s DiscordSession, i *discordgo.InteractionCreate, msg string, ephemeral bool) {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	sendResponse(s, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   flags,
		},
	})
}

func respondWithComponents(s DiscordSession, i *discordgo.InteractionCreate, msg string, components []discordgo.MessageComponent) {
	sendResponse(s, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    msg,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: components,
		},
	})
}

// updateMessage replaces the message a component lives on and strips its components.
func updateMessage(s DiscordSession, i *discordgo.InteractionCreate, msg string) {
	sendResponse(s, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    msg,
			Components: []discordgo.MessageComponent{},
		},
	})
}

func sendResponse(s DiscordSession, i *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) {
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		slog.Error("Failed to respond to interaction", "interaction_id", i.ID, "error", err)
	}
}

func getStringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func interactionContext(i *discordgo.InteractionCreate) domain.InteractionContext {
	ctx := domain.InteractionContext{
		ChannelID: i.ChannelID,
		GuildID:   i.GuildID,
	}

	var user *discordgo.User
	switch {
	case i.Member != nil && i.Member.User != nil:
		user = i.Member.User
	case i.User != nil:
		user = i.User
	}
	if user != nil {
		ctx.UserID = user.ID
		ctx.UserName = user.Username
	}
	return ctx
}

// reason turns a failure into the text shown to the requesting user.
func reason(err error) string {
	var mutErr domain.MutationFailedError
	if errors.As(err, &mutErr) {
		return mutErr.Description()
	}
	return err.Error()
}

func moveFailureMessage(err error) string {
	var notFound domain.CategoryNotFoundError
	if errors.As(err, &notFound) {
		return formatting.MsgCategoryNotFound
	}
	if errors.Is(err, domain.ErrSelectionClosed) {
		return formatting.MsgSelectionExpired
	}
	return formatting.MsgMoveFailed(reason(err))
}

func editFailureMessage(err error) string {
	var invalid domain.InvalidInputError
	if errors.As(err, &invalid) {
		return formatting.MsgNameOrTopicRequired
	}
	return formatting.MsgEditFailed(reason(err))
}
