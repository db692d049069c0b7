package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

var manageChannelsPerms = int64(discordgo.PermissionManageChannels)

func GetApplicationCommands() []*discordgo.ApplicationCommand {
	guildOnly := &[]discordgo.InteractionContextType{discordgo.InteractionContextGuild}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     "move",
			Description:              "Move this channel to another category.",
			DefaultMemberPermissions: &manageChannelsPerms,
			Contexts:                 guildOnly,
		},
		{
			Name:                     "edit",
			Description:              "Edit the name or topic of this channel.",
			DefaultMemberPermissions: &manageChannelsPerms,
			Contexts:                 guildOnly,
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "New name for the channel.", false),
				stringOption("topic", "New topic for the channel.", false),
			},
		},
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// Register wires the move and edit handlers and the category picker into r.
func (h *BotHandler) Register(r *Router) {
	r.Register("move", Chain(h.Move, WithGuildOnly, WithManageChannels))
	r.Register("edit", Chain(h.Edit, WithGuildOnly, WithManageChannels))
	r.RegisterComponent(MoveCategoryPrefix, Chain(h.SelectCategory, WithGuildOnly, WithManageChannels))
}

func RegisterCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) []*discordgo.ApplicationCommand {
	registered := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		result, err := session.ApplicationCommandCreate(userID, guildID, cmd)
		if err != nil {
			slog.Error("Cannot create command", "name", cmd.Name, "error", err)
			continue
		}
		registered[i] = result
		slog.Info("Registered command", "name", cmd.Name, "guild", guildID)
	}

	return registered
}

func CleanupCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if err := session.ApplicationCommandDelete(userID, guildID, cmd.ID); err != nil {
			slog.Error("Cannot delete command", "name", cmd.Name, "error", err)
		}
	}
}
