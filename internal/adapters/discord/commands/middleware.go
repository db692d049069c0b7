package commands

import (
	"chanager/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(CommandHandler) CommandHandler

func WithGuildOnly(next CommandHandler) CommandHandler {
	return func(s DiscordSession, i *discordgo.InteractionCreate) {
		if i.GuildID == "" {
			respond(s, i, formatting.MsgGuildOnly, true)
			return
		}
		next(s, i)
	}
}

func WithManageChannels(next CommandHandler) CommandHandler {
	return func(s DiscordSession, i *discordgo.InteractionCreate) {
		if !hasPermission(i.Member, discordgo.PermissionManageChannels) {
			respond(s, i, formatting.MsgManageChannelsNeeded, true)
			return
		}
		next(s, i)
	}
}

// Chain applies middlewares so that the first one runs first.
func Chain(handler CommandHandler, middlewares ...Middleware) CommandHandler {
	for idx := len(middlewares) - 1; idx >= 0; idx-- {
		handler = middlewares[idx](handler)
	}
	return handler
}

func hasPermission(member *discordgo.Member, perm int64) bool {
	if member == nil {
		return false
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return member.Permissions&perm != 0
}
