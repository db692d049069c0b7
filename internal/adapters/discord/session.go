package discord

import (
	"log/slog"

	"chanager/internal/config"

	"github.com/bwmarrin/discordgo"
)

const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	discord, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		slog.Error("Failed to create discord session", "error", err)
		return nil, err
	}

	discord.Identify.Intents = Intents

	return discord, nil
}
