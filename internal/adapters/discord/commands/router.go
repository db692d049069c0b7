package commands

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type CommandHandler func(s DiscordSession, i *discordgo.InteractionCreate)

type Router struct {
	routes     map[string]CommandHandler
	components map[string]CommandHandler
}

func NewRouter() *Router {
	slog.Info("Router initialized")
	return &Router{
		routes:     make(map[string]CommandHandler),
		components: make(map[string]CommandHandler),
	}
}

func (r *Router) Register(name string, handler CommandHandler) {
	r.routes[name] = handler
}

// RegisterComponent routes message components whose custom ID starts with prefix.
func (r *Router) RegisterComponent(prefix string, handler CommandHandler) {
	r.components[prefix] = handler
}

func (r *Router) Handle(s DiscordSession, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		r.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		r.handleComponent(s, i)
	}
}

func (r *Router) handleCommand(s DiscordSession, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	slog.Info("Router received interaction", "type", i.Type, "name", name)

	handler, ok := r.routes[name]
	if !ok {
		slog.Warn("No handler found for command", "name", name)
		return
	}

	handler(s, i)
}

func (r *Router) handleComponent(s DiscordSession, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	slog.Info("Router received interaction", "type", i.Type, "custom_id", customID)

	handler, ok := r.matchComponent(customID)
	if !ok {
		slog.Warn("No handler found for component", "custom_id", customID)
		return
	}

	handler(s, i)
}

func (r *Router) matchComponent(customID string) (CommandHandler, bool) {
	var (
		best    CommandHandler
		bestLen = -1
	)
	for prefix, handler := range r.components {
		if strings.HasPrefix(customID, prefix) && len(prefix) > bestLen {
			best, bestLen = handler, len(prefix)
		}
	}
	return best, best != nil
}

func (r *Router) HandleFunc() func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		r.Handle(s, i)
	}
}
