package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"chanager/internal/adapters/discord/formatting"
	"chanager/internal/adapters/metrics"
	"chanager/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const (
	MoveCategoryPrefix = "move-category:"

	// Discord caps a select menu at 25 options and a message at 5 action rows.
	maxMenuOptions = 25
	maxMenus       = 5
)

func encodeBinding(b domain.SelectBinding, page int) string {
	return fmt.Sprintf("%s%s:%s:%d", MoveCategoryPrefix, b.GuildID, b.ChannelID, page)
}

func decodeBinding(customID string) (domain.SelectBinding, error) {
	rest, ok := strings.CutPrefix(customID, MoveCategoryPrefix)
	if !ok {
		return domain.SelectBinding{}, fmt.Errorf("custom id %q is not a category picker", customID)
	}

	parts := strings.Split(rest, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return domain.SelectBinding{}, fmt.Errorf("malformed category picker id %q", customID)
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return domain.SelectBinding{}, fmt.Errorf("malformed category picker page in %q: %w", customID, err)
	}

	return domain.SelectBinding{GuildID: parts[0], ChannelID: parts[1]}, nil
}

// categoryMenus renders options as one or more select menus bound to b.
func categoryMenus(b domain.SelectBinding, options []domain.CategoryOption) []discordgo.MessageComponent {
	if len(options) == 0 {
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    encodeBinding(b, 0),
					Placeholder: formatting.MsgNoCategories,
					Disabled:    true,
					Options: []discordgo.SelectMenuOption{
						{Label: formatting.MsgNoCategories, Value: "none"},
					},
				},
			}},
		}
	}

	if limit := maxMenus * maxMenuOptions; len(options) > limit {
		slog.Warn("Too many categories for the picker, truncating", "guild_id", b.GuildID, "count", len(options), "shown", limit)
		options = options[:limit]
	}

	pages := (len(options) + maxMenuOptions - 1) / maxMenuOptions
	rows := make([]discordgo.MessageComponent, 0, pages)
	for page := 0; page < pages; page++ {
		end := min((page+1)*maxMenuOptions, len(options))

		menuOptions := make([]discordgo.SelectMenuOption, 0, end-page*maxMenuOptions)
		for _, opt := range options[page*maxMenuOptions : end] {
			menuOptions = append(menuOptions, discordgo.SelectMenuOption{
				Label: opt.Label,
				Value: opt.Value,
			})
		}

		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    encodeBinding(b, page),
				Placeholder: formatting.CategoryPagePlaceholder(page, pages),
				Options:     menuOptions,
			},
		}})
	}
	return rows
}

// selectionKey identifies the rendered picker an event belongs to. Every
// paged menu of one picker lives on the same message.
func selectionKey(i *discordgo.InteractionCreate, b domain.SelectBinding) string {
	if i.Message != nil && i.Message.ID != "" {
		return i.Message.ID
	}
	return b.GuildID + ":" + b.ChannelID
}

func (h *BotHandler) SelectCategory(s DiscordSession, i *discordgo.InteractionCreate) {
	ictx := interactionContext(i)
	data := i.MessageComponentData()

	binding, err := decodeBinding(data.CustomID)
	if err == nil && binding.GuildID != ictx.GuildID {
		err = fmt.Errorf("picker bound to guild %s used in guild %s", binding.GuildID, ictx.GuildID)
	}
	if err == nil && len(data.Values) == 0 {
		err = fmt.Errorf("no category selected")
	}
	if err != nil {
		slog.Warn("Rejected category selection", "user", ictx.UserName, "custom_id", data.CustomID, "error", err)
		metrics.CategorySelections.WithLabelValues("rejected").Inc()
		updateMessage(s, i, formatting.MsgSelectionExpired)
		return
	}

	categoryID := data.Values[0]
	slog.Info("Category selected", "user", ictx.UserName, "channel_id", binding.ChannelID, "category_id", categoryID)

	picker := h.Selections.Open(selectionKey(i, binding), binding)
	category, err := picker.Select(context.Background(), categoryID)
	if errors.Is(err, domain.ErrSelectionClosed) {
		slog.Warn("Ignoring repeated category selection", "user", ictx.UserName, "channel_id", binding.ChannelID, "category_id", categoryID)
		metrics.CategorySelections.WithLabelValues("repeated").Inc()
		updateMessage(s, i, moveFailureMessage(err))
		return
	}
	metrics.CategorySelections.WithLabelValues(picker.State().String()).Inc()
	if err != nil {
		slog.Error("Failed to move channel", "channel_id", binding.ChannelID, "category_id", categoryID, "error", err)
		updateMessage(s, i, moveFailureMessage(err))
		return
	}

	updateMessage(s, i, formatting.MsgChannelMoved(category.Name))
}
