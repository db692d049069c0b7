package commands

import (
	"context"
	"testing"

	"chanager/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type mockDiscordSession struct {
	interactionRespondFunc func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	responses []*discordgo.InteractionResponse
}

func (m *mockDiscordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, opts ...discordgo.RequestOption) error {
	m.responses = append(m.responses, resp)
	if m.interactionRespondFunc != nil {
		return m.interactionRespondFunc(interaction, resp)
	}
	return nil
}

func (m *mockDiscordSession) lastResponse() *discordgo.InteractionResponse {
	if len(m.responses) == 0 {
		return nil
	}
	return m.responses[len(m.responses)-1]
}

// mockGateway keeps a tiny in-memory guild so moves and edits can be observed.
type mockGateway struct {
	channels   map[string]*domain.Channel
	categories []domain.Category

	listErr error
	editErr error
	getErr  error

	edits []domain.ChannelPatch
}

func newMockGateway(categories ...domain.Category) *mockGateway {
	return &mockGateway{
		channels:   make(map[string]*domain.Channel),
		categories: categories,
	}
}

func (m *mockGateway) withChannel(ch domain.Channel) *mockGateway {
	m.channels[ch.ID] = &ch
	return m
}

func (m *mockGateway) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	ch, ok := m.channels[channelID]
	if !ok {
		return &domain.Channel{ID: channelID}, nil
	}
	c := *ch
	return &c, nil
}

func (m *mockGateway) ListCategories(ctx context.Context, guildID string) ([]domain.Category, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.categories, nil
}

func (m *mockGateway) EditChannel(ctx context.Context, channelID string, patch domain.ChannelPatch) error {
	m.edits = append(m.edits, patch)
	if m.editErr != nil {
		return m.editErr
	}

	ch, ok := m.channels[channelID]
	if !ok {
		ch = &domain.Channel{ID: channelID}
		m.channels[channelID] = ch
	}
	if patch.Name != "" {
		ch.Name = patch.Name
	}
	if patch.Topic != "" {
		ch.Topic = patch.Topic
	}
	if patch.ParentID != "" {
		ch.ParentID = patch.ParentID
	}
	return nil
}

func (m *mockGateway) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return nil
}

func testMember() *discordgo.Member {
	return &discordgo.Member{
		User:        &discordgo.User{ID: "user-1", Username: "alice"},
		Permissions: discordgo.PermissionManageChannels,
	}
}

func makeCommandInteraction(name, guildID, channelID string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-1",
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   guildID,
			ChannelID: channelID,
			Member:    testMember(),
			Data:      discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
		},
	}
}

func makeComponentInteraction(customID, guildID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-2",
			Type:    discordgo.InteractionMessageComponent,
			GuildID: guildID,
			Member:  testMember(),
			Message: &discordgo.Message{ID: "picker-message-1"},
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.SelectMenuComponent,
				Values:        values,
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func selectMenus(t *testing.T, resp *discordgo.InteractionResponse) []discordgo.SelectMenu {
	t.Helper()
	var menus []discordgo.SelectMenu
	for _, c := range resp.Data.Components {
		row, ok := c.(discordgo.ActionsRow)
		if !ok {
			t.Fatalf("expected ActionsRow, got %T", c)
		}
		for _, inner := range row.Components {
			menu, ok := inner.(discordgo.SelectMenu)
			if !ok {
				t.Fatalf("expected SelectMenu, got %T", inner)
			}
			menus = append(menus, menu)
		}
	}
	return menus
}
