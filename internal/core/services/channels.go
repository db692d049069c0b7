package services

import (
	"context"
	"strings"

	"chanager/internal/core/domain"
	"chanager/internal/core/ports"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ChannelService struct {
	gateway ports.ChannelGateway
}

func NewChannelService(gateway ports.ChannelGateway) *ChannelService {
	return &ChannelService{gateway: gateway}
}

func (s *ChannelService) SetCategory(ctx context.Context, channelID string, category domain.Category) error {
	if err := s.gateway.EditChannel(ctx, channelID, domain.ChannelPatch{ParentID: category.ID}); err != nil {
		return domain.MutationFailedError{Op: "set category", ChannelID: channelID, Cause: err}
	}
	return nil
}

func (s *ChannelService) SetNameAndTopic(ctx context.Context, channelID, name, topic string) error {
	if err := s.gateway.EditChannel(ctx, channelID, domain.ChannelPatch{Name: name, Topic: topic}); err != nil {
		return domain.MutationFailedError{Op: "set name and topic", ChannelID: channelID, Cause: err}
	}
	return nil
}

// Edit applies req to the channel. Fields left empty keep the channel's
// current value, read right before the mutation. A new name is normalized
// only for text channels.
func (s *ChannelService) Edit(ctx context.Context, channelID string, req domain.ChannelEditRequest) (domain.EditResult, error) {
	if err := req.Validate(); err != nil {
		return domain.EditResult{}, err
	}

	current, err := s.gateway.GetChannel(ctx, channelID)
	if err != nil {
		return domain.EditResult{}, domain.MutationFailedError{Op: "fetch channel", ChannelID: channelID, Cause: err}
	}

	result := domain.EditResult{Channel: *current}

	name := strings.TrimSpace(req.Name)
	if current.Kind == domain.ChannelKindText {
		name = NormalizeChannelName(name)
	}
	if name != "" {
		result.Channel.Name = name
		result.NameChanged = true
	}
	if topic := strings.TrimSpace(req.Topic); topic != "" {
		result.Channel.Topic = topic
		result.TopicChanged = true
	}

	if err := s.SetNameAndTopic(ctx, channelID, result.Channel.Name, result.Channel.Topic); err != nil {
		return domain.EditResult{}, err
	}

	return result, nil
}

// NormalizeChannelName converts name to the lowercase, dash separated form
// Discord uses for text channels. Names of other kinds are sent as given.
func NormalizeChannelName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return cases.Lower(language.Und).String(strings.Join(fields, "-"))
}
