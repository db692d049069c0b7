package domain

import "strings"

// InteractionContext identifies who invoked a command and where.
// It lives for one command-to-response cycle and is never stored.
type InteractionContext struct {
	UserID    string
	UserName  string
	ChannelID string
	GuildID   string
}

// ChannelKind groups platform channel types by how their names are formed.
type ChannelKind int

const (
	ChannelKindOther ChannelKind = iota
	// ChannelKindText channels have lowercase, dash separated names.
	ChannelKindText
	// ChannelKindVoice channels keep case and spaces.
	ChannelKindVoice
)

type Channel struct {
	ID       string
	GuildID  string
	Kind     ChannelKind
	Name     string
	Topic    string
	ParentID string
}

type Category struct {
	ID       string
	Name     string
	Position int
}

type CategoryOption struct {
	Label string
	Value string
}

// SelectBinding is the channel and guild a category picker was rendered for.
type SelectBinding struct {
	ChannelID string
	GuildID   string
}

// ChannelPatch holds the channel properties to change. Empty fields are left untouched.
type ChannelPatch struct {
	Name     string
	Topic    string
	ParentID string
}

type ChannelEditRequest struct {
	Name  string
	Topic string
}

func (r ChannelEditRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" && strings.TrimSpace(r.Topic) == "" {
		return InvalidInputError{Reason: "a new name or topic is required"}
	}
	return nil
}

type EditResult struct {
	Channel      Channel
	NameChanged  bool
	TopicChanged bool
}
