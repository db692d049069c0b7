package services

import (
	"context"
	"sync"

	"chanager/internal/core/domain"
	"chanager/internal/core/ports"
)

type SelectState int

const (
	SelectRendered SelectState = iota
	SelectSelected
	SelectCompleted
	SelectFailed
)

func (s SelectState) String() string {
	switch s {
	case SelectRendered:
		return "rendered"
	case SelectSelected:
		return "selected"
	case SelectCompleted:
		return "completed"
	case SelectFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CategorySelect moves one bound channel into the category a user picks.
// An instance accepts a single selection; concurrent calls to Select are
// resolved so that exactly one of them reaches the gateway.
type CategorySelect struct {
	binding  domain.SelectBinding
	gateway  ports.ChannelGateway
	channels *ChannelService

	mu    sync.Mutex
	state SelectState
}

func NewCategorySelect(binding domain.SelectBinding, gateway ports.ChannelGateway, channels *ChannelService) *CategorySelect {
	return &CategorySelect{
		binding:  binding,
		gateway:  gateway,
		channels: channels,
		state:    SelectRendered,
	}
}

func (c *CategorySelect) Binding() domain.SelectBinding { return c.binding }

func (c *CategorySelect) State() SelectState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *CategorySelect) setState(state SelectState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// claim moves the picker from Rendered to Selected. It reports false when a
// selection was already made.
func (c *CategorySelect) claim() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != SelectRendered {
		return false
	}
	c.state = SelectSelected
	return true
}

// Options lists the guild's current categories as picker options.
func (c *CategorySelect) Options(ctx context.Context) ([]domain.CategoryOption, error) {
	categories, err := c.gateway.ListCategories(ctx, c.binding.GuildID)
	if err != nil {
		return nil, err
	}
	return BuildCategoryOptions(categories), nil
}

// Select resolves categoryID against the live guild categories and moves the
// bound channel there.
func (c *CategorySelect) Select(ctx context.Context, categoryID string) (domain.Category, error) {
	if !c.claim() {
		return domain.Category{}, domain.ErrSelectionClosed
	}

	categories, err := c.gateway.ListCategories(ctx, c.binding.GuildID)
	if err != nil {
		c.setState(SelectFailed)
		return domain.Category{}, domain.MutationFailedError{Op: "list categories", ChannelID: c.binding.ChannelID, Cause: err}
	}

	category, err := ResolveCategory(categories, categoryID)
	if err != nil {
		c.setState(SelectFailed)
		return domain.Category{}, err
	}

	if err := c.channels.SetCategory(ctx, c.binding.ChannelID, category); err != nil {
		c.setState(SelectFailed)
		return domain.Category{}, err
	}

	c.setState(SelectCompleted)
	return category, nil
}
