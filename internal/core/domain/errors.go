package domain

import (
	"errors"
	"fmt"
)

// ErrSelectionClosed is returned when a category picker receives a selection
// after it already handled one.
var ErrSelectionClosed = errors.New("category selection already handled")

// InvalidInputError reports a command invocation whose arguments cannot be acted on.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	if e.Reason == "" {
		return "invalid input"
	}
	return "invalid input: " + e.Reason
}

// CategoryNotFoundError reports a selected category that no longer exists in the guild.
type CategoryNotFoundError struct {
	CategoryID string
}

func (e CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %s not found", e.CategoryID)
}

// MutationFailedError wraps a failed platform call that was meant to change a channel.
type MutationFailedError struct {
	Op        string
	ChannelID string
	Cause     error
}

func (e MutationFailedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("channel %s: %s failed", e.ChannelID, e.Op)
	}
	return fmt.Sprintf("channel %s: %s failed: %v", e.ChannelID, e.Op, e.Cause)
}

func (e MutationFailedError) Unwrap() error { return e.Cause }

// Description returns the underlying cause text shown to users.
func (e MutationFailedError) Description() string {
	if e.Cause == nil {
		return e.Op + " failed"
	}
	return e.Cause.Error()
}
