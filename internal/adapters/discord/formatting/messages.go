package formatting

import (
	"fmt"
	"strings"
)

const (
	MsgSelectCategory       = "Select a category for the channel to be moved into from the dropdown."
	MsgNameOrTopicRequired  = "You must provide a new name or topic for the channel."
	MsgGuildOnly            = "This command can only be used inside a server."
	MsgManageChannelsNeeded = "You need the Manage Channels permission to use this command."
	MsgCategoriesError      = "Could not load the categories of this server."
	MsgCategoryNotFound     = "That category no longer exists. Run /move again to pick another one."
	MsgSelectionExpired     = "This category picker is no longer valid. Run /move again."
	MsgNoCategories         = "No categories"
	MsgNameUpdated          = "Channel name updated!"
	MsgTopicUpdated         = "Channel topic updated!"

	CategoryPlaceholder = "Category"
)

func MsgChannelMoved(category string) string {
	return fmt.Sprintf("Channel moved to %s.", category)
}

func MsgMoveFailed(reason string) string {
	return fmt.Sprintf("Could not move channel: %s", reason)
}

func MsgEditFailed(reason string) string {
	return fmt.Sprintf("Channel edit failed: %s", reason)
}

// MsgEditSuccess lists one line per changed field.
func MsgEditSuccess(nameChanged, topicChanged bool) string {
	var lines []string
	if nameChanged {
		lines = append(lines, MsgNameUpdated)
	}
	if topicChanged {
		lines = append(lines, MsgTopicUpdated)
	}
	return strings.Join(lines, "\n")
}

func CategoryPagePlaceholder(page, pages int) string {
	if pages <= 1 {
		return CategoryPlaceholder
	}
	return fmt.Sprintf("%s (%d/%d)", CategoryPlaceholder, page+1, pages)
}
