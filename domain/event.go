package domain

import "time"

// VoiceStateChange is a membership-change event: a user moved between
// BeforeChannelID and AfterChannelID. An empty ID means "not connected".
type VoiceStateChange struct {
	UserID          string
	DisplayName     string
	BeforeChannelID string
	AfterChannelID  string
	At              time.Time
}

// Moved is false for updates that keep the user in the same channel (mute, deafen, stream...).
func (v VoiceStateChange) Moved() bool {
	return v.BeforeChannelID != v.AfterChannelID
}

func (v VoiceStateChange) Member() Member {
	return NewMember(v.UserID, v.DisplayName, v.At)
}

type InteractionKind int

const (
	InteractionUnknown InteractionKind = iota
	InteractionButton
	InteractionModalSubmit
	InteractionSlashCommand
)

func (k InteractionKind) String() string {
	switch k {
	case InteractionButton:
		return "button"
	case InteractionModalSubmit:
		return "modal-submit"
	case InteractionSlashCommand:
		return "slash-command"
	default:
		return "unknown"
	}
}

type CustomID string

const (
	RenameButton      CustomID = "dynamicChannelRenameButton"
	RenameModal       CustomID = "dynamicChannelRenameModal"
	GuestInviteButton CustomID = "dynamicChannelGuestInviteButton"

	// NewChannelNameInput is the text field carried by RenameModal.
	NewChannelNameInput = "newChannelName"
)

// Interaction is a user action on a component or command.
// Fields holds modal text inputs keyed by their custom id; Command is set for slash commands only.
type Interaction struct {
	Kind      InteractionKind
	CustomID  CustomID
	ChannelID string
	UserID    string
	UserName  string
	Fields    map[string]string
	Command   *CommandInvocation
}
