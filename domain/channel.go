package domain

import (
	"dynamic-voice/errors"
	"fmt"
)

// ChannelSpec describes a voice channel to create on the platform.
type ChannelSpec struct {
	Name     string
	ParentID string
	Position int
}

// Channel is the platform's current view of a channel, including who is connected.
type Channel struct {
	ID       string
	Name     string
	ParentID string
	Position int
	Voice    bool
	Members  []Member
}

// RequireVoice fails with ErrNotVoiceChannel when members cannot connect to the channel.
func (c Channel) RequireVoice() error {
	if !c.Voice {
		return fmt.Errorf("%w: %s", errors.ErrNotVoiceChannel, c.ID)
	}
	return nil
}

type Invite struct {
	Code string
	URL  string
}

// ChannelRecord is the persisted form of a room: enough to find it and its owner after a restart.
type ChannelRecord struct {
	ChannelID string
	OwnerID   string
}

// Announcement is a message posted in a room's text chat.
// WithControls attaches the rename and guest invite buttons.
type Announcement struct {
	Content      string
	WithControls bool
}
