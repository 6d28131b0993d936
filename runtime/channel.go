package runtime

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"dynamic-voice/errors"
	"fmt"
	"log/slog"
)

const (
	createdMessage       = "Dynamic channel created! Owner is %s."
	ownerChangedMessage  = "Previous owner %s left. New owner is now %s!"
	onlyOwnerMessage     = "Only the owner %s can rename the channel."
	invalidNameMessage   = "Channel name must be between 1 and 100 characters."
	renamedMessage       = "Channel renamed to %s."
	renameFailedMessage  = "Failed to rename the channel."
	guestInviteMessage   = "Here is a single-use guest invite: %s"
	inviteFailedMessage  = "Failed to create a guest invite."
	roomDestroyedMessage = "This dynamic channel no longer exists."

	inactiveControlMessage = "This control is no longer active."
)

// createRoom opens a new room for owner next to the setup channel and moves the owner in.
// A failed move rolls the room back.
func (m *Manager) createRoom(ctx context.Context, log *slog.Logger, owner domain.Member) {
	name := domain.DefaultChannelName(owner)
	preferred, ok, err := m.store.GetPreferredName(ctx, owner.ID)
	switch {
	case err != nil:
		log.Warn("Failed to read preferred name, using default", "error", err)
	case ok && preferred != "":
		name = preferred
	}
	name = m.filter.Clean(name)

	m.locateSetup(ctx)
	channel, err := m.platform.CreateVoiceChannel(ctx, domain.ChannelSpec{
		Name:     name,
		ParentID: m.parentID,
		Position: m.setupPosition + 1,
	})
	if err != nil {
		log.Error("Failed to create dynamic channel", "error", err)
		return
	}
	log = log.With("channel_id", channel.ID)

	room := domain.NewRoom(channel.ID, name, m.parentID, owner)
	m.register(room)
	if err := m.store.UpsertChannelRecord(ctx, room.ID, owner.ID); err != nil {
		log.Error("Failed to persist channel record", "error", err)
	}
	log.Info("Dynamic channel created", "name", name)

	m.announce(ctx, log, room.ID, domain.Announcement{
		Content:      fmt.Sprintf(createdMessage, owner.Mention()),
		WithControls: true,
	})

	if err := m.platform.MoveMember(ctx, owner.ID, room.ID); err != nil {
		log.Error("Failed to move owner into new channel, rolling back", "error", err)
		room.RemoveMember(owner.ID)
		m.unregister(room.ID)
		m.destroy(ctx, log, room.ID)
	}
}

// leave removes the user from room, hands ownership over or deletes the room when it empties.
func (m *Manager) leave(ctx context.Context, log *slog.Logger, room *domain.Room, userID string) {
	change := room.RemoveMember(userID)

	if room.Destroyed() {
		log.Info("Last member left, deleting channel", "name", room.Name)
		m.unregister(room.ID)
		m.destroy(ctx, log, room.ID)
		return
	}
	if change == nil {
		log.Debug("Member left room", "members", room.Size())
		return
	}

	log.Info("Ownership transferred", "previous_owner_id", change.Previous.ID, "owner_id", change.Next.ID)
	if err := m.store.UpsertChannelRecord(ctx, room.ID, change.Next.ID); err != nil {
		log.Error("Failed to persist new owner", "error", err)
	}
	m.announce(ctx, log, room.ID, domain.Announcement{
		Content: fmt.Sprintf(ownerChangedMessage, change.Previous.Mention(), change.Next.Mention()),
	})
}

func (m *Manager) onRenameButton(ctx context.Context, log *slog.Logger, room *domain.Room, evt contract.InteractionEvent) {
	if !room.IsOwner(evt.Interaction.UserID) {
		m.reply(ctx, log, evt.Responder, fmt.Sprintf(onlyOwnerMessage, room.Owner().Mention()), true)
		return
	}
	if err := evt.Responder.ShowRenameModal(ctx); err != nil {
		log.Error("Failed to show rename modal", "error", err)
	}
}

// onRenameModal validates ownership and the name before any platform call.
func (m *Manager) onRenameModal(ctx context.Context, log *slog.Logger, room *domain.Room, evt contract.InteractionEvent) {
	name, err := room.CheckRename(evt.Interaction.UserID, evt.Interaction.Fields[domain.NewChannelNameInput])
	switch {
	case errors.Is(err, errors.ErrNotOwner):
		m.reply(ctx, log, evt.Responder, fmt.Sprintf(onlyOwnerMessage, room.Owner().Mention()), true)
		return
	case errors.Is(err, errors.ErrInvalidChannelName):
		m.reply(ctx, log, evt.Responder, invalidNameMessage, true)
		return
	case err != nil:
		m.reply(ctx, log, evt.Responder, roomDestroyedMessage, true)
		return
	}

	name = m.filter.Clean(name)
	if err := m.platform.SetChannelName(ctx, room.ID, name); err != nil {
		log.Error("Failed to rename channel", "error", err)
		m.reply(ctx, log, evt.Responder, renameFailedMessage, true)
		return
	}
	room.SetName(name)
	log.Info("Channel renamed", "name", name)
	m.reply(ctx, log, evt.Responder, fmt.Sprintf(renamedMessage, name), false)
}

// onGuestInvite hands out a temporary single-use invite. Any member may ask for one.
func (m *Manager) onGuestInvite(ctx context.Context, log *slog.Logger, room *domain.Room, evt contract.InteractionEvent) {
	invite, err := m.platform.CreateInvite(ctx, room.ID)
	if err != nil {
		log.Error("Failed to create guest invite", "error", err)
		m.reply(ctx, log, evt.Responder, inviteFailedMessage, true)
		return
	}
	log.Info("Guest invite created", "code", invite.Code)
	m.reply(ctx, log, evt.Responder, fmt.Sprintf(guestInviteMessage, invite.URL), true)
}

func (m *Manager) announce(ctx context.Context, log *slog.Logger, channelID string, a domain.Announcement) {
	if err := m.platform.SendMessage(ctx, channelID, a); err != nil {
		log.Warn("Failed to send announcement", "error", err)
	}
}

func (m *Manager) reply(ctx context.Context, log *slog.Logger, r contract.Responder, content string, ephemeral bool) {
	if err := r.Reply(ctx, content, ephemeral); err != nil {
		log.Warn("Failed to reply to interaction", "error", err)
	}
}

// locateSetup refreshes the setup channel position. The last known values are kept on failure.
func (m *Manager) locateSetup(ctx context.Context) {
	setup, err := m.platform.FetchChannel(ctx, m.setupChannelID)
	if err != nil {
		m.log.Warn("Failed to fetch setup channel, using last known position", "channel_id", m.setupChannelID, "error", err)
		return
	}
	m.setupPosition = setup.Position
	if m.parentID == "" {
		m.parentID = setup.ParentID
	}
}
