package runtime

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"dynamic-voice/errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"github.com/samber/lo"
)

var (
	_ contract.MembershipHandler  = (*Manager)(nil)
	_ contract.InteractionHandler = (*Manager)(nil)
	_ contract.RoomCounter        = (*Manager)(nil)
)

// Options locates the setup channel. ParentID overrides the category the setup channel lives in.
type Options struct {
	SetupChannelID string
	ParentID       string
}

// Manager is the room registry. Its handlers must be called from a single goroutine
// (the dispatcher), so the rooms map needs no lock. Only the room count is published atomically.
type Manager struct {
	log      *slog.Logger
	platform contract.Platform
	store    contract.Store
	filter   contract.NameFilter

	setupChannelID string
	parentID       string
	setupPosition  int

	rooms map[string]*domain.Room
	count atomic.Int64
}

// NewManager builds the registry and reconciles it with the persisted records.
// Only a failure to list the records is returned: every other problem is repaired or logged.
func NewManager(
	ctx context.Context,
	log *slog.Logger,
	platform contract.Platform,
	store contract.Store,
	filter contract.NameFilter,
	opts Options,
) (*Manager, error) {
	m := &Manager{
		log:            log,
		platform:       platform,
		store:          store,
		filter:         filter,
		setupChannelID: opts.SetupChannelID,
		parentID:       opts.ParentID,
		rooms:          make(map[string]*domain.Room),
	}
	m.locateSetup(ctx)
	if err := m.Reconcile(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Reconcile rebuilds the registry from the store and the platform's current state.
// Running it twice against unchanged state performs no write.
func (m *Manager) Reconcile(ctx context.Context) error {
	records, err := m.store.GetAllChannelRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to list channel records: %w", err)
	}
	for _, record := range records {
		m.reconcile(ctx, record)
	}
	m.log.Info("Reconciliation done", "records", len(records), "rooms", m.Len())
	return nil
}

func (m *Manager) reconcile(ctx context.Context, record domain.ChannelRecord) {
	log := m.log.With("channel_id", record.ChannelID)

	channel, err := m.platform.FetchChannel(ctx, record.ChannelID)
	switch {
	case errors.IsNotFound(err):
		log.Warn("Channel no longer exists, dropping record")
		m.deleteRecord(ctx, log, record.ChannelID)
		return
	case err != nil:
		log.Error("Failed to fetch channel, record kept for next start", "error", err)
		return
	}
	if err := channel.RequireVoice(); err != nil {
		log.Warn("Dropping record", "error", err)
		m.deleteRecord(ctx, log, record.ChannelID)
		return
	}

	if len(channel.Members) == 0 {
		log.Info("Channel emptied while offline, deleting")
		m.destroy(ctx, log, record.ChannelID)
		return
	}

	owner, ok := lo.Find(channel.Members, func(mem domain.Member) bool {
		return mem.ID == record.OwnerID
	})
	if !ok {
		owner = lo.MinBy(channel.Members, func(a, b domain.Member) bool { return a.ID < b.ID })
		log.Warn("Owner left while offline, substituting", "previous_owner_id", record.OwnerID, "owner_id", owner.ID)
		if err := m.store.UpsertChannelRecord(ctx, record.ChannelID, owner.ID); err != nil {
			log.Error("Failed to persist substitute owner", "error", err)
		}
	}

	m.register(domain.NewRoom(channel.ID, channel.Name, channel.ParentID, owner, channel.Members...))
}

// OnMembershipEvent applies one voice state change. Leaving and joining are handled
// independently so a move between two rooms updates both.
func (m *Manager) OnMembershipEvent(ctx context.Context, change domain.VoiceStateChange) {
	log := m.log.With("user_id", change.UserID)
	defer m.recoverHandler(log, "membership")

	if !change.Moved() {
		return
	}

	if room, ok := m.rooms[change.BeforeChannelID]; ok && change.BeforeChannelID != "" {
		m.leave(ctx, log.With("channel_id", room.ID), room, change.UserID)
	}

	switch after := change.AfterChannelID; {
	case after == "":
	case after == m.setupChannelID:
		log.Info("Member joined setup channel", "display_name", change.DisplayName)
		m.createRoom(ctx, log, change.Member())
	default:
		if room, ok := m.rooms[after]; ok && room.AddMember(change.Member()) {
			log.Debug("Member joined room", "channel_id", room.ID, "members", room.Size())
		}
	}
}

// OnInteraction routes a component interaction to the room it was issued from.
func (m *Manager) OnInteraction(ctx context.Context, evt contract.InteractionEvent) {
	i := evt.Interaction
	log := m.log.With("user_id", i.UserID, "channel_id", i.ChannelID, "custom_id", string(i.CustomID))
	defer m.recoverHandler(log, "interaction")

	room, ok := m.rooms[i.ChannelID]
	if !ok {
		log.Warn("No dynamic channel found for interaction")
		m.reply(ctx, log, evt.Responder, inactiveControlMessage, true)
		return
	}

	switch i.Kind {
	case domain.InteractionButton:
		switch i.CustomID {
		case domain.RenameButton:
			m.onRenameButton(ctx, log, room, evt)
		case domain.GuestInviteButton:
			m.onGuestInvite(ctx, log, room, evt)
		default:
			log.Warn("Unroutable button dropped")
			m.reply(ctx, log, evt.Responder, inactiveControlMessage, true)
		}
	case domain.InteractionModalSubmit:
		switch i.CustomID {
		case domain.RenameModal:
			m.onRenameModal(ctx, log, room, evt)
		default:
			log.Warn("Unroutable modal dropped")
			m.reply(ctx, log, evt.Responder, inactiveControlMessage, true)
		}
	case domain.InteractionSlashCommand, domain.InteractionUnknown:
		log.Warn("Interaction kind not handled by the room manager", "kind", i.Kind.String())
		m.reply(ctx, log, evt.Responder, inactiveControlMessage, true)
	}
}

// Rooms returns a snapshot of the registry ordered by channel ID.
// Like every other method it must be called from the dispatch goroutine.
func (m *Manager) Rooms() []domain.RoomSnapshot {
	snapshots := lo.Map(lo.Values(m.rooms), func(r *domain.Room, _ int) domain.RoomSnapshot {
		return r.Snapshot()
	})
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].ID < snapshots[j].ID })
	return snapshots
}

// Len is safe to call from any goroutine.
func (m *Manager) Len() int {
	return int(m.count.Load())
}

func (m *Manager) register(room *domain.Room) {
	m.rooms[room.ID] = room
	m.count.Store(int64(len(m.rooms)))
}

func (m *Manager) unregister(channelID string) {
	delete(m.rooms, channelID)
	m.count.Store(int64(len(m.rooms)))
}

func (m *Manager) deleteRecord(ctx context.Context, log *slog.Logger, channelID string) {
	if err := m.store.DeleteChannelRecord(ctx, channelID); err != nil {
		log.Error("Failed to delete channel record", "error", err)
	}
}

// destroy deletes the channel, then its record. The record survives a failed
// deletion so the next reconciliation retries it.
func (m *Manager) destroy(ctx context.Context, log *slog.Logger, channelID string) {
	if err := m.platform.DeleteChannel(ctx, channelID); err != nil && !errors.IsNotFound(err) {
		log.Error("Failed to delete channel, record kept", "error", err)
		return
	}
	m.deleteRecord(ctx, log, channelID)
}

func (m *Manager) recoverHandler(log *slog.Logger, handler string) {
	if r := recover(); r != nil {
		log.Error("Handler panicked", "handler", handler, "panic", r)
	}
}
