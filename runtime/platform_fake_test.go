package runtime

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"dynamic-voice/errors"
	"dynamic-voice/infrastructure/storage"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const (
	setupID       = "10"
	categoryID    = "5"
	setupPosition = 3
)

var _ contract.Platform = (*fakePlatform)(nil)

// fakePlatform keeps channels in memory and records every outbound call.
type fakePlatform struct {
	channels map[string]domain.Channel
	nextID   int

	specs    []domain.ChannelSpec
	deleted  []string
	moved    map[string]string
	renamed  map[string]string
	messages map[string][]domain.Announcement
	invites  []string

	fetchErr  map[string]error
	createErr error
	deleteErr error
	moveErr   error
	renameErr error
	inviteErr error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		channels: map[string]domain.Channel{
			setupID: {ID: setupID, Name: "Join to create", ParentID: categoryID, Position: setupPosition, Voice: true},
		},
		nextID:   100,
		moved:    make(map[string]string),
		renamed:  make(map[string]string),
		messages: make(map[string][]domain.Announcement),
		fetchErr: make(map[string]error),
	}
}

func (p *fakePlatform) CreateVoiceChannel(_ context.Context, spec domain.ChannelSpec) (domain.Channel, error) {
	if p.createErr != nil {
		return domain.Channel{}, p.createErr
	}
	p.nextID++
	channel := domain.Channel{
		ID:       fmt.Sprint(p.nextID),
		Name:     spec.Name,
		ParentID: spec.ParentID,
		Position: spec.Position,
		Voice:    true,
	}
	p.channels[channel.ID] = channel
	p.specs = append(p.specs, spec)
	return channel, nil
}

func (p *fakePlatform) FetchChannel(_ context.Context, channelID string) (domain.Channel, error) {
	if err, ok := p.fetchErr[channelID]; ok {
		return domain.Channel{}, err
	}
	channel, ok := p.channels[channelID]
	if !ok {
		return domain.Channel{}, errors.ErrChannelNotFound
	}
	return channel, nil
}

func (p *fakePlatform) DeleteChannel(_ context.Context, channelID string) error {
	if p.deleteErr != nil {
		return p.deleteErr
	}
	if _, ok := p.channels[channelID]; !ok {
		return errors.ErrChannelNotFound
	}
	delete(p.channels, channelID)
	p.deleted = append(p.deleted, channelID)
	return nil
}

func (p *fakePlatform) MoveMember(_ context.Context, userID, channelID string) error {
	if p.moveErr != nil {
		return p.moveErr
	}
	p.moved[userID] = channelID
	return nil
}

func (p *fakePlatform) SetChannelName(_ context.Context, channelID, name string) error {
	if p.renameErr != nil {
		return p.renameErr
	}
	p.renamed[channelID] = name
	return nil
}

func (p *fakePlatform) CreateInvite(_ context.Context, channelID string) (domain.Invite, error) {
	if p.inviteErr != nil {
		return domain.Invite{}, p.inviteErr
	}
	p.invites = append(p.invites, channelID)
	return domain.Invite{Code: "guest42", URL: "https://discord.gg/guest42"}, nil
}

func (p *fakePlatform) SendMessage(_ context.Context, channelID string, a domain.Announcement) error {
	p.messages[channelID] = append(p.messages[channelID], a)
	return nil
}

// withChannel registers a live voice channel holding the given members.
func (p *fakePlatform) withChannel(id string, memberIDs ...string) *fakePlatform {
	members := make([]domain.Member, 0, len(memberIDs))
	for _, mID := range memberIDs {
		members = append(members, domain.NewMember(mID, "user-"+mID, time.Unix(0, 0)))
	}
	p.channels[id] = domain.Channel{ID: id, Name: "room-" + id, ParentID: categoryID, Voice: true, Members: members}
	return p
}

// voiceClock hands out voice state changes with strictly increasing timestamps.
type voiceClock struct {
	now time.Time
}

func newVoiceClock() *voiceClock {
	return &voiceClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *voiceClock) change(userID, name, before, after string) domain.VoiceStateChange {
	c.now = c.now.Add(time.Second)
	return domain.VoiceStateChange{
		UserID:          userID,
		DisplayName:     name,
		BeforeChannelID: before,
		AfterChannelID:  after,
		At:              c.now,
	}
}

// recordingResponder captures interaction replies.
type recordingResponder struct {
	replies []reply
	modals  int
}

type reply struct {
	Content   string
	Ephemeral bool
}

func (r *recordingResponder) Reply(_ context.Context, content string, ephemeral bool) error {
	r.replies = append(r.replies, reply{Content: content, Ephemeral: ephemeral})
	return nil
}

func (r *recordingResponder) ShowRenameModal(_ context.Context) error {
	r.modals++
	return nil
}

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func openBadger(t *testing.T) contract.Store {
	t.Helper()
	store, err := storage.OpenBadger(t.TempDir(), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}
