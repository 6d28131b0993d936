//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"dynamic-voice/domain"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Platform is the chat platform as seen by the registry.
// Every call may block on the network and may fail; callers never retry.
type Platform interface {
	CreateVoiceChannel(ctx context.Context, spec domain.ChannelSpec) (domain.Channel, error)
	// FetchChannel returns errors.ErrChannelNotFound when the channel no longer exists.
	FetchChannel(ctx context.Context, channelID string) (domain.Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error
	MoveMember(ctx context.Context, userID, channelID string) error
	SetChannelName(ctx context.Context, channelID, name string) error
	CreateInvite(ctx context.Context, channelID string) (domain.Invite, error)
	SendMessage(ctx context.Context, channelID string, announcement domain.Announcement) error
}

type ChannelStore interface {
	GetAllChannelRecords(ctx context.Context) ([]domain.ChannelRecord, error)
	UpsertChannelRecord(ctx context.Context, channelID, ownerID string) error
	DeleteChannelRecord(ctx context.Context, channelID string) error
}

type NameStore interface {
	// GetPreferredName reports false when the user never set a name.
	GetPreferredName(ctx context.Context, userID string) (string, bool, error)
	SetPreferredName(ctx context.Context, userID, name string) error
	DeletePreferredName(ctx context.Context, userID string) error
}

// Store is the durable side of the registry: two independent tables, no transaction spans both.
type Store interface {
	ChannelStore
	NameStore
	Close() error
}

// Responder answers one interaction.
type Responder interface {
	Reply(ctx context.Context, content string, ephemeral bool) error
	ShowRenameModal(ctx context.Context) error
}

// NameFilter rewrites user supplied channel names before they reach the platform.
type NameFilter interface {
	Clean(name string) string
}

type MembershipHandler interface {
	OnMembershipEvent(ctx context.Context, change domain.VoiceStateChange)
}

type InteractionHandler interface {
	OnInteraction(ctx context.Context, evt InteractionEvent)
}

type InteractionEvent struct {
	Interaction domain.Interaction
	Responder   Responder
}

type EventKind int

const (
	VoiceStateEvent EventKind = iota + 1
	InteractionCreateEvent
)

// Event is what the platform adapter hands to the dispatch loop.
// Exactly one of VoiceState and Interaction is set, according to Kind.
type Event struct {
	ID          uuid.UUID
	Kind        EventKind
	ReceivedAt  time.Time
	VoiceState  domain.VoiceStateChange
	Interaction InteractionEvent
}

func NewVoiceStateEvent(change domain.VoiceStateChange) Event {
	return Event{ID: uuid.New(), Kind: VoiceStateEvent, ReceivedAt: time.Now().UTC(), VoiceState: change}
}

func NewInteractionEvent(evt InteractionEvent) Event {
	return Event{ID: uuid.New(), Kind: InteractionCreateEvent, ReceivedAt: time.Now().UTC(), Interaction: evt}
}

// RoomCounter exposes the number of live rooms to observers outside the dispatch loop.
type RoomCounter interface {
	Len() int
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
