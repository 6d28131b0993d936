package runtime

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"dynamic-voice/mocks"
	"dynamic-voice/moderation"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newManager(t *testing.T, platform *fakePlatform, store contract.Store) *Manager {
	t.Helper()
	m, err := NewManager(context.Background(), testLogger(), platform, store, moderation.Passthrough{}, Options{SetupChannelID: setupID})
	require.NoError(t, err)
	return m
}

func TestManager_Owner_Succession_Then_Deletion(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	platform := newFakePlatform()
	store := openBadger(t)
	m := newManager(t, platform, store)
	clock := newVoiceClock()

	// When A joins the setup channel
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", "", setupID))

	// Then a room owned by A is created right below the setup channel
	// And A is moved into it
	req.Equal(1, m.Len())
	req.Equal([]domain.ChannelSpec{{Name: "dynamic-channel-Alice", ParentID: categoryID, Position: setupPosition + 1}}, platform.specs)
	roomID := m.Rooms()[0].ID
	req.Equal(roomID, platform.moved["A"])
	req.Equal([]domain.Announcement{{Content: "Dynamic channel created! Owner is <@A>.", WithControls: true}}, platform.messages[roomID])
	records, err := store.GetAllChannelRecords(ctx)
	req.NoError(err)
	req.Equal([]domain.ChannelRecord{{ChannelID: roomID, OwnerID: "A"}}, records)

	// When the move comes back from the platform and B joins the room
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", setupID, roomID))
	m.OnMembershipEvent(ctx, clock.change("B", "Bob", "", roomID))

	// Then both are members and A still owns the room
	req.Equal([]domain.RoomSnapshot{{
		ID:        roomID,
		Name:      "dynamic-channel-Alice",
		OwnerID:   "A",
		MemberIDs: []string{"A", "B"},
	}}, m.Rooms())

	// When A leaves
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", roomID, ""))

	// Then B owns the room, the change is announced and persisted
	req.Equal("B", m.Rooms()[0].OwnerID)
	req.Equal(domain.Announcement{Content: "Previous owner <@A> left. New owner is now <@B>!"}, platform.messages[roomID][1])
	records, err = store.GetAllChannelRecords(ctx)
	req.NoError(err)
	req.Equal([]domain.ChannelRecord{{ChannelID: roomID, OwnerID: "B"}}, records)

	// When B leaves
	m.OnMembershipEvent(ctx, clock.change("B", "Bob", roomID, ""))

	// Then the room, its channel and its record are gone
	req.Zero(m.Len())
	req.Equal([]string{roomID}, platform.deleted)
	records, err = store.GetAllChannelRecords(ctx)
	req.NoError(err)
	req.Empty(records)
}

func TestManager_Succession_Picks_Earliest_Joiner(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	platform := newFakePlatform()
	m := newManager(t, platform, openBadger(t))
	clock := newVoiceClock()

	m.OnMembershipEvent(ctx, clock.change("A", "Alice", "", setupID))
	roomID := m.Rooms()[0].ID

	// Given C joined before B
	m.OnMembershipEvent(ctx, clock.change("C", "Carol", "", roomID))
	m.OnMembershipEvent(ctx, clock.change("B", "Bob", "", roomID))

	// When the owner leaves
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", roomID, ""))

	// Then C takes over
	req.Equal("C", m.Rooms()[0].OwnerID)
}

func TestManager_Ignores_Updates_Without_Movement(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	platform := newFakePlatform()
	m := newManager(t, platform, openBadger(t))
	clock := newVoiceClock()

	// When a member of the setup channel mutes
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", setupID, setupID))

	// Then nothing is created
	req.Zero(m.Len())
	req.Empty(platform.specs)
}

func TestManager_Moving_Between_Rooms_Updates_Both(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	platform := newFakePlatform()
	m := newManager(t, platform, openBadger(t))
	clock := newVoiceClock()

	// Given two rooms owned by A and B
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", "", setupID))
	m.OnMembershipEvent(ctx, clock.change("B", "Bob", "", setupID))
	req.Equal(2, m.Len())
	roomA, roomB := platform.moved["A"], platform.moved["B"]

	// When A moves into B's room
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", roomA, roomB))

	// Then A's room is deleted and A is a member of B's room
	req.Equal(1, m.Len())
	req.Equal([]string{roomA}, platform.deleted)
	req.Equal([]domain.RoomSnapshot{{
		ID:        roomB,
		Name:      "dynamic-channel-Bob",
		OwnerID:   "B",
		MemberIDs: []string{"B", "A"},
	}}, m.Rooms())
}

func TestManager_Rejoining_Setup_Creates_Another_Room(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	platform := newFakePlatform()
	m := newManager(t, platform, openBadger(t))
	clock := newVoiceClock()

	m.OnMembershipEvent(ctx, clock.change("A", "Alice", "", setupID))
	first := platform.moved["A"]
	m.OnMembershipEvent(ctx, clock.change("B", "Bob", "", first))

	// When A goes back to the setup channel
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", first, setupID))

	// Then B keeps the first room and A gets a second one
	req.Equal(2, m.Len())
	req.NotEqual(first, platform.moved["A"])
}

func TestManager_Uses_Preferred_Name_Through_Filter(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	platform := newFakePlatform()
	store := openBadger(t)
	req.NoError(store.SetPreferredName(ctx, "A", "snake pit"))

	filter, err := moderation.NewModerator([]string{"snake"}, '*', testLogger())
	req.NoError(err)
	m, err := NewManager(ctx, testLogger(), platform, store, filter, Options{SetupChannelID: setupID})
	req.NoError(err)

	m.OnMembershipEvent(ctx, newVoiceClock().change("A", "Alice", "", setupID))

	req.Equal("***** pit", platform.specs[0].Name)
	req.Equal("***** pit", m.Rooms()[0].Name)
}

func TestManager_Truncates_Default_Name(t *testing.T) {
	req := require.New(t)
	platform := newFakePlatform()
	m := newManager(t, platform, openBadger(t))

	m.OnMembershipEvent(context.Background(), newVoiceClock().change("A", strings.Repeat("x", 120), "", setupID))

	req.Len([]rune(platform.specs[0].Name), domain.MaxChannelNameLen)
}

func TestManager_Failed_Move_Rolls_Back(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	platform := newFakePlatform()
	platform.moveErr = fmt.Errorf("member left voice")
	store := openBadger(t)
	m := newManager(t, platform, store)

	m.OnMembershipEvent(ctx, newVoiceClock().change("A", "Alice", "", setupID))

	req.Zero(m.Len())
	req.Len(platform.deleted, 1)
	records, err := store.GetAllChannelRecords(ctx)
	req.NoError(err)
	req.Empty(records)
}

func TestManager_Failed_Delete_Keeps_Record(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	platform := newFakePlatform()
	store := openBadger(t)
	m := newManager(t, platform, store)
	clock := newVoiceClock()

	m.OnMembershipEvent(ctx, clock.change("A", "Alice", "", setupID))
	roomID := platform.moved["A"]

	// Given the platform refuses deletions
	platform.deleteErr = fmt.Errorf("missing permissions")

	// When the last member leaves
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", roomID, ""))

	// Then the room is forgotten but the record waits for the next reconciliation
	req.Zero(m.Len())
	records, err := store.GetAllChannelRecords(ctx)
	req.NoError(err)
	req.Equal([]domain.ChannelRecord{{ChannelID: roomID, OwnerID: "A"}}, records)
}

func TestManager_Reconcile_Repairs_Records(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := openBadger(t)
	platform := newFakePlatform().
		withChannel("200", "B", "A").
		withChannel("300", "D", "E", "C").
		withChannel("400")
	platform.channels["500"] = domain.Channel{ID: "500", Name: "general", Voice: false}
	platform.fetchErr["700"] = fmt.Errorf("gateway timeout")

	// Given records for a live room, a room whose owner left, an empty room,
	// a text channel, a deleted channel and an unreachable one
	req.NoError(store.UpsertChannelRecord(ctx, "200", "A"))
	req.NoError(store.UpsertChannelRecord(ctx, "300", "X"))
	req.NoError(store.UpsertChannelRecord(ctx, "400", "F"))
	req.NoError(store.UpsertChannelRecord(ctx, "500", "G"))
	req.NoError(store.UpsertChannelRecord(ctx, "600", "H"))
	req.NoError(store.UpsertChannelRecord(ctx, "700", "I"))

	// When the manager starts
	m := newManager(t, platform, store)

	// Then live rooms are registered, the missing owner is replaced by the lowest member ID
	req.Equal([]domain.RoomSnapshot{
		{ID: "200", Name: "room-200", OwnerID: "A", MemberIDs: []string{"A", "B"}},
		{ID: "300", Name: "room-300", OwnerID: "C", MemberIDs: []string{"C", "D", "E"}},
	}, m.Rooms())

	// And the empty channel is deleted
	req.Equal([]string{"400"}, platform.deleted)

	// And records are repaired, the unreachable one being kept
	records, err := store.GetAllChannelRecords(ctx)
	req.NoError(err)
	req.Equal([]domain.ChannelRecord{
		{ChannelID: "200", OwnerID: "A"},
		{ChannelID: "300", OwnerID: "C"},
		{ChannelID: "700", OwnerID: "I"},
	}, records)
}

func TestManager_Reconcile_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	platform := newFakePlatform().withChannel("200", "B", "C")

	// Given a record whose owner left while the bot was offline
	gomock.InOrder(
		store.EXPECT().GetAllChannelRecords(gomock.Any()).
			Return([]domain.ChannelRecord{{ChannelID: "200", OwnerID: "A"}}, nil),
		store.EXPECT().UpsertChannelRecord(gomock.Any(), "200", "B").Return(nil),
		// Once repaired, the next run sees the corrected record and writes nothing
		store.EXPECT().GetAllChannelRecords(gomock.Any()).
			Return([]domain.ChannelRecord{{ChannelID: "200", OwnerID: "B"}}, nil),
	)

	m, err := NewManager(ctx, testLogger(), platform, store, moderation.Passthrough{}, Options{SetupChannelID: setupID})
	req.NoError(err)
	first := m.Rooms()

	// When reconciliation runs again
	req.NoError(m.Reconcile(ctx))

	// Then the registry is unchanged
	req.Equal(first, m.Rooms())
	req.Empty(platform.deleted)
}

func TestManager_Reconcile_Fails_When_Records_Are_Unreadable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().GetAllChannelRecords(gomock.Any()).Return(nil, fmt.Errorf("disk full"))

	_, err := NewManager(context.Background(), testLogger(), newFakePlatform(), store, moderation.Passthrough{}, Options{SetupChannelID: setupID})

	req.ErrorContains(err, "disk full")
}

func TestManager_Store_Write_Failures_Do_Not_Stop_Events(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	platform := newFakePlatform()
	clock := newVoiceClock()
	diskFull := fmt.Errorf("disk full")

	// Given a store that fails every write
	gomock.InOrder(
		store.EXPECT().GetAllChannelRecords(gomock.Any()).Return(nil, nil),
		store.EXPECT().GetPreferredName(gomock.Any(), "A").Return("", false, nil),
		store.EXPECT().UpsertChannelRecord(gomock.Any(), "101", "A").Return(diskFull),
		store.EXPECT().UpsertChannelRecord(gomock.Any(), "101", "B").Return(diskFull),
	)
	m, err := NewManager(ctx, testLogger(), platform, store, moderation.Passthrough{}, Options{SetupChannelID: setupID})
	req.NoError(err)

	// When A creates a room, B joins and A leaves
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", "", setupID))
	m.OnMembershipEvent(ctx, clock.change("B", "Bob", "", "101"))
	m.OnMembershipEvent(ctx, clock.change("A", "Alice", "101", ""))

	// Then the room lives on under B and the handover is still announced
	req.Equal([]domain.RoomSnapshot{{ID: "101", Name: "dynamic-channel-Alice", OwnerID: "B", MemberIDs: []string{"B"}}}, m.Rooms())
	req.Equal(domain.Announcement{Content: "Previous owner <@A> left. New owner is now <@B>!"}, platform.messages["101"][1])
}
