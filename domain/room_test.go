package domain

import (
	"dynamic-voice/errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)

func member(id string, offset time.Duration) Member {
	return NewMember(id, "user-"+id, t0.Add(offset))
}

func TestRoom_NewRoom_Owner_Is_Member(t *testing.T) {
	req := require.New(t)

	room := NewRoom("r1", "dynamic-channel-alice", "cat", member("alice", 0))

	req.Equal(1, room.Size())
	req.True(room.Has("alice"))
	req.True(room.IsOwner("alice"))
	req.False(room.IsEmpty())
}

func TestRoom_AddMember_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "n", "cat", member("alice", 0))

	// When the same user is added twice
	req.True(room.AddMember(member("bob", time.Minute)))
	req.False(room.AddMember(member("bob", time.Hour)))

	// Then the membership holds a single entry with the first join time
	req.Equal(2, room.Size())
	req.Equal(t0.Add(time.Minute), room.Members()[1].JoinedAt)
}

func TestRoom_RemoveMember_NonOwner_Keeps_Owner(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "n", "cat", member("alice", 0))
	room.AddMember(member("bob", time.Minute))

	change := room.RemoveMember("bob")

	req.Nil(change)
	req.True(room.IsOwner("alice"))
	req.Equal(1, room.Size())
}

func TestRoom_RemoveMember_Owner_Passes_To_Earliest_Joiner(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "n", "cat", member("alice", 0))
	room.AddMember(member("carol", 3*time.Minute))
	room.AddMember(member("bob", time.Minute))
	room.AddMember(member("dave", 2*time.Minute))

	// When the owner leaves
	change := room.RemoveMember("alice")

	// Then bob, who joined first among the remaining members, owns the room
	req.NotNil(change)
	req.Equal("r1", change.ChannelID)
	req.Equal("alice", change.Previous.ID)
	req.Equal("bob", change.Next.ID)
	req.True(room.IsOwner("bob"))
	req.False(room.Destroyed())
}

func TestRoom_RemoveMember_Tie_Break_On_ID(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "n", "cat", member("owner", 0), member("zed", time.Second), member("amy", time.Second))

	change := room.RemoveMember("owner")

	req.NotNil(change)
	req.Equal("amy", change.Next.ID)
}

func TestRoom_RemoveMember_Last_Destroys_Room(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "n", "cat", member("alice", 0))

	change := room.RemoveMember("alice")

	// Then no ownership logic runs and the room is terminal
	req.Nil(change)
	req.True(room.IsEmpty())
	req.True(room.Destroyed())
	req.False(room.AddMember(member("bob", time.Minute)))
	req.True(room.IsEmpty())
}

func TestRoom_RemoveMember_Unknown_User_Is_Noop(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "n", "cat", member("alice", 0))

	req.Nil(room.RemoveMember("ghost"))
	req.Equal(1, room.Size())
	req.True(room.IsOwner("alice"))
}

func TestRoom_Membership_Counts_Joins_Minus_Leaves(t *testing.T) {
	req := require.New(t)
	rnd := rand.New(rand.NewSource(42))
	users := []string{"a", "b", "c", "d", "e", "f"}

	for run := 0; run < 200; run++ {
		present := map[string]bool{"a": true}
		room := NewRoom("r", "n", "cat", member("a", 0))
		joins, leaves := 1, 0

		for step := 0; step < 40 && !room.Destroyed(); step++ {
			id := users[rnd.Intn(len(users))]
			if present[id] {
				room.RemoveMember(id)
				delete(present, id)
				leaves++
			} else {
				room.AddMember(member(id, time.Duration(step+1)*time.Second))
				present[id] = true
				joins++
			}

			req.Equal(joins-leaves, room.Size())
			req.Equal(joins-leaves == 0, room.Destroyed())
			if !room.IsEmpty() {
				req.True(room.Has(room.Owner().ID), "owner must stay a member")
			}
		}
	}
}

func TestRoom_CheckRename(t *testing.T) {
	room := NewRoom("r1", "n", "cat", member("alice", 0), member("bob", time.Minute))

	t.Run("owner with valid name", func(t *testing.T) {
		req := require.New(t)
		name, err := room.CheckRename("alice", "  Chill zone  ")
		req.NoError(err)
		req.Equal("Chill zone", name)
		// The room is only renamed once the platform accepted it
		req.Equal("n", room.Name)
	})

	t.Run("non owner is rejected", func(t *testing.T) {
		req := require.New(t)
		_, err := room.CheckRename("bob", "mine now")
		req.ErrorIs(err, errors.ErrNotOwner)
	})

	t.Run("name length bounds", func(t *testing.T) {
		req := require.New(t)
		_, err := room.CheckRename("alice", "   ")
		req.ErrorIs(err, errors.ErrInvalidChannelName)

		_, err = room.CheckRename("alice", strings.Repeat("x", 101))
		req.ErrorIs(err, errors.ErrInvalidChannelName)

		name, err := room.CheckRename("alice", strings.Repeat("é", 100))
		req.NoError(err)
		req.Len([]rune(name), 100)
	})
}

func TestRoom_Snapshot_Orders_By_Join_Time(t *testing.T) {
	req := require.New(t)
	room := NewRoom("r1", "n", "cat", member("alice", time.Minute), member("bob", 0))

	snap := room.Snapshot()

	req.Equal("alice", snap.OwnerID)
	req.Equal([]string{"bob", "alice"}, snap.MemberIDs)
}

func TestDefaultChannelName(t *testing.T) {
	req := require.New(t)

	req.Equal("dynamic-channel-Alice", DefaultChannelName(NewMember("1", "Alice", t0)))

	long := DefaultChannelName(NewMember("1", strings.Repeat("a", 200), t0))
	req.Len([]rune(long), MaxChannelNameLen)
}

func TestNormalizeCustomName(t *testing.T) {
	req := require.New(t)

	name, err := NormalizeCustomName("  ")
	req.NoError(err)
	req.Empty(name)

	_, err = NormalizeCustomName(strings.Repeat("x", 51))
	req.ErrorIs(err, errors.ErrInvalidCustomName)
}

func TestChannel_RequireVoice(t *testing.T) {
	req := require.New(t)

	req.NoError(Channel{ID: "200", Voice: true}.RequireVoice())
	req.ErrorIs(Channel{ID: "500"}.RequireVoice(), errors.ErrNotVoiceChannel)
}
