package domain

import (
	"dynamic-voice/errors"
	"sort"

	"github.com/samber/lo"
)

// OwnershipChange is returned by RemoveMember when the owner left a room
// that still has members. The caller persists and announces it.
type OwnershipChange struct {
	ChannelID string
	Previous  Member
	Next      Member
}

// Room is the live state of one dynamic voice channel.
// Invariant: the owner is a member whenever the room is not empty.
// A room whose last member left is destroyed and rejects further mutation.
type Room struct {
	ID       string
	Name     string
	ParentID string

	owner     Member
	members   map[string]Member
	destroyed bool
}

// NewRoom builds an active room. The owner is always part of the membership,
// even when absent from others.
func NewRoom(id, name, parentID string, owner Member, others ...Member) *Room {
	members := make(map[string]Member, len(others)+1)
	for _, m := range others {
		members[m.ID] = m
	}
	if existing, ok := members[owner.ID]; ok {
		owner = existing
	} else {
		members[owner.ID] = owner
	}
	return &Room{
		ID:       id,
		Name:     name,
		ParentID: parentID,
		owner:    owner,
		members:  members,
	}
}

func (r *Room) Owner() Member { return r.owner }

func (r *Room) IsOwner(userID string) bool { return r.owner.ID == userID }

func (r *Room) Has(userID string) bool {
	_, ok := r.members[userID]
	return ok
}

func (r *Room) Size() int { return len(r.members) }

func (r *Room) IsEmpty() bool { return len(r.members) == 0 }

func (r *Room) Destroyed() bool { return r.destroyed }

// Members returns the membership ordered by join time.
func (r *Room) Members() []Member {
	out := lo.Values(r.members)
	sort.Slice(out, func(i, j int) bool { return joinedBefore(out[i], out[j]) })
	return out
}

// AddMember inserts the member if absent. A member already present keeps
// its original join time. It reports whether the membership changed.
func (r *Room) AddMember(m Member) bool {
	if r.destroyed {
		return false
	}
	if _, ok := r.members[m.ID]; ok {
		return false
	}
	r.members[m.ID] = m
	return true
}

// RemoveMember drops the user from the room. When the owner leaves and
// members remain, the earliest joiner becomes the owner and the change is returned.
// Removing the last member destroys the room.
func (r *Room) RemoveMember(userID string) *OwnershipChange {
	left, ok := r.members[userID]
	if !ok || r.destroyed {
		return nil
	}
	delete(r.members, userID)

	if len(r.members) == 0 {
		r.destroyed = true
		return nil
	}
	if r.owner.ID != userID {
		return nil
	}

	r.owner = lo.MinBy(lo.Values(r.members), joinedBefore)
	return &OwnershipChange{ChannelID: r.ID, Previous: left, Next: r.owner}
}

// CheckRename verifies that requesterID may rename the room to newName and
// returns the normalized name. The room itself is untouched until SetName.
func (r *Room) CheckRename(requesterID, newName string) (string, error) {
	if r.destroyed {
		return "", errors.ErrRoomDestroyed
	}
	if !r.IsOwner(requesterID) {
		return "", errors.ErrNotOwner
	}
	return NormalizeChannelName(newName)
}

func (r *Room) SetName(name string) { r.Name = name }

// Snapshot is a read-only view of a room, safe to hand out of the registry.
func (r *Room) Snapshot() RoomSnapshot {
	return RoomSnapshot{
		ID:      r.ID,
		Name:    r.Name,
		OwnerID: r.owner.ID,
		MemberIDs: lo.Map(r.Members(), func(m Member, _ int) string {
			return m.ID
		}),
	}
}

type RoomSnapshot struct {
	ID        string
	Name      string
	OwnerID   string
	MemberIDs []string
}
