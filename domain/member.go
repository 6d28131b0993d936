// Package domain contains core concepts of the dynamic voice channels.
// This file defines Member, the room-scoped wrapper around a platform user.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// Member is a user as seen by one room.
// JoinedAt is captured when the user is wrapped and is only used to pick the next owner.
type Member struct {
	ID          string
	DisplayName string
	JoinedAt    time.Time
}

func NewMember(id, displayName string, joinedAt time.Time) Member {
	return Member{ID: id, DisplayName: displayName, JoinedAt: joinedAt}
}

// Mention renders the member the way the platform expects in message content.
func (m Member) Mention() string {
	return "<@" + m.ID + ">"
}

// joinedBefore orders members by join time, falling back to the ID so that
// members wrapped at the same instant still have a stable order.
func joinedBefore(a, b Member) bool {
	if !a.JoinedAt.Equal(b.JoinedAt) {
		return a.JoinedAt.Before(b.JoinedAt)
	}
	return a.ID < b.ID
}
