package discord

import (
	"context"
	"dynamic-voice/errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates

// NewSession prepares a bot session with ordered event delivery and voice state tracking.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = Intents
	session.SyncEvents = true
	session.StateEnabled = true
	session.State.TrackChannels = true
	session.State.TrackVoice = true
	return session, nil
}

// GuildWaiter observes GUILD_CREATE for one guild. Create it before opening the session.
type GuildWaiter struct {
	guildID string
	ready   chan struct{}
	remove  func()
}

func NewGuildWaiter(session *discordgo.Session, guildID string) *GuildWaiter {
	w := &GuildWaiter{guildID: guildID, ready: make(chan struct{})}
	w.remove = session.AddHandler(func(_ *discordgo.Session, g *discordgo.GuildCreate) {
		if g.ID != guildID {
			return
		}
		select {
		case <-w.ready:
		default:
			close(w.ready)
		}
	})
	return w
}

// Wait blocks until the guild and its voice states are in the state cache.
func (w *GuildWaiter) Wait(ctx context.Context, timeout time.Duration) error {
	defer w.remove()
	select {
	case <-w.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(timeout):
		return fmt.Errorf("%w: %s after %s", errors.ErrGuildUnavailable, w.guildID, timeout)
	}
}
