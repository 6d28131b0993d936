package discord

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"dynamic-voice/errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

var _ contract.Platform = (*Platform)(nil)

const inviteBaseURL = "https://discord.gg/"

// Platform runs REST calls for one guild. Reads go through the session state when it knows the channel.
type Platform struct {
	session *discordgo.Session
	guildID string
	log     *slog.Logger
}

func NewPlatform(session *discordgo.Session, guildID string, log *slog.Logger) *Platform {
	return &Platform{session: session, guildID: guildID, log: log}
}

func (p *Platform) CreateVoiceChannel(ctx context.Context, spec domain.ChannelSpec) (domain.Channel, error) {
	ch, err := p.session.GuildChannelCreateComplex(p.guildID, discordgo.GuildChannelCreateData{
		Name:     spec.Name,
		Type:     discordgo.ChannelTypeGuildVoice,
		ParentID: spec.ParentID,
		Position: spec.Position,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Channel{}, fmt.Errorf("create voice channel %q: %w", spec.Name, err)
	}
	return p.toChannel(ch), nil
}

// FetchChannel prefers the state cache and falls back to REST.
// Connected members only come from the cached voice states.
func (p *Platform) FetchChannel(ctx context.Context, channelID string) (domain.Channel, error) {
	ch, err := p.session.State.Channel(channelID)
	if err != nil {
		ch, err = p.session.Channel(channelID, discordgo.WithContext(ctx))
		if err != nil {
			return domain.Channel{}, mapError(err, channelID)
		}
	}
	return p.toChannel(ch), nil
}

func (p *Platform) DeleteChannel(ctx context.Context, channelID string) error {
	if _, err := p.session.ChannelDelete(channelID, discordgo.WithContext(ctx)); err != nil {
		return mapError(err, channelID)
	}
	return nil
}

func (p *Platform) MoveMember(ctx context.Context, userID, channelID string) error {
	if err := p.session.GuildMemberMove(p.guildID, userID, &channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("move %s to %s: %w", userID, channelID, mapError(err, channelID))
	}
	return nil
}

func (p *Platform) SetChannelName(ctx context.Context, channelID, name string) error {
	if _, err := p.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx)); err != nil {
		return mapError(err, channelID)
	}
	return nil
}

// CreateInvite returns a single-use invite that never expires and grants temporary membership.
func (p *Platform) CreateInvite(ctx context.Context, channelID string) (domain.Invite, error) {
	invite, err := p.session.ChannelInviteCreate(channelID, discordgo.Invite{
		MaxAge:    0,
		MaxUses:   1,
		Temporary: true,
		Unique:    true,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Invite{}, mapError(err, channelID)
	}
	return domain.Invite{Code: invite.Code, URL: inviteBaseURL + invite.Code}, nil
}

// SendMessage posts in the voice channel's text chat without pinging anyone.
func (p *Platform) SendMessage(ctx context.Context, channelID string, a domain.Announcement) error {
	msg := &discordgo.MessageSend{
		Content:         a.Content,
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
	if a.WithControls {
		msg.Components = roomControls()
	}
	if _, err := p.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx)); err != nil {
		return mapError(err, channelID)
	}
	return nil
}

func (p *Platform) toChannel(ch *discordgo.Channel) domain.Channel {
	return domain.Channel{
		ID:       ch.ID,
		Name:     ch.Name,
		ParentID: ch.ParentID,
		Position: ch.Position,
		Voice:    voiceCapable(ch.Type),
		Members:  p.connectedMembers(ch.ID),
	}
}

func voiceCapable(t discordgo.ChannelType) bool {
	return t == discordgo.ChannelTypeGuildVoice || t == discordgo.ChannelTypeGuildStageVoice
}

// connectedMembers lists who is in the voice channel according to the state cache.
func (p *Platform) connectedMembers(channelID string) []domain.Member {
	guild, err := p.session.State.Guild(p.guildID)
	if err != nil {
		p.log.Debug("Guild not in state, membership unknown", "guild_id", p.guildID, "error", err)
		return nil
	}
	now := time.Now().UTC()

	p.session.State.RLock()
	defer p.session.State.RUnlock()
	states := lo.Filter(guild.VoiceStates, func(vs *discordgo.VoiceState, _ int) bool {
		return vs.ChannelID == channelID
	})
	return lo.Map(states, func(vs *discordgo.VoiceState, _ int) domain.Member {
		return domain.NewMember(vs.UserID, displayName(vs.Member, vs.UserID), now)
	})
}

// mapError turns "unknown channel" answers into errors.ErrChannelNotFound.
func mapError(err error, channelID string) error {
	if errors.Is(err, discordgo.ErrStateNotFound) {
		return fmt.Errorf("%w: %s", errors.ErrChannelNotFound, channelID)
	}
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", errors.ErrChannelNotFound, channelID)
		}
		if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownChannel {
			return fmt.Errorf("%w: %s", errors.ErrChannelNotFound, channelID)
		}
	}
	return err
}

func displayName(member *discordgo.Member, fallback string) string {
	if member == nil {
		return fallback
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User == nil {
		return fallback
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}
