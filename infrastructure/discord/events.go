package discord

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Gateway converts discordgo events into domain values and queues them for the dispatcher.
type Gateway struct {
	log     *slog.Logger
	guildID string
	events  chan<- contract.Event
}

func NewGateway(log *slog.Logger, guildID string, events chan<- contract.Event) *Gateway {
	return &Gateway{log: log, guildID: guildID, events: events}
}

// Register installs the handlers. ctx bounds how long a handler waits on a full queue.
func (g *Gateway) Register(ctx context.Context, session *discordgo.Session) {
	session.AddHandler(func(_ *discordgo.Session, v *discordgo.VoiceStateUpdate) {
		g.onVoiceStateUpdate(ctx, v)
	})
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		g.onInteractionCreate(ctx, s, i)
	})
}

func (g *Gateway) onVoiceStateUpdate(ctx context.Context, v *discordgo.VoiceStateUpdate) {
	change, ok := toVoiceStateChange(g.guildID, v, time.Now().UTC())
	if !ok {
		return
	}
	g.enqueue(ctx, contract.NewVoiceStateEvent(change))
}

func (g *Gateway) onInteractionCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Interaction == nil || i.GuildID != g.guildID {
		return
	}
	g.enqueue(ctx, contract.NewInteractionEvent(contract.InteractionEvent{
		Interaction: toInteraction(i.Interaction),
		Responder:   NewResponder(s, i.Interaction),
	}))
}

func (g *Gateway) enqueue(ctx context.Context, evt contract.Event) {
	select {
	case g.events <- evt:
	case <-ctx.Done():
		g.log.Warn("Event dropped on shutdown", "event_id", evt.ID.String())
	}
}

// toVoiceStateChange relies on the state cache having filled BeforeUpdate.
func toVoiceStateChange(guildID string, v *discordgo.VoiceStateUpdate, at time.Time) (domain.VoiceStateChange, bool) {
	if v == nil || v.VoiceState == nil || v.GuildID != guildID {
		return domain.VoiceStateChange{}, false
	}
	change := domain.VoiceStateChange{
		UserID:         v.UserID,
		DisplayName:    displayName(v.Member, v.UserID),
		AfterChannelID: v.ChannelID,
		At:             at,
	}
	if v.BeforeUpdate != nil {
		change.BeforeChannelID = v.BeforeUpdate.ChannelID
	}
	return change, true
}

func toInteraction(i *discordgo.Interaction) domain.Interaction {
	out := domain.Interaction{ChannelID: i.ChannelID}
	switch {
	case i.Member != nil && i.Member.User != nil:
		out.UserID = i.Member.User.ID
		out.UserName = displayName(i.Member, i.Member.User.ID)
	case i.User != nil:
		out.UserID = i.User.ID
		out.UserName = i.User.Username
	}

	switch i.Type {
	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		out.CustomID = domain.CustomID(data.CustomID)
		if data.ComponentType == discordgo.ButtonComponent {
			out.Kind = domain.InteractionButton
		}
	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		out.Kind = domain.InteractionModalSubmit
		out.CustomID = domain.CustomID(data.CustomID)
		out.Fields = textInputs(data.Components)
	case discordgo.InteractionApplicationCommand:
		out.Kind = domain.InteractionSlashCommand
		out.Command = toCommand(i.ApplicationCommandData())
	}
	return out
}

func toCommand(data discordgo.ApplicationCommandInteractionData) *domain.CommandInvocation {
	cmd := &domain.CommandInvocation{Name: data.Name}
	for _, opt := range data.Options {
		switch opt.Name {
		case domain.CustomNameOption:
			name := opt.StringValue()
			cmd.CustomName = &name
		case domain.CustomNameTargetOption:
			cmd.TargetUserID = opt.UserValue(nil).ID
			if data.Resolved != nil {
				if user, ok := data.Resolved.Users[cmd.TargetUserID]; ok {
					cmd.TargetName = user.Username
				}
			}
		}
	}
	return cmd
}

// textInputs flattens modal rows into customID -> value.
func textInputs(components []discordgo.MessageComponent) map[string]string {
	fields := make(map[string]string)
	for _, c := range components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				fields[input.CustomID] = input.Value
			}
		}
	}
	return fields
}
