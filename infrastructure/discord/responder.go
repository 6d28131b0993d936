package discord

import (
	"context"
	"dynamic-voice/contract"

	"github.com/bwmarrin/discordgo"
)

var _ contract.Responder = (*Responder)(nil)

// Responder answers a single interaction. Discord accepts one initial response per interaction.
type Responder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func NewResponder(session *discordgo.Session, interaction *discordgo.Interaction) *Responder {
	return &Responder{session: session, interaction: interaction}
}

func (r *Responder) Reply(ctx context.Context, content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
}

func (r *Responder) ShowRenameModal(ctx context.Context) error {
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: renameModal(),
	}, discordgo.WithContext(ctx))
}
