package discord

import (
	"dynamic-voice/domain"

	"github.com/bwmarrin/discordgo"
)

// roomControls is the action row attached to the creation announcement.
func roomControls() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Rename Channel",
					Style:    discordgo.PrimaryButton,
					CustomID: string(domain.RenameButton),
				},
				discordgo.Button{
					Label:    "Guest Invite",
					Style:    discordgo.SecondaryButton,
					CustomID: string(domain.GuestInviteButton),
				},
			},
		},
	}
}

func renameModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: string(domain.RenameModal),
		Title:    "Rename Dynamic Channel",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  domain.NewChannelNameInput,
						Label:     "New Channel Name",
						Style:     discordgo.TextInputShort,
						Required:  true,
						MaxLength: domain.MaxChannelNameLen,
					},
				},
			},
		},
	}
}
