package discord

import (
	"dynamic-voice/domain"

	"github.com/bwmarrin/discordgo"
)

// Commands is the guild command set published by cmd/deploy.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{customNameCommand()}
}

func customNameCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        domain.CustomNameCommand,
		Description: "Set a default name for dynamic channels",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        domain.CustomNameOption,
				Description: "The new default channel name (leave empty to reset)",
				Required:    false,
				MaxLength:   domain.MaxCustomNameLen,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        domain.CustomNameTargetOption,
				Description: "The user to set the default name for (leave empty for yourself)",
				Required:    false,
			},
		},
	}
}
