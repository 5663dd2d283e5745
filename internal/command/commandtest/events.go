// Package commandtest builds interaction events for tests.
package commandtest

import (
	"github.com/bwmarrin/discordgo"
)

// GuildID is the guild id set by InGuild.
const GuildID = "100000000000000001"

// UserID is the invoking user id on every built event.
const UserID = "200000000000000002"

// SlashCommand builds a top-level command interaction.
func SlashCommand(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return newEvent(discordgo.InteractionApplicationCommand, discordgo.ApplicationCommandInteractionData{
		ID:          "300000000000000003",
		Name:        name,
		CommandType: discordgo.ChatApplicationCommand,
		Options:     opts,
	})
}

// Subcommand builds an interaction addressing /name sub.
func Subcommand(name, sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return SlashCommand(name, &discordgo.ApplicationCommandInteractionDataOption{
		Name:    sub,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: opts,
	})
}

// GroupSubcommand builds an interaction addressing /name group sub.
func GroupSubcommand(name, group, sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return SlashCommand(name, &discordgo.ApplicationCommandInteractionDataOption{
		Name: group,
		Type: discordgo.ApplicationCommandOptionSubCommandGroup,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{{
			Name:    sub,
			Type:    discordgo.ApplicationCommandOptionSubCommand,
			Options: opts,
		}},
	})
}

// StringOption builds a string option value.
func StringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// Button builds a button click interaction.
func Button(customID string) *discordgo.InteractionCreate {
	return newEvent(discordgo.InteractionMessageComponent, discordgo.MessageComponentInteractionData{
		CustomID:      customID,
		ComponentType: discordgo.ButtonComponent,
	})
}

// SelectMenu builds a string select menu interaction.
func SelectMenu(customID string, values ...string) *discordgo.InteractionCreate {
	return newEvent(discordgo.InteractionMessageComponent, discordgo.MessageComponentInteractionData{
		CustomID:      customID,
		ComponentType: discordgo.SelectMenuComponent,
		Values:        values,
	})
}

// InGuild moves the event into GuildID, setting Member instead of User.
func InGuild(e *discordgo.InteractionCreate) *discordgo.InteractionCreate {
	e.GuildID = GuildID
	e.Member = &discordgo.Member{User: e.User}
	e.User = nil
	return e
}

func newEvent(t discordgo.InteractionType, data discordgo.InteractionData) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "400000000000000004",
			Type:      t,
			Data:      data,
			ChannelID: "500000000000000005",
			User:      &discordgo.User{ID: UserID, Username: "tester"},
		},
	}
}
