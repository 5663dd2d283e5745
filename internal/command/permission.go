package command

import (
	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
)

// Permission builds a per-guild permission entry for a principal.
func Permission(
	kind discordgo.ApplicationCommandPermissionType,
	id snowflake.ID,
	allow bool,
) *discordgo.ApplicationCommandPermissions {
	return &discordgo.ApplicationCommandPermissions{
		ID:         id.String(),
		Type:       kind,
		Permission: allow,
	}
}

// AllowUser grants a user access to a command.
func AllowUser(id snowflake.ID) *discordgo.ApplicationCommandPermissions {
	return Permission(discordgo.ApplicationCommandPermissionTypeUser, id, true)
}

// DenyUser revokes a user's access to a command.
func DenyUser(id snowflake.ID) *discordgo.ApplicationCommandPermissions {
	return Permission(discordgo.ApplicationCommandPermissionTypeUser, id, false)
}

// AllowRole grants a role access to a command.
func AllowRole(id snowflake.ID) *discordgo.ApplicationCommandPermissions {
	return Permission(discordgo.ApplicationCommandPermissionTypeRole, id, true)
}

// DenyRole revokes a role's access to a command.
func DenyRole(id snowflake.ID) *discordgo.ApplicationCommandPermissions {
	return Permission(discordgo.ApplicationCommandPermissionTypeRole, id, false)
}
