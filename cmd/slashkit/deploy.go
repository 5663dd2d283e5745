package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/slashkit/internal/bot"
	"github.com/spf13/cobra"
)

var errNoDeployTarget = errors.New("no guilds given, use --global to deploy globally")

var (
	deployGuilds []string
	deployGlobal bool

	deployCmd = &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the registered commands without connecting to the gateway",
		Example: `  slashkit deploy                       Deploy to DEPLOY_GUILD_IDS
  slashkit deploy --guild 1234567890    Deploy to one guild
  slashkit deploy --global              Deploy globally`,
		Args: cobra.NoArgs,
		RunE: runDeploy,
	}

	schemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Print the deployment payload of the registered commands as JSON",
		Long: `Print the deployment payload of the registered commands as JSON.

Nothing is sent to Discord, so DISCORD_TOKEN is not required.`,
		Args: cobra.NoArgs,
		RunE: runSchema,
	}
)

func init() {
	deployCmd.Flags().StringSliceVarP(&deployGuilds, "guild", "g", nil, "guild id to deploy to (repeatable)")
	deployCmd.Flags().BoolVar(&deployGlobal, "global", false, "deploy globally instead of to guilds")
	deployCmd.MarkFlagsMutuallyExclusive("guild", "global")
}

// resolveGuildIDs picks the guilds to deploy to. An empty result means a
// global deploy.
func resolveGuildIDs(flagIDs []string, global bool, cfg *bot.DeployConfig) ([]string, error) {
	if global {
		return nil, nil
	}

	if len(flagIDs) == 0 {
		if len(cfg.GuildIDs) == 0 {
			return nil, errNoDeployTarget
		}
		return cfg.GuildIDStrings(), nil
	}

	for _, id := range flagIDs {
		if _, err := snowflake.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid guild id %q: %w", id, err)
		}
	}
	return flagIDs, nil
}

func runDeploy(_ *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	guildIDs, err := resolveGuildIDs(deployGuilds, deployGlobal, &cfg.Deploy)
	if err != nil {
		return err
	}

	b := bot.NewBot(cfg)
	b.LoadModules()

	if err := b.Deploy(guildIDs); err != nil {
		return err
	}

	if len(guildIDs) == 0 {
		slog.Info("deployed commands globally", "commands", b.Handler().Registry().Len())
	} else {
		slog.Info("deployed commands", "guilds", guildIDs, "commands", b.Handler().Registry().Len())
	}
	return nil
}

func runSchema(cmd *cobra.Command, _ []string) error {
	cfg, err := setupWith(bot.LoadOfflineConfig)
	if err != nil {
		return err
	}

	b := bot.NewBot(cfg)
	b.LoadModules()

	commands, err := b.Schema()
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(commands, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
